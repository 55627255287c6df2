package wsdl

import (
	"errors"
	"fmt"
)

// Errors that prevent a generator from being built.
var (
	ErrNoAdapterName                 = errors.New("adapter has no name")
	ErrNoInputValidator              = errors.New("adapter has no input validator")
	ErrSchemaWithoutServiceNamespace = errors.New("validator uses a single schema but the target namespace does not come from an HTTP listener service namespace")
)

// ValidatorError wraps the configuration error of a validator.
type ValidatorError struct {
	Validator string
	Cause     error
}

func (e *ValidatorError) Error() string {
	return fmt.Sprintf("validator %q has a configuration error: %v", e.Validator, e.Cause)
}

func (e *ValidatorError) Unwrap() error {
	return e.Cause
}
