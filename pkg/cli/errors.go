package cli

import "errors"

// Common CLI errors
var (
	ErrAdapterRequired = errors.New("adapter name required")
	ErrInvalidWSDL     = errors.New("wsdl validation failed")
)
