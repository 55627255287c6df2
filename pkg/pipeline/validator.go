package pipeline

import (
	"github.com/getmockd/wsdlgen/pkg/schema"
	"github.com/getmockd/wsdlgen/pkg/soap"
)

// Validator describes the messages an adapter accepts or returns.
type Validator interface {
	Name() string
	// Schema is the location of a single schema without imports, or "".
	Schema() string
	// Schemas is the declared schema set, used when Schema is empty.
	Schemas() []*schema.Resource
	// MessageRoot is the comma separated list of allowed body roots.
	MessageRoot() string
	// SOAPHeader is the comma separated list of allowed header roots; an
	// empty entry makes the header optional.
	SOAPHeader() string
	SOAPHeaderNamespace() string
	// SchemaLocation is a whitespace separated list of namespace and
	// location pairs.
	SchemaLocation() string
	Documentation() string
	// ConfigurationError is the error found when the validator was
	// configured, if any.
	ConfigurationError() error
	SOAPVersion() soap.Version
	// ESB reports whether the validator follows the ESB SOAP convention.
	ESB() bool
}

// StaticValidator is a Validator with fixed values.
type StaticValidator struct {
	ValidatorName   string
	SchemaPath      string
	SchemaResources []*schema.Resource
	Root            string
	Header          string
	HeaderNamespace string
	Location        string
	Doc             string
	ConfigErr       error
	Version         soap.Version
	FollowsESB      bool
}

var _ Validator = (*StaticValidator)(nil)

func (v *StaticValidator) Name() string                { return v.ValidatorName }
func (v *StaticValidator) Schema() string              { return v.SchemaPath }
func (v *StaticValidator) Schemas() []*schema.Resource { return v.SchemaResources }
func (v *StaticValidator) MessageRoot() string         { return v.Root }
func (v *StaticValidator) SOAPHeader() string          { return v.Header }
func (v *StaticValidator) SOAPHeaderNamespace() string { return v.HeaderNamespace }
func (v *StaticValidator) SchemaLocation() string      { return v.Location }
func (v *StaticValidator) Documentation() string       { return v.Doc }
func (v *StaticValidator) ConfigurationError() error   { return v.ConfigErr }
func (v *StaticValidator) ESB() bool                   { return v.FollowsESB }

// SOAPVersion defaults to SOAP 1.1.
func (v *StaticValidator) SOAPVersion() soap.Version {
	if v.Version == "" {
		return soap.SOAP11
	}
	return v.Version
}
