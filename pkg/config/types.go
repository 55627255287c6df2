package config

// File is an adapter definition file.
type File struct {
	// Version is the file format version. Only "1" is supported.
	Version string `json:"version" yaml:"version"`
	// Properties is the path of a .properties or YAML file with WSDL
	// overrides, relative to the file.
	Properties string       `json:"properties,omitempty" yaml:"properties,omitempty"`
	Adapters   []AdapterDef `json:"adapters" yaml:"adapters"`

	// Dir is the directory the file was loaded from.
	Dir string `json:"-" yaml:"-"`
}

// AdapterDef defines an adapter.
type AdapterDef struct {
	Name            string        `json:"name" yaml:"name"`
	InputValidator  *ValidatorDef `json:"inputValidator" yaml:"inputValidator"`
	OutputValidator *ValidatorDef `json:"outputValidator,omitempty" yaml:"outputValidator,omitempty"`
	Listeners       []ListenerDef `json:"listeners,omitempty" yaml:"listeners,omitempty"`
}

// ValidatorDef defines the messages an adapter accepts or returns.
type ValidatorDef struct {
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
	// Schema is a single schema without imports.
	Schema string `json:"schema,omitempty" yaml:"schema,omitempty"`
	// SchemaLocation lists namespace and location pairs.
	SchemaLocation string `json:"schemaLocation,omitempty" yaml:"schemaLocation,omitempty"`
	// Schemas are glob patterns; ** matches any number of directories.
	Schemas []string `json:"schemas,omitempty" yaml:"schemas,omitempty"`
	// AddNamespaceToSchema attaches the declared namespace to schemas that
	// have none.
	AddNamespaceToSchema bool   `json:"addNamespaceToSchema,omitempty" yaml:"addNamespaceToSchema,omitempty"`
	Root                 string `json:"root,omitempty" yaml:"root,omitempty"`
	SOAPHeader           string `json:"soapHeader,omitempty" yaml:"soapHeader,omitempty"`
	SOAPHeaderNamespace  string `json:"soapHeaderNamespace,omitempty" yaml:"soapHeaderNamespace,omitempty"`
	SOAPVersion          string `json:"soapVersion,omitempty" yaml:"soapVersion,omitempty"`
	ESB                  bool   `json:"esb,omitempty" yaml:"esb,omitempty"`
	Documentation        string `json:"documentation,omitempty" yaml:"documentation,omitempty"`
}

// ListenerDef defines a listener. Name defaults to Type.
type ListenerDef struct {
	Name                string `json:"name,omitempty" yaml:"name,omitempty"`
	Type                string `json:"type" yaml:"type"`
	ServiceNamespaceURI string `json:"serviceNamespaceURI,omitempty" yaml:"serviceNamespaceURI,omitempty"`
	HTTPWSDL            bool   `json:"httpWsdl,omitempty" yaml:"httpWsdl,omitempty"`

	ConnectionFactory            string `json:"connectionFactory,omitempty" yaml:"connectionFactory,omitempty"`
	Destination                  string `json:"destination,omitempty" yaml:"destination,omitempty"`
	DestinationType              string `json:"destinationType,omitempty" yaml:"destinationType,omitempty"`
	PhysicalDestinationShortName string `json:"physicalDestinationShortName,omitempty" yaml:"physicalDestinationShortName,omitempty"`
}

// EffectiveName returns Name, or Type when no name is set.
func (l ListenerDef) EffectiveName() string {
	if l.Name != "" {
		return l.Name
	}
	return l.Type
}
