package config

import (
	_ "embed"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/getmockd/wsdlgen/pkg/pipeline"
	"github.com/getmockd/wsdlgen/pkg/soap"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed definition.schema.json
var definitionSchemaJSON string

const definitionSchemaURL = "definition.schema.json"

var definitionSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource(definitionSchemaURL, strings.NewReader(definitionSchemaJSON)); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}
	return compiler.Compile(definitionSchemaURL)
})

// SchemaValidationError represents a single definition file error.
type SchemaValidationError struct {
	Path    string // e.g. "adapters[0].inputValidator.soapVersion"
	Message string
}

func (e SchemaValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Message)
	}
	return e.Message
}

// SchemaValidationResult contains all validation errors for a File.
type SchemaValidationResult struct {
	Errors []SchemaValidationError
}

// IsValid returns true if there are no validation errors.
func (r *SchemaValidationResult) IsValid() bool {
	return len(r.Errors) == 0
}

// Error returns a combined error message.
func (r *SchemaValidationResult) Error() string {
	if r.IsValid() {
		return ""
	}
	msgs := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "\n")
}

// AddError adds a validation error.
func (r *SchemaValidationResult) AddError(path, message string) {
	r.Errors = append(r.Errors, SchemaValidationError{Path: path, Message: message})
}

// ValidateDocument checks a decoded definition document against the
// embedded JSON Schema. doc must hold the types encoding/json produces.
func ValidateDocument(doc any) *SchemaValidationResult {
	result := &SchemaValidationResult{}

	s, err := definitionSchema()
	if err != nil {
		result.AddError("", fmt.Sprintf("schema compilation error: %v", err))
		return result
	}
	if err := s.Validate(doc); err != nil {
		if verr, ok := err.(*jsonschema.ValidationError); ok {
			parseSchemaErrors(verr, result)
		} else {
			result.AddError("", err.Error())
		}
	}
	return result
}

func parseSchemaErrors(err *jsonschema.ValidationError, result *SchemaValidationResult) {
	if len(err.Causes) == 0 {
		result.AddError(pointerPath(err.InstanceLocation), err.Message)
		return
	}
	for _, cause := range err.Causes {
		parseSchemaErrors(cause, result)
	}
}

// pointerPath turns a JSON pointer into the path notation of
// SchemaValidationError: /adapters/0/name becomes adapters[0].name.
func pointerPath(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return ""
	}
	var b strings.Builder
	for _, seg := range strings.Split(ptr, "/") {
		seg = strings.ReplaceAll(strings.ReplaceAll(seg, "~1", "/"), "~0", "~")
		if _, err := strconv.Atoi(seg); err == nil {
			b.WriteString("[" + seg + "]")
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(seg)
	}
	return b.String()
}

// ValidateFile checks a decoded File for problems the JSON Schema cannot
// express.
func ValidateFile(f *File) *SchemaValidationResult {
	result := &SchemaValidationResult{}

	if f.Version == "" {
		result.AddError("version", "required")
	} else if f.Version != "1" {
		result.AddError("version", fmt.Sprintf("unsupported version %q, expected \"1\"", f.Version))
	}

	if len(f.Adapters) == 0 {
		result.AddError("adapters", "at least one adapter is required")
	}
	names := make(map[string]bool)
	for i := range f.Adapters {
		validateAdapter(&f.Adapters[i], fmt.Sprintf("adapters[%d]", i), names, result)
	}
	return result
}

func validateAdapter(a *AdapterDef, path string, names map[string]bool, result *SchemaValidationResult) {
	if a.Name == "" {
		result.AddError(path+".name", "required")
	} else {
		if names[a.Name] {
			result.AddError(path+".name", fmt.Sprintf("duplicate adapter name %q", a.Name))
		}
		names[a.Name] = true
	}

	if a.InputValidator == nil {
		result.AddError(path+".inputValidator", "required")
	} else {
		validateValidator(a.InputValidator, path+".inputValidator", result)
	}
	if a.OutputValidator != nil {
		validateValidator(a.OutputValidator, path+".outputValidator", result)
	}

	listenerNames := make(map[string]bool)
	for i, l := range a.Listeners {
		validateListener(l, fmt.Sprintf("%s.listeners[%d]", path, i), listenerNames, result)
	}
}

func validateValidator(v *ValidatorDef, path string, result *SchemaValidationResult) {
	if v.Schema == "" && strings.TrimSpace(v.SchemaLocation) == "" && len(v.Schemas) == 0 {
		result.AddError(path, "one of schema, schemaLocation or schemas must be specified")
	}
	if n := len(strings.Fields(v.SchemaLocation)); n%2 != 0 {
		result.AddError(path+".schemaLocation", fmt.Sprintf("must list namespace and location pairs, found %d entries", n))
	}
	if _, err := soap.ParseVersion(v.SOAPVersion); err != nil {
		result.AddError(path+".soapVersion", err.Error())
	}
}

func validateListener(l ListenerDef, path string, names map[string]bool, result *SchemaValidationResult) {
	if l.Type == "" {
		result.AddError(path+".type", "required")
		return
	}

	name := l.EffectiveName()
	if names[name] {
		result.AddError(path+".name", fmt.Sprintf("duplicate listener name %q", name))
	}
	names[name] = true

	switch strings.ToUpper(l.DestinationType) {
	case "", pipeline.DestinationQueue, pipeline.DestinationTopic:
	default:
		result.AddError(path+".destinationType", fmt.Sprintf("invalid destination type %q, must be \"QUEUE\" or \"TOPIC\"", l.DestinationType))
	}
	if l.HTTPWSDL && pipeline.ParseKind(l.Type) != pipeline.KindJava {
		result.AddError(path+".httpWsdl", "only valid for java listeners")
	}
}
