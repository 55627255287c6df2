// Package esb implements the ESB SOAP naming convention: schema namespaces of
// the form
//
//	http://nn.nl/XSD/<domain>/<service>/[<context>/]<contextVersion>/<operation>/<operationVersion>
//
// determine the WSDL file name, target namespace and SOAP action of an
// adapter.
package esb

import (
	"strings"
)

// Default base URIs.
const (
	DefaultBaseURI = "http://nn.nl/XSD"
	WSDLBaseURI    = "http://nn.nl/WSDL"
)

// Segment counts of a valid namespace after splitting on "/".
const (
	segmentsWithContext    = 10
	segmentsWithoutContext = 9
)

// Convention validates and parses namespaces against a base URI.
type Convention struct {
	// BaseURI is the required namespace prefix. Empty means DefaultBaseURI.
	BaseURI string
	// WSDLBaseURI is the base of derived target namespaces. Empty means
	// WSDLBaseURI.
	WSDLBaseURI string
}

// Fields are the parts of an ESB namespace. ServiceContext is empty for
// namespaces without one.
type Fields struct {
	BusinessDomain        string
	ServiceName           string
	ServiceContext        string
	ServiceContextVersion string
	OperationName         string
	OperationVersion      string
}

// Naming is what a valid namespace resolves to.
type Naming struct {
	Fields
	FileName        string
	TargetNamespace string
	SOAPAction      string
}

func (c Convention) baseURI() string {
	if c.BaseURI == "" {
		return DefaultBaseURI
	}
	return c.BaseURI
}

func (c Convention) wsdlBaseURI() string {
	if c.WSDLBaseURI == "" {
		return WSDLBaseURI
	}
	return c.WSDLBaseURI
}

// IsValidNamespace reports whether ns follows the convention: it starts with
// the base URI and has nine or ten "/"-separated segments, all non-empty
// except the one between the two slashes of the scheme.
func (c Convention) IsValidNamespace(ns string) bool {
	if !strings.HasPrefix(ns, c.baseURI()) {
		return false
	}
	parts := segments(ns)
	if len(parts) != segmentsWithContext && len(parts) != segmentsWithoutContext {
		return false
	}
	for i, p := range parts {
		if (i == 1) != (p == "") {
			return false
		}
	}
	return true
}

// WithoutServiceContext reports whether ns has too few segments to carry a
// service context.
func WithoutServiceContext(ns string) bool {
	return len(segments(ns)) < segmentsWithContext
}

// Parse splits ns from the end into its fields. Fields that are not present
// are left empty; Parse never fails.
func Parse(ns string) Fields {
	rest := strings.TrimRight(ns, "/")
	next := func() string {
		i := strings.LastIndex(rest, "/")
		if i < 0 {
			s := rest
			rest = ""
			return s
		}
		s := rest[i+1:]
		rest = rest[:i]
		return s
	}

	var f Fields
	f.OperationVersion = next()
	f.OperationName = next()
	f.ServiceContextVersion = next()
	if !WithoutServiceContext(ns) {
		f.ServiceContext = next()
	}
	f.ServiceName = next()
	f.BusinessDomain = next()
	return f
}

// Missing returns the name of the first field that could not be
// determined, or "" when every required field is set.
func (f Fields) Missing(withContext bool) string {
	switch {
	case f.BusinessDomain == "":
		return "business domain"
	case f.ServiceName == "":
		return "service name"
	case withContext && f.ServiceContext == "":
		return "service context"
	case f.ServiceContextVersion == "":
		return "service context version"
	case f.OperationName == "":
		return "operation name"
	case f.OperationVersion == "":
		return "operation version"
	}
	return ""
}

func (f Fields) parts() []string {
	parts := []string{f.BusinessDomain, f.ServiceName}
	if f.ServiceContext != "" {
		parts = append(parts, f.ServiceContext)
	}
	return append(parts, f.ServiceContextVersion, f.OperationName, f.OperationVersion)
}

// Resolve derives the naming for the first namespace of schemaLocation.
// Problems are reported through warn; the boolean is false when no naming
// could be derived. A concrete WSDL is one with at least one SOAP transport.
func (c Convention) Resolve(schemaLocation string, concrete bool, warn func(string)) (Naming, bool) {
	ns := FirstNamespace(schemaLocation)

	var f Fields
	withContext := false
	if c.IsValidNamespace(ns) {
		f = Parse(ns)
		withContext = !WithoutServiceContext(ns)
	} else {
		warn("Namespace '" + ns + "' invalid according to ESB SOAP standard")
	}
	if missing := f.Missing(withContext); missing != "" {
		warn("Could not determine " + missing)
		return Naming{}, false
	}

	kind := "abstract"
	if concrete {
		kind = "concrete"
	}
	parts := f.parts()
	return Naming{
		Fields:          f,
		FileName:        strings.Join(append(parts, kind), "_"),
		TargetNamespace: c.wsdlBaseURI() + "/" + strings.Join(parts, "/"),
		SOAPAction:      f.OperationName + "_" + f.OperationVersion,
	}, true
}

// FirstNamespace returns the first namespace of a schemaLocation attribute
// value, a whitespace separated list of namespace and location pairs.
func FirstNamespace(schemaLocation string) string {
	fields := strings.Fields(schemaLocation)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// segments splits ns on "/" the way the convention counts segments:
// trailing empty segments do not count.
func segments(ns string) []string {
	parts := strings.Split(ns, "/")
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}
