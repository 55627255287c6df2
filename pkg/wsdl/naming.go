package wsdl

import (
	"strings"
	"unicode"

	"github.com/getmockd/wsdlgen/pkg/esb"
	"github.com/getmockd/wsdlgen/pkg/pipeline"
	"github.com/getmockd/wsdlgen/pkg/properties"
)

// NCName turns s into an XML non-colonized name: characters that may not
// appear in a name become '_', and so does a first character that may not
// start one.
func NCName(s string) string {
	if s == "" {
		return "_"
	}
	var b strings.Builder
	b.Grow(len(s))
	for i, r := range s {
		switch {
		case isNameStart(r):
			b.WriteRune(r)
		case i > 0 && isNameChar(r):
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

func isNameStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isNameChar(r rune) bool {
	return r == '-' || r == '.' || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Mc, r)
}

// ValidURI replaces the spaces in uri with underscores.
func ValidURI(uri string) string {
	return strings.ReplaceAll(uri, " ", "_")
}

// naming is the outcome of target namespace and file name resolution.
type naming struct {
	fileName        string
	targetNamespace string
	esb             bool
	esbAction       string
	// serviceNamespace is the HTTP listener namespace, set only when it
	// decided the target namespace.
	serviceNamespace string
}

// resolveNaming picks the target namespace in order: configured override,
// ESB convention, HTTP listener service namespace, first namespace of the
// input validator's schemaLocation, placeholder.
func resolveNaming(a *pipeline.Adapter, props properties.Provider, conv esb.Convention, warn func(string)) naming {
	n := naming{fileName: a.Name}
	placeholder := properties.Placeholder("wsdl." + a.Name + ".targetNamespace")

	if tns, ok := properties.First(props, properties.TargetNamespaceKeys(a.Name)...); ok {
		n.targetNamespace = ValidURI(tns)
		return n
	}

	in := a.InputValidator
	if in.ESB() {
		n.esb = true
		res, ok := conv.Resolve(in.SchemaLocation(), a.Concrete(), warn)
		if !ok {
			n.targetNamespace = ValidURI(placeholder)
			return n
		}
		n.fileName = res.FileName
		n.targetNamespace = ValidURI(res.TargetNamespace)
		n.esbAction = res.SOAPAction

		outRoot := ""
		if a.OutputValidator != nil {
			outRoot = firstRoot(a.OutputValidator.MessageRoot())
		}
		esb.CheckParadigms(firstRoot(in.MessageRoot()), outRoot, a.OutputValidator != nil, warn)
		return n
	}

	tns := a.ServiceNamespace()
	n.serviceNamespace = tns
	if tns == "" {
		tns = esb.FirstNamespace(in.SchemaLocation())
	}
	if tns == "" {
		n.targetNamespace = ValidURI(placeholder)
		return n
	}
	if strings.HasSuffix(tns, "/") {
		tns += "wsdl/"
	} else {
		tns += "/wsdl/"
	}
	n.targetNamespace = ValidURI(tns)
	return n
}

// soapAction returns the SOAP action of listener l: configured override,
// then the ESB action, then a placeholder.
func (m *Model) soapAction(l pipeline.Listener) string {
	if sa, ok := properties.First(m.props, properties.SOAPActionKeys(m.Name, l.Name)...); ok {
		return sa
	}
	if m.esbAction != "" {
		return m.esbAction
	}
	return properties.Placeholder("wsdl." + m.Name + "." + l.Name + ".soapAction")
}

// location returns the configured address for listener, or def.
func (m *Model) location(listener, def string) string {
	if loc, ok := properties.First(m.props, properties.LocationKeys(m.Name, listener)...); ok {
		return loc
	}
	return def
}

// firstRoot returns the first entry of a comma separated root list.
func firstRoot(spec string) string {
	first, _, _ := strings.Cut(strings.TrimSpace(spec), ",")
	return strings.TrimSpace(first)
}
