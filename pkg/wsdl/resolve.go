package wsdl

import (
	"strings"

	"github.com/getmockd/wsdlgen/pkg/schema"
)

// QName is a qualified element name with the prefix it is written with.
type QName struct {
	Namespace string
	Prefix    string
	Local     string
}

func (q QName) String() string {
	return q.Prefix + ":" + q.Local
}

// resolveElement finds the schema declaring the first root of spec and
// returns its qualified name. With a namespace hint only schemas in that
// namespace match. Schemas whose namespace has no prefix cannot be
// referenced and are skipped.
func resolveElement(rs []*schema.Resource, prefixes *schema.PrefixTable, spec, nsHint string, warn func(string)) *QName {
	if strings.TrimSpace(spec) == "" {
		return nil
	}
	root := firstRoot(spec)
	for _, r := range rs {
		if !r.HasRootTag(root) {
			continue
		}
		if nsHint != "" && r.Namespace != nsHint {
			continue
		}
		prefix, ok := prefixes.Prefix(r.Namespace)
		if !ok {
			continue
		}
		return &QName{Namespace: r.Namespace, Prefix: prefix, Local: root}
	}
	if nsHint == "" {
		warn("Root element '" + root + "' not found in XSD's")
	} else {
		warn("Root element '" + root + "' with namespace '" + nsHint + "' not found in XSD's")
	}
	return nil
}

// headerOptional reports whether a header spec lists an empty alternative,
// as in "Header," or ",Header".
func headerOptional(spec string) bool {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return false
	}
	for _, alt := range strings.Split(spec, ",") {
		if strings.TrimSpace(alt) == "" {
			return true
		}
	}
	return false
}
