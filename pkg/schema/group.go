package schema

import (
	"strconv"

	"github.com/getmockd/wsdlgen/internal/warnings"
	"github.com/getmockd/wsdlgen/pkg/soap"
)

// PrefixPrefix is the stem of generated namespace prefixes.
const PrefixPrefix = "ns"

// Group is the set of documents sharing a target namespace.
type Group struct {
	Namespace string
	Resources []*Resource
}

// PrefixTable maps namespaces to generated prefixes and back. It is built
// once by GroupByNamespace and never changes afterwards.
type PrefixTable struct {
	byNamespace map[string]string
	byPrefix    map[string]string
	prefixes    []string
}

// Prefix returns the prefix allocated to ns.
func (t *PrefixTable) Prefix(ns string) (string, bool) {
	p, ok := t.byNamespace[ns]
	return p, ok
}

// Namespace returns the namespace bound to prefix.
func (t *PrefixTable) Namespace(prefix string) (string, bool) {
	ns, ok := t.byPrefix[prefix]
	return ns, ok
}

// Prefixes returns the allocated prefixes in allocation order.
func (t *PrefixTable) Prefixes() []string {
	out := make([]string, len(t.prefixes))
	copy(out, t.prefixes)
	return out
}

// Len returns the number of allocated prefixes.
func (t *PrefixTable) Len() int {
	return len(t.prefixes)
}

// Grouping is the result of GroupByNamespace.
type Grouping struct {
	Groups   []*Group
	Prefixes *PrefixTable
}

// PrefixOf returns the prefix of the namespace r belongs to.
func (g *Grouping) PrefixOf(r *Resource) (string, bool) {
	return g.Prefixes.Prefix(r.Namespace)
}

// Resources returns every grouped resource, group by group.
func (g *Grouping) Resources() []*Resource {
	var out []*Resource
	for _, grp := range g.Groups {
		out = append(out, grp.Resources...)
	}
	return out
}

// GroupByNamespace groups resources by target namespace in first-seen order
// and allocates ns1..nsN to the namespaces in that order. The XML namespace
// is bound to the xml prefix by definition and the empty namespace cannot be
// bound at all; neither gets a prefix. Resources with the same key are
// grouped once.
func GroupByNamespace(rs []*Resource, sink *warnings.Sink) *Grouping {
	g := &Grouping{Prefixes: &PrefixTable{
		byNamespace: make(map[string]string),
		byPrefix:    make(map[string]string),
	}}
	index := make(map[string]*Group)
	seen := make(map[string]bool)

	for _, r := range rs {
		if seen[r.Key()] {
			continue
		}
		seen[r.Key()] = true

		if r.Namespace == "" && !r.AddNamespace {
			sink.Addf("XSD '%s' doesn't have a targetNamespace and addNamespaceToSchema is false", r.Location)
		}

		grp, ok := index[r.Namespace]
		if !ok {
			grp = &Group{Namespace: r.Namespace}
			index[r.Namespace] = grp
			g.Groups = append(g.Groups, grp)
		}
		grp.Resources = append(grp.Resources, r)
	}

	t := g.Prefixes
	for _, grp := range g.Groups {
		if grp.Namespace == "" || grp.Namespace == soap.XMLNamespace {
			continue
		}
		prefix := PrefixPrefix + strconv.Itoa(len(t.prefixes)+1)
		t.byNamespace[grp.Namespace] = prefix
		t.byPrefix[prefix] = grp.Namespace
		t.prefixes = append(t.prefixes, prefix)
	}
	return g
}
