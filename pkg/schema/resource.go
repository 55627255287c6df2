package schema

import (
	"fmt"
	"slices"
)

// RefKind is the kind of edge between two schema documents.
type RefKind string

// Edge kinds.
const (
	RefImport   RefKind = "import"
	RefInclude  RefKind = "include"
	RefRedefine RefKind = "redefine"
)

// Ref is an import, include or redefine found in a schema document. Location
// is already resolved against the referencing document.
type Ref struct {
	Kind      RefKind
	Namespace string
	Location  string
}

// Resource is one XML Schema document taking part in a generation.
type Resource struct {
	// Location identifies the document for the Loader.
	Location string
	// Namespace is the target namespace. Declared namespaces are kept for
	// documents without a targetNamespace of their own.
	Namespace string
	// RootTags are the names of the top-level element declarations.
	RootTags []string
	// AddNamespace marks a namespace-less document that gets Namespace
	// attached when it is written.
	AddNamespace bool
	// Included marks a namespace-less document that takes Namespace from
	// the schema including it. It is merged as is and bundled unmodified.
	Included bool
	// Target is the path of the document inside a bundle and the
	// schemaLocation used when schemas are included instead of inlined.
	Target string
	// Refs are the edges to other documents, in document order.
	Refs []Ref
	// Parent is the document that imported or included this one.
	Parent *Resource

	loaded bool
}

// Key identifies a resource within a closure. The namespace is part of the
// key because a namespace-less document can be included into several
// namespaces.
func (r *Resource) Key() string {
	return r.Location + "#" + r.Namespace
}

// HasRootTag reports whether the document declares a top-level element name.
func (r *Resource) HasRootTag(name string) bool {
	return slices.Contains(r.RootTags, name)
}

// Loaded reports whether the document metadata has been read.
func (r *Resource) Loaded() bool {
	return r.loaded
}

func (r *Resource) String() string {
	if r.Namespace == "" {
		return r.Location
	}
	return fmt.Sprintf("%s (%s)", r.Location, r.Namespace)
}

// clone returns a shallow copy that can be loaded without touching r.
func (r *Resource) clone() *Resource {
	cp := *r
	cp.RootTags = slices.Clone(r.RootTags)
	cp.Refs = slices.Clone(r.Refs)
	return &cp
}
