// Package schema loads XML Schema documents, resolves the transitive closure
// of their import and include edges, groups them by target namespace with a
// stable prefix allocation, and writes them back out for a WSDL types section
// or a bundle.
//
// # Loading
//
// Schema documents are read through a Loader. FSLoader serves them from any
// fs.FS, so a directory (os.DirFS) and an in-memory fstest.MapFS behave the
// same:
//
//	loader := schema.NewFSLoader(os.DirFS("config"))
//	c := &schema.Collector{Loader: loader, Cache: schema.NewCache()}
//	closure, err := c.Collect([]*schema.Resource{{Location: "xsd/Order.xsd"}})
//
// Parsed documents are kept in a Cache owned by the caller. A Cache may be
// shared between generations; everything else is per call.
//
// # Grouping
//
// GroupByNamespace keeps namespaces in first-seen order and hands out the
// prefixes ns1, ns2, ... in that order, so generating twice from the same input
// yields the same document.
package schema
