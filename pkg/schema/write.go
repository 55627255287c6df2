package schema

import (
	"io"

	"github.com/beevik/etree"
	"github.com/getmockd/wsdlgen/internal/warnings"
	"github.com/getmockd/wsdlgen/pkg/soap"
)

// Documents gives read access to parsed schema documents.
type Documents interface {
	Document(location string) (*etree.Document, error)
}

// WriteIncludes appends one xsd:schema per group to parent, each including
// its documents by Target. The xsd prefix must be declared on an ancestor of
// parent. The result is small but needs the documents served alongside it.
func WriteIncludes(parent *etree.Element, groups []*Group) {
	for _, grp := range groups {
		el := parent.CreateElement(soap.XSDPrefix + ":schema")
		if grp.Namespace != "" {
			el.CreateAttr("targetNamespace", grp.Namespace)
		}
		for _, r := range grp.Resources {
			inc := el.CreateElement(soap.XSDPrefix + ":include")
			inc.CreateAttr("schemaLocation", r.Target)
		}
	}
}

// WriteMerged appends one self-contained schema per group to parent. The
// documents of a group are merged into a single schema element: their root
// attributes and namespace declarations are combined, imports are kept once
// per namespace without schemaLocation, and includes are dropped since every
// included document is inlined too.
func WriteMerged(parent *etree.Element, groups []*Group, docs Documents, sink *warnings.Sink) error {
	for _, grp := range groups {
		merged, err := mergeGroup(grp, docs, sink)
		if err != nil {
			return err
		}
		parent.AddChild(merged)
	}
	return nil
}

func mergeGroup(grp *Group, docs Documents, sink *warnings.Sink) (*etree.Element, error) {
	var (
		merged  *etree.Element
		imports []*etree.Element
		body    []*etree.Element
		attach  bool
	)
	importSeen := make(map[string]bool)

	for _, r := range grp.Resources {
		doc, err := docs.Document(r.Location)
		if err != nil {
			return nil, err
		}
		root := doc.Root()
		if merged == nil {
			merged = etree.NewElement(root.FullTag())
		}
		redeclare := mergeRootAttrs(merged, root, grp.Namespace, sink)

		for _, child := range root.ChildElements() {
			if child.NamespaceURI() == soap.XSDNamespace {
				switch child.Tag {
				case "include":
					continue
				case "import":
					ns := child.SelectAttrValue("namespace", "")
					if importSeen[ns] {
						continue
					}
					importSeen[ns] = true
					imp := child.Copy()
					imp.RemoveAttr("schemaLocation")
					setAttrs(imp, redeclare)
					imports = append(imports, imp)
					continue
				}
			}
			cp := child.Copy()
			setAttrs(cp, redeclare)
			body = append(body, cp)
		}
		if r.AddNamespace && r.Namespace != "" && r.Namespace != soap.XMLNamespace {
			attach = true
		}
	}
	if merged == nil {
		merged = etree.NewElement(soap.XSDPrefix + ":schema")
	}
	switch {
	case attach:
		attachNamespace(merged, grp.Namespace, sink)
	case grp.Namespace != "" && merged.SelectAttr("targetNamespace") == nil:
		// only included documents; the form defaults stay as written
		merged.CreateAttr("targetNamespace", grp.Namespace)
	}
	for _, el := range imports {
		merged.AddChild(el)
	}
	for _, el := range body {
		merged.AddChild(el)
	}
	return merged, nil
}

// mergeRootAttrs copies the attributes of root onto merged. Namespace
// declarations that clash with one already on merged are returned so they
// can be declared again on the copied children instead.
func mergeRootAttrs(merged, root *etree.Element, ns string, sink *warnings.Sink) []etree.Attr {
	var clashes []etree.Attr
	for _, a := range root.Attr {
		key := a.FullKey()
		existing := merged.SelectAttr(key)
		switch {
		case existing == nil:
			merged.CreateAttr(key, a.Value)
		case existing.Value == a.Value:
		case isNamespaceDecl(a):
			clashes = append(clashes, a)
		default:
			sink.Addf("Attribute '%s' differs between XSDs merged for namespace '%s', keeping '%s'", key, ns, existing.Value)
		}
	}
	return clashes
}

func attachNamespace(el *etree.Element, ns string, sink *warnings.Sink) {
	el.CreateAttr("targetNamespace", ns)
	el.CreateAttr("elementFormDefault", "qualified")
	if def := el.SelectAttr("xmlns"); def != nil && def.Value != ns {
		sink.Addf("Default namespace '%s' of XSD for namespace '%s' kept, namespace not attached as default", def.Value, ns)
		return
	}
	el.CreateAttr("xmlns", ns)
}

func setAttrs(el *etree.Element, attrs []etree.Attr) {
	for _, a := range attrs {
		el.CreateAttr(a.FullKey(), a.Value)
	}
}

func isNamespaceDecl(a etree.Attr) bool {
	return a.Space == "xmlns" || (a.Space == "" && a.Key == "xmlns")
}

// WriteStandalone writes the document of r as a standalone schema, with its
// namespace attached when r asks for it. Included documents are written as
// they are, so every includer can still pull them into its own namespace.
func WriteStandalone(w io.Writer, docs Documents, r *Resource) error {
	doc, err := docs.Document(r.Location)
	if err != nil {
		return err
	}
	root := doc.Root().Copy()
	if r.AddNamespace && r.Namespace != "" && r.Namespace != soap.XMLNamespace {
		attachNamespace(root, r.Namespace, warnings.New())
	}

	out := etree.NewDocument()
	out.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	out.SetRoot(root)
	_, err = out.WriteTo(w)
	return err
}
