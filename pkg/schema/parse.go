package schema

import (
	"github.com/beevik/etree"
	"github.com/getmockd/wsdlgen/pkg/soap"
)

// documentInfo is what a schema document says about itself.
type documentInfo struct {
	targetNamespace string
	rootTags        []string
	refs            []Ref
}

// inspect reads the target namespace, top-level element names and the
// import/include/redefine edges of a schema document.
func inspect(doc *etree.Document, location string) (documentInfo, error) {
	root := doc.Root()
	if !isXSD(root, "schema") {
		return documentInfo{}, &LoadError{
			Location: location,
			Message:  "root element must be {" + soap.XSDNamespace + "}schema, got " + root.FullTag(),
		}
	}

	info := documentInfo{targetNamespace: root.SelectAttrValue("targetNamespace", "")}
	for _, child := range root.ChildElements() {
		if child.NamespaceURI() != soap.XSDNamespace {
			continue
		}
		switch child.Tag {
		case "element":
			if name := child.SelectAttrValue("name", ""); name != "" {
				info.rootTags = append(info.rootTags, name)
			}
		case "import":
			loc := child.SelectAttrValue("schemaLocation", "")
			if loc == "" {
				continue
			}
			info.refs = append(info.refs, Ref{
				Kind:      RefImport,
				Namespace: child.SelectAttrValue("namespace", ""),
				Location:  ResolveLocation(location, loc),
			})
		case "include", "redefine":
			loc := child.SelectAttrValue("schemaLocation", "")
			if loc == "" {
				continue
			}
			info.refs = append(info.refs, Ref{
				Kind:     RefKind(child.Tag),
				Location: ResolveLocation(location, loc),
			})
		}
	}
	return info, nil
}

func isXSD(el *etree.Element, local string) bool {
	return el != nil && el.Tag == local && el.NamespaceURI() == soap.XSDNamespace
}
