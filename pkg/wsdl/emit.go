package wsdl

import (
	"github.com/beevik/etree"
	"github.com/getmockd/wsdlgen/pkg/schema"
	"github.com/getmockd/wsdlgen/pkg/soap"
)

const (
	messagePrefix   = "Message_"
	partPrefix      = "Part_"
	portTypePrefix  = "PortType_"
	operationPrefix = "Operation_"
	bindingPrefix   = "Binding_"
	servicePrefix   = "Service_"
	portPrefix      = "Port_"
)

func wsdlTag(local string) string {
	return soap.WSDLPrefix + ":" + local
}

// document builds the WSDL. Every prefix used anywhere in it is declared on
// the root element before any child is added.
func (g *Generator) document(defaultLocation string) (*etree.Document, error) {
	m := g.model

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	defs := doc.CreateElement(wsdlTag("definitions"))
	m.declareNamespaces(defs)
	defs.CreateAttr("targetNamespace", m.TargetNamespace)

	if m.Documentation != "" {
		defs.CreateElement(wsdlTag("documentation")).SetText(m.Documentation)
	}
	if err := g.writeTypes(defs); err != nil {
		return nil, err
	}
	m.writeMessages(defs)
	m.writePortType(defs)
	m.writeBindings(defs)
	m.writeService(defs, defaultLocation, g.sink.Add)

	g.sink.WriteComments(doc)
	if g.opts.Indent {
		doc.Indent(2)
	}
	return doc, nil
}

func (m *Model) declareNamespaces(defs *etree.Element) {
	defs.CreateAttr("xmlns:"+soap.WSDLPrefix, soap.WSDLNamespace)
	defs.CreateAttr("xmlns:"+soap.XSDPrefix, soap.XSDNamespace)
	defs.CreateAttr("xmlns:"+m.SOAPVersion.BindingPrefix(), m.SOAPVersion.BindingNamespace())
	if m.JMSActive {
		if m.ESB {
			defs.CreateAttr("xmlns:"+soap.JMSPrefix, soap.ESBJMSNamespace)
			defs.CreateAttr("xmlns:"+soap.JNDIPrefix, soap.ESBJNDINamespace)
		} else {
			defs.CreateAttr("xmlns:"+soap.JMSPrefix, soap.JMSTransport)
		}
	}
	defs.CreateAttr("xmlns:"+m.TargetNamespacePrefix, m.TargetNamespace)

	prefixes := m.Grouping.Prefixes
	for _, p := range prefixes.Prefixes() {
		ns, _ := prefixes.Namespace(p)
		defs.CreateAttr("xmlns:"+p, ns)
	}
}

func (g *Generator) writeTypes(defs *etree.Element) error {
	types := defs.CreateElement(wsdlTag("types"))
	if g.opts.UseIncludes {
		schema.WriteIncludes(types, g.model.RootGroups)
		return nil
	}
	return schema.WriteMerged(types, g.model.Grouping.Groups, g.collector, g.sink)
}

// writeMessages writes one message per side holding its header and body.
// An optional header cannot be expressed as an optional part, so it gets a
// message of its own next to the body-only one.
func (m *Model) writeMessages(defs *etree.Element) {
	for _, s := range m.sides() {
		var parts []*QName
		if s.Header != nil && !s.HeaderOptional {
			parts = append(parts, s.Header)
		}
		if s.Body != nil {
			parts = append(parts, s.Body)
		}
		writeMessage(defs, s.Root, parts)

		if s.HeaderOptional && s.Header != nil {
			writeMessage(defs, s.Root+"_"+s.Header.Local, []*QName{s.Header})
		}
	}
}

func writeMessage(defs *etree.Element, root string, parts []*QName) {
	if len(parts) == 0 {
		return
	}
	msg := defs.CreateElement(wsdlTag("message"))
	msg.CreateAttr("name", messagePrefix+root)
	for _, p := range parts {
		part := msg.CreateElement(wsdlTag("part"))
		part.CreateAttr("name", partPrefix+p.Local)
		part.CreateAttr("element", p.String())
	}
}

func (m *Model) writePortType(defs *etree.Element) {
	pt := defs.CreateElement(wsdlTag("portType"))
	pt.CreateAttr("name", portTypePrefix+m.Name)
	for _, l := range m.soapListeners() {
		op := pt.CreateElement(wsdlTag("operation"))
		op.CreateAttr("name", operationPrefix+NCName(m.soapAction(l)))
		if m.Input.Root != "" {
			op.CreateElement(wsdlTag("input")).CreateAttr("message", m.tnsRef(messagePrefix+m.Input.Root))
		}
		if m.Output != nil && m.Output.Root != "" {
			op.CreateElement(wsdlTag("output")).CreateAttr("message", m.tnsRef(messagePrefix+m.Output.Root))
		}
	}
}

func (m *Model) tnsRef(local string) string {
	return m.TargetNamespacePrefix + ":" + local
}

func (m *Model) soapTag(local string) string {
	return m.SOAPVersion.BindingPrefix() + ":" + local
}
