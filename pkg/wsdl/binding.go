package wsdl

import (
	"net/url"
	"strings"

	"github.com/beevik/etree"
	"github.com/getmockd/wsdlgen/pkg/pipeline"
	"github.com/getmockd/wsdlgen/pkg/properties"
	"github.com/getmockd/wsdlgen/pkg/soap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ESB JNDI settings.
const (
	jndiInitialContextFactory = "com.tibco.tibjms.naming.TibjmsInitialContextFactory"
	jndiObjectFactory         = "com.tibco.tibjms.custom.CustomObjectFactory"
	jndiProviderPort          = "37222"
)

// transportPrefixes returns the name prefixes of the HTTP and JMS bindings
// and ports. They are only needed to tell the two apart.
func (m *Model) transportPrefixes() (httpPrefix, jmsPrefix string) {
	if !m.HTTPActive || !m.JMSActive {
		return "", ""
	}
	title := cases.Title(language.English)
	return title.String(string(pipeline.KindHTTP)), title.String(string(pipeline.KindJMS))
}

func (m *Model) bindingName(prefix string) string {
	return prefix + bindingPrefix + NCName(m.Name)
}

func (m *Model) writeBindings(defs *etree.Element) {
	httpPrefix, jmsPrefix := m.transportPrefixes()
	if m.HTTPActive {
		b := m.startBinding(defs, httpPrefix)
		sb := b.CreateElement(m.soapTag("binding"))
		sb.CreateAttr("transport", soap.HTTPTransport)
		sb.CreateAttr("style", "document")
		for _, l := range m.listenersOf(pipeline.KindHTTP) {
			m.writeSOAPOperation(b, l)
		}
	}
	if m.JMSActive {
		b := m.startBinding(defs, jmsPrefix)
		sb := b.CreateElement(m.soapTag("binding"))
		sb.CreateAttr("style", "document")
		if !m.ESB {
			sb.CreateAttr("transport", soap.JMSTransport)
			return
		}
		sb.CreateAttr("transport", soap.ESBJMSNamespace)
		b.CreateElement(soap.JMSPrefix+":binding").CreateAttr("messageFormat", "Text")
		for _, l := range m.listenersOf(pipeline.KindJMS) {
			m.writeSOAPOperation(b, l)
		}
	}
}

func (m *Model) startBinding(defs *etree.Element, prefix string) *etree.Element {
	b := defs.CreateElement(wsdlTag("binding"))
	b.CreateAttr("name", m.bindingName(prefix))
	b.CreateAttr("type", m.tnsRef(portTypePrefix+m.Name))
	return b
}

// writeSOAPOperation writes the binding operation of listener l. A SOAP
// action that is still a ${...} placeholder is left out.
func (m *Model) writeSOAPOperation(b *etree.Element, l pipeline.Listener) {
	action := m.soapAction(l)
	op := b.CreateElement(wsdlTag("operation"))
	op.CreateAttr("name", operationPrefix+NCName(action))

	so := op.CreateElement(m.soapTag("operation"))
	so.CreateAttr("style", "document")
	if !strings.HasPrefix(action, "${") {
		so.CreateAttr("soapAction", action)
	}

	m.writeSOAPSide(op.CreateElement(wsdlTag("input")), &m.Input)
	if m.Output != nil {
		m.writeSOAPSide(op.CreateElement(wsdlTag("output")), m.Output)
	}
}

func (m *Model) writeSOAPSide(el *etree.Element, s *Side) {
	if h := s.Header; h != nil {
		msg := messagePrefix + s.Root
		if s.HeaderOptional {
			msg += "_" + h.Local
		}
		sh := el.CreateElement(m.soapTag("header"))
		sh.CreateAttr("part", partPrefix+h.Local)
		sh.CreateAttr("use", "literal")
		sh.CreateAttr("message", m.tnsRef(msg))
	}
	if s.Body != nil {
		body := el.CreateElement(m.soapTag("body"))
		body.CreateAttr("parts", partPrefix+s.Body.Local)
		body.CreateAttr("use", "literal")
	}
}

// writeService writes the service with one port per active transport, and
// one per JMS listener. Non-ESB JMS listeners add their connection factory
// after the ports.
func (m *Model) writeService(defs *etree.Element, defaultLocation string, warn func(string)) {
	if !m.HTTPActive && !m.JMSActive {
		return
	}
	httpPrefix, jmsPrefix := m.transportPrefixes()
	svc := defs.CreateElement(wsdlTag("service"))
	svc.CreateAttr("name", servicePrefix+NCName(m.Name))

	if m.HTTPActive {
		port := m.startPort(svc, httpPrefix, "")
		port.CreateElement(m.soapTag("address")).CreateAttr("location", m.location(m.httpListenerName(), defaultLocation))
	}

	jms := m.listenersOf(pipeline.KindJMS)
	for _, l := range jms {
		suffix := ""
		if len(jms) > 1 {
			suffix = "_" + NCName(l.Name)
		}
		port := m.startPort(svc, jmsPrefix, suffix)
		addr := port.CreateElement(m.soapTag("address"))
		if loc := m.location(l.Name, l.DestinationName); loc != "" {
			addr.CreateAttr("location", loc)
		}
		if m.ESB {
			m.writeESBJMS(port, l, warn)
		}
	}

	// service extensions follow the ports
	if !m.ESB {
		for _, l := range jms {
			svc.CreateElement(soap.JMSPrefix + ":jndiConnectionFactoryName").SetText(l.ConnectionFactory)
		}
	}
}

func (m *Model) startPort(svc *etree.Element, prefix, suffix string) *etree.Element {
	port := svc.CreateElement(wsdlTag("port"))
	port.CreateAttr("name", prefix+portPrefix+NCName(m.Name)+suffix)
	port.CreateAttr("binding", m.tnsRef(m.bindingName(prefix)))
	return port
}

// httpListenerName returns the name of the listener that made HTTP active,
// used for listener level location overrides.
func (m *Model) httpListenerName() string {
	for _, l := range m.Listeners {
		if l.Kind == pipeline.KindHTTP || (l.Kind == pipeline.KindJava && l.HTTPWSDL) {
			return l.Name
		}
	}
	return ""
}

// writeESBJMS writes the JNDI context, connection factory and target
// address of an ESB JMS port.
func (m *Model) writeESBJMS(port *etree.Element, l pipeline.Listener, warn func(string)) {
	stage, _ := properties.First(m.props, properties.Stage)

	qcf := l.ConnectionFactory
	if qcf == "" {
		warn("Attribute queueConnectionFactoryName empty for listener '" + l.Name + "'")
	}
	if stage == "" {
		warn("Property " + properties.Stage + " empty")
	}

	ctx := port.CreateElement(soap.JNDIPrefix + ":context")
	jndiProperty(ctx, "java.naming.factory.initial", jndiInitialContextFactory)
	jndiProperty(ctx, "java.naming.provider.url",
		"tibjmsnaming://host-for-"+url.QueryEscape(qcf)+"-on-"+url.QueryEscape(stage)+":"+jndiProviderPort)
	jndiProperty(ctx, "java.naming.factory.object", jndiObjectFactory)

	port.CreateElement(soap.JMSPrefix + ":connectionFactory").SetText("externalJndiName-for-" + qcf + "-on-" + stage)

	dest := strings.ToLower(l.DestinationType)
	if dest == "" {
		dest = strings.ToLower(pipeline.DestinationQueue)
	}
	queue := l.PhysicalDestinationShortName
	if queue == "" {
		queue = "queueName-for-" + l.DestinationName + "-on-" + stage
	}
	target := port.CreateElement(soap.JMSPrefix + ":targetAddress")
	target.CreateAttr("destination", dest)
	target.SetText(queue)
}

func jndiProperty(ctx *etree.Element, name, value string) {
	p := ctx.CreateElement(soap.JNDIPrefix + ":property")
	p.CreateAttr("name", name)
	p.CreateAttr("type", "java.lang.String")
	p.SetText(value)
}
