package wsdl

import (
	"testing"

	"github.com/getmockd/wsdlgen/pkg/pipeline"
	"github.com/getmockd/wsdlgen/pkg/schema"
	"github.com/getmockd/wsdlgen/pkg/soap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func esbAdapter() *pipeline.Adapter {
	return &pipeline.Adapter{
		Name: "SubmitOrder",
		InputValidator: &pipeline.StaticValidator{
			ValidatorName:   "EsbIn",
			SchemaResources: []*schema.Resource{{Location: "xsd/esb.xsd"}},
			Root:            "Submit_Request",
			Location:        esbNS + " xsd/esb.xsd",
			FollowsESB:      true,
		},
		OutputValidator: &pipeline.StaticValidator{
			ValidatorName:   "EsbOut",
			SchemaResources: []*schema.Resource{{Location: "xsd/esb.xsd"}},
			Root:            "Submit_Response",
			FollowsESB:      true,
		},
		Listeners: []pipeline.Listener{{
			Name:              "jms",
			Kind:              pipeline.KindJMS,
			ConnectionFactory: "qcf/orders",
			DestinationName:   "ESB.Customer.Order",
			DestinationType:   pipeline.DestinationQueue,
		}},
	}
}

func TestGenerate_BothTransports(t *testing.T) {
	t.Parallel()

	a := orderAdapter()
	a.Listeners = append(a.Listeners,
		pipeline.Listener{Name: "jms", Kind: pipeline.KindJMS, ConnectionFactory: "jms/qcf", DestinationName: "orders.in"},
		pipeline.Listener{Name: "batch", Kind: pipeline.KindOther},
	)
	opts := withProps(t, testOptions(), map[string]string{
		"wsdl.OrderService.jms.location": "jms:queue:orders.in",
	})
	_, root := generate(t, newGenerator(t, a, opts))

	assert.Equal(t, soap.JMSTransport, root.SelectAttrValue("xmlns:jms", ""))
	assert.Nil(t, root.SelectAttr("xmlns:jndi"))

	ops := root.FindElements("wsdl:portType/wsdl:operation")
	assert.Equal(t, []string{
		"Operation___wsdl.OrderService.http.soapAction_",
		"Operation___wsdl.OrderService.jms.soapAction_",
	}, attrs(ops, "name"))

	bindings := root.SelectElements("wsdl:binding")
	require.Len(t, bindings, 2)
	assert.Equal(t, []string{"HttpBinding_OrderService", "JmsBinding_OrderService"}, attrs(bindings, "name"))
	jmsBinding := bindings[1].SelectElement("soap:binding")
	assert.Equal(t, soap.JMSTransport, jmsBinding.SelectAttrValue("transport", ""))
	assert.Empty(t, bindings[1].SelectElements("wsdl:operation"))

	svc := root.SelectElement("wsdl:service")
	require.NotNil(t, svc)
	assert.Equal(t, "jms/qcf", svc.SelectElement("jms:jndiConnectionFactoryName").Text())
	ports := svc.SelectElements("wsdl:port")
	require.Len(t, ports, 2)
	assert.Equal(t, []string{"HttpPort_OrderService", "JmsPort_OrderService"}, attrs(ports, "name"))
	assert.Equal(t, []string{"tns:HttpBinding_OrderService", "tns:JmsBinding_OrderService"}, attrs(ports, "binding"))
	assert.Equal(t, location, ports[0].SelectElement("soap:address").SelectAttrValue("location", ""))
	assert.Equal(t, "jms:queue:orders.in", ports[1].SelectElement("soap:address").SelectAttrValue("location", ""))

	children := svc.ChildElements()
	require.Len(t, children, 3)
	assert.Equal(t, []string{"wsdl:port", "wsdl:port", "jms:jndiConnectionFactoryName"}, []string{
		children[0].FullTag(), children[1].FullTag(), children[2].FullTag(),
	}, "extension elements follow the ports")
}

func TestGenerate_JavaListenerWithHTTPWSDL(t *testing.T) {
	t.Parallel()

	a := orderAdapter()
	a.Listeners = []pipeline.Listener{{Name: "java", Kind: pipeline.KindJava, HTTPWSDL: true}}
	_, root := generate(t, newGenerator(t, a, testOptions()))

	assert.Empty(t, root.FindElements("wsdl:portType/wsdl:operation"))
	binding := root.SelectElement("wsdl:binding")
	require.NotNil(t, binding)
	assert.Equal(t, "Binding_OrderService", binding.SelectAttrValue("name", ""))
	assert.Equal(t, location, root.FindElement("wsdl:service/wsdl:port/soap:address").SelectAttrValue("location", ""))
}

func TestGenerate_NoTransports(t *testing.T) {
	t.Parallel()

	a := orderAdapter()
	a.Listeners = nil
	_, root := generate(t, newGenerator(t, a, testOptions()))

	assert.NotNil(t, root.SelectElement("wsdl:portType"))
	assert.Nil(t, root.SelectElement("wsdl:binding"))
	assert.Nil(t, root.SelectElement("wsdl:service"))
}

func TestGenerate_MultipleJMSListeners(t *testing.T) {
	t.Parallel()

	a := orderAdapter()
	a.Listeners = []pipeline.Listener{
		{Name: "in-1", Kind: pipeline.KindJMS, DestinationName: "q1"},
		{Name: "in-2", Kind: pipeline.KindJMS, DestinationName: "q2"},
	}
	_, root := generate(t, newGenerator(t, a, testOptions()))

	ports := root.FindElements("wsdl:service/wsdl:port")
	assert.Equal(t, []string{"Port_OrderService_in-1", "Port_OrderService_in-2"}, attrs(ports, "name"))
	assert.Len(t, root.FindElements("wsdl:service/jms:jndiConnectionFactoryName"), 2)
}

func TestGenerate_ESB(t *testing.T) {
	t.Parallel()

	opts := withProps(t, testOptions(), map[string]string{"dtap.stage": "TST"})
	g := newGenerator(t, esbAdapter(), opts)
	_, root := generate(t, g)

	assert.Equal(t, "Customer_Order_1_Submit_2_concrete", g.FileName())
	assert.Equal(t, "http://nn.nl/WSDL/Customer/Order/1/Submit/2", g.TargetNamespace())
	assert.True(t, g.Model().ESB)
	assert.Equal(t, soap.ESBJMSNamespace, root.SelectAttrValue("xmlns:jms", ""))
	assert.Equal(t, soap.ESBJNDINamespace, root.SelectAttrValue("xmlns:jndi", ""))

	op := root.FindElement("wsdl:portType/wsdl:operation")
	require.NotNil(t, op)
	assert.Equal(t, "Operation_Submit_2", op.SelectAttrValue("name", ""))

	binding := root.SelectElement("wsdl:binding")
	require.NotNil(t, binding)
	assert.Equal(t, "Binding_SubmitOrder", binding.SelectAttrValue("name", ""))
	assert.Equal(t, soap.ESBJMSNamespace, binding.SelectElement("soap:binding").SelectAttrValue("transport", ""))
	assert.Equal(t, "Text", binding.SelectElement("jms:binding").SelectAttrValue("messageFormat", ""))
	soapOp := binding.FindElement("wsdl:operation/soap:operation")
	require.NotNil(t, soapOp)
	assert.Equal(t, "Submit_2", soapOp.SelectAttrValue("soapAction", ""))

	svc := root.SelectElement("wsdl:service")
	require.NotNil(t, svc)
	assert.Nil(t, svc.SelectElement("jms:jndiConnectionFactoryName"))
	port := svc.SelectElement("wsdl:port")
	require.NotNil(t, port)
	assert.Equal(t, "ESB.Customer.Order", port.SelectElement("soap:address").SelectAttrValue("location", ""))

	props := port.FindElements("jndi:context/jndi:property")
	require.Len(t, props, 3)
	assert.Equal(t, []string{"java.naming.factory.initial", "java.naming.provider.url", "java.naming.factory.object"}, attrs(props, "name"))
	assert.Equal(t, "tibjmsnaming://host-for-qcf%2Forders-on-TST:37222", props[1].Text())
	assert.Equal(t, "java.lang.String", props[1].SelectAttrValue("type", ""))
	assert.Equal(t, "externalJndiName-for-qcf/orders-on-TST", port.SelectElement("jms:connectionFactory").Text())
	target := port.SelectElement("jms:targetAddress")
	require.NotNil(t, target)
	assert.Equal(t, "queue", target.SelectAttrValue("destination", ""))
	assert.Equal(t, "queueName-for-ESB.Customer.Order-on-TST", target.Text())

	assert.Empty(t, g.Warnings())
}

func TestGenerate_ESBWarnings(t *testing.T) {
	t.Parallel()

	a := esbAdapter()
	a.Listeners[0].ConnectionFactory = ""
	a.Listeners[0].PhysicalDestinationShortName = "P2P.Customer.Order"
	a.Listeners[0].DestinationType = pipeline.DestinationTopic
	a.OutputValidator.(*pipeline.StaticValidator).Root = "Submit_Reply"

	g := newGenerator(t, a, testOptions())
	_, root := generate(t, g)

	assert.Equal(t, []string{
		"Warning: Paradigm for output message which was extracted from soapBody should be Response instead of 'Reply'",
		"Warning: Root element 'Submit_Reply' not found in XSD's",
		"Warning: Attribute queueConnectionFactoryName empty for listener 'jms'",
		"Warning: Property dtap.stage empty",
	}, g.Warnings())

	target := root.FindElement("wsdl:service/wsdl:port/jms:targetAddress")
	require.NotNil(t, target)
	assert.Equal(t, "topic", target.SelectAttrValue("destination", ""))
	assert.Equal(t, "P2P.Customer.Order", target.Text())
}

func TestGenerate_ESBInvalidNamespace(t *testing.T) {
	t.Parallel()

	a := esbAdapter()
	a.InputValidator.(*pipeline.StaticValidator).Location = "http://nn.nl/XSD/Customer/Order/Submit xsd/esb.xsd"

	g := newGenerator(t, a, testOptions())
	assert.Equal(t, "${wsdl.SubmitOrder.targetNamespace}", g.TargetNamespace())
	assert.Equal(t, "SubmitOrder", g.FileName())
	assert.Equal(t, []string{
		"Warning: Namespace 'http://nn.nl/XSD/Customer/Order/Submit' invalid according to ESB SOAP standard",
		"Warning: Could not determine business domain",
	}, g.Model().Warnings)

	_, root := generate(t, g)
	assert.Equal(t, "Operation___wsdl.SubmitOrder.jms.soapAction_", root.FindElement("wsdl:portType/wsdl:operation").SelectAttrValue("name", ""))
}

func TestGenerate_ESBWithNamespaceOverride(t *testing.T) {
	t.Parallel()

	opts := withProps(t, testOptions(), map[string]string{"wsdl.targetNamespace": "urn:override"})
	g := newGenerator(t, esbAdapter(), opts)
	_, root := generate(t, g)

	assert.Equal(t, "urn:override", g.TargetNamespace())
	assert.False(t, g.Model().ESB)
	assert.Equal(t, soap.JMSTransport, root.SelectAttrValue("xmlns:jms", ""))
	assert.NotNil(t, root.FindElement("wsdl:service/jms:jndiConnectionFactoryName"))
}
