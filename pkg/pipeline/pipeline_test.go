package pipeline

import (
	"testing"

	"github.com/getmockd/wsdlgen/pkg/soap"
	"github.com/stretchr/testify/assert"
)

func TestParseKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Kind
	}{
		{"http", KindHTTP},
		{"HTTP", KindHTTP},
		{"soap", KindHTTP},
		{"jms", KindJMS},
		{"Java", KindJava},
		{"ftp", KindOther},
		{"", KindOther},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ParseKind(tt.in))
		})
	}
}

func TestAdapter_Transports(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		listeners []Listener
		http      bool
		jms       bool
		concrete  bool
	}{
		{name: "none"},
		{name: "http", listeners: []Listener{{Kind: KindHTTP}}, http: true, concrete: true},
		{name: "jms", listeners: []Listener{{Kind: KindJMS}}, jms: true, concrete: true},
		{name: "both", listeners: []Listener{{Kind: KindJMS}, {Kind: KindHTTP}}, http: true, jms: true, concrete: true},
		{name: "java with http wsdl", listeners: []Listener{{Kind: KindJava, HTTPWSDL: true}}, http: true},
		{name: "plain java", listeners: []Listener{{Kind: KindJava}}},
		{name: "other", listeners: []Listener{{Kind: KindOther}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			a := &Adapter{Name: "A", Listeners: tt.listeners}
			assert.Equal(t, tt.http, a.HTTPActive())
			assert.Equal(t, tt.jms, a.JMSActive())
			assert.Equal(t, tt.concrete, a.Concrete())
		})
	}
}

func TestAdapter_ServiceNamespace(t *testing.T) {
	t.Parallel()

	a := &Adapter{Listeners: []Listener{
		{Name: "one", Kind: KindHTTP, ServiceNamespaceURI: "urn:one"},
		{Name: "jms", Kind: KindJMS, ServiceNamespaceURI: "urn:ignored"},
		{Name: "two", Kind: KindHTTP, ServiceNamespaceURI: "urn:two"},
		{Name: "three", Kind: KindHTTP},
	}}
	assert.Equal(t, "urn:two", a.ServiceNamespace())
	assert.Len(t, a.ListenersOf(KindHTTP), 3)
	assert.Equal(t, "jms", a.ListenersOf(KindJMS)[0].Name)
	assert.Empty(t, (&Adapter{}).ServiceNamespace())
}

func TestStaticValidator(t *testing.T) {
	t.Parallel()

	v := &StaticValidator{ValidatorName: "in", Root: "A,B"}
	assert.Equal(t, soap.SOAP11, v.SOAPVersion())
	assert.Equal(t, "A,B", v.MessageRoot())
	assert.NoError(t, v.ConfigurationError())

	v.Version = soap.SOAP12
	assert.Equal(t, soap.SOAP12, v.SOAPVersion())
}
