package wsdl

import (
	"bytes"
	"testing"
	"testing/fstest"
	"time"

	"github.com/beevik/etree"
	"github.com/getmockd/wsdlgen/pkg/pipeline"
	"github.com/getmockd/wsdlgen/pkg/properties"
	"github.com/getmockd/wsdlgen/pkg/schema"
	"github.com/stretchr/testify/require"
)

const (
	ordersNS = "urn:example:orders"
	commonNS = "urn:example:common"
	esbNS    = "http://nn.nl/XSD/Customer/Order/1/Submit/2"
	location = "http://localhost:8080/services/OrderService"
)

var fixedNow = time.Date(2026, 1, 2, 3, 4, 5, 6e6, time.UTC)

func schemaFile(s string) *fstest.MapFile {
	return &fstest.MapFile{Data: []byte(`<?xml version="1.0" encoding="UTF-8"?>` + "\n" + s)}
}

// testFS holds:
//
//	xsd/order.xsd   urn:example:orders, imports common.xsd, includes types.xsd
//	xsd/common.xsd  urn:example:common, includes types.xsd
//	xsd/types.xsd   no namespace, pulled into both namespaces
//	xsd/envelope.xsd the SOAP 1.1 envelope namespace
//	xsd/bare.xsd    no namespace
//	xsd/esb.xsd     an ESB namespace
func testFS() fstest.MapFS {
	return fstest.MapFS{
		"xsd/order.xsd": schemaFile(`<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" xmlns:c="urn:example:common" targetNamespace="urn:example:orders" elementFormDefault="qualified">
  <xs:import namespace="urn:example:common" schemaLocation="common.xsd"/>
  <xs:include schemaLocation="types.xsd"/>
  <xs:element name="SubmitOrder_Request">
    <xs:complexType><xs:sequence><xs:element name="id" type="xs:string"/></xs:sequence></xs:complexType>
  </xs:element>
  <xs:element name="SubmitOrder_Response" type="xs:string"/>
  <xs:element name="Header" type="xs:string"/>
</xs:schema>`),
		"xsd/common.xsd": schemaFile(`<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" targetNamespace="urn:example:common">
  <xs:include schemaLocation="types.xsd"/>
  <xs:element name="Header" type="xs:string"/>
</xs:schema>`),
		"xsd/types.xsd": schemaFile(`<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema">
  <xs:simpleType name="OrderId"><xs:restriction base="xs:string"/></xs:simpleType>
</xs:schema>`),
		"xsd/envelope.xsd": schemaFile(`<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" targetNamespace="http://schemas.xmlsoap.org/soap/envelope/">
  <xs:element name="Envelope" type="xs:anyType"/>
</xs:schema>`),
		"xsd/bare.xsd": schemaFile(`<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema">
  <xs:element name="Bare_Request" type="xs:string"/>
</xs:schema>`),
		"xsd/esb.xsd": schemaFile(`<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" targetNamespace="` + esbNS + `">
  <xs:element name="Submit_Request" type="xs:string"/>
  <xs:element name="Submit_Response" type="xs:string"/>
</xs:schema>`),
	}
}

func orderValidator() *pipeline.StaticValidator {
	return &pipeline.StaticValidator{
		ValidatorName:   "OrderValidator",
		SchemaResources: []*schema.Resource{{Location: "xsd/order.xsd"}},
		Root:            "SubmitOrder_Request",
		Location:        ordersNS + " xsd/order.xsd",
	}
}

func orderAdapter() *pipeline.Adapter {
	return &pipeline.Adapter{
		Name:           "OrderService",
		InputValidator: orderValidator(),
		Listeners:      []pipeline.Listener{{Name: "http", Kind: pipeline.KindHTTP}},
	}
}

func testOptions() Options {
	return Options{
		Loader: schema.NewFSLoader(testFS()),
		Now:    func() time.Time { return fixedNow },
	}
}

func withProps(t *testing.T, opts Options, m map[string]string) Options {
	t.Helper()
	p, err := properties.FromMap(m)
	require.NoError(t, err)
	opts.Properties = p
	return opts
}

func newGenerator(t *testing.T, a *pipeline.Adapter, opts Options) *Generator {
	t.Helper()
	g, err := New(a, opts)
	require.NoError(t, err)
	return g
}

// generate returns the generated document and its parsed root.
func generate(t *testing.T, g *Generator) (string, *etree.Element) {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, g.Generate(&buf, location))

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(buf.Bytes()))
	return buf.String(), doc.Root()
}

func attrs(els []*etree.Element, name string) []string {
	out := make([]string, len(els))
	for i, el := range els {
		out[i] = el.SelectAttrValue(name, "")
	}
	return out
}
