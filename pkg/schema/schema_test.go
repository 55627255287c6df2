package schema

import (
	"testing/fstest"
)

const xsdHeader = `<?xml version="1.0" encoding="UTF-8"?>` + "\n"

// fixtures is a small schema graph:
//
//	order.xsd (urn:order) imports common.xsd (urn:common) and includes order-types.xsd
//	common.xsd imports order.xsd back (cycle)
//	order-types.xsd has no targetNamespace (chameleon)
//	bare.xsd has no targetNamespace and is imported by nobody
func fixtures() fstest.MapFS {
	return fstest.MapFS{
		"xsd/order.xsd": {Data: []byte(xsdHeader + `<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" xmlns:c="urn:common" targetNamespace="urn:order" elementFormDefault="qualified">
  <xs:import namespace="urn:common" schemaLocation="common/common.xsd"/>
  <xs:include schemaLocation="order-types.xsd"/>
  <xs:element name="SubmitOrder_Request" type="c:Header"/>
  <xs:element name="SubmitOrder_Response" type="xs:string"/>
</xs:schema>`)},
		"xsd/common/common.xsd": {Data: []byte(xsdHeader + `<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" targetNamespace="urn:common">
  <xs:import namespace="urn:order" schemaLocation="../order.xsd"/>
  <xs:import namespace="urn:nowhere"/>
  <xs:complexType name="Header"><xs:sequence/></xs:complexType>
  <xs:element name="Header" type="xs:string"/>
</xs:schema>`)},
		"xsd/order-types.xsd": {Data: []byte(xsdHeader + `<xsd:schema xmlns:xsd="http://www.w3.org/2001/XMLSchema">
  <xsd:simpleType name="OrderId"><xsd:restriction base="xsd:string"/></xsd:simpleType>
</xsd:schema>`)},
		"xsd/bare.xsd": {Data: []byte(xsdHeader + `<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema">
  <xs:element name="Bare" type="xs:string"/>
</xs:schema>`)},
		"xsd/not-a-schema.xml": {Data: []byte(`<root/>`)},
		"xsd/broken.xsd":       {Data: []byte(`<xs:schema`)},
	}
}

func newTestCollector() *Collector {
	return &Collector{Loader: NewFSLoader(fixtures())}
}

func mapFile(schema string) *fstest.MapFile {
	return &fstest.MapFile{Data: []byte(xsdHeader + schema)}
}
