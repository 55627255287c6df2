// Package config loads adapter definition files.
//
// An adapter definition file describes the adapters a WSDL can be generated
// for: their input and output validators and the listeners they receive
// messages on. Schema and properties paths are relative to the directory of
// the file.
//
//	version: "1"
//	properties: wsdl.properties
//	adapters:
//	  - name: OrderService
//	    inputValidator:
//	      name: OrderValidator
//	      schemaLocation: urn:example:orders xsd/order.xsd
//	      root: SubmitOrder_Request
//	      soapHeader: Header,
//	    outputValidator:
//	      schemas: ["xsd/**/*-response.xsd"]
//	      root: SubmitOrder_Response
//	    listeners:
//	      - name: http
//	        type: http
//
// Files are first checked against an embedded JSON Schema, then decoded and
// checked for consistency:
//
//	f, err := config.LoadFile("adapters.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	a, err := f.Adapter("OrderService", os.DirFS(f.Dir))
package config
