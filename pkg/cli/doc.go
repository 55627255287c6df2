// Package cli provides the command-line interface for wsdlgen.
//
// Commands work on adapter definition files (see package config):
//   - generate: write the WSDL or ZIP bundle of an adapter
//   - list: show the adapters of a definition file and how they resolve
//   - validate: check the structure of a WSDL file
//   - init: create a starter definition file, interactively when no name is given
//   - serve: publish the WSDLs of all adapters over HTTP
//   - version: show the wsdlgen version
//
// Usage:
//
//	wsdlgen init --name OrderService --schema xsd/order.xsd
//	wsdlgen generate adapters.yaml OrderService -o OrderService.wsdl
//	wsdlgen generate adapters.yaml --zip --set wsdl.location=http://esb/orders
//	wsdlgen list adapters.yaml --json
//	wsdlgen validate OrderService.wsdl
//	wsdlgen serve adapters.yaml --addr :8080
package cli
