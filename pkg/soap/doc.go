// Package soap holds the SOAP protocol versions and the namespaces a WSDL 1.1
// document refers to.
//
// The SOAP version of a generated WSDL is taken from the input validator and
// selects the binding extension namespace:
//   - SOAP 1.1: http://schemas.xmlsoap.org/wsdl/soap/ (prefix soap)
//   - SOAP 1.2: http://schemas.xmlsoap.org/wsdl/soap12/ (prefix soap12)
//
// Envelope schemas (http://schemas.xmlsoap.org/soap/envelope/ and
// http://www.w3.org/2003/05/soap-envelope) are recognised with
// IsEnvelopeNamespace so they can be kept out of a types section.
package soap
