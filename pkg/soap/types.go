package soap

import (
	"fmt"
	"strings"
)

// Version represents the SOAP protocol version.
type Version string

const (
	// SOAP11 represents SOAP 1.1 protocol.
	SOAP11 Version = "1.1"
	// SOAP12 represents SOAP 1.2 protocol.
	SOAP12 Version = "1.2"
)

// SOAP envelope namespace URIs
const (
	SOAP11Namespace = "http://schemas.xmlsoap.org/soap/envelope/"
	SOAP12Namespace = "http://www.w3.org/2003/05/soap-envelope"
)

// WSDL and WSDL extension namespaces.
const (
	WSDLNamespace       = "http://schemas.xmlsoap.org/wsdl/"
	WSDLSOAP11Namespace = "http://schemas.xmlsoap.org/wsdl/soap/"
	WSDLSOAP12Namespace = "http://schemas.xmlsoap.org/wsdl/soap12/"
	HTTPTransport       = "http://schemas.xmlsoap.org/soap/http"
	JMSTransport        = "http://www.w3.org/2010/soapjms/"
	XSDNamespace        = "http://www.w3.org/2001/XMLSchema"
	XMLNamespace        = "http://www.w3.org/XML/1998/namespace"
	ESBJMSNamespace     = "http://www.tibco.com/namespaces/ws/2004/soap/binding/JMS"
	ESBJNDINamespace    = "http://www.tibco.com/namespaces/ws/2004/soap/apis/jndi"
	WSDLPrefix          = "wsdl"
	XSDPrefix           = "xsd"
	JMSPrefix           = "jms"
	JNDIPrefix          = "jndi"
	wsdlSOAP11Prefix    = "soap"
	wsdlSOAP12Prefix    = "soap12"
)

// ParseVersion parses "1.1", "1.2", "soap11" and "soap12" (case-insensitive).
// The empty string yields SOAP 1.1.
func ParseVersion(s string) (Version, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "1.1", "soap11", "11":
		return SOAP11, nil
	case "1.2", "soap12", "12":
		return SOAP12, nil
	default:
		return "", fmt.Errorf("unsupported SOAP version %q", s)
	}
}

// EnvelopeNamespace returns the envelope namespace of the version.
func (v Version) EnvelopeNamespace() string {
	if v == SOAP12 {
		return SOAP12Namespace
	}
	return SOAP11Namespace
}

// BindingNamespace returns the WSDL SOAP binding extension namespace.
func (v Version) BindingNamespace() string {
	if v == SOAP12 {
		return WSDLSOAP12Namespace
	}
	return WSDLSOAP11Namespace
}

// BindingPrefix returns the prefix used for the WSDL SOAP binding namespace.
func (v Version) BindingPrefix() string {
	if v == SOAP12 {
		return wsdlSOAP12Prefix
	}
	return wsdlSOAP11Prefix
}

// IsEnvelopeNamespace reports whether ns is one of the SOAP envelope
// namespaces. Envelope schemas never belong in a generated types section.
func IsEnvelopeNamespace(ns string) bool {
	return ns == SOAP11Namespace || ns == SOAP12Namespace
}
