// Package pipeline describes the parts of a message pipeline a WSDL is
// generated from: the adapter, its input and output validators and the
// listeners that receive its messages.
package pipeline

import (
	"strings"
)

// Kind is the transport of a listener.
type Kind string

// Listener kinds.
const (
	KindHTTP  Kind = "http"
	KindJMS   Kind = "jms"
	KindJava  Kind = "java"
	KindOther Kind = "other"
)

// ParseKind parses a listener kind, ignoring case. Unknown kinds are
// KindOther.
func ParseKind(s string) Kind {
	switch k := Kind(strings.ToLower(s)); k {
	case KindHTTP, KindJMS, KindJava:
		return k
	case "soap", "webservice":
		return KindHTTP
	default:
		return KindOther
	}
}

// Destination types.
const (
	DestinationQueue = "QUEUE"
	DestinationTopic = "TOPIC"
)

// Listener receives messages for an adapter.
type Listener struct {
	Name string
	Kind Kind

	// ServiceNamespaceURI is the namespace an HTTP listener serves under.
	ServiceNamespaceURI string

	// JMS settings.
	ConnectionFactory            string
	DestinationName              string
	DestinationType              string
	PhysicalDestinationShortName string

	// HTTPWSDL marks a Java listener whose WSDL is published over HTTP.
	HTTPWSDL bool
}

// IsSOAP reports whether the listener contributes a SOAP operation.
func (l Listener) IsSOAP() bool {
	return l.Kind == KindHTTP || l.Kind == KindJMS
}

// Adapter is a named pipeline.
type Adapter struct {
	Name            string
	InputValidator  Validator
	OutputValidator Validator
	Listeners       []Listener
}

// HTTPActive reports whether the adapter is reachable over SOAP/HTTP.
func (a *Adapter) HTTPActive() bool {
	for _, l := range a.Listeners {
		if l.Kind == KindHTTP || (l.Kind == KindJava && l.HTTPWSDL) {
			return true
		}
	}
	return false
}

// JMSActive reports whether the adapter is reachable over SOAP/JMS.
func (a *Adapter) JMSActive() bool {
	for _, l := range a.Listeners {
		if l.Kind == KindJMS {
			return true
		}
	}
	return false
}

// Concrete reports whether the adapter has a SOAP listener.
func (a *Adapter) Concrete() bool {
	for _, l := range a.Listeners {
		if l.IsSOAP() {
			return true
		}
	}
	return false
}

// ServiceNamespace returns the service namespace of the last HTTP listener
// that declares one.
func (a *Adapter) ServiceNamespace() string {
	var ns string
	for _, l := range a.Listeners {
		if l.Kind == KindHTTP && l.ServiceNamespaceURI != "" {
			ns = l.ServiceNamespaceURI
		}
	}
	return ns
}

// ListenersOf returns the listeners of the given kind in declaration order.
func (a *Adapter) ListenersOf(kind Kind) []Listener {
	var out []Listener
	for _, l := range a.Listeners {
		if l.Kind == kind {
			out = append(out, l)
		}
	}
	return out
}
