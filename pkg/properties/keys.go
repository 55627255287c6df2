package properties

// Stage is the key of the deployment stage used in ESB JNDI names.
const Stage = "dtap.stage"

// TargetNamespaceKeys returns the keys that override the target namespace of
// an adapter, most specific first.
func TargetNamespaceKeys(adapter string) []string {
	return []string{
		"wsdl." + adapter + ".targetNamespace",
		"wsdl.targetNamespace",
	}
}

// SOAPActionKeys returns the keys that override the SOAP action of a
// listener, most specific first.
func SOAPActionKeys(adapter, listener string) []string {
	return []string{
		"wsdl." + adapter + "." + listener + ".soapAction",
		"wsdl." + adapter + ".soapAction",
		"wsdl.soapAction",
	}
}

// LocationKeys returns the keys that override the address of a listener's
// port, most specific first.
func LocationKeys(adapter, listener string) []string {
	return []string{
		"wsdl." + adapter + "." + listener + ".location",
		"wsdl." + adapter + ".location",
		"wsdl.location",
	}
}

// Placeholder returns key as an unresolved ${key} reference.
func Placeholder(key string) string {
	return "${" + key + "}"
}
