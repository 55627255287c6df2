package properties

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestFromMap_Expansion(t *testing.T) {
	t.Parallel()

	p, err := FromMap(map[string]string{
		"host":          "esb.example.com",
		"wsdl.location": "http://${host}/services",
		"empty":         "",
	})
	require.NoError(t, err)

	v, ok := p.Lookup("wsdl.location")
	require.True(t, ok)
	assert.Equal(t, "http://esb.example.com/services", v)

	_, ok = p.Lookup("empty")
	assert.False(t, ok, "empty values count as unset")
	_, ok = p.Lookup("missing")
	assert.False(t, ok)
	assert.Equal(t, 3, p.Len())
}

func TestFromMap_CircularReference(t *testing.T) {
	t.Parallel()

	_, err := FromMap(map[string]string{
		"a": "${b}",
		"b": "${a}",
	})
	assert.Error(t, err)
}

func TestLoadFile_Properties(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "app.properties", `# deployment
dtap.stage=TST
wsdl.OrderService.soapAction = urn:submit
wsdl.location: http://localhost:8080/${dtap.stage}/orders
`)
	p, err := LoadFile(path)
	require.NoError(t, err)

	v, _ := p.Lookup(Stage)
	assert.Equal(t, "TST", v)
	v, _ = p.Lookup("wsdl.OrderService.soapAction")
	assert.Equal(t, "urn:submit", v)
	v, _ = p.Lookup("wsdl.location")
	assert.Equal(t, "http://localhost:8080/TST/orders", v)
	assert.Equal(t, []string{"dtap.stage", "wsdl.OrderService.soapAction", "wsdl.location"}, p.Keys())
}

func TestLoadFile_YAML(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "app.yaml", `dtap:
  stage: ACC
wsdl:
  targetNamespace: urn:orders
  OrderService:
    http:
      location: http://${dtap.stage}.example.com/orders
port: 8080
`)
	p, err := LoadFile(path)
	require.NoError(t, err)

	v, _ := p.Lookup("wsdl.targetNamespace")
	assert.Equal(t, "urn:orders", v)
	v, _ = p.Lookup("wsdl.OrderService.http.location")
	assert.Equal(t, "http://ACC.example.com/orders", v)
	v, _ = p.Lookup("port")
	assert.Equal(t, "8080", v)
}

func TestLoadFile_Errors(t *testing.T) {
	t.Parallel()

	_, err := LoadFile(writeFile(t, "app.toml", "a = 1"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = LoadFile(writeFile(t, "bad.yaml", "a: [1"))
	assert.ErrorContains(t, err, "invalid YAML")

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestMerge(t *testing.T) {
	t.Parallel()

	base, err := FromMap(map[string]string{"a": "1", "b": "2"})
	require.NoError(t, err)
	override, err := FromMap(map[string]string{"b": "3"})
	require.NoError(t, err)

	require.NoError(t, base.Merge(override))
	v, _ := base.Lookup("b")
	assert.Equal(t, "3", v)
	v, _ = base.Lookup("a")
	assert.Equal(t, "1", v)
}

func TestFirst(t *testing.T) {
	t.Parallel()

	p, err := FromMap(map[string]string{
		"wsdl.soapAction":              "generic",
		"wsdl.OrderService.soapAction": "adapter",
	})
	require.NoError(t, err)

	v, ok := First(p, SOAPActionKeys("OrderService", "http")...)
	require.True(t, ok)
	assert.Equal(t, "adapter", v)

	v, ok = First(p, SOAPActionKeys("Other", "http")...)
	require.True(t, ok)
	assert.Equal(t, "generic", v)

	_, ok = First(p, LocationKeys("OrderService", "http")...)
	assert.False(t, ok)

	_, ok = First(nil, "x")
	assert.False(t, ok)

	var unset *Properties
	_, ok = unset.Lookup("x")
	assert.False(t, ok)
}

func TestKeys(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{
		"wsdl.A.l.soapAction", "wsdl.A.soapAction", "wsdl.soapAction",
	}, SOAPActionKeys("A", "l"))
	assert.Equal(t, []string{
		"wsdl.A.l.location", "wsdl.A.location", "wsdl.location",
	}, LocationKeys("A", "l"))
	assert.Equal(t, []string{"wsdl.A.targetNamespace", "wsdl.targetNamespace"}, TargetNamespaceKeys("A"))
	assert.Equal(t, "${wsdl.A.targetNamespace}", Placeholder("wsdl.A.targetNamespace"))
}
