package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/getmockd/wsdlgen/pkg/cli/internal/flags"
	"github.com/getmockd/wsdlgen/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const twoAdapters = `version: "1"
properties: wsdl.properties
adapters:
  - name: OrderService
    inputValidator: {schema: order.xsd, root: Order_Request}
  - name: Audit
    inputValidator: {schema: audit.xsd, root: Audit_Event}
`

func writeDefinition(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "adapters.yaml"), []byte(twoAdapters), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "wsdl.properties"), []byte("dtap.stage = TST\nwsdl.location = http://${dtap.stage}.example.com\n"), 0o644))
	return filepath.Join(dir, "adapters.yaml")
}

func TestLoadDefinition(t *testing.T) {
	t.Parallel()

	path := writeDefinition(t)
	def, err := loadDefinition(path, "", flags.KeyValues{{Key: "dtap.stage", Value: "ACC"}})
	require.NoError(t, err)

	loc, ok := def.props.Lookup("wsdl.location")
	require.True(t, ok)
	assert.Equal(t, "http://ACC.example.com", loc)

	_, err = def.adapter("")
	assert.ErrorIs(t, err, ErrAdapterRequired)
	assert.ErrorContains(t, err, "OrderService, Audit")

	a, err := def.adapter("Audit")
	require.NoError(t, err)
	assert.Equal(t, "Audit", a.Name)

	_, err = def.adapter("Missing")
	assert.ErrorIs(t, err, config.ErrAdapterNotFound)
}

func TestLoadDefinition_PropertiesOverride(t *testing.T) {
	t.Parallel()

	path := writeDefinition(t)
	props := filepath.Join(filepath.Dir(path), "other.yaml")
	require.NoError(t, os.WriteFile(props, []byte("wsdl:\n  location: http://other\n"), 0o644))

	def, err := loadDefinition(path, props, nil)
	require.NoError(t, err)
	loc, _ := def.props.Lookup("wsdl.location")
	assert.Equal(t, "http://other", loc)
	_, ok := def.props.Lookup("dtap.stage")
	assert.False(t, ok)
}

func TestLoadDefinition_Errors(t *testing.T) {
	t.Parallel()

	_, err := loadDefinition(filepath.Join(t.TempDir(), "missing.yaml"), "", nil)
	assert.ErrorIs(t, err, config.ErrFileNotFound)

	path := writeDefinition(t)
	require.NoError(t, os.Remove(filepath.Join(filepath.Dir(path), "wsdl.properties")))
	_, err = loadDefinition(path, "", nil)
	assert.Error(t, err)
}

func TestInitAnswers_File(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		ans   initAnswers
		check func(t *testing.T, f *config.File)
	}{
		{
			name: "namespace and http",
			ans:  initAnswers{Name: "OrderService", Namespace: "urn:example:orders", Schema: "xsd/order.xsd", Listener: "http", SOAPVersion: "1.1"},
			check: func(t *testing.T, f *config.File) {
				v := f.Adapters[0].InputValidator
				assert.Equal(t, "urn:example:orders xsd/order.xsd", v.SchemaLocation)
				assert.Equal(t, "OrderService_Request", v.Root)
				assert.Equal(t, "OrderServiceValidator", v.Name)
				assert.Equal(t, "http", f.Adapters[0].Listeners[0].Type)
			},
		},
		{
			name: "no namespace and jms",
			ans:  initAnswers{Name: "Audit", Schema: "audit.xsd", Root: "Audit_Event", Listener: "jms", SOAPVersion: "1.2", ESB: true},
			check: func(t *testing.T, f *config.File) {
				v := f.Adapters[0].InputValidator
				assert.Equal(t, []string{"audit.xsd"}, v.Schemas)
				assert.Equal(t, "Audit_Event", v.Root)
				assert.True(t, v.ESB)
				assert.Equal(t, "audit.in", f.Adapters[0].Listeners[0].Destination)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			data, err := yaml.Marshal(tt.ans.file())
			require.NoError(t, err)
			f, err := config.Parse(data)
			require.NoError(t, err, string(data))
			require.Len(t, f.Adapters, 1)
			tt.check(t, f)
		})
	}
}
