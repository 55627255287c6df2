// Package properties provides the configuration values WSDL generation can be
// tuned with: target namespaces, SOAP actions, service locations and the
// deployment stage.
//
// Values may reference other values as ${key}. References are expanded on
// lookup; unknown keys fall back to the environment.
package properties

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	javaprops "github.com/magiconair/properties"
	"gopkg.in/yaml.v3"
)

// Provider looks up configuration values.
type Provider interface {
	Lookup(key string) (string, bool)
}

// ErrUnsupportedFormat is returned by LoadFile for unknown file extensions.
var ErrUnsupportedFormat = errors.New("unsupported properties format")

// Properties is a set of key/value pairs with ${key} expansion.
type Properties struct {
	p *javaprops.Properties
}

// New returns an empty set.
func New() *Properties {
	return &Properties{p: javaprops.NewProperties()}
}

// FromMap builds a set from m. It fails on circular references.
func FromMap(m map[string]string) (*Properties, error) {
	out := New()
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := out.Set(k, m[k]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Set sets key to value.
func (p *Properties) Set(key, value string) error {
	if _, _, err := p.p.Set(key, value); err != nil {
		return fmt.Errorf("setting property %q: %w", key, err)
	}
	return nil
}

// Lookup returns the expanded value of key. Empty values count as unset.
func (p *Properties) Lookup(key string) (string, bool) {
	if p == nil || p.p == nil {
		return "", false
	}
	v, ok := p.p.Get(key)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// Keys returns the keys in insertion order.
func (p *Properties) Keys() []string {
	if p == nil || p.p == nil {
		return nil
	}
	return p.p.Keys()
}

// Len returns the number of keys.
func (p *Properties) Len() int {
	if p == nil || p.p == nil {
		return 0
	}
	return p.p.Len()
}

// Merge copies the values of other over p.
func (p *Properties) Merge(other *Properties) error {
	for _, k := range other.Keys() {
		v, _ := other.p.Get(k)
		if err := p.Set(k, v); err != nil {
			return err
		}
	}
	return nil
}

// LoadFile reads a Java style .properties file or a YAML file. YAML
// documents may nest maps; nested keys are joined with dots.
func LoadFile(path string) (*Properties, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".properties":
		jp, err := javaprops.LoadFile(path, javaprops.UTF8)
		if err != nil {
			return nil, fmt.Errorf("loading properties %s: %w", path, err)
		}
		return &Properties{p: jp}, nil
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read properties file: %w", err)
		}
		p, err := ParseYAML(data)
		if err != nil {
			return nil, fmt.Errorf("loading properties %s: %w", path, err)
		}
		return p, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// ParseYAML parses a YAML mapping into a flat set of properties.
func ParseYAML(data []byte) (*Properties, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	flat := make(map[string]string)
	flatten("", raw, flat)
	return FromMap(flat)
}

func flatten(prefix string, v any, out map[string]string) {
	switch v := v.(type) {
	case map[string]any:
		for k, child := range v {
			key := k
			if prefix != "" {
				key = prefix + "." + k
			}
			flatten(key, child, out)
		}
	case nil:
		out[prefix] = ""
	default:
		out[prefix] = fmt.Sprint(v)
	}
}

// First returns the value of the first key that is set.
func First(p Provider, keys ...string) (string, bool) {
	if p == nil {
		return "", false
	}
	for _, k := range keys {
		if v, ok := p.Lookup(k); ok {
			return v, true
		}
	}
	return "", false
}
