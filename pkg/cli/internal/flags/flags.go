// Package flags provides reusable flag types for CLI commands.
package flags

import (
	"fmt"
	"strings"
)

// KeyValues implements pflag.Value for repeatable key=value flags.
// Pairs keep the order they were given in.
type KeyValues []KeyValue

// KeyValue is a single key=value pair.
type KeyValue struct {
	Key   string
	Value string
}

// String returns the string representation of the flag value.
func (kv *KeyValues) String() string {
	parts := make([]string, len(*kv))
	for i, p := range *kv {
		parts[i] = p.Key + "=" + p.Value
	}
	return strings.Join(parts, ",")
}

// Set parses and appends a key=value pair. The value may be empty; the key
// may not.
func (kv *KeyValues) Set(value string) error {
	k, v, ok := strings.Cut(value, "=")
	k = strings.TrimSpace(k)
	if !ok || k == "" {
		return fmt.Errorf("invalid property %q, expected key=value", value)
	}
	*kv = append(*kv, KeyValue{Key: k, Value: v})
	return nil
}

// Type specifies the type label for Cobra flags.
func (kv *KeyValues) Type() string {
	return "key=value"
}
