package cli

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/getmockd/wsdlgen/pkg/cli/internal/flags"
	"github.com/getmockd/wsdlgen/pkg/config"
	"github.com/getmockd/wsdlgen/pkg/pipeline"
	"github.com/getmockd/wsdlgen/pkg/properties"
	"github.com/getmockd/wsdlgen/pkg/schema"
	"github.com/getmockd/wsdlgen/pkg/wsdl"
)

// definition is a loaded adapter definition file with its properties.
type definition struct {
	file  *config.File
	fsys  fs.FS
	props *properties.Properties
}

// loadDefinition loads the definition file at path. propsPath overrides the
// properties file named in the definition; overrides are applied last.
func loadDefinition(path, propsPath string, overrides flags.KeyValues) (*definition, error) {
	f, err := config.LoadFile(path)
	if err != nil {
		return nil, err
	}

	if propsPath == "" {
		propsPath = f.PropertiesPath()
	}
	props := properties.New()
	if propsPath != "" {
		props, err = properties.LoadFile(propsPath)
		if err != nil {
			return nil, err
		}
	}
	for _, kv := range overrides {
		if err := props.Set(kv.Key, kv.Value); err != nil {
			return nil, err
		}
	}
	logger.Debug("loaded definition", "file", path, "adapters", len(f.Adapters), "properties", props.Len())

	return &definition{file: f, fsys: os.DirFS(f.Dir), props: props}, nil
}

// options returns generation options reading schemas relative to the
// definition file.
func (d *definition) options() wsdl.Options {
	return wsdl.Options{
		Loader:     schema.NewFSLoader(d.fsys),
		Cache:      schema.NewCache(),
		Properties: d.props,
		Logger:     logger,
	}
}

// adapter returns the named adapter. Without a name the file must define
// exactly one.
func (d *definition) adapter(name string) (*pipeline.Adapter, error) {
	if name == "" {
		names := d.file.AdapterNames()
		if len(names) != 1 {
			return nil, fmt.Errorf("%w: the file defines %s", ErrAdapterRequired, strings.Join(names, ", "))
		}
		name = names[0]
	}
	return d.file.Adapter(name, d.fsys)
}

// writeFile writes through write to a temporary file and renames it to
// path, creating parent directories.
func writeFile(path string, write func(io.Writer) error) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tmpPath := path + ".tmp"
	f, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	if err := write(f); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to write temporary file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}
	return nil
}
