package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/getmockd/wsdlgen/pkg/pipeline"
	"github.com/getmockd/wsdlgen/pkg/schema"
	"github.com/getmockd/wsdlgen/pkg/soap"
)

// Conversion errors.
var (
	ErrAdapterNotFound = errors.New("adapter not found")
	ErrNoSchemaMatch   = errors.New("pattern matched no schemas")
)

// AdapterNames returns the adapter names in file order.
func (f *File) AdapterNames() []string {
	names := make([]string, len(f.Adapters))
	for i, a := range f.Adapters {
		names[i] = a.Name
	}
	return names
}

// Adapter converts the named adapter. Schema patterns are expanded in fsys,
// normally os.DirFS(f.Dir). A pattern that matches nothing does not fail
// the conversion; it becomes the validator's configuration error.
func (f *File) Adapter(name string, fsys fs.FS) (*pipeline.Adapter, error) {
	for i := range f.Adapters {
		if f.Adapters[i].Name == name {
			return f.Adapters[i].toAdapter(schema.NewFSLoader(fsys)), nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrAdapterNotFound, name)
}

// AllAdapters converts every adapter in file order.
func (f *File) AllAdapters(fsys fs.FS) []*pipeline.Adapter {
	loader := schema.NewFSLoader(fsys)
	out := make([]*pipeline.Adapter, len(f.Adapters))
	for i := range f.Adapters {
		out[i] = f.Adapters[i].toAdapter(loader)
	}
	return out
}

func (d *AdapterDef) toAdapter(loader *schema.FSLoader) *pipeline.Adapter {
	a := &pipeline.Adapter{Name: d.Name}
	if d.InputValidator != nil {
		a.InputValidator = d.InputValidator.toValidator(loader)
	}
	if d.OutputValidator != nil {
		a.OutputValidator = d.OutputValidator.toValidator(loader)
	}
	for _, l := range d.Listeners {
		a.Listeners = append(a.Listeners, l.toListener())
	}
	return a
}

func (d *ValidatorDef) toValidator(loader *schema.FSLoader) *pipeline.StaticValidator {
	v := &pipeline.StaticValidator{
		ValidatorName:   d.Name,
		SchemaPath:      d.Schema,
		Root:            d.Root,
		Header:          d.SOAPHeader,
		HeaderNamespace: d.SOAPHeaderNamespace,
		Location:        d.SchemaLocation,
		Doc:             d.Documentation,
		FollowsESB:      d.ESB,
	}
	version, err := soap.ParseVersion(d.SOAPVersion)
	if err != nil {
		v.ConfigErr = err
		return v
	}
	v.Version = version
	v.SchemaResources, v.ConfigErr = d.resources(loader)
	return v
}

// resources lists the schemaLocation pairs followed by the files matched by
// the schema patterns, each location once.
func (d *ValidatorDef) resources(loader *schema.FSLoader) ([]*schema.Resource, error) {
	var out []*schema.Resource
	seen := make(map[string]bool)

	fields := strings.Fields(d.SchemaLocation)
	for i := 0; i+1 < len(fields); i += 2 {
		loc := fields[i+1]
		if seen[loc] {
			continue
		}
		seen[loc] = true
		out = append(out, &schema.Resource{Namespace: fields[i], Location: loc, AddNamespace: d.AddNamespaceToSchema})
	}

	for _, pattern := range d.Schemas {
		matches, err := loader.Glob(pattern)
		if err != nil {
			return out, err
		}
		if len(matches) == 0 {
			return out, fmt.Errorf("%w: %s", ErrNoSchemaMatch, pattern)
		}
		for _, m := range matches {
			if seen[m] {
				continue
			}
			seen[m] = true
			out = append(out, &schema.Resource{Location: m})
		}
	}
	return out, nil
}

func (l ListenerDef) toListener() pipeline.Listener {
	return pipeline.Listener{
		Name:                         l.EffectiveName(),
		Kind:                         pipeline.ParseKind(l.Type),
		ServiceNamespaceURI:          l.ServiceNamespaceURI,
		HTTPWSDL:                     l.HTTPWSDL,
		ConnectionFactory:            l.ConnectionFactory,
		DestinationName:              l.Destination,
		DestinationType:              strings.ToUpper(l.DestinationType),
		PhysicalDestinationShortName: l.PhysicalDestinationShortName,
	}
}
