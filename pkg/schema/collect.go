package schema

import (
	"log/slog"

	"github.com/beevik/etree"
	"github.com/getmockd/wsdlgen/pkg/logging"
)

// Collector loads schema documents and expands them into the transitive
// closure of their imports and includes.
type Collector struct {
	Loader Loader
	// Cache may be shared across collectors; nil gives the collector a
	// private cache.
	Cache  *Cache
	Logger *slog.Logger
}

func (c *Collector) cache() *Cache {
	if c.Cache == nil {
		c.Cache = NewCache()
	}
	return c.Cache
}

func (c *Collector) logger() *slog.Logger {
	if c.Logger == nil {
		return logging.Nop()
	}
	return c.Logger
}

// Document returns the parsed document at location. The document is shared
// through the cache and must not be modified.
func (c *Collector) Document(location string) (*etree.Document, error) {
	return c.cache().Document(c.Loader, location)
}

// Load returns a copy of r with its metadata read from the document. r
// itself is never modified.
func (c *Collector) Load(r *Resource) (*Resource, error) {
	if r.loaded {
		return r, nil
	}
	doc, err := c.Document(r.Location)
	if err != nil {
		return nil, err
	}
	info, err := inspect(doc, r.Location)
	if err != nil {
		return nil, err
	}

	out := r.clone()
	out.RootTags = info.rootTags
	out.Refs = info.refs
	switch {
	case out.AddNamespace:
		// namespace is attached on output, whatever the document says
	case info.targetNamespace != "":
		out.Namespace = info.targetNamespace
	case out.Namespace != "" && !out.Included:
		// a declared namespace for a namespace-less document
		out.AddNamespace = true
	}
	out.Included = out.Included && info.targetNamespace == ""
	if out.Target == "" {
		out.Target = TargetFor(out.Location)
	}
	out.loaded = true
	return out, nil
}

// LoadAll loads every resource, keeping the order.
func (c *Collector) LoadAll(rs []*Resource) ([]*Resource, error) {
	out := make([]*Resource, 0, len(rs))
	for _, r := range rs {
		loaded, err := c.Load(r)
		if err != nil {
			return nil, err
		}
		out = append(out, loaded)
	}
	return out, nil
}

// Collect returns roots plus every document reachable from them, depth first
// in first-seen order. A document reached again, through a cycle or through
// two parents, is collected once.
func (c *Collector) Collect(roots []*Resource) ([]*Resource, error) {
	var out []*Resource
	seen := make(map[string]bool)

	var visit func(r *Resource) error
	visit = func(r *Resource) error {
		loaded, err := c.Load(r)
		if err != nil {
			return err
		}
		key := loaded.Key()
		if seen[key] {
			return nil
		}
		seen[key] = true
		out = append(out, loaded)

		for _, ref := range loaded.Refs {
			child := &Resource{Location: ref.Location, Parent: loaded}
			if ref.Kind == RefImport {
				child.Namespace = ref.Namespace
			} else {
				child.Namespace = loaded.Namespace
				child.Included = true
			}
			if err := visit(child); err != nil {
				return err
			}
		}
		return nil
	}

	for _, r := range roots {
		if err := visit(r); err != nil {
			return nil, err
		}
	}
	c.logger().Debug("collected schema closure", "roots", len(roots), "schemas", len(out))
	return out, nil
}
