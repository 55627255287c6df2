package schema

import (
	"sync"

	"github.com/beevik/etree"
)

// Cache holds parsed schema documents by location. It is owned by the caller
// and passed to every Collector that should share it; it is safe for
// concurrent use. Cached documents must be treated as read-only.
type Cache struct {
	mu   sync.Mutex
	docs map[string]*etree.Document
}

// NewCache returns an empty Cache.
func NewCache() *Cache {
	return &Cache{docs: make(map[string]*etree.Document)}
}

// Document returns the parsed document at location, reading it through
// loader on first use.
func (c *Cache) Document(loader Loader, location string) (*etree.Document, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if doc, ok := c.docs[location]; ok {
		return doc, nil
	}
	if c.docs == nil {
		c.docs = make(map[string]*etree.Document)
	}
	doc, err := readDocument(loader, location)
	if err != nil {
		return nil, err
	}
	c.docs[location] = doc
	return doc, nil
}

// Len returns the number of cached documents.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.docs)
}

func readDocument(loader Loader, location string) (*etree.Document, error) {
	rc, err := loader.Open(location)
	if err != nil {
		return nil, &LoadError{Location: location, Message: "failed to open schema", Err: err}
	}
	defer func() { _ = rc.Close() }()

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(rc); err != nil {
		return nil, &LoadError{Location: location, Message: "invalid XML", Err: err}
	}
	if doc.Root() == nil {
		return nil, &LoadError{Location: location, Message: "empty document"}
	}
	return doc, nil
}
