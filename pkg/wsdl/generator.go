package wsdl

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/getmockd/wsdlgen/internal/warnings"
	"github.com/getmockd/wsdlgen/pkg/esb"
	"github.com/getmockd/wsdlgen/pkg/logging"
	"github.com/getmockd/wsdlgen/pkg/pipeline"
	"github.com/getmockd/wsdlgen/pkg/properties"
	"github.com/getmockd/wsdlgen/pkg/schema"
	"github.com/google/uuid"
)

// Options tune a generation.
type Options struct {
	// Indent writes the document indented by two spaces.
	Indent bool
	// UseIncludes writes the types section as includes of the schema
	// files instead of inlining their content.
	UseIncludes bool
	// GenerationInfo is mentioned in the generated documentation.
	GenerationInfo string
	// Documentation replaces the generated documentation text.
	Documentation string
	// TargetNamespacePrefix defaults to DefaultTargetNamespacePrefix.
	TargetNamespacePrefix string

	Properties properties.Provider
	Convention esb.Convention

	// Now defaults to time.Now.
	Now func() time.Time
	// Loader defaults to the current directory.
	Loader schema.Loader
	// Cache may be shared between generators.
	Cache  *schema.Cache
	Logger *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.TargetNamespacePrefix == "" {
		o.TargetNamespacePrefix = DefaultTargetNamespacePrefix
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Loader == nil {
		o.Loader = schema.NewFSLoader(os.DirFS("."))
	}
	if o.Cache == nil {
		o.Cache = schema.NewCache()
	}
	if o.Logger == nil {
		o.Logger = logging.Nop()
	}
	return o
}

// Generator writes the WSDL of one adapter.
type Generator struct {
	model     *Model
	opts      Options
	collector *schema.Collector
	logger    *slog.Logger

	// sink holds the warnings written into the document, zipSink those
	// found while bundling, after the document was written.
	sink    *warnings.Sink
	zipSink *warnings.Sink
}

// New resolves adapter and returns a generator for it. Errors are returned
// for adapters a WSDL cannot be generated for; everything else is reported
// as a warning in the document.
func New(a *pipeline.Adapter, opts Options) (*Generator, error) {
	opts = opts.withDefaults()

	name := ""
	if a != nil {
		name = a.Name
	}
	logger := opts.Logger.With("adapter", name, "generation", uuid.NewString())

	g := &Generator{
		opts:    opts,
		logger:  logger,
		sink:    warnings.New(),
		zipSink: warnings.New(),
		collector: &schema.Collector{
			Loader: opts.Loader,
			Cache:  opts.Cache,
			Logger: logger,
		},
	}
	m, err := build(a, opts, g.collector, g.sink, logger)
	if err != nil {
		return nil, err
	}
	g.model = m
	return g, nil
}

// Model returns the resolved model.
func (g *Generator) Model() *Model {
	return g.model
}

// FileName returns the base name of the WSDL, without extension.
func (g *Generator) FileName() string {
	return g.model.FileName
}

// TargetNamespace returns the target namespace of the WSDL.
func (g *Generator) TargetNamespace() string {
	return g.model.TargetNamespace
}

// Warnings returns the warnings of the generation so far: those written
// into the document followed by those found while bundling.
func (g *Generator) Warnings() []string {
	return append(g.sink.List(), g.zipSink.List()...)
}

// Generate writes the WSDL to w. defaultLocation is the address of the
// HTTP port unless a location is configured.
func (g *Generator) Generate(w io.Writer, defaultLocation string) error {
	doc, err := g.document(defaultLocation)
	if err != nil {
		return err
	}
	_, err = doc.WriteTo(w)
	return err
}
