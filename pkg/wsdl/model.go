package wsdl

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/getmockd/wsdlgen/internal/warnings"
	"github.com/getmockd/wsdlgen/pkg/pipeline"
	"github.com/getmockd/wsdlgen/pkg/properties"
	"github.com/getmockd/wsdlgen/pkg/schema"
	"github.com/getmockd/wsdlgen/pkg/soap"
)

// DefaultTargetNamespacePrefix is the prefix bound to the target namespace.
const DefaultTargetNamespacePrefix = "tns"

// timestampLayout is the layout of the generation time in the documentation.
const timestampLayout = "2006-01-02 15:04:05.000"

// Side is the input or output half of an operation.
type Side struct {
	Validator pipeline.Validator
	// Root is the first message root; messages are named after it.
	Root           string
	Header         *QName
	HeaderOptional bool
	Body           *QName
	// Roots are the schemas declared by the validator, Schemas their
	// closure.
	Roots   []*schema.Resource
	Schemas []*schema.Resource
}

// Model is everything a WSDL is written from. It does not change after
// Build returns.
type Model struct {
	Name                  string
	FileName              string
	TargetNamespace       string
	TargetNamespacePrefix string
	SOAPVersion           soap.Version
	Documentation         string
	ESB                   bool

	Input  Side
	Output *Side

	Listeners  []pipeline.Listener
	HTTPActive bool
	JMSActive  bool

	// Schemas is the closure of both sides in collection order, Grouping
	// its grouping by namespace. RootGroups groups only the declared
	// schemas and is what the types section includes.
	Schemas    []*schema.Resource
	Grouping   *schema.Grouping
	RootGroups []*schema.Group

	// Warnings is a snapshot of the warnings found while building.
	Warnings []string

	props     properties.Provider
	esbAction string
}

// Build resolves adapter into a Model.
func Build(a *pipeline.Adapter, opts Options) (*Model, error) {
	opts = opts.withDefaults()
	c := &schema.Collector{Loader: opts.Loader, Cache: opts.Cache, Logger: opts.Logger}
	return build(a, opts, c, warnings.New(), opts.Logger)
}

func build(a *pipeline.Adapter, opts Options, c *schema.Collector, sink *warnings.Sink, logger *slog.Logger) (*Model, error) {
	if a == nil || a.Name == "" {
		return nil, ErrNoAdapterName
	}
	if a.InputValidator == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoInputValidator, a.Name)
	}
	for _, v := range []pipeline.Validator{a.InputValidator, a.OutputValidator} {
		if v == nil {
			continue
		}
		if err := v.ConfigurationError(); err != nil {
			return nil, &ValidatorError{Validator: v.Name(), Cause: err}
		}
	}

	n := resolveNaming(a, opts.Properties, opts.Convention, sink.Add)
	m := &Model{
		Name:                  a.Name,
		FileName:              n.fileName,
		TargetNamespace:       n.targetNamespace,
		TargetNamespacePrefix: opts.TargetNamespacePrefix,
		SOAPVersion:           a.InputValidator.SOAPVersion(),
		ESB:                   n.esb,
		Listeners:             a.Listeners,
		HTTPActive:            a.HTTPActive(),
		JMSActive:             a.JMSActive(),
		props:                 opts.Properties,
		esbAction:             n.esbAction,
	}
	m.Documentation = documentation(m.FileName, a.InputValidator, opts)

	serviceNS := n.serviceNamespace
	in, err := collectSide(c, a.InputValidator, serviceNS)
	if err != nil {
		return nil, err
	}
	m.Input = in
	var out *Side
	if a.OutputValidator != nil {
		s, err := collectSide(c, a.OutputValidator, serviceNS)
		if err != nil {
			return nil, err
		}
		out = &s
		m.Output = out
	}

	var roots []*schema.Resource
	m.Schemas, roots = in.Schemas, in.Roots
	if out != nil {
		m.Schemas = union(m.Schemas, out.Schemas)
		roots = union(roots, out.Roots)
	}
	m.Grouping = schema.GroupByNamespace(m.Schemas, sink)
	m.RootGroups = schema.GroupByNamespace(roots, warnings.New()).Groups
	logger.Debug("allocated namespace prefixes",
		"schemas", len(m.Schemas),
		"namespaces", len(m.Grouping.Groups),
		"prefixes", m.Grouping.Prefixes.Len())

	m.resolveSide(&m.Input, "inputValidator", sink, logger)
	if out != nil {
		m.resolveSide(out, "outputValidator", sink, logger)
	}

	m.Warnings = sink.List()
	return m, nil
}

// collectSide loads the schemas of v and their closure. A validator with a
// single schema gets the service namespace attached to it; otherwise SOAP
// envelope schemas are left out.
func collectSide(c *schema.Collector, v pipeline.Validator, serviceNS string) (Side, error) {
	s := Side{Validator: v}

	var declared []*schema.Resource
	if loc := v.Schema(); loc != "" {
		if serviceNS == "" {
			return s, fmt.Errorf("%w: %s", ErrSchemaWithoutServiceNamespace, v.Name())
		}
		declared = []*schema.Resource{{Location: loc, Namespace: serviceNS, AddNamespace: true}}
	} else {
		// declared envelope schemas are never opened
		declared = withoutEnvelopes(v.Schemas())
	}

	loaded, err := c.LoadAll(declared)
	if err != nil {
		return s, fmt.Errorf("loading schemas of validator %q: %w", v.Name(), err)
	}
	s.Roots = withoutEnvelopes(loaded)

	closure, err := c.Collect(s.Roots)
	if err != nil {
		return s, fmt.Errorf("collecting schemas of validator %q: %w", v.Name(), err)
	}
	s.Schemas = withoutEnvelopes(closure)
	return s, nil
}

func (m *Model) resolveSide(s *Side, kind string, sink *warnings.Sink, logger *slog.Logger) {
	v := s.Validator
	spec := v.MessageRoot()
	s.Root = firstRoot(spec)
	if strings.Contains(spec, ",") {
		logger.Warn("validator declares multiple root elements, using the first",
			"validator", v.Name(), "roots", spec, "side", kind)
		sink.Addf("Validator '%s' declares multiple root elements '%s'; only '%s' is used", v.Name(), spec, s.Root)
	}

	prefixes := m.Grouping.Prefixes
	if header := v.SOAPHeader(); strings.TrimSpace(header) != "" {
		s.Header = resolveElement(s.Schemas, prefixes, header, v.SOAPHeaderNamespace(), sink.Add)
		s.HeaderOptional = headerOptional(header)
	}
	if strings.TrimSpace(spec) == "" {
		sink.Add("Attribute root for " + kind + " not found or empty")
		return
	}
	s.Body = resolveElement(s.Schemas, prefixes, spec, "", sink.Add)
}

// sides returns the input side and, when present, the output side.
func (m *Model) sides() []*Side {
	out := []*Side{&m.Input}
	if m.Output != nil {
		out = append(out, m.Output)
	}
	return out
}

// soapListeners returns the listeners that contribute an operation.
func (m *Model) soapListeners() []pipeline.Listener {
	var out []pipeline.Listener
	for _, l := range m.Listeners {
		if l.IsSOAP() {
			out = append(out, l)
		}
	}
	return out
}

func (m *Model) listenersOf(kind pipeline.Kind) []pipeline.Listener {
	var out []pipeline.Listener
	for _, l := range m.Listeners {
		if l.Kind == kind {
			out = append(out, l)
		}
	}
	return out
}

func documentation(fileName string, in pipeline.Validator, opts Options) string {
	doc := opts.Documentation
	if doc == "" {
		var b strings.Builder
		b.WriteString("Generated")
		if opts.GenerationInfo != "" {
			b.WriteString(" " + opts.GenerationInfo)
		}
		b.WriteString(" as " + fileName + ".wsdl on " + opts.Now().Format(timestampLayout) + ".")
		doc = b.String()
	}
	return doc + in.Documentation()
}

func withoutEnvelopes(rs []*schema.Resource) []*schema.Resource {
	out := make([]*schema.Resource, 0, len(rs))
	for _, r := range rs {
		if !soap.IsEnvelopeNamespace(r.Namespace) {
			out = append(out, r)
		}
	}
	return out
}

// union appends the resources of b not already in a, by key.
func union(a, b []*schema.Resource) []*schema.Resource {
	seen := make(map[string]bool, len(a))
	out := make([]*schema.Resource, 0, len(a)+len(b))
	for _, r := range a {
		seen[r.Key()] = true
		out = append(out, r)
	}
	for _, r := range b {
		if !seen[r.Key()] {
			seen[r.Key()] = true
			out = append(out, r)
		}
	}
	return out
}
