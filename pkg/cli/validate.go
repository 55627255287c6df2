package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/beevik/etree"
	"github.com/getmockd/wsdlgen/pkg/soap"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <wsdl-file>",
	Short: "Check the structure of a WSDL file",
	Long: `Check the structure of a WSDL 1.1 file: every QName must use a declared
prefix, messages, port types and bindings must be defined where they are
referenced, and elements of inlined schemas must be declared.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

// wsdlSummary is the outcome of checking a WSDL document.
type wsdlSummary struct {
	Valid           bool     `json:"valid"`
	File            string   `json:"file"`
	TargetNamespace string   `json:"targetNamespace"`
	Services        []string `json:"services"`
	PortTypes       int      `json:"portTypes"`
	Bindings        int      `json:"bindings"`
	Operations      []string `json:"operations"`
	Messages        int      `json:"messages"`
	Problems        []string `json:"problems,omitempty"`
}

func runValidate(cmd *cobra.Command, args []string) error {
	wsdlFile := args[0]

	data, err := os.ReadFile(wsdlFile)
	if err != nil {
		return fmt.Errorf("failed to read WSDL file: %w", err)
	}
	summary, err := inspectWSDL(data)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidWSDL, err)
	}
	summary.File = wsdlFile

	w := cmd.OutOrStdout()
	if err := printResult(w, summary, func() {
		if summary.Valid {
			fmt.Fprintf(w, "WSDL valid: %s\n", wsdlFile)
		} else {
			fmt.Fprintf(w, "WSDL invalid: %s\n", wsdlFile)
		}
		fmt.Fprintf(w, "  Target Namespace: %s\n", summary.TargetNamespace)
		fmt.Fprintf(w, "  Services: %d\n", len(summary.Services))
		fmt.Fprintf(w, "  Port Types: %d\n", summary.PortTypes)
		fmt.Fprintf(w, "  Bindings: %d\n", summary.Bindings)
		fmt.Fprintf(w, "  Operations: %d\n", len(summary.Operations))
		fmt.Fprintf(w, "  Messages: %d\n", summary.Messages)

		if len(summary.Operations) > 0 {
			fmt.Fprintln(w, "\nOperations:")
			for _, name := range summary.Operations {
				fmt.Fprintf(w, "  %s\n", name)
			}
		}
		if len(summary.Problems) > 0 {
			fmt.Fprintln(w, "\nProblems:")
			for _, p := range summary.Problems {
				fmt.Fprintf(w, "  %s\n", p)
			}
		}
	}); err != nil {
		return err
	}

	if !summary.Valid {
		return fmt.Errorf("%w: %d problems in %s", ErrInvalidWSDL, len(summary.Problems), wsdlFile)
	}
	return nil
}

// inspectWSDL checks a WSDL document. Documents that are not WSDL 1.1 at
// all are an error; everything else is collected in the summary.
func inspectWSDL(data []byte) (*wsdlSummary, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("invalid XML: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return nil, errors.New("empty document")
	}
	if root.Tag != "definitions" || root.NamespaceURI() != soap.WSDLNamespace {
		return nil, fmt.Errorf("root element must be 'definitions' in namespace %s, got '%s'", soap.WSDLNamespace, root.FullTag())
	}

	c := &wsdlChecker{
		summary:  &wsdlSummary{TargetNamespace: root.SelectAttrValue("targetNamespace", ""), Services: []string{}, Operations: []string{}},
		defined:  make(map[string]map[string]bool),
		elements: make(map[string]map[string]bool),
	}
	c.collectSchemas(root)

	messages := wsdlChildren(root, "message")
	portTypes := wsdlChildren(root, "portType")
	bindings := wsdlChildren(root, "binding")
	services := wsdlChildren(root, "service")
	c.summary.Messages = len(messages)
	c.summary.PortTypes = len(portTypes)
	c.summary.Bindings = len(bindings)

	for _, kind := range []struct {
		name string
		els  []*etree.Element
	}{{"message", messages}, {"portType", portTypes}, {"binding", bindings}} {
		c.defined[kind.name] = make(map[string]bool)
		for _, el := range kind.els {
			c.defined[kind.name][el.SelectAttrValue("name", "")] = true
		}
	}

	for _, m := range messages {
		for _, part := range wsdlChildren(m, "part") {
			if ref := part.SelectAttrValue("element", ""); ref != "" {
				c.checkElement(part, ref)
			}
		}
	}
	for _, pt := range portTypes {
		ptName := pt.SelectAttrValue("name", "unnamed")
		for _, op := range wsdlChildren(pt, "operation") {
			c.summary.Operations = append(c.summary.Operations, ptName+"."+op.SelectAttrValue("name", "unnamed"))
			for _, dir := range []string{"input", "output", "fault"} {
				for _, el := range wsdlChildren(op, dir) {
					c.checkRef(el, "message", el.SelectAttrValue("message", ""))
				}
			}
		}
	}
	for _, b := range bindings {
		c.checkRef(b, "portType", b.SelectAttrValue("type", ""))
	}
	for _, svc := range services {
		c.summary.Services = append(c.summary.Services, svc.SelectAttrValue("name", "unnamed"))
		for _, port := range wsdlChildren(svc, "port") {
			c.checkRef(port, "binding", port.SelectAttrValue("binding", ""))
		}
	}

	c.summary.Valid = len(c.summary.Problems) == 0
	return c.summary, nil
}

type wsdlChecker struct {
	summary *wsdlSummary
	// defined holds the names of messages, port types and bindings.
	defined map[string]map[string]bool
	// elements holds the top-level elements of inlined schemas by
	// namespace. Namespaces whose schemas are only included are absent.
	elements map[string]map[string]bool
}

func (c *wsdlChecker) problemf(format string, args ...any) {
	c.summary.Problems = append(c.summary.Problems, fmt.Sprintf(format, args...))
}

func (c *wsdlChecker) collectSchemas(root *etree.Element) {
	for _, types := range wsdlChildren(root, "types") {
		for _, s := range types.ChildElements() {
			if s.Tag != "schema" || s.NamespaceURI() != soap.XSDNamespace {
				continue
			}
			ns := s.SelectAttrValue("targetNamespace", "")
			for _, el := range s.ChildElements() {
				if el.Tag != "element" || el.NamespaceURI() != soap.XSDNamespace {
					continue
				}
				if c.elements[ns] == nil {
					c.elements[ns] = make(map[string]bool)
				}
				c.elements[ns][el.SelectAttrValue("name", "")] = true
			}
		}
	}
}

// checkRef checks a QName reference to a WSDL definition of kind.
func (c *wsdlChecker) checkRef(el *etree.Element, kind, ref string) {
	if ref == "" {
		c.problemf("%s without %s reference", el.FullTag(), kind)
		return
	}
	ns, local, ok := c.resolve(el, ref)
	if !ok {
		return
	}
	if ns != c.summary.TargetNamespace {
		c.problemf("%s '%s' is not in the target namespace", kind, ref)
		return
	}
	if !c.defined[kind][local] {
		c.problemf("%s '%s' is not defined", kind, ref)
	}
}

// checkElement checks the element a message part refers to.
func (c *wsdlChecker) checkElement(part *etree.Element, ref string) {
	ns, local, ok := c.resolve(part, ref)
	if !ok {
		return
	}
	if names, inlined := c.elements[ns]; inlined && !names[local] {
		c.problemf("element '%s' is not declared in the types of namespace '%s'", ref, ns)
	}
}

// resolve splits a QName and looks up the namespace of its prefix.
func (c *wsdlChecker) resolve(el *etree.Element, qname string) (ns, local string, ok bool) {
	prefix, local, found := strings.Cut(qname, ":")
	if !found {
		prefix, local = "", qname
	}
	ns, ok = lookupNamespace(el, prefix)
	if !ok {
		c.problemf("prefix '%s' of '%s' is not declared", prefix, qname)
	}
	return ns, local, ok
}

// lookupNamespace finds the namespace bound to prefix in scope of el.
func lookupNamespace(el *etree.Element, prefix string) (string, bool) {
	for e := el; e != nil; e = e.Parent() {
		for _, a := range e.Attr {
			if prefix == "" && a.Space == "" && a.Key == "xmlns" {
				return a.Value, true
			}
			if prefix != "" && a.Space == "xmlns" && a.Key == prefix {
				return a.Value, true
			}
		}
	}
	return "", prefix == ""
}

// wsdlChildren returns the children of parent in the WSDL namespace with
// the given local name.
func wsdlChildren(parent *etree.Element, tag string) []*etree.Element {
	var out []*etree.Element
	for _, el := range parent.ChildElements() {
		if el.Tag == tag && el.NamespaceURI() == soap.WSDLNamespace {
			out = append(out, el)
		}
	}
	return out
}
