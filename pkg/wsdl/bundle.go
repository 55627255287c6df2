package wsdl

import (
	"archive/zip"
	"fmt"
	"io"

	"github.com/getmockd/wsdlgen/pkg/schema"
)

// Zip writes a ZIP archive holding the WSDL as <FileName>.wsdl followed by
// every collected schema at its target path. The WSDL entry is byte for
// byte what Generate writes.
//
// Every schema document is bundled once, as written. Two different
// documents with the same target path cannot both be bundled: the first one
// is written and the other is reported through Warnings. Because the
// WSDL entry comes first these warnings are not part of the document.
func (g *Generator) Zip(w io.Writer, defaultLocation string) error {
	zw := zip.NewWriter(w)

	f, err := zw.Create(g.model.FileName + ".wsdl")
	if err != nil {
		return fmt.Errorf("creating wsdl entry: %w", err)
	}
	if err := g.Generate(f, defaultLocation); err != nil {
		return err
	}

	written := make(map[string]*schema.Resource)
	bundled := make(map[string]bool)
	for _, r := range g.model.Schemas {
		if bundled[r.Location] {
			// an included document reached from several namespaces
			continue
		}
		bundled[r.Location] = true
		if first, ok := written[r.Target]; ok {
			g.zipSink.Addf("Duplicate XSD target '%s' for '%s' (already written from '%s')", r.Target, r, first)
			g.logger.Warn("duplicate schema target in bundle", "target", r.Target, "schema", r.String(), "first", first.String())
			continue
		}
		written[r.Target] = r

		f, err := zw.Create(r.Target)
		if err != nil {
			return fmt.Errorf("creating entry %s: %w", r.Target, err)
		}
		if err := schema.WriteStandalone(f, g.collector, r); err != nil {
			return fmt.Errorf("writing %s: %w", r.Target, err)
		}
	}
	g.logger.Debug("bundled wsdl", "file", g.model.FileName+".wsdl", "schemas", len(written))

	return zw.Close()
}
