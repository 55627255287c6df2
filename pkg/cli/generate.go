package cli

import (
	"fmt"
	"io"

	"github.com/getmockd/wsdlgen/pkg/cli/internal/flags"
	"github.com/getmockd/wsdlgen/pkg/cli/internal/output"
	"github.com/getmockd/wsdlgen/pkg/properties"
	"github.com/getmockd/wsdlgen/pkg/wsdl"
	"github.com/spf13/cobra"
)

var (
	genOutput        string
	genZip           bool
	genIndent        bool
	genIncludes      bool
	genLocation      string
	genProperties    string
	genSet           flags.KeyValues
	genInfo          string
	genDocumentation string
	genPrefix        string
)

var generateCmd = &cobra.Command{
	Use:     "generate <definition-file> [adapter]",
	Aliases: []string{"gen"},
	Short:   "Generate the WSDL of an adapter",
	Long: `Generate the WSDL of an adapter from a definition file.

The adapter may be omitted when the file defines only one. The WSDL is written
to stdout unless --output is given; with --zip the document is bundled with
all schemas it references into <file>.zip. Warnings are printed to stderr and
also appear as comments at the end of the document.`,
	Example: `  # Print the WSDL of the only adapter
  wsdlgen generate adapters.yaml

  # Write a bundle with the schemas next to the WSDL
  wsdlgen generate adapters.yaml OrderService --zip

  # Override the service address
  wsdlgen generate adapters.yaml --set wsdl.OrderService.location=http://esb/orders`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&genOutput, "output", "o", "", "Output file ('-' for stdout)")
	generateCmd.Flags().BoolVar(&genZip, "zip", false, "Write a ZIP bundle with the WSDL and its schemas")
	generateCmd.Flags().BoolVar(&genIndent, "indent", true, "Indent the document")
	generateCmd.Flags().BoolVar(&genIncludes, "includes", false, "Reference schemas with xsd:include instead of inlining them")
	generateCmd.Flags().StringVar(&genLocation, "location", "", "Default service address (default: ${wsdl.<adapter>.location})")
	generateCmd.Flags().StringVarP(&genProperties, "properties", "p", "", "Properties file (default: the one named in the definition file)")
	generateCmd.Flags().Var(&genSet, "set", "Set a property (repeatable)")
	generateCmd.Flags().StringVar(&genInfo, "info", "", "Generation info mentioned in the documentation")
	generateCmd.Flags().StringVar(&genDocumentation, "documentation", "", "Replace the generated documentation")
	generateCmd.Flags().StringVar(&genPrefix, "tns-prefix", wsdl.DefaultTargetNamespacePrefix, "Prefix of the target namespace")
}

type generateResult struct {
	Adapter         string   `json:"adapter"`
	File            string   `json:"file"`
	TargetNamespace string   `json:"targetNamespace"`
	Output          string   `json:"output"`
	Warnings        []string `json:"warnings"`
}

func runGenerate(cmd *cobra.Command, args []string) error {
	def, err := loadDefinition(args[0], genProperties, genSet)
	if err != nil {
		return err
	}
	name := ""
	if len(args) > 1 {
		name = args[1]
	}
	a, err := def.adapter(name)
	if err != nil {
		return err
	}

	opts := def.options()
	opts.Indent = genIndent
	opts.UseIncludes = genIncludes
	opts.GenerationInfo = genInfo
	opts.Documentation = genDocumentation
	opts.TargetNamespacePrefix = genPrefix

	g, err := wsdl.New(a, opts)
	if err != nil {
		return fmt.Errorf("cannot generate wsdl for %s: %w", a.Name, err)
	}

	location := genLocation
	if location == "" {
		location = properties.Placeholder("wsdl." + a.Name + ".location")
	}
	write, ext := g.Generate, ".wsdl"
	if genZip {
		write, ext = g.Zip, ".zip"
	}

	dest := genOutput
	if dest == "" && (genZip || jsonOutput) {
		dest = g.FileName() + ext
	}
	if dest == "" || dest == "-" {
		if err := write(cmd.OutOrStdout(), location); err != nil {
			return fmt.Errorf("failed to write %s: %w", g.FileName()+ext, err)
		}
		output.Warnings(cmd.ErrOrStderr(), g.Warnings())
		return nil
	}

	if err := writeFile(dest, func(w io.Writer) error { return write(w, location) }); err != nil {
		return fmt.Errorf("failed to write %s: %w", dest, err)
	}
	logger.Info("generated wsdl", "adapter", a.Name, "output", dest, "warnings", len(g.Warnings()))

	return printResult(cmd.OutOrStdout(), generateResult{
		Adapter:         a.Name,
		File:            g.FileName(),
		TargetNamespace: g.TargetNamespace(),
		Output:          dest,
		Warnings:        nonNil(g.Warnings()),
	}, func() {
		fmt.Fprintf(cmd.OutOrStdout(), "Generated %s (%s)\n", dest, g.TargetNamespace())
		output.Warnings(cmd.ErrOrStderr(), g.Warnings())
	})
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
