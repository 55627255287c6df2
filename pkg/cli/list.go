package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/getmockd/wsdlgen/pkg/cli/internal/output"
	"github.com/getmockd/wsdlgen/pkg/wsdl"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var listProperties string

var listCmd = &cobra.Command{
	Use:   "list <definition-file>",
	Short: "List the adapters of a definition file",
	Long: `List the adapters of a definition file with the file name, target
namespace and transports their WSDL resolves to.`,
	Args: cobra.ExactArgs(1),
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVarP(&listProperties, "properties", "p", "", "Properties file (default: the one named in the definition file)")
}

type adapterSummary struct {
	Name            string   `json:"name"`
	File            string   `json:"file,omitempty"`
	TargetNamespace string   `json:"targetNamespace,omitempty"`
	Transports      []string `json:"transports"`
	ESB             bool     `json:"esb"`
	Warnings        []string `json:"warnings"`
	Error           string   `json:"error,omitempty"`
}

func runList(cmd *cobra.Command, args []string) error {
	def, err := loadDefinition(args[0], listProperties, nil)
	if err != nil {
		return err
	}

	opts := def.options()
	var summaries []adapterSummary
	for _, a := range def.file.AllAdapters(def.fsys) {
		s := adapterSummary{Name: a.Name, Transports: []string{}, Warnings: []string{}}
		m, err := wsdl.Build(a, opts)
		if err != nil {
			s.Error = err.Error()
			summaries = append(summaries, s)
			continue
		}
		s.File = m.FileName + ".wsdl"
		s.TargetNamespace = m.TargetNamespace
		s.ESB = m.ESB
		if m.HTTPActive {
			s.Transports = append(s.Transports, "http")
		}
		if m.JMSActive {
			s.Transports = append(s.Transports, "jms")
		}
		s.Warnings = append(s.Warnings, m.Warnings...)
		summaries = append(summaries, s)
	}

	return printResult(cmd.OutOrStdout(), summaries, func() {
		title := cases.Title(language.English)
		tw := output.Table(cmd.OutOrStdout())
		fmt.Fprintln(tw, "ADAPTER\tFILE\tTARGET NAMESPACE\tTRANSPORTS\tWARNINGS")
		for _, s := range summaries {
			if s.Error != "" {
				fmt.Fprintf(tw, "%s\t-\t-\t-\t%s\n", s.Name, s.Error)
				continue
			}
			transports := make([]string, len(s.Transports))
			for i, t := range s.Transports {
				transports[i] = title.String(t)
			}
			shown := strings.Join(transports, ", ")
			if shown == "" {
				shown = "none"
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", s.Name, s.File, s.TargetNamespace, shown, strconv.Itoa(len(s.Warnings)))
		}
		_ = tw.Flush()
	})
}
