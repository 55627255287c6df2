package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/getmockd/wsdlgen/pkg/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	initOutput string
	initForce  bool
	initAns    initAnswers
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter adapter definition file",
	Long: `Create a starter adapter definition file with a single adapter.

Without --name the values are asked for interactively.`,
	Example: `  # Interactive setup
  wsdlgen init

  # Non-interactive
  wsdlgen init --name OrderService --namespace urn:example:orders --schema xsd/order.xsd`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().StringVarP(&initOutput, "output", "o", "adapters.yaml", "Output filename")
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing file")
	initCmd.Flags().StringVar(&initAns.Name, "name", "", "Adapter name")
	initCmd.Flags().StringVar(&initAns.Namespace, "namespace", "", "Namespace of the request schema")
	initCmd.Flags().StringVar(&initAns.Schema, "schema", "xsd/request.xsd", "Request schema file")
	initCmd.Flags().StringVar(&initAns.Root, "root", "", "Request root element (default: <name>_Request)")
	initCmd.Flags().StringVar(&initAns.Listener, "listener", "http", "Listener type (http, jms, java)")
	initCmd.Flags().StringVar(&initAns.SOAPVersion, "soap-version", "1.1", "SOAP version (1.1, 1.2)")
	initCmd.Flags().BoolVar(&initAns.ESB, "esb", false, "Follow the ESB naming convention")
}

// initAnswers are the values a starter file is made from.
type initAnswers struct {
	Name        string
	Namespace   string
	Schema      string
	Root        string
	Listener    string
	SOAPVersion string
	ESB         bool
}

func (a initAnswers) file() *config.File {
	root := a.Root
	if root == "" {
		root = a.Name + "_Request"
	}
	v := &config.ValidatorDef{
		Name:        a.Name + "Validator",
		Root:        root,
		SOAPVersion: a.SOAPVersion,
		ESB:         a.ESB,
	}
	if a.Namespace != "" {
		v.SchemaLocation = a.Namespace + " " + a.Schema
	} else {
		v.Schemas = []string{a.Schema}
	}

	listener := config.ListenerDef{Type: a.Listener}
	if a.Listener == "jms" {
		listener.Destination = strings.ToLower(a.Name) + ".in"
	}
	return &config.File{
		Version: "1",
		Adapters: []config.AdapterDef{{
			Name:           a.Name,
			InputValidator: v,
			Listeners:      []config.ListenerDef{listener},
		}},
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(initOutput); err == nil && !initForce {
		return fmt.Errorf("file already exists: %s\n\nUse --force to overwrite", initOutput)
	}

	ans := initAns
	if !cmd.Flags().Changed("name") {
		if err := runInitForm(&ans); err != nil {
			return err
		}
	}
	if strings.TrimSpace(ans.Name) == "" {
		return errors.New("adapter name is required")
	}

	data, err := yaml.Marshal(ans.file())
	if err != nil {
		return fmt.Errorf("failed to generate YAML: %w", err)
	}
	data = append([]byte("# Adapter definitions\n# Generated by: wsdlgen init\n\n"), data...)
	if _, err := config.Parse(data); err != nil {
		return fmt.Errorf("generated definition is invalid: %w", err)
	}

	if err := os.WriteFile(initOutput, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	w := cmd.OutOrStdout()
	return printResult(w, map[string]any{
		"file":    initOutput,
		"adapter": ans.Name,
	}, func() {
		fmt.Fprintf(w, "Created %s\n\n", initOutput)
		fmt.Fprintln(w, "Next steps:")
		fmt.Fprintf(w, "  wsdlgen generate %s %s\n", initOutput, ans.Name)
	})
}

// runInitForm asks for the answers flags did not provide.
func runInitForm(ans *initAnswers) error {
	required := func(what string) func(string) error {
		return func(s string) error {
			if strings.TrimSpace(s) == "" {
				return errors.New(what + " is required")
			}
			return nil
		}
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Adapter name").
				Placeholder("OrderService").
				Value(&ans.Name).
				Validate(required("adapter name")),
			huh.NewInput().
				Title("Request schema namespace").
				Placeholder("urn:example:orders").
				Value(&ans.Namespace),
			huh.NewInput().
				Title("Request schema file").
				Value(&ans.Schema).
				Validate(required("schema file")),
			huh.NewInput().
				Title("Request root element").
				Description("Leave empty for <name>_Request").
				Value(&ans.Root),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Listener").
				Options(
					huh.NewOption("SOAP over HTTP", "http"),
					huh.NewOption("SOAP over JMS", "jms"),
					huh.NewOption("Java (no SOAP transport)", "java"),
				).
				Value(&ans.Listener),
			huh.NewSelect[string]().
				Title("SOAP version").
				Options(huh.NewOptions("1.1", "1.2")...).
				Value(&ans.SOAPVersion),
			huh.NewConfirm().
				Title("Follow the ESB naming convention?").
				Value(&ans.ESB),
		),
	)
	return form.Run()
}
