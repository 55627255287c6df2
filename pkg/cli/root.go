package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/getmockd/wsdlgen/pkg/logging"
	"github.com/spf13/cobra"
)

var (
	// Persistent flags available to all subcommands
	jsonOutput bool
	logLevel   string
	logFormat  string

	// logger is configured from --log-level and --log-format before any
	// subcommand runs.
	logger = logging.Nop()

	// Version is injected during build
	Version = "dev"
	// Commit is injected during build
	Commit = "none"
	// BuildDate is injected during build
	BuildDate = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "wsdlgen",
	Short: "wsdlgen generates WSDL 1.1 documents for message pipelines",
	Long: `wsdlgen generates document/literal WSDL 1.1 documents for the adapters of
a message pipeline. Adapters, their validators and listeners are described in a
YAML definition file; the schemas the validators reference are collected,
merged per namespace and embedded in the types section.

Target namespaces, SOAP actions and service locations can be overridden with a
properties file (wsdl.<adapter>.targetNamespace, wsdl.<adapter>.<listener>.soapAction,
wsdl.<adapter>.<listener>.location and their less specific variants).`,
	SilenceUsage:  true,
	SilenceErrors: true, // We handle errors in Main()
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := logging.FromFlags(logLevel, logFormat, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		logger = l
		slog.SetDefault(l)
		return nil
	},
}

// Execute runs the command line and exits with its status.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	os.Exit(Main())
}

// Main runs the command line and returns the exit status.
func Main() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output command results in JSON format")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format (text, json)")
}
