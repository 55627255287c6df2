package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the wsdlgen version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		return printResult(w, map[string]string{
			"version":   Version,
			"commit":    Commit,
			"buildDate": BuildDate,
			"go":        runtime.Version(),
		}, func() {
			fmt.Fprintf(w, "wsdlgen %s (commit %s, built %s, %s)\n", Version, Commit, BuildDate, runtime.Version())
		})
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
