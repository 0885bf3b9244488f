package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "symat",
	Short: "symat - exact symbolic matrix calculator",
	Long: `symat evaluates matrix expressions over exact symbolic entries.

Matrix cells hold expressions like "2a^2 - 1/3"; the expression combines
named matrices with + - * / ^ and the operators T, INV, DET, TRACE, RANK
and RREF. All arithmetic is exact rational, no floating point.

Commands:
  eval     - evaluate a JSON request from a file or stdin
  version  - print the build version`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and reports the failure on stderr; the
// caller turns a non-nil error into the exit code.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "symat: %v\n", err)
	}

	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "TOML config file with evaluation limits")
}
