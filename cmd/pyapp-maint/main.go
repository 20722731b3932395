package main

import (
	"fmt"
	"os"

	"github.com/ochairo/pyapp-maint/internal/domain/services"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var rootFlags struct {
	config  string
	verbose bool
}

var rootCmd = &cobra.Command{
	Use:   "pyapp-maint",
	Short: "Maintenance tooling for the pyapp build script",
	Long: `pyapp-maint keeps generated parts of the pyapp sources in sync with upstream.

It refreshes the default CPython distribution table from the
python-build-standalone releases and checks that every PYAPP_ build option
is passed through to cross-compilation builds.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadApp(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootFlags.config, "config", defaultConfigFile, "Path to the tool configuration file")
	rootCmd.PersistentFlags().BoolVarP(&rootFlags.verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(updateDistributionsCmd)
	rootCmd.AddCommand(listDistributionsCmd)
	rootCmd.AddCommand(validateOptionsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		// A mismatch has already been reported as a table
		if !errors.Is(err, services.ErrOptionsMismatch) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
