package main

import (
	"fmt"

	"github.com/ochairo/pyapp-maint/internal/domain-adapters/gateways"
	orchestrators "github.com/ochairo/pyapp-maint/internal/domain-orchestrators"
	"github.com/ochairo/pyapp-maint/internal/domain/entities"
	"github.com/ochairo/pyapp-maint/internal/domain/services"
	"github.com/ochairo/pyapp-maint/internal/external-adapters/source"
	"github.com/ochairo/pyapp-maint/internal/external-adapters/toml"
	"github.com/spf13/cobra"
)

var validateOptionsCmd = &cobra.Command{
	Use:   "validate-options",
	Short: "Check that every build option is passed through to cross builds",
	Long: `Collects the PYAPP_ options referenced by the build script and by the
exposed-command annotations, and compares them with the passthrough list of the
packaging manifest.

Exit Codes:
  0  Lists match
  1  Lists differ (a table is printed to stdout) or an error occurred`,
	Example: `  pyapp-maint validate-options
  pyapp-maint validate-options --manifest Cargo.toml --build-script build.rs`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		overrideString(cmd, "build-script", &app.config.Options.BuildScript)
		overrideString(cmd, "manifest", &app.config.Options.Manifest)
		overrideString(cmd, "commands-dir", &app.config.Options.CommandsDir)
		return executeValidateOptions(cmd, app.config)
	},
}

func init() {
	validateOptionsCmd.Flags().String("build-script", "", "Build script to scan for options (default from config: build.rs)")
	validateOptionsCmd.Flags().String("manifest", "", "Packaging manifest with the passthrough list (default from config: Cargo.toml)")
	validateOptionsCmd.Flags().String("commands-dir", "", "Directory of exposed command sources; empty disables the scan")
}

func executeValidateOptions(cmd *cobra.Command, config *entities.Config) error {
	orch := orchestrators.NewOptionOrchestrator(
		source.NewFileRepository(),
		toml.NewManifestRepository(),
		gateways.NewCommandFinder(),
		config.Options,
		app.logger,
	)

	diff, err := orch.ValidateOptions()
	if err != nil {
		return err
	}
	if diff.Matches() {
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), services.FormatDiff(diff))
	return services.ErrOptionsMismatch
}
