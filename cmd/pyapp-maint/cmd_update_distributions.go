package main

import (
	"fmt"

	"github.com/ochairo/pyapp-maint/internal/domain-adapters/gateways"
	orchestrators "github.com/ochairo/pyapp-maint/internal/domain-orchestrators"
	"github.com/ochairo/pyapp-maint/internal/domain/entities"
	"github.com/ochairo/pyapp-maint/internal/external-adapters/source"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var updateFlags struct {
	dryRun bool
	check  bool
}

var updateDistributionsCmd = &cobra.Command{
	Use:   "update-distributions",
	Short: "Refresh the default CPython distribution table",
	Long: `Lists every python-build-standalone release asset, keeps the newest build for
each (version, platform, architecture, ABI, variant) slot and rewrites the
DEFAULT_CPYTHON_DISTRIBUTIONS table of the build script.

The GitHub token is read from the variable named by releases.token_env
(GH_TOKEN by default); a .env file in the working directory is honoured.`,
	Example: `  pyapp-maint update-distributions
  pyapp-maint update-distributions --dry-run
  pyapp-maint update-distributions --check --build-script build.rs`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if updateFlags.dryRun && updateFlags.check {
			return errors.New("--dry-run and --check are mutually exclusive")
		}
		applyReleaseFlags(cmd, app.config)
		overrideString(cmd, "build-script", &app.config.Distributions.BuildScript)

		mode := orchestrators.UpdateWrite
		switch {
		case updateFlags.dryRun:
			mode = orchestrators.UpdateDryRun
		case updateFlags.check:
			mode = orchestrators.UpdateCheck
		}
		return executeUpdateDistributions(cmd, app.config, mode)
	},
}

func init() {
	addReleaseFlags(updateDistributionsCmd)
	updateDistributionsCmd.Flags().String("build-script", "", "Build script holding the distribution table (default from config: build.rs)")
	updateDistributionsCmd.Flags().BoolVar(&updateFlags.dryRun, "dry-run", false, "Print the updated build script instead of writing it")
	updateDistributionsCmd.Flags().BoolVar(&updateFlags.check, "check", false, "Fail if the build script is out of date, without writing")
}

func executeUpdateDistributions(cmd *cobra.Command, config *entities.Config, mode orchestrators.UpdateMode) error {
	orch, err := newDistributionOrchestrator(config)
	if err != nil {
		return err
	}

	result, err := orch.UpdateDistributions(cmd.Context(), mode)
	if err != nil {
		return err
	}

	if mode == orchestrators.UpdateDryRun {
		fmt.Fprint(cmd.OutOrStdout(), result.Content)
		return nil
	}
	app.logger.Debug(result.Summary())
	return nil
}

func newDistributionOrchestrator(config *entities.Config) (*orchestrators.DistributionOrchestrator, error) {
	gateway, err := gateways.NewHTTPGitHubGateway(
		releaseToken(config.Releases),
		gateways.WithAPIURL(config.Releases.APIURL),
		gateways.WithAPIVersion(config.Releases.APIVersion),
		gateways.WithTimeout(config.Releases.Timeout),
		gateways.WithLogger(app.logger),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "token from $%s", config.Releases.TokenEnv)
	}

	return orchestrators.NewDistributionOrchestrator(
		gateway,
		source.NewFileRepository(),
		orchestrators.DistributionOrchestratorConfig{
			Owner:       config.Releases.Owner,
			Repo:        config.Releases.Repo,
			BuildScript: config.Distributions.BuildScript,
			TableMarker: config.Distributions.TableMarker,
			EndMarker:   config.Distributions.EndMarker,
			Platforms:   config.Distributions.Platforms,
		},
		app.logger,
	), nil
}

func addReleaseFlags(cmd *cobra.Command) {
	cmd.Flags().String("owner", "", "Owner of the release repository (default from config: astral-sh)")
	cmd.Flags().String("repo", "", "Release repository (default from config: python-build-standalone)")
	cmd.Flags().String("api-url", "", "GitHub API base URL (default from config: https://api.github.com)")
}

func applyReleaseFlags(cmd *cobra.Command, config *entities.Config) {
	overrideString(cmd, "owner", &config.Releases.Owner)
	overrideString(cmd, "repo", &config.Releases.Repo)
	overrideString(cmd, "api-url", &config.Releases.APIURL)
}

