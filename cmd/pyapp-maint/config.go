package main

import (
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/ochairo/pyapp-maint/internal/domain/entities"
	"github.com/ochairo/pyapp-maint/internal/domain/interfaces"
	"github.com/ochairo/pyapp-maint/internal/external-adapters/logging"
	"github.com/ochairo/pyapp-maint/internal/external-adapters/yaml"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const defaultConfigFile = ".pyapp-maint.yml"

// app holds what every subcommand needs once flags are parsed
var app struct {
	config *entities.Config
	logger interfaces.Logger
}

func loadApp(cmd *cobra.Command) error {
	app.logger = logging.NewSlogLogger(cmd.ErrOrStderr(), rootFlags.verbose)

	// Variables already set in the environment win over .env
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return errors.Wrap(err, "failed to load .env")
	}

	config, err := yaml.NewConfigRepository().Load(rootFlags.config)
	if err != nil {
		return err
	}
	app.config = config

	app.logger.Debug("Loaded configuration", interfaces.F("file", rootFlags.config))
	return nil
}

// overrideString replaces dst with the flag value when the flag was given
func overrideString(cmd *cobra.Command, name string, dst *string) {
	if !cmd.Flags().Changed(name) {
		return
	}
	if value, err := cmd.Flags().GetString(name); err == nil {
		*dst = value
	}
}

// releaseToken reads the API token from the configured environment variable
func releaseToken(config entities.ReleasesConfig) string {
	return os.Getenv(config.TokenEnv)
}
