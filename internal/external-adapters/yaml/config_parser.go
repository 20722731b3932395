// Package yaml provides YAML-based configuration parsing and repository implementations.
package yaml

import (
	"time"

	"github.com/ochairo/pyapp-maint/internal/domain/entities"
	"github.com/ochairo/pyapp-maint/internal/domain/services"
	"gopkg.in/yaml.v3"
)

// yamlConfig represents the raw YAML structure
type yamlConfig struct {
	Releases      yamlReleases      `yaml:"releases"`
	Distributions yamlDistributions `yaml:"distributions"`
	Options       yamlOptions       `yaml:"options"`
}

type yamlReleases struct {
	Owner          string `yaml:"owner"`
	Repo           string `yaml:"repo"`
	APIURL         string `yaml:"api_url"`
	APIVersion     string `yaml:"api_version"`
	TokenEnv       string `yaml:"token_env"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

type yamlDistributions struct {
	BuildScript string   `yaml:"build_script"`
	TableMarker string   `yaml:"table_marker"`
	EndMarker   string   `yaml:"end_marker"`
	Platforms   []string `yaml:"platforms"`
}

type yamlOptions struct {
	BuildScript   string   `yaml:"build_script"`
	Manifest      string   `yaml:"manifest"`
	ManifestPath  string   `yaml:"manifest_path"`
	CommandsDir   string   `yaml:"commands_dir"`
	CommandGroups []string `yaml:"command_groups"`
	Ignored       []string `yaml:"ignored"`
}

// ConfigParser parses YAML configuration files
type ConfigParser struct{}

// NewConfigParser creates a new YAML parser
func NewConfigParser() *ConfigParser {
	return &ConfigParser{}
}

// Parse parses YAML bytes into a Config, keeping defaults for absent fields
func (p *ConfigParser) Parse(data []byte) (*entities.Config, error) {
	var raw yamlConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, services.ErrConfig.Wrap(err)
	}

	if raw.Releases.TimeoutSeconds < 0 {
		return nil, services.ErrConfig.New("releases.timeout_seconds must not be negative")
	}

	cfg := entities.DefaultConfig()
	mergeReleases(&cfg.Releases, raw.Releases)
	mergeDistributions(&cfg.Distributions, raw.Distributions)
	mergeOptions(&cfg.Options, raw.Options)

	return cfg, nil
}

func mergeReleases(dst *entities.ReleasesConfig, src yamlReleases) {
	setString(&dst.Owner, src.Owner)
	setString(&dst.Repo, src.Repo)
	setString(&dst.APIURL, src.APIURL)
	setString(&dst.APIVersion, src.APIVersion)
	setString(&dst.TokenEnv, src.TokenEnv)
	if src.TimeoutSeconds > 0 {
		dst.Timeout = time.Duration(src.TimeoutSeconds) * time.Second
	}
}

func mergeDistributions(dst *entities.DistributionsConfig, src yamlDistributions) {
	setString(&dst.BuildScript, src.BuildScript)
	setString(&dst.TableMarker, src.TableMarker)
	setString(&dst.EndMarker, src.EndMarker)
	if src.Platforms != nil {
		dst.Platforms = src.Platforms
	}
}

func mergeOptions(dst *entities.OptionsConfig, src yamlOptions) {
	setString(&dst.BuildScript, src.BuildScript)
	setString(&dst.Manifest, src.Manifest)
	setString(&dst.ManifestPath, src.ManifestPath)
	setString(&dst.CommandsDir, src.CommandsDir)
	// An explicit empty list disables the setting
	if src.CommandGroups != nil {
		dst.CommandGroups = src.CommandGroups
	}
	if src.Ignored != nil {
		dst.Ignored = src.Ignored
	}
}

func setString(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}
