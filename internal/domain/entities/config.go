package entities

import "time"

// Config represents the maintenance tool configuration
type Config struct {
	Releases      ReleasesConfig
	Distributions DistributionsConfig
	Options       OptionsConfig
}

// ReleasesConfig describes where distribution releases are published
type ReleasesConfig struct {
	Owner      string
	Repo       string
	APIURL     string
	APIVersion string
	TokenEnv   string // environment variable holding the bearer token
	Timeout    time.Duration
}

// DistributionsConfig describes the generated distribution table
type DistributionsConfig struct {
	BuildScript string
	TableMarker string // prefix of the line opening the constant table
	EndMarker   string // trimmed line closing the generated region
	Platforms   []string
}

// OptionsConfig describes the option consistency check
type OptionsConfig struct {
	BuildScript   string
	Manifest      string
	ManifestPath  string // dotted path to the declared option list
	CommandsDir   string
	CommandGroups []string
	Ignored       []string
}

// DefaultConfig returns the configuration used when no file overrides it
func DefaultConfig() *Config {
	return &Config{
		Releases: ReleasesConfig{
			Owner:      "astral-sh",
			Repo:       "python-build-standalone",
			APIURL:     "https://api.github.com",
			APIVersion: "2022-11-28",
			TokenEnv:   "GH_TOKEN",
			Timeout:    60 * time.Second,
		},
		Distributions: DistributionsConfig{
			BuildScript: "build.rs",
			TableMarker: "const DEFAULT_CPYTHON_DISTRIBUTIONS",
			EndMarker:   "// Frozen",
			Platforms:   []string{OSLinux, OSWindows, OSMacOS},
		},
		Options: OptionsConfig{
			BuildScript:   "build.rs",
			Manifest:      "Cargo.toml",
			ManifestPath:  "package.metadata.cross.build.env.passthrough",
			CommandsDir:   "src/commands/self_cmd",
			CommandGroups: []string{"cache"},
			Ignored:       []string{"PYAPP_EXPOSE_{}", "PYAPP_PROJECT_{}"},
		},
	}
}
