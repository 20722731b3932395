package orchestrators

import (
	"github.com/ochairo/pyapp-maint/internal/domain/entities"
	"github.com/ochairo/pyapp-maint/internal/domain/interfaces"
	"github.com/ochairo/pyapp-maint/internal/domain/interfaces/repositories"
	"github.com/ochairo/pyapp-maint/internal/domain/services"
	"github.com/pkg/errors"
)

// CommandSourceFinder locates source files that may declare exposed commands
type CommandSourceFinder interface {
	FindCommandSources(commandsDir string, groups []string) ([]string, error)
}

// OptionOrchestrator checks that every build option is passed through by the manifest
type OptionOrchestrator struct {
	sources  repositories.SourceRepository
	manifest repositories.ManifestRepository
	finder   CommandSourceFinder
	options  *services.OptionService
	config   entities.OptionsConfig
	logger   interfaces.Logger
}

// NewOptionOrchestrator creates a new option orchestrator
func NewOptionOrchestrator(
	sources repositories.SourceRepository,
	manifest repositories.ManifestRepository,
	finder CommandSourceFinder,
	config entities.OptionsConfig,
	logger interfaces.Logger,
) *OptionOrchestrator {
	if logger == nil {
		logger = &interfaces.NoOpLogger{}
	}

	return &OptionOrchestrator{
		sources:  sources,
		manifest: manifest,
		finder:   finder,
		options:  services.NewOptionService(config.Ignored),
		config:   config,
		logger:   logger,
	}
}

// AvailableOptions gathers option names from the build script and from the
// exposed-command annotations, in discovery order
func (o *OptionOrchestrator) AvailableOptions() ([]string, error) {
	script, err := o.sources.ReadSource(o.config.BuildScript)
	if err != nil {
		return nil, err
	}
	available := o.options.ExtractOptions(script)
	o.logger.Debug("Extracted build options", interfaces.F("file", o.config.BuildScript), interfaces.F("count", len(available)))

	if o.config.CommandsDir == "" {
		return available, nil
	}

	paths, err := o.finder.FindCommandSources(o.config.CommandsDir, o.config.CommandGroups)
	if err != nil {
		return nil, err
	}
	for _, path := range paths {
		source, err := o.sources.ReadSource(path)
		if err != nil {
			return nil, err
		}
		if name, ok := o.options.ExtractExposedOption(source); ok {
			o.logger.Debug("Found exposed command", interfaces.F("file", path), interfaces.F("option", name))
			available = append(available, name)
		}
	}
	return available, nil
}

// ValidateOptions compares the available options with the manifest's passthrough list
func (o *OptionOrchestrator) ValidateOptions() (*entities.OptionDiff, error) {
	available, err := o.AvailableOptions()
	if err != nil {
		return nil, err
	}

	defined, err := o.manifest.StringList(o.config.Manifest, o.config.ManifestPath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", o.config.ManifestPath)
	}

	diff := o.options.Compare(available, defined)
	if !diff.Matches() {
		o.logger.Debug("Option lists differ",
			interfaces.F("expected", len(diff.Expected)),
			interfaces.F("defined", len(diff.Defined)),
		)
	}
	return diff, nil
}
