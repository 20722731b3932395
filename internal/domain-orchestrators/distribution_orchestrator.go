// Package orchestrators coordinates complex workflows across multiple domain services.
package orchestrators

import (
	"context"
	"fmt"
	"time"

	"github.com/ochairo/pyapp-maint/internal/domain/entities"
	"github.com/ochairo/pyapp-maint/internal/domain/interfaces"
	"github.com/ochairo/pyapp-maint/internal/domain/interfaces/gateways"
	"github.com/ochairo/pyapp-maint/internal/domain/interfaces/repositories"
	"github.com/ochairo/pyapp-maint/internal/domain/services"
	"github.com/pkg/errors"
)

// UpdateMode selects what UpdateDistributions does with the rendered text
type UpdateMode int

const (
	// UpdateWrite rewrites the build script in place
	UpdateWrite UpdateMode = iota
	// UpdateDryRun renders without writing
	UpdateDryRun
	// UpdateCheck renders and fails with services.ErrTableDrift if the file would change
	UpdateCheck
)

// DistributionOrchestrator coordinates the distribution table refresh:
// list release assets, select one build per slot, render, write.
type DistributionOrchestrator struct {
	gateway       gateways.ReleaseGateway
	sources       repositories.SourceRepository
	distributions *services.DistributionService
	renderer      *services.TableRenderer
	logger        interfaces.Logger
	owner         string
	repo          string
	buildScript   string
}

// DistributionOrchestratorConfig holds configuration for the orchestrator
type DistributionOrchestratorConfig struct {
	Owner       string
	Repo        string
	BuildScript string
	TableMarker string
	EndMarker   string
	Platforms   []string
}

// NewDistributionOrchestrator creates a new distribution orchestrator
func NewDistributionOrchestrator(
	gateway gateways.ReleaseGateway,
	sources repositories.SourceRepository,
	config DistributionOrchestratorConfig,
	logger interfaces.Logger,
) *DistributionOrchestrator {
	if logger == nil {
		logger = &interfaces.NoOpLogger{}
	}

	return &DistributionOrchestrator{
		gateway:       gateway,
		sources:       sources,
		distributions: services.NewDistributionService(config.Platforms, logger),
		renderer:      services.NewTableRenderer(config.TableMarker, config.EndMarker),
		logger:        logger,
		owner:         config.Owner,
		repo:          config.Repo,
		buildScript:   config.BuildScript,
	}
}

// UpdateResult contains the result of a table refresh
type UpdateResult struct {
	Path            string
	Entries         []entities.DistributionEntry
	Content         string
	Changed         bool
	Written         bool
	ListingDuration time.Duration
	TotalDuration   time.Duration
}

// CollectDistributions lists every release asset and returns the selected
// entries in table order
func (o *DistributionOrchestrator) CollectDistributions(ctx context.Context) ([]entities.DistributionEntry, error) {
	o.logger.Debug("Listing release assets", interfaces.F("owner", o.owner), interfaces.F("repo", o.repo))

	entries, err := o.distributions.Normalize(services.ListAssets(ctx, o.gateway, o.owner, o.repo))
	if err != nil {
		return nil, errors.Wrap(err, "failed to collect distributions")
	}
	return entries, nil
}

// UpdateDistributions refreshes the distribution table of the build script.
// The marker is located before any release is listed, so a build script
// without one fails without network traffic or writes.
func (o *DistributionOrchestrator) UpdateDistributions(ctx context.Context, mode UpdateMode) (*UpdateResult, error) {
	startTime := time.Now()
	result := &UpdateResult{Path: o.buildScript}

	// Step 1: Load the build script and find the table
	text, err := o.sources.ReadSource(o.buildScript)
	if err != nil {
		return result, err
	}
	if _, err := o.renderer.Locate(text); err != nil {
		return result, errors.Wrapf(err, "in %s", o.buildScript)
	}

	// Step 2: Select distributions
	o.logger.Info("Updating distributions", interfaces.F("file", o.buildScript))
	listingStart := time.Now()
	entries, err := o.CollectDistributions(ctx)
	if err != nil {
		return result, err
	}
	result.Entries = entries
	result.ListingDuration = time.Since(listingStart)

	// Step 3: Render
	updated, err := o.renderer.Update(text, entries)
	if err != nil {
		return result, errors.Wrapf(err, "in %s", o.buildScript)
	}
	result.Content = updated
	result.Changed = updated != text

	// Step 4: Write, or report
	switch mode {
	case UpdateDryRun:
	case UpdateCheck:
		if result.Changed {
			result.TotalDuration = time.Since(startTime)
			return result, errors.Wrap(services.ErrTableDrift, o.buildScript)
		}
	default:
		if err := o.sources.WriteSource(o.buildScript, updated); err != nil {
			return result, err
		}
		result.Written = true
	}

	result.TotalDuration = time.Since(startTime)
	o.logger.Info("Done",
		interfaces.F("distributions", len(entries)),
		interfaces.F("changed", result.Changed),
		interfaces.F("duration", result.TotalDuration.Round(time.Millisecond)),
	)
	return result, nil
}

// Summary returns a human-readable summary of the update
func (r *UpdateResult) Summary() string {
	action := "unchanged"
	switch {
	case r.Written && r.Changed:
		action = "updated"
	case r.Changed:
		action = "would change"
	}

	return fmt.Sprintf(`%s: %s
Distributions: %d
Listing: %v
Total: %v`,
		r.Path,
		action,
		len(r.Entries),
		r.ListingDuration,
		r.TotalDuration,
	)
}
