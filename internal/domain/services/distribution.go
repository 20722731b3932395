package services

import (
	"cmp"
	"iter"
	"slices"

	"github.com/ochairo/pyapp-maint/internal/domain/entities"
	"github.com/ochairo/pyapp-maint/internal/domain/interfaces"
	"golang.org/x/mod/semver"
)

// DistributionService normalizes release assets into one entry per distribution slot
type DistributionService struct {
	platforms []string
	logger    interfaces.Logger
}

// NewDistributionService creates a distribution service ordering operating
// systems by the given priority list
func NewDistributionService(platforms []string, logger interfaces.Logger) *DistributionService {
	if logger == nil {
		logger = &interfaces.NoOpLogger{}
	}
	return &DistributionService{
		platforms: platforms,
		logger:    logger,
	}
}

// Normalize consumes assets and keeps, per distribution key, the asset with the
// newest (version, release date). On a tie the asset seen last wins.
// The result is ordered as described by Sort.
func (s *DistributionService) Normalize(assets iter.Seq2[entities.Asset, error]) ([]entities.DistributionEntry, error) {
	selected := make(map[entities.DistributionKey]entities.DistributionEntry)
	seen, skipped := 0, 0

	for asset, err := range assets {
		if err != nil {
			return nil, err
		}
		seen++

		parsed, ok, err := ParseFilename(asset.Name)
		if err != nil {
			return nil, err
		}
		if !ok {
			skipped++
			continue
		}

		candidate := entities.DistributionEntry{
			Key:         parsed.Key(),
			Version:     parsed.Version,
			ReleaseDate: parsed.ReleaseDate,
			URL:         asset.URL,
		}
		if current, exists := selected[candidate.Key]; exists && CompareReleases(candidate, current) < 0 {
			continue
		}
		selected[candidate.Key] = candidate
	}

	s.logger.Debug("Normalized assets",
		interfaces.F("assets", seen),
		interfaces.F("skipped", skipped),
		interfaces.F("distributions", len(selected)))

	entries := make([]entities.DistributionEntry, 0, len(selected))
	for _, entry := range selected {
		entries = append(entries, entry)
	}
	s.Sort(entries)

	return entries, nil
}

// Sort orders entries the way the generated table lists them: newest minor
// version first, then ascending by platform priority, arch, ABI, CPU variant,
// GIL variant and URL
func (s *DistributionService) Sort(entries []entities.DistributionEntry) {
	slices.SortStableFunc(entries, func(a, b entities.DistributionEntry) int {
		if c := cmp.Compare(b.Key.Major, a.Key.Major); c != 0 {
			return c
		}
		if c := cmp.Compare(b.Key.Minor, a.Key.Minor); c != 0 {
			return c
		}
		return cmp.Or(
			cmp.Compare(s.platformPriority(a.Key.OS), s.platformPriority(b.Key.OS)),
			cmp.Compare(a.Key.Arch, b.Key.Arch),
			cmp.Compare(a.Key.ABI, b.Key.ABI),
			cmp.Compare(a.Key.CPUVariant, b.Key.CPUVariant),
			cmp.Compare(a.Key.GILVariant, b.Key.GILVariant),
			cmp.Compare(a.URL, b.URL),
		)
	})
}

// platformPriority ranks unlisted operating systems after all listed ones
func (s *DistributionService) platformPriority(os string) int {
	if i := slices.Index(s.platforms, os); i >= 0 {
		return i
	}
	return len(s.platforms)
}

// CompareReleases orders two entries by version, then release date
func CompareReleases(a, b entities.DistributionEntry) int {
	if c := semver.Compare(a.Version, b.Version); c != 0 {
		return c
	}
	return cmp.Compare(a.ReleaseDate, b.ReleaseDate)
}
