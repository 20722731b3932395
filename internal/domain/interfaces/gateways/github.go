// Package gateways defines interfaces for external service adapters.
package gateways

import "context"

// GitHubRelease represents a GitHub release together with its assets
type GitHubRelease struct {
	ID         int64
	TagName    string
	Name       string
	Draft      bool
	Prerelease bool
	Assets     []*GitHubAsset
}

// GitHubAsset represents a release asset
type GitHubAsset struct {
	ID                 int64
	Name               string
	Size               int64
	BrowserDownloadURL string
}

// ReleaseGateway defines read access to a repository's releases
type ReleaseGateway interface {
	// ListReleases returns one page of releases, starting at page 1.
	// An empty slice marks the end of the listing.
	ListReleases(ctx context.Context, owner, repo string, page int) ([]*GitHubRelease, error)
}
