package services

import (
	"context"
	"iter"

	"github.com/ochairo/pyapp-maint/internal/domain/entities"
	"github.com/ochairo/pyapp-maint/internal/domain/interfaces/gateways"
	"github.com/pkg/errors"
)

// ListAssets yields every asset of every release, requesting pages in order
// until a page comes back empty. The first error ends the sequence.
func ListAssets(ctx context.Context, gateway gateways.ReleaseGateway, owner, repo string) iter.Seq2[entities.Asset, error] {
	return func(yield func(entities.Asset, error) bool) {
		for page := 1; ; page++ {
			releases, err := gateway.ListReleases(ctx, owner, repo, page)
			if err != nil {
				yield(entities.Asset{}, errors.Wrapf(err, "listing releases page %d", page))
				return
			}
			if len(releases) == 0 {
				return
			}

			for _, release := range releases {
				for _, asset := range release.Assets {
					if !yield(entities.Asset{Name: asset.Name, URL: asset.BrowserDownloadURL}, nil) {
						return
					}
				}
			}
		}
	}
}
