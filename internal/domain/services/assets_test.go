package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ochairo/pyapp-maint/internal/domain/entities"
	"github.com/ochairo/pyapp-maint/internal/domain/interfaces/gateways"
)

// pagedGateway serves fixed release pages and records the pages requested
type pagedGateway struct {
	pages     [][]*gateways.GitHubRelease
	failPage  int
	requested []int
}

func (g *pagedGateway) ListReleases(_ context.Context, _, _ string, page int) ([]*gateways.GitHubRelease, error) {
	g.requested = append(g.requested, page)
	if page == g.failPage {
		return nil, errors.New("502 bad gateway")
	}
	if page > len(g.pages) {
		return nil, nil
	}
	return g.pages[page-1], nil
}

func release(names ...string) *gateways.GitHubRelease {
	r := &gateways.GitHubRelease{}
	for _, name := range names {
		r.Assets = append(r.Assets, &gateways.GitHubAsset{Name: name, BrowserDownloadURL: "https://example.com/" + name})
	}
	return r
}

func TestListAssets_Paginates(t *testing.T) {
	gateway := &pagedGateway{
		pages: [][]*gateways.GitHubRelease{
			{release("a.tar.gz", "b.tar.gz"), release("c.tar.gz")},
			{release(), release("d.tar.zst")},
		},
	}

	var got []entities.Asset
	for asset, err := range ListAssets(context.Background(), gateway, "astral-sh", "python-build-standalone") {
		if err != nil {
			t.Fatalf("ListAssets() error = %v", err)
		}
		got = append(got, asset)
	}

	want := []entities.Asset{
		{Name: "a.tar.gz", URL: "https://example.com/a.tar.gz"},
		{Name: "b.tar.gz", URL: "https://example.com/b.tar.gz"},
		{Name: "c.tar.gz", URL: "https://example.com/c.tar.gz"},
		{Name: "d.tar.zst", URL: "https://example.com/d.tar.zst"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ListAssets() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{1, 2, 3}, gateway.requested); diff != "" {
		t.Errorf("requested pages mismatch (-want +got):\n%s", diff)
	}
}

func TestListAssets_StopsOnError(t *testing.T) {
	gateway := &pagedGateway{
		pages:    [][]*gateways.GitHubRelease{{release("a.tar.gz")}, {release("b.tar.gz")}},
		failPage: 2,
	}

	var names []string
	var lastErr error
	for asset, err := range ListAssets(context.Background(), gateway, "o", "r") {
		if err != nil {
			lastErr = err
			continue
		}
		names = append(names, asset.Name)
	}

	if lastErr == nil {
		t.Fatal("ListAssets() should yield the page error")
	}
	if diff := cmp.Diff([]string{"a.tar.gz"}, names); diff != "" {
		t.Errorf("assets before failure mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{1, 2}, gateway.requested); diff != "" {
		t.Errorf("requested pages mismatch (-want +got):\n%s", diff)
	}
}

func TestListAssets_EarlyBreak(t *testing.T) {
	gateway := &pagedGateway{
		pages: [][]*gateways.GitHubRelease{{release("a.tar.gz", "b.tar.gz")}, {release("c.tar.gz")}},
	}

	for range ListAssets(context.Background(), gateway, "o", "r") {
		break
	}

	if diff := cmp.Diff([]int{1}, gateway.requested); diff != "" {
		t.Errorf("requested pages mismatch (-want +got):\n%s", diff)
	}
}
