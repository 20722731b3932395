package orchestrators

import (
	"context"
	"os"

	"github.com/ochairo/pyapp-maint/internal/domain/interfaces/gateways"
	"github.com/pkg/errors"
)

// Mock implementations for testing
type mockReleaseGateway struct {
	pages [][]*gateways.GitHubRelease
	err   error
	calls int
}

func (m *mockReleaseGateway) ListReleases(_ context.Context, _, _ string, page int) ([]*gateways.GitHubRelease, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	if page > len(m.pages) {
		return nil, nil
	}
	return m.pages[page-1], nil
}

type mockSourceRepository struct {
	files  map[string]string
	writes map[string]string
}

func newMockSourceRepository(files map[string]string) *mockSourceRepository {
	return &mockSourceRepository{files: files, writes: map[string]string{}}
}

func (m *mockSourceRepository) ReadSource(path string) (string, error) {
	content, ok := m.files[path]
	if !ok {
		return "", errors.Wrapf(os.ErrNotExist, "failed to read %s", path)
	}
	return content, nil
}

func (m *mockSourceRepository) WriteSource(path, content string) error {
	m.writes[path] = content
	return nil
}

type mockManifestRepository struct {
	values []string
	err    error
}

func (m *mockManifestRepository) StringList(_, _ string) ([]string, error) {
	return m.values, m.err
}

type mockCommandFinder struct {
	paths []string
	err   error
}

func (m *mockCommandFinder) FindCommandSources(_ string, _ []string) ([]string, error) {
	return m.paths, m.err
}

func release(names ...string) *gateways.GitHubRelease {
	r := &gateways.GitHubRelease{}
	for _, name := range names {
		r.Assets = append(r.Assets, &gateways.GitHubAsset{
			Name:               name,
			BrowserDownloadURL: "https://example.com/" + name,
		})
	}
	return r
}
