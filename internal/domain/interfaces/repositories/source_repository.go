// Package repositories defines interfaces for data access layers.
package repositories

import "github.com/ochairo/pyapp-maint/internal/domain/entities"

// SourceRepository reads and rewrites source text files
type SourceRepository interface {
	// ReadSource returns the UTF-8 text of a file
	ReadSource(path string) (string, error)

	// WriteSource replaces the file content in full
	WriteSource(path, content string) error
}

// ManifestRepository reads declarative packaging manifests
type ManifestRepository interface {
	// StringList returns the list of strings found at a dotted path
	StringList(path, dottedPath string) ([]string, error)
}

// ConfigRepository loads the tool configuration
type ConfigRepository interface {
	// Load returns the configuration at path, falling back to defaults when absent
	Load(path string) (*entities.Config, error)
}
