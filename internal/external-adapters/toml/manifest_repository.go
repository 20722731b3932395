// Package toml reads packaging manifests in TOML format.
package toml

import (
	"os"
	"strings"

	"github.com/ochairo/pyapp-maint/internal/domain/services"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

// ManifestRepository implements repositories.ManifestRepository for TOML manifests
type ManifestRepository struct{}

// NewManifestRepository creates a new TOML manifest repository
func NewManifestRepository() *ManifestRepository {
	return &ManifestRepository{}
}

// StringList reads the manifest at path and returns the string array found at
// dottedPath, e.g. package.metadata.cross.build.env.passthrough
func (r *ManifestRepository) StringList(path, dottedPath string) ([]string, error) {
	//nolint:gosec // G304: path is the operator-provided manifest
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read manifest %s", path)
	}

	values, err := ParseStringList(data, dottedPath)
	if err != nil {
		return nil, errors.Wrapf(err, "manifest %s", path)
	}
	return values, nil
}

// ParseStringList decodes TOML data and navigates to the string array at dottedPath
func ParseStringList(data []byte, dottedPath string) ([]string, error) {
	var doc map[string]interface{}
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode TOML")
	}

	keys := strings.Split(dottedPath, ".")
	var node interface{} = doc
	for i, key := range keys {
		table, ok := node.(map[string]interface{})
		if !ok {
			return nil, services.ErrContract.New("%s is not a table", strings.Join(keys[:i], "."))
		}
		node, ok = table[key]
		if !ok {
			return nil, services.ErrContract.New("%s not found", strings.Join(keys[:i+1], "."))
		}
	}

	items, ok := node.([]interface{})
	if !ok {
		return nil, services.ErrContract.New("%s is not an array", dottedPath)
	}

	values := make([]string, 0, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, services.ErrContract.New("%s[%d] is %T, not a string", dottedPath, i, item)
		}
		values = append(values, s)
	}
	return values, nil
}
