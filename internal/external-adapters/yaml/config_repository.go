package yaml

import (
	"errors"
	"io/fs"
	"os"

	"github.com/ochairo/pyapp-maint/internal/domain/entities"
	pkgerrors "github.com/pkg/errors"
)

// ConfigRepository implements repositories.ConfigRepository using YAML files
type ConfigRepository struct {
	parser *ConfigParser
}

// NewConfigRepository creates a new YAML-based config repository
func NewConfigRepository() *ConfigRepository {
	return &ConfigRepository{
		parser: NewConfigParser(),
	}
}

// Load reads the config file at path. A missing file yields the defaults.
func (r *ConfigRepository) Load(path string) (*entities.Config, error) {
	//nolint:gosec // G304: path is the operator-provided config file
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return entities.DefaultConfig(), nil
	}
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to read config %s", path)
	}

	cfg, err := r.parser.Parse(data)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to parse config %s", path)
	}
	return cfg, nil
}
