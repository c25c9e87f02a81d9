package yaml

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ochairo/gettor/internal/domain/entities"
)

// DefaultConfigFile is looked up in the working directory when no path is given
const DefaultConfigFile = "gettor.yaml"

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

// Load reads the config at path. With an empty path, DefaultConfigFile is
// used if present and defaults are returned otherwise.
func (r *ConfigRepository) Load(path string) (*entities.Config, error) {
	if path == "" {
		if _, err := os.Stat(DefaultConfigFile); errors.Is(err, fs.ErrNotExist) {
			return entities.DefaultConfig(), nil
		}
		path = DefaultConfigFile
	}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	return r.parser.ParseFile(path)
}
