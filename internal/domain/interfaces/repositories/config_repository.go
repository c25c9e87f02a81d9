// Package repositories defines interfaces for data access layers.
package repositories

import (
	"github.com/ochairo/gettor/internal/domain/entities"
)

// ConfigRepository loads tool configuration
type ConfigRepository interface {
	// Load reads the configuration at path. An empty path yields defaults.
	Load(path string) (*entities.Config, error)
}
