package repository

import (
	"github.com/evsync/spritsync-go/internal/shared/types"
)

// ConfigRepository defines the interface for loading configuration.
type ConfigRepository interface {
	// Load reads the optional configuration file, applies environment
	// overrides and defaults, and validates required settings.
	Load(filePath string) (*types.Config, error)
}
