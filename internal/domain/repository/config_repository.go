package repository

import (
	"github.com/policyport/policy-migrate-go/internal/shared/types"
)

// ConfigRepository defines the interface for loading configuration files.
type ConfigRepository interface {
	LoadConfigFile(filePath string) (*types.Config, error)
	ApplyEnvOverrides(config *types.Config)
}
