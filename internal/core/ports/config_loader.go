package ports

import "go.trai.ch/distpack/internal/core/domain"

// ConfigLoader defines the interface for loading the project configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load resolves configPath against cwd and returns the project.
	// An empty configPath falls back to the default config file, and to
	// built-in defaults when that file does not exist.
	Load(cwd, configPath string) (*domain.Project, error)
}
