package ports

import "go.trai.ch/kiln/internal/core/domain"

// ConfigLoader reads a build plan file.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the plan at the given path, validating flags against
	// the closed set and preserving file order of steps.
	Load(path string) (*domain.Plan, error)
}
