package ports

import (
	"context"

	"go.trai.ch/kiln/internal/core/domain"
)

// InstallLocator queries an external locator for a toolchain
// installation, returning the reported product path or "" when the
// query matched nothing.
//
//go:generate go run go.uber.org/mock/mockgen -source=msvc.go -destination=mocks/mock_msvc.go -package=mocks
type InstallLocator interface {
	Locate(ctx context.Context, query []string) (string, error)
}

// EnvironmentSink receives the variables harvested from an environment
// setup script. Production merges into the process environment; tests
// capture a map instead of mutating real state.
type EnvironmentSink interface {
	Set(key, value string) error
}

// Bootstrapper activates a build environment when the primary compiler
// is not already reachable. Degraded outcomes are states, not errors.
type Bootstrapper interface {
	Run(ctx context.Context) domain.BootstrapState
}
