package ports

import "go.trai.ch/kiln/internal/core/domain"

// StateStore persists per-output step info for the content-hash
// staleness mode.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type StateStore interface {
	// Get retrieves the step info recorded for a resolved output path.
	// Returns nil, nil when not found.
	Get(output string) (*domain.StepInfo, error)

	// Put stores the step info.
	Put(info domain.StepInfo) error
}
