// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"

	"go.trai.ch/kiln/internal/core/domain"
)

// Runner executes one constructed command as a blocking subprocess.
//
//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type Runner interface {
	// Run executes the command, streaming its output to the given
	// writers. It returns an error when the process cannot be started
	// or exits non-zero. A start failure caused by a missing executable
	// satisfies errors.Is(err, exec.ErrNotFound); detection and
	// bootstrap branch on that condition.
	Run(ctx context.Context, cmd domain.Command, stdout, stderr io.Writer) error
}
