// Package telemetry provides the default no-op telemetry adapter.
package telemetry

import (
	"context"
	"io"

	"go.trai.ch/kiln/internal/core/ports"
)

// Noop discards every recording. It is the default when tracing is off.
type Noop struct{}

var _ ports.Telemetry = Noop{}

// NewNoop creates a no-op telemetry recorder.
func NewNoop() ports.Telemetry {
	return Noop{}
}

// Record implements ports.Telemetry.
func (Noop) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	return ctx, noopVertex{}
}

// Close implements ports.Telemetry.
func (Noop) Close() error {
	return nil
}

type noopVertex struct{}

func (noopVertex) Stdout() io.Writer { return io.Discard }
func (noopVertex) Stderr() io.Writer { return io.Discard }
func (noopVertex) Complete(error)    {}
func (noopVertex) Cached()           {}
