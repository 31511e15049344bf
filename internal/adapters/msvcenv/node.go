package msvcenv

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/kiln/internal/adapters/logger" //nolint:depguard // Wired adapter dependency
	"go.trai.ch/kiln/internal/adapters/shell"  //nolint:depguard // Wired adapter dependency
	"go.trai.ch/kiln/internal/core/ports"
)

const NodeID graft.ID = "adapter.msvc_bootstrap"

func init() {
	graft.Register(graft.Node[ports.Bootstrapper]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			shell.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (ports.Bootstrapper, error) {
			runner, err := graft.Dep[ports.Runner](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(runner, NewVSWhere(runner), &ProcessEnv{}, log), nil
		},
	})
}
