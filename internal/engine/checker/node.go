package checker

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/abvthecity/oxiclean/internal/adapters/fs"        //nolint:depguard // Wired in engine wiring
	"github.com/abvthecity/oxiclean/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"github.com/abvthecity/oxiclean/internal/adapters/parser"    //nolint:depguard // Wired in engine wiring
	"github.com/abvthecity/oxiclean/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"github.com/abvthecity/oxiclean/internal/core/ports"
	"github.com/abvthecity/oxiclean/internal/engine/scheduler"
)

// NodeID is the unique identifier for the checker Graft node.
const NodeID graft.ID = "engine.checker"

func init() {
	graft.Register(graft.Node[ports.Analyzer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.WalkerNodeID,
			parser.NodeID,
			scheduler.NodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (ports.Analyzer, error) {
			walker, err := graft.Dep[ports.SourceWalker](ctx)
			if err != nil {
				return nil, err
			}

			p, err := graft.Dep[ports.Parser](ctx)
			if err != nil {
				return nil, err
			}

			sched, err := graft.Dep[*scheduler.Scheduler](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(walker, p, sched, tracer, log), nil
		},
	})
}
