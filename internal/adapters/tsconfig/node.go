package tsconfig

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/abvthecity/oxiclean/internal/adapters/fs"
	"github.com/abvthecity/oxiclean/internal/adapters/logger"
	"github.com/abvthecity/oxiclean/internal/core/ports"
)

// NodeID is the unique identifier for the tsconfig alias loader Graft node.
const NodeID graft.ID = "adapter.tsconfig"

func init() {
	graft.Register(graft.Node[ports.AliasLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.WalkerNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.AliasLoader, error) {
			walker, err := graft.Dep[ports.SourceWalker](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(walker, log), nil
		},
	})
}
