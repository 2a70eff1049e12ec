package app

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/abvthecity/oxiclean/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"github.com/abvthecity/oxiclean/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"github.com/abvthecity/oxiclean/internal/adapters/report"   //nolint:depguard // Wired in app layer
	"github.com/abvthecity/oxiclean/internal/adapters/tsconfig" //nolint:depguard // Wired in app layer
	"github.com/abvthecity/oxiclean/internal/core/ports"
	"github.com/abvthecity/oxiclean/internal/engine/checker"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			tsconfig.NodeID,
			checker.NodeID,
			report.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewComponents(app, log), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	configLoader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	aliasLoader, err := graft.Dep[ports.AliasLoader](ctx)
	if err != nil {
		return nil, err
	}

	analyzer, err := graft.Dep[ports.Analyzer](ctx)
	if err != nil {
		return nil, err
	}

	reporter, err := graft.Dep[ports.Reporter](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(configLoader, aliasLoader, analyzer, reporter, log), nil
}
