package graph

import (
	"context"
	"fmt"

	"github.com/abvthecity/oxiclean/internal/core/ports"
)

// Resolver maps a request written in an importing file to a canonical path.
type Resolver interface {
	Resolve(from, request string) (string, bool)
}

// Walker runs reachability and depth traversals over the shared caches.
// It is safe for concurrent use; all mutable state lives in the caches.
type Walker struct {
	index    *ImportIndex
	resolver Resolver
	caches   *Caches
	logger   ports.Logger
}

// NewWalker creates a Walker over caches. The import index fills caches.Imports.
func NewWalker(parser ports.Parser, resolver Resolver, caches *Caches, logger ports.Logger) *Walker {
	return &Walker{
		index:    NewImportIndex(parser, logger, caches.Imports),
		resolver: resolver,
		caches:   caches,
		logger:   logger,
	}
}

// Edge is a resolved direct import.
type Edge struct {
	Request string
	Target  string
}

// Edges returns the resolved direct imports of file in specifier order. A file that
// cannot be read or parsed has no edges.
func (w *Walker) Edges(ctx context.Context, file string) []Edge {
	specs, err := w.index.Imports(ctx, file)
	if err != nil {
		w.logger.Debug(fmt.Sprintf("skipping imports of %s: %v", file, err))
		return nil
	}

	edges := make([]Edge, 0, len(specs))
	for _, spec := range specs {
		target, ok := w.resolver.Resolve(file, spec.Request)
		if !ok {
			continue
		}
		edges = append(edges, Edge{Request: spec.Request, Target: target})
	}
	return edges
}
