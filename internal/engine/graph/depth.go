package graph

import (
	"context"
	"fmt"
)

// ImportDepth is the depth of one direct import: 1 + depth(Target).
type ImportDepth struct {
	Request string
	Target  string
	Depth   int
}

// Depth returns the length of the longest import chain starting at file.
// An edge back into a file that is still being computed contributes 0, so cycles
// are truncated. Children are visited in specifier order.
func (w *Walker) Depth(ctx context.Context, file string) int {
	return w.depth(ctx, file, make(map[string]struct{}))
}

func (w *Walker) depth(ctx context.Context, file string, visiting map[string]struct{}) int {
	if cached, ok := w.caches.Depths.Load(file); ok {
		return cached
	}

	visiting[file] = struct{}{}
	defer delete(visiting, file)

	best := 0
	for _, edge := range w.Edges(ctx, file) {
		if _, inProgress := visiting[edge.Target]; inProgress {
			w.logger.Debug(fmt.Sprintf("cycle detected at %s", edge.Target))
			continue
		}
		best = max(best, 1+w.depth(ctx, edge.Target, visiting))
	}

	stored, _ := w.caches.Depths.LoadOrStore(file, best)
	return stored
}

// ImportDepths reports the depth of each resolved direct import of file.
func (w *Walker) ImportDepths(ctx context.Context, file string) []ImportDepth {
	edges := w.Edges(ctx, file)
	depths := make([]ImportDepth, 0, len(edges))
	for _, edge := range edges {
		depths = append(depths, ImportDepth{
			Request: edge.Request,
			Target:  edge.Target,
			Depth:   1 + w.Depth(ctx, edge.Target),
		})
	}
	return depths
}
