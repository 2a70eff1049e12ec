package graph

import (
	"context"
	"fmt"
)

// Reachable returns every file reachable from start, start included. The traversal
// uses an explicit stack and terminates on cycles. Results are memoized per start file.
func (w *Walker) Reachable(ctx context.Context, start string) Set {
	if cached, ok := w.caches.Reachable.Load(start); ok {
		return cached
	}

	visited := make(Set)
	stack := []string{start}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if _, seen := visited[cur]; seen {
			continue
		}
		visited[cur] = struct{}{}

		for _, edge := range w.Edges(ctx, cur) {
			if _, seen := visited[edge.Target]; !seen {
				stack = append(stack, edge.Target)
			}
		}
	}

	w.logger.Debug(fmt.Sprintf("computed %d reachable modules from %s", len(visited), start))
	stored, _ := w.caches.Reachable.LoadOrStore(start, visited)
	return stored
}
