package checker

import (
	"context"

	"github.com/abvthecity/oxiclean/internal/core/domain"
)

// Bloat reports direct imports whose reachable module count meets the threshold, and
// entries whose whole graph does.
func (c *Checker) Bloat(ctx context.Context, opts domain.CheckOptions, aliases domain.AliasTable) (*domain.CheckResult, error) {
	return c.check(ctx, domain.CheckBloat, opts, aliases, analyzeBloat)
}

func analyzeBloat(ctx context.Context, r *run, entry string) []domain.Warning {
	from := relPath(r.root, entry)

	var warnings []domain.Warning
	for _, edge := range r.walker.Edges(ctx, entry) {
		size := len(r.walker.Reachable(ctx, edge.Target))
		if size < r.threshold {
			continue
		}
		warnings = append(warnings, domain.Warning{
			ImportStatement: domain.ImportStatementFor(edge.Request),
			FromFile:        from,
			Metric:          size,
			ResolvedPath:    resolvedPath(r.root, edge.Target),
		})
	}

	if total := len(r.walker.Reachable(ctx, entry)); total >= r.threshold {
		warnings = append(warnings, domain.Warning{
			ImportStatement: domain.EntryGraphStatement,
			FromFile:        from,
			Metric:          total,
			EntryGraph:      true,
		})
	}
	return warnings
}
