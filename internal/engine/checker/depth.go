package checker

import (
	"context"

	"github.com/abvthecity/oxiclean/internal/core/domain"
)

// Depth reports direct imports whose import chain is at least the threshold long.
func (c *Checker) Depth(ctx context.Context, opts domain.CheckOptions, aliases domain.AliasTable) (*domain.CheckResult, error) {
	return c.check(ctx, domain.CheckDepth, opts, aliases, analyzeDepth)
}

func analyzeDepth(ctx context.Context, r *run, entry string) []domain.Warning {
	from := relPath(r.root, entry)

	var warnings []domain.Warning
	for _, d := range r.walker.ImportDepths(ctx, entry) {
		if d.Depth < r.threshold {
			continue
		}
		warnings = append(warnings, domain.Warning{
			ImportStatement: domain.ImportStatementFor(d.Request),
			FromFile:        from,
			Metric:          d.Depth,
			ResolvedPath:    resolvedPath(r.root, d.Target),
		})
	}
	return warnings
}
