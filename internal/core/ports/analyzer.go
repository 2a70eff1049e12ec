package ports

import (
	"context"

	"github.com/abvthecity/oxiclean/internal/core/domain"
)

// Analyzer runs a single import check over a workspace.
//
//go:generate mockgen -source=analyzer.go -destination=mocks/mock_analyzer.go -package=mocks
type Analyzer interface {
	// Check discovers the entry files under opts.Root and analyzes each of them.
	Check(
		ctx context.Context,
		kind domain.CheckKind,
		opts domain.CheckOptions,
		aliases domain.AliasTable,
	) (*domain.CheckResult, error)
}
