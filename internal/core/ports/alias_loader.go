package ports

import "github.com/abvthecity/oxiclean/internal/core/domain"

// AliasLoader builds the path alias table of a workspace.
//
//go:generate mockgen -source=alias_loader.go -destination=mocks/mock_alias_loader.go -package=mocks
type AliasLoader interface {
	// LoadAliases collects the compilerOptions.paths entries of every tsconfig.json under root.
	LoadAliases(root string) (domain.AliasTable, error)
}
