package ports

import (
	"context"

	"github.com/abvthecity/oxiclean/internal/core/domain"
)

// Parser turns source text into the statement list used for import extraction.
//
//go:generate mockgen -source=parser.go -destination=mocks/mock_parser.go -package=mocks
type Parser interface {
	// Parse parses content written in the given dialect. Syntax errors inside the file do
	// not fail the parse; the returned statements cover whatever could be recognized.
	Parse(ctx context.Context, content []byte, dialect domain.Dialect) ([]domain.Statement, error)
}
