package graph

import (
	"context"
	"fmt"
	"os"

	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"

	"github.com/abvthecity/oxiclean/internal/core/domain"
	"github.com/abvthecity/oxiclean/internal/core/ports"
)

// ImportIndex reads, parses and extracts the specifiers of files on demand.
// Results, including the empty result of a failed file, are kept in the Imports cache.
type ImportIndex struct {
	parser ports.Parser
	logger ports.Logger
	cache  *Cache[string, []domain.Specifier]
	flight singleflight.Group
}

// NewImportIndex creates an index that fills cache.
func NewImportIndex(parser ports.Parser, logger ports.Logger, cache *Cache[string, []domain.Specifier]) *ImportIndex {
	return &ImportIndex{parser: parser, logger: logger, cache: cache}
}

// Imports returns the specifiers of file. A read or parse failure is returned once;
// later calls for the same file see an empty list and no error.
func (x *ImportIndex) Imports(ctx context.Context, file string) ([]domain.Specifier, error) {
	if specs, ok := x.cache.Load(file); ok {
		return specs, nil
	}

	v, err, _ := x.flight.Do(file, func() (any, error) {
		if specs, ok := x.cache.Load(file); ok {
			return specs, nil
		}
		specs, err := x.parse(ctx, file)
		if err != nil {
			x.cache.LoadOrStore(file, nil)
			return nil, err
		}
		stored, _ := x.cache.LoadOrStore(file, specs)
		return stored, nil
	})
	if err != nil {
		return nil, err
	}
	specs, _ := v.([]domain.Specifier)
	return specs, nil
}

func (x *ImportIndex) parse(ctx context.Context, file string) ([]domain.Specifier, error) {
	//nolint:gosec // file is a resolved workspace path
	content, err := os.ReadFile(file)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrFileReadFailed.Error()), "file", file)
	}

	stmts, err := x.parser.Parse(ctx, content, domain.DialectFor(file))
	if err != nil {
		return nil, zerr.With(err, "file", file)
	}

	specs := Extract(stmts)
	x.logger.Debug(fmt.Sprintf("found %d import specifiers in %s", len(specs), file))
	return specs, nil
}
