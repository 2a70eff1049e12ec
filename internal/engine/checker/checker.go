// Package checker runs the import-bloat and import-depth analyses over a workspace.
package checker

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"

	"github.com/abvthecity/oxiclean/internal/core/domain"
	"github.com/abvthecity/oxiclean/internal/core/ports"
	"github.com/abvthecity/oxiclean/internal/engine/graph"
	"github.com/abvthecity/oxiclean/internal/engine/resolver"
	"github.com/abvthecity/oxiclean/internal/engine/scheduler"
)

var _ ports.Analyzer = (*Checker)(nil)

// Checker discovers entry files and analyzes each of them on the scheduler.
type Checker struct {
	walker    ports.SourceWalker
	parser    ports.Parser
	scheduler *scheduler.Scheduler
	tracer    ports.Tracer
	logger    ports.Logger
}

// New creates a new Checker.
func New(
	walker ports.SourceWalker,
	parser ports.Parser,
	sched *scheduler.Scheduler,
	tracer ports.Tracer,
	logger ports.Logger,
) *Checker {
	return &Checker{
		walker:    walker,
		parser:    parser,
		scheduler: sched,
		tracer:    tracer,
		logger:    logger,
	}
}

// analyzeFunc computes the warnings of one entry.
type analyzeFunc func(ctx context.Context, run *run, entry string) []domain.Warning

// run is the state shared by every entry task of one check.
type run struct {
	root      string
	threshold int
	caches    *graph.Caches
	walker    *graph.Walker
}

// Check runs the analysis selected by kind.
func (c *Checker) Check(
	ctx context.Context,
	kind domain.CheckKind,
	opts domain.CheckOptions,
	aliases domain.AliasTable,
) (*domain.CheckResult, error) {
	if kind == domain.CheckDepth {
		return c.Depth(ctx, opts, aliases)
	}
	return c.Bloat(ctx, opts, aliases)
}

func (c *Checker) check(
	ctx context.Context,
	kind domain.CheckKind,
	opts domain.CheckOptions,
	aliases domain.AliasTable,
	analyze analyzeFunc,
) (*domain.CheckResult, error) {
	ctx, span := c.tracer.Start(ctx, "check."+string(kind))
	defer span.End()
	span.SetAttribute("root", opts.Root)
	span.SetAttribute("threshold", opts.Threshold)

	entries, err := c.collectEntries(opts)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttribute("entries", len(entries))
	c.logger.Debug(fmt.Sprintf("found %d entry files", len(entries)))

	caches := graph.NewCaches()
	r := &run{
		root:      opts.Root,
		threshold: opts.Threshold,
		caches:    caches,
		walker: graph.NewWalker(
			c.parser,
			resolver.New(opts.Root, aliases, caches.Resolutions, c.logger),
			caches,
			c.logger,
		),
	}

	jobs := scheduler.Jobs(opts.Jobs)
	c.logger.Debug(fmt.Sprintf("analyzing entries with %d workers", jobs))

	perEntry, err := scheduler.Run(ctx, c.scheduler, entries, jobs,
		func(ctx context.Context, entry string, entrySpan ports.Span) ([]domain.Warning, error) {
			warnings := analyze(ctx, r, entry)
			entrySpan.SetAttribute("warnings", len(warnings))
			return warnings, nil
		})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	var warnings []domain.Warning
	for _, w := range perEntry {
		warnings = append(warnings, w...)
	}
	span.SetAttribute("warnings", len(warnings))
	c.logCacheStats(kind, caches)

	return &domain.CheckResult{
		Warnings:      warnings,
		FilesAnalyzed: caches.Imports.Len(),
		Entries:       len(entries),
	}, nil
}

// collectEntries lists the entry files under opts.Root in walk order.
func (c *Checker) collectEntries(opts domain.CheckOptions) ([]string, error) {
	files, err := c.walker.WalkSources(opts.Root, opts.Exclude)
	if err != nil {
		return nil, err
	}

	var entries []string
	for file := range files {
		if isEntry(opts.Root, file, opts.EntryGlob) {
			entries = append(entries, file)
		}
	}
	if len(entries) == 0 {
		return nil, zerr.With(domain.ErrNoEntryFiles, "root", opts.Root)
	}
	return entries, nil
}

// isEntry matches the glob as a substring of the root-relative path. Without a glob,
// files below any src directory are entries.
func isEntry(root, file, glob string) bool {
	if glob != "" {
		return strings.Contains(relPath(root, file), glob)
	}
	return strings.Contains(filepath.ToSlash(file), domain.SourceDirSegment)
}

// relPath returns file relative to root with forward slashes, or file itself when it
// cannot be made relative.
func relPath(root, file string) string {
	rel, err := filepath.Rel(root, file)
	if err != nil {
		return file
	}
	return filepath.ToSlash(rel)
}

// resolvedPath is relPath for targets under root and empty for anything outside it.
func resolvedPath(root, target string) string {
	rel, err := filepath.Rel(root, target)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return ""
	}
	return filepath.ToSlash(rel)
}

func (c *Checker) logCacheStats(kind domain.CheckKind, caches *graph.Caches) {
	memo := fmt.Sprintf("%d reachable sets", caches.Reachable.Len())
	if kind == domain.CheckDepth {
		memo = fmt.Sprintf("%d depths", caches.Depths.Len())
	}
	c.logger.Debug(fmt.Sprintf("cache stats: %d imports, %d resolutions, %s",
		caches.Imports.Len(), caches.Resolutions.Len(), memo))
}
