// Package app implements the application layer for oxiclean.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/zerr"

	"github.com/abvthecity/oxiclean/internal/core/domain"
	"github.com/abvthecity/oxiclean/internal/core/ports"
	"github.com/abvthecity/oxiclean/internal/engine/scheduler"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	aliasLoader  ports.AliasLoader
	analyzer     ports.Analyzer
	reporter     ports.Reporter
	logger       ports.Logger
	getwd        func() (string, error)
	now          func() time.Time
}

// New creates a new App instance.
func New(
	configLoader ports.ConfigLoader,
	aliasLoader ports.AliasLoader,
	analyzer ports.Analyzer,
	reporter ports.Reporter,
	logger ports.Logger,
) *App {
	return &App{
		configLoader: configLoader,
		aliasLoader:  aliasLoader,
		analyzer:     analyzer,
		reporter:     reporter,
		logger:       logger,
		getwd:        os.Getwd,
		now:          time.Now,
	}
}

// WithWorkingDir makes root discovery start at dir instead of the process working directory.
func (a *App) WithWorkingDir(dir string) *App {
	a.getwd = func() (string, error) { return dir, nil }
	return a
}

// WithClock replaces the clock used for the timing line.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// CheckFlags holds the command line values of a check. Nil and empty fields were not given
// and fall back to the config file, then to the built-in defaults.
type CheckFlags struct {
	Root       string
	Threshold  *uint
	EntryGlob  *string
	ConfigPath string
	Jobs       *int
}

// Bloat runs the import-bloat check and writes the report to w.
func (a *App) Bloat(ctx context.Context, w io.Writer, flags CheckFlags) error {
	return a.Check(ctx, w, domain.CheckBloat, flags)
}

// Depth runs the import-depth check and writes the report to w.
func (a *App) Depth(ctx context.Context, w io.Writer, flags CheckFlags) error {
	return a.Check(ctx, w, domain.CheckDepth, flags)
}

// Check runs the given check and writes the report to w. It returns
// domain.ErrViolationsFound when at least one warning was reported.
func (a *App) Check(ctx context.Context, w io.Writer, kind domain.CheckKind, flags CheckFlags) error {
	// 1. Resolve the workspace root
	root, err := a.resolveRoot(flags.Root)
	if err != nil {
		return err
	}
	a.logger.Debug(fmt.Sprintf("using workspace root %s", root))

	// 2. Load configuration
	cfg, err := a.configLoader.Load(root, flags.ConfigPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}
	opts := mergeOptions(kind, root, flags, cfg)

	// 3. Build the alias table before any analysis starts
	aliases, err := a.aliasLoader.LoadAliases(root)
	if err != nil {
		return zerr.Wrap(err, "failed to load path aliases")
	}
	a.logger.Debug(fmt.Sprintf("loaded %d tsconfig path aliases", aliases.Len()))

	// 4. Analyze
	start := a.now()
	result, err := a.analyzer.Check(ctx, kind, opts, aliases)
	if err != nil {
		return err
	}

	// 5. Report
	stats := ports.RunStats{
		Elapsed:       a.now().Sub(start),
		FilesAnalyzed: result.FilesAnalyzed,
		Jobs:          scheduler.Jobs(opts.Jobs),
	}
	if err := a.reporter.Report(w, kind, root, opts.Threshold, result, stats); err != nil {
		return zerr.Wrap(err, "failed to write report")
	}

	if len(result.Warnings) > 0 {
		return domain.ErrViolationsFound
	}
	return nil
}

// resolveRoot canonicalizes an explicit root, or discovers the enclosing git workspace.
func (a *App) resolveRoot(explicit string) (string, error) {
	if explicit != "" {
		return canonicalize(explicit), nil
	}

	cwd, err := a.getwd()
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrWorkspaceRootNotFound.Error())
	}
	root, err := a.configLoader.DiscoverRoot(cwd)
	if err != nil {
		return "", err
	}
	return canonicalize(root), nil
}

// canonicalize resolves symlinks and makes path absolute. The path is returned as given
// when that fails.
func canonicalize(path string) string {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return path
	}
	abs, err := filepath.Abs(resolved)
	if err != nil {
		return resolved
	}
	return abs
}

// mergeOptions applies flag > config file > default precedence.
func mergeOptions(kind domain.CheckKind, root string, flags CheckFlags, cfg *domain.Config) domain.CheckOptions {
	fileCheck := cfg.Check(kind)

	threshold := defaultThreshold(kind)
	switch {
	case flags.Threshold != nil:
		threshold = int(*flags.Threshold) //nolint:gosec // thresholds are small
	case fileCheck.Threshold != nil:
		threshold = int(*fileCheck.Threshold) //nolint:gosec // thresholds are small
	}

	var entryGlob string
	switch {
	case flags.EntryGlob != nil:
		entryGlob = *flags.EntryGlob
	case fileCheck.EntryGlob != nil:
		entryGlob = *fileCheck.EntryGlob
	}

	var jobs int
	if cfg != nil {
		jobs = cfg.Jobs
	}
	if flags.Jobs != nil {
		jobs = *flags.Jobs
	}

	var exclude []string
	if cfg != nil {
		exclude = cfg.Exclude
	}

	return domain.CheckOptions{
		Root:      root,
		Threshold: threshold,
		EntryGlob: entryGlob,
		Exclude:   exclude,
		Jobs:      jobs,
	}
}

func defaultThreshold(kind domain.CheckKind) int {
	if kind == domain.CheckDepth {
		return domain.DefaultDepthThreshold
	}
	return domain.DefaultBloatThreshold
}
