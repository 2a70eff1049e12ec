// Package fs provides file system adapters for discovering source files.
package fs

import (
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
	"go.trai.ch/zerr"

	"github.com/abvthecity/oxiclean/internal/core/domain"
	"github.com/abvthecity/oxiclean/internal/core/ports"
)

var _ ports.SourceWalker = (*Walker)(nil)

// Walker provides file walking functionality that honors ignore files.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkSources yields the absolute paths of analyzable source files under root.
// Exclude patterns are gobwas globs matched against root-relative, slash-separated paths.
func (w *Walker) WalkSources(root string, exclude []string) (iter.Seq[string], error) {
	globs := make([]glob.Glob, 0, len(exclude))
	for _, pattern := range exclude {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrInvalidExcludePattern.Error()), "pattern", pattern)
		}
		globs = append(globs, g)
	}

	seq := func(yield func(string) bool) {
		for path := range w.walk(root) {
			if !domain.IsSourceFile(path) || domain.IsTestFile(path) {
				continue
			}
			if excluded(globs, root, path) {
				continue
			}
			if !yield(path) {
				return
			}
		}
	}
	return seq, nil
}

// FindFiles yields every non-ignored file under root whose base name is name.
func (w *Walker) FindFiles(root, name string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for path := range w.walk(root) {
			if filepath.Base(path) != name {
				continue
			}
			if !yield(path) {
				return
			}
		}
	}
}

// walk yields all files under root, skipping hidden entries, .git, node_modules and
// anything matched by a .gitignore or .ignore file in the path's ancestry.
func (w *Walker) walk(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		abs, err := filepath.Abs(root)
		if err != nil {
			abs = filepath.Clean(root)
		}
		rules := newIgnoreRules(abs)

		_ = filepath.WalkDir(abs, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				// Unreadable entries are skipped, the rest of the tree is still walked.
				if d != nil && d.IsDir() && path != abs {
					return filepath.SkipDir
				}
				return nil
			}
			if path == abs {
				return nil
			}

			if skip := w.shouldSkip(d, path, rules); skip {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			if d.IsDir() {
				return nil
			}
			if !d.Type().IsRegular() && !isRegularTarget(path) {
				return nil
			}

			if !yield(path) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

func (w *Walker) shouldSkip(d fs.DirEntry, path string, rules *ignoreRules) bool {
	name := d.Name()

	if strings.HasPrefix(name, ".") {
		return true
	}
	if d.IsDir() && name == domain.NodeModulesDirName {
		return true
	}

	return rules.ignored(path, d.IsDir())
}

// isRegularTarget reports whether a symlink points at a regular file.
func isRegularTarget(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func excluded(globs []glob.Glob, root, path string) bool {
	if len(globs) == 0 {
		return false
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	for _, g := range globs {
		if g.Match(rel) {
			return true
		}
	}
	return false
}
