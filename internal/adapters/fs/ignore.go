package fs

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	ignore "github.com/sabhiram/go-gitignore"

	"github.com/abvthecity/oxiclean/internal/core/domain"
)

// ignoreFileNames are read in every directory; their rules apply to everything below it.
var ignoreFileNames = []string{".gitignore", ".ignore"}

type scopedIgnore struct {
	dir   string
	rules *ignore.GitIgnore
}

// ignoreRules lazily compiles the ignore files of each directory under root.
type ignoreRules struct {
	root string

	mu     sync.Mutex
	loaded map[string]bool
	byDir  map[string][]scopedIgnore
}

func newIgnoreRules(root string) *ignoreRules {
	r := &ignoreRules{
		root:   root,
		loaded: make(map[string]bool),
		byDir:  make(map[string][]scopedIgnore),
	}

	// .git/info/exclude applies to the whole repository.
	exclude := filepath.Join(root, domain.GitDirName, "info", "exclude")
	if gi, err := ignore.CompileIgnoreFile(exclude); err == nil {
		r.byDir[root] = append(r.byDir[root], scopedIgnore{dir: root, rules: gi})
	}
	return r
}

func (r *ignoreRules) load(dir string) []scopedIgnore {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.loaded[dir] {
		return r.byDir[dir]
	}

	scoped := r.byDir[dir]
	for _, name := range ignoreFileNames {
		file := filepath.Join(dir, name)
		if _, err := os.Stat(file); err != nil {
			continue
		}
		gi, err := ignore.CompileIgnoreFile(file)
		if err != nil {
			continue
		}
		scoped = append(scoped, scopedIgnore{dir: dir, rules: gi})
	}
	r.byDir[dir] = scoped
	r.loaded[dir] = true
	return scoped
}

// ancestors returns root and every directory between root and dir, inclusive.
func (r *ignoreRules) ancestors(dir string) []string {
	dirs := []string{r.root}
	rel, err := filepath.Rel(r.root, dir)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return dirs
	}
	current := r.root
	for _, part := range strings.Split(filepath.ToSlash(rel), "/") {
		current = filepath.Join(current, part)
		dirs = append(dirs, current)
	}
	return dirs
}

// ignored reports whether path is matched by an ignore file in any of its ancestor directories.
func (r *ignoreRules) ignored(path string, isDir bool) bool {
	for _, dir := range r.ancestors(filepath.Dir(path)) {
		for _, scoped := range r.load(dir) {
			target, err := filepath.Rel(scoped.dir, path)
			if err != nil {
				continue
			}
			target = filepath.ToSlash(target)
			if isDir {
				target += "/"
			}
			if scoped.rules.MatchesPath(target) {
				return true
			}
		}
	}
	return false
}
