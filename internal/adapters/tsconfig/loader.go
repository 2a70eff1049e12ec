// Package tsconfig loads path aliases from tsconfig.json files.
package tsconfig

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"

	"github.com/abvthecity/oxiclean/internal/core/domain"
	"github.com/abvthecity/oxiclean/internal/core/ports"
)

var _ ports.AliasLoader = (*Loader)(nil)

// Loader implements ports.AliasLoader.
type Loader struct {
	Walker ports.SourceWalker
	Logger ports.Logger
}

// NewLoader creates a new tsconfig alias loader.
func NewLoader(walker ports.SourceWalker, logger ports.Logger) *Loader {
	return &Loader{Walker: walker, Logger: logger}
}

type tsconfigFile struct {
	CompilerOptions *compilerOptions `json:"compilerOptions"`
}

type compilerOptions struct {
	BaseURL *string                    `json:"baseUrl"`
	Paths   map[string]json.RawMessage `json:"paths"`
}

// LoadAliases reads every tsconfig.json under root. A later file overrides an earlier
// identical alias; unreadable or invalid files are skipped.
func (l *Loader) LoadAliases(root string) (domain.AliasTable, error) {
	paths := make(map[string][]string)
	found := 0

	for file := range l.Walker.FindFiles(root, domain.TsconfigName) {
		found++
		aliases, err := ReadFile(file)
		if err != nil {
			l.Logger.Debug(fmt.Sprintf("skipping %s: %v", file, err))
			continue
		}
		for alias, targets := range aliases {
			l.Logger.Debug(fmt.Sprintf("tsconfig path alias %q -> %v", alias, targets))
			paths[alias] = targets
		}
	}

	table := domain.NewAliasTable(paths)
	l.Logger.Debug(fmt.Sprintf("loaded %d tsconfig path aliases from %d files", table.Len(), found))
	return table, nil
}

// ReadFile reads and parses a single tsconfig.json.
func ReadFile(path string) (map[string][]string, error) {
	//nolint:gosec // path comes from walking the workspace
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrTsconfigReadFailed.Error()), "path", path)
	}
	aliases, err := Parse(filepath.Dir(path), content)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return aliases, nil
}

// Parse extracts compilerOptions.paths from tsconfig content. Targets are joined onto
// dir and compilerOptions.baseUrl; the "/*" suffix is trimmed from aliases and targets.
func Parse(dir string, content []byte) (map[string][]string, error) {
	var cfg tsconfigFile
	if err := json.Unmarshal(StripLineComments(content), &cfg); err != nil {
		return nil, zerr.Wrap(err, domain.ErrTsconfigParseFailed.Error())
	}

	aliases := make(map[string][]string)
	if cfg.CompilerOptions == nil || len(cfg.CompilerOptions.Paths) == 0 {
		return aliases, nil
	}

	baseURL := "."
	if cfg.CompilerOptions.BaseURL != nil {
		baseURL = *cfg.CompilerOptions.BaseURL
	}
	base := filepath.Join(dir, baseURL)

	for alias, raw := range cfg.CompilerOptions.Paths {
		var entries []any
		if err := json.Unmarshal(raw, &entries); err != nil {
			continue
		}
		targets := make([]string, 0, len(entries))
		for _, entry := range entries {
			target, ok := entry.(string)
			if !ok {
				continue
			}
			targets = append(targets, filepath.Join(base, strings.TrimSuffix(target, domain.WildcardSuffix)))
		}
		if len(targets) == 0 {
			continue
		}
		aliases[strings.TrimSuffix(alias, domain.WildcardSuffix)] = targets
	}
	return aliases, nil
}

// StripLineComments drops everything from the first "//" to the end of each line.
// A "//" inside a string value is cut as well.
func StripLineComments(content []byte) []byte {
	lines := strings.Split(string(content), "\n")
	for i, line := range lines {
		if idx := strings.Index(line, "//"); idx >= 0 {
			lines[i] = line[:idx]
		}
	}
	return []byte(strings.Join(lines, "\n"))
}
