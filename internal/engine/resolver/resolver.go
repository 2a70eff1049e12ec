// Package resolver maps import requests to files the way Node and TypeScript do:
// relative paths with extension and index probing, tsconfig path aliases, and
// node_modules packages bounded by the workspace root.
package resolver

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/abvthecity/oxiclean/internal/core/domain"
	"github.com/abvthecity/oxiclean/internal/core/ports"
	"github.com/abvthecity/oxiclean/internal/engine/graph"
)

var _ graph.Resolver = (*Resolver)(nil)

// Resolver resolves requests and memoizes the outcome per (importing file, request).
// It is safe for concurrent use.
type Resolver struct {
	root    string
	aliases domain.AliasTable
	cache   *graph.Cache[graph.ResolveKey, string]
	logger  ports.Logger
}

// New creates a Resolver for the workspace at root. root must be canonical.
func New(root string, aliases domain.AliasTable, cache *graph.Cache[graph.ResolveKey, string], logger ports.Logger) *Resolver {
	return &Resolver{root: root, aliases: aliases, cache: cache, logger: logger}
}

// Resolve returns the canonical path that request refers to when written in from.
func (r *Resolver) Resolve(from, request string) (string, bool) {
	key := graph.ResolveKey{From: from, Request: request}
	if resolved, ok := r.cache.Load(key); ok {
		return resolved, resolved != ""
	}

	var resolved string
	if domain.IsRelativeRequest(request) {
		resolved, _ = r.resolveRelative(from, request)
	} else {
		resolved, _ = r.resolveBare(from, request)
	}

	stored, _ := r.cache.LoadOrStore(key, resolved)
	if stored == "" {
		r.logger.Debug(fmt.Sprintf("could not resolve '%s' from %s", request, from))
	}
	return stored, stored != ""
}

func (r *Resolver) resolveRelative(from, request string) (string, bool) {
	p := request
	if !filepath.IsAbs(request) {
		p = filepath.Join(filepath.Dir(from), request)
	}
	return ResolveFile(filepath.Clean(p))
}

func (r *Resolver) resolveBare(from, request string) (string, bool) {
	for _, alias := range r.aliases.All() {
		remainder, ok := alias.Match(request)
		if !ok {
			continue
		}
		for _, target := range alias.Targets {
			candidate := target
			if remainder != "" {
				candidate = filepath.Join(target, remainder)
			}
			if resolved, ok := ResolveFile(candidate); ok {
				return resolved, true
			}
		}
	}

	return r.resolvePackage(filepath.Dir(from), request)
}

// ResolveFile resolves a path that may lack an extension or name a directory.
func ResolveFile(p string) (string, bool) {
	info, err := os.Stat(p)
	exists := err == nil

	if exists && info.Mode().IsRegular() {
		return canonical(p), true
	}
	if exists && info.IsDir() {
		if resolved, ok := probeIndex(p); ok {
			return resolved, true
		}
	}

	for _, ext := range domain.ResolveExtensions {
		candidate := p + "." + ext
		if pathExists(candidate) {
			return canonical(candidate), true
		}
	}

	if !exists {
		return probeIndex(p)
	}
	return "", false
}

func probeIndex(dir string) (string, bool) {
	for _, name := range domain.IndexFiles {
		candidate := filepath.Join(dir, name)
		if pathExists(candidate) {
			return canonical(candidate), true
		}
	}
	return "", false
}

func pathExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}

// canonical resolves symlinks and makes p absolute. The cleaned path is returned
// when that fails.
func canonical(p string) string {
	resolved, err := filepath.EvalSymlinks(p)
	if err != nil {
		return filepath.Clean(p)
	}
	abs, err := filepath.Abs(resolved)
	if err != nil {
		return resolved
	}
	return abs
}

// isWithin reports whether dir is root or below it.
func isWithin(root, dir string) bool {
	rel, err := filepath.Rel(root, dir)
	return err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
