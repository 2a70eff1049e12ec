package graph_test

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abvthecity/oxiclean/internal/adapters/logger"
	"github.com/abvthecity/oxiclean/internal/adapters/parser"
	"github.com/abvthecity/oxiclean/internal/core/domain"
	"github.com/abvthecity/oxiclean/internal/engine/graph"
	"github.com/abvthecity/oxiclean/internal/engine/resolver"
)

type fixture struct {
	root   string
	caches *graph.Caches
	walker *graph.Walker
}

func newFixture(t *testing.T, files map[string]string) *fixture {
	t.Helper()
	root, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	for name, content := range files {
		writeFile(t, filepath.Join(root, filepath.FromSlash(name)), content)
	}

	log := logger.NewWithWriter(io.Discard)
	caches := graph.NewCaches()
	res := resolver.New(root, domain.AliasTable{}, caches.Resolutions, log)
	return &fixture{
		root:   root,
		caches: caches,
		walker: graph.NewWalker(parser.New(), res, caches, log),
	}
}

func (f *fixture) path(name string) string {
	return filepath.Join(f.root, filepath.FromSlash(name))
}

func (f *fixture) rel(t *testing.T, set graph.Set) []string {
	t.Helper()
	out := make([]string, 0, len(set))
	for p := range set {
		rel, err := filepath.Rel(f.root, p)
		require.NoError(t, err)
		out = append(out, filepath.ToSlash(rel))
	}
	return out
}

// cycleFiles is entry -> A -> B -> C -> A.
var cycleFiles = map[string]string{
	"src/entry.ts": "import './a';\n",
	"src/a.ts":     "import { b } from './b';\nexport const a = b;\n",
	"src/b.ts":     "const c = require('./c');\nmodule.exports = c;\n",
	"src/c.ts":     "export async function load() { return import('./a'); }\nimport './a';\n",
}

func TestWalker_Edges(t *testing.T) {
	f := newFixture(t, map[string]string{
		"src/entry.ts": "import './a';\nimport type { T } from './types';\nimport 'missing-pkg';\nconst b = require('./b');\n",
		"src/a.ts":     "",
		"src/b.js":     "",
		"src/types.ts": "export type T = string;\n",
	})

	edges := f.walker.Edges(t.Context(), f.path("src/entry.ts"))

	assert.Equal(t, []graph.Edge{
		{Request: "./a", Target: f.path("src/a.ts")},
		{Request: "./b", Target: f.path("src/b.js")},
	}, edges)
}

func TestWalker_EdgesOfUnreadableFile(t *testing.T) {
	f := newFixture(t, map[string]string{"src/entry.ts": ""})

	assert.Empty(t, f.walker.Edges(t.Context(), f.path("src/gone.ts")))
	assert.Empty(t, f.walker.Edges(t.Context(), f.path("src/gone.ts")))
}

func TestWalker_ReachableTerminatesOnCycle(t *testing.T) {
	f := newFixture(t, cycleFiles)

	got := f.walker.Reachable(t.Context(), f.path("src/entry.ts"))

	assert.ElementsMatch(t, []string{"src/entry.ts", "src/a.ts", "src/b.ts", "src/c.ts"}, f.rel(t, got))
	assert.Equal(t, 4, f.caches.Imports.Len())
}

func TestWalker_ReachableIsMemoized(t *testing.T) {
	f := newFixture(t, map[string]string{
		"src/entry.ts": "import './a';\n",
		"src/a.ts":     "import './b';\n",
		"src/b.ts":     "",
	})

	first := f.walker.Reachable(t.Context(), f.path("src/a.ts"))
	second := f.walker.Reachable(t.Context(), f.path("src/a.ts"))

	assert.Len(t, first, 2)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, f.caches.Reachable.Len())

	entry := f.walker.Reachable(t.Context(), f.path("src/entry.ts"))
	assert.Len(t, entry, 3)
	assert.Equal(t, 2, f.caches.Reachable.Len())
}

func TestWalker_ReachableIncludesPackages(t *testing.T) {
	f := newFixture(t, map[string]string{
		"src/entry.ts":                    "import React from 'react';\n",
		"node_modules/react/index.js":     "module.exports = require('./cjs/react');\n",
		"node_modules/react/cjs/react.js": "",
	})

	got := f.walker.Reachable(t.Context(), f.path("src/entry.ts"))

	assert.ElementsMatch(t, []string{
		"src/entry.ts",
		"node_modules/react/index.js",
		"node_modules/react/cjs/react.js",
	}, f.rel(t, got))
}

func TestWalker_DepthChain(t *testing.T) {
	f := newFixture(t, map[string]string{
		"src/entry.ts": "import './short';\nimport './a';\n",
		"src/short.ts": "",
		"src/a.ts":     "import './b';\n",
		"src/b.ts":     "import './c';\n",
		"src/c.ts":     "",
	})

	assert.Equal(t, 3, f.walker.Depth(t.Context(), f.path("src/entry.ts")))
	assert.Equal(t, 0, f.walker.Depth(t.Context(), f.path("src/c.ts")))

	depths := f.walker.ImportDepths(t.Context(), f.path("src/entry.ts"))
	assert.Equal(t, []graph.ImportDepth{
		{Request: "./short", Target: f.path("src/short.ts"), Depth: 1},
		{Request: "./a", Target: f.path("src/a.ts"), Depth: 3},
	}, depths)
}

func TestWalker_DepthTruncatesCycles(t *testing.T) {
	f := newFixture(t, cycleFiles)

	entry := f.walker.Depth(t.Context(), f.path("src/entry.ts"))

	assert.Equal(t, 3, entry)
	assert.Less(t, entry, 4)
	assert.Equal(t, 2, f.walker.Depth(t.Context(), f.path("src/a.ts")))
	assert.Equal(t, 1, f.walker.Depth(t.Context(), f.path("src/b.ts")))
	assert.Equal(t, 0, f.walker.Depth(t.Context(), f.path("src/c.ts")))
}

func TestWalker_SelfImport(t *testing.T) {
	f := newFixture(t, map[string]string{"src/self.ts": "import './self';\n"})

	assert.Equal(t, 0, f.walker.Depth(t.Context(), f.path("src/self.ts")))
	assert.Len(t, f.walker.Reachable(t.Context(), f.path("src/self.ts")), 1)
}
