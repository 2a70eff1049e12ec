package resolver_test

import (
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abvthecity/oxiclean/internal/adapters/logger"
	"github.com/abvthecity/oxiclean/internal/core/domain"
	"github.com/abvthecity/oxiclean/internal/engine/graph"
	"github.com/abvthecity/oxiclean/internal/engine/resolver"
)

func tempRoot(t *testing.T) string {
	t.Helper()
	root, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	return root
}

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}
}

func newResolver(root string, aliases domain.AliasTable) (*resolver.Resolver, *graph.Cache[graph.ResolveKey, string]) {
	cache := graph.NewCache[graph.ResolveKey, string](graph.HashResolveKey)
	return resolver.New(root, aliases, cache, logger.NewWithWriter(io.Discard)), cache
}

func TestResolver_Relative(t *testing.T) {
	root := tempRoot(t)
	writeTree(t, root, map[string]string{
		"src/index.ts":       "",
		"src/a.ts":           "",
		"src/a.js":           "",
		"src/b.mjs":          "",
		"src/lib/index.tsx":  "",
		"src/lib/index.js":   "",
		"src/bare/.keep":     "",
		"src/bare.jsx":       "",
		"src/exact.css":      "",
		"shared/util.cts":    "",
		"shared/nested/x.ts": "",
	})
	from := filepath.Join(root, "src/index.ts")

	tests := []struct {
		name    string
		request string
		want    string
	}{
		{name: "extension priority", request: "./a", want: "src/a.ts"},
		{name: "exact file", request: "./a.js", want: "src/a.js"},
		{name: "later extension", request: "./b", want: "src/b.mjs"},
		{name: "directory index priority", request: "./lib", want: "src/lib/index.tsx"},
		{name: "directory without index falls back to extension", request: "./bare", want: "src/bare.jsx"},
		{name: "non-source file", request: "./exact.css", want: "src/exact.css"},
		{name: "parent directory", request: "../shared/util", want: "shared/util.cts"},
		{name: "uncleaned path", request: "./../shared/nested/../util", want: "shared/util.cts"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := newResolver(root, domain.AliasTable{})
			got, ok := r.Resolve(from, tt.request)
			require.True(t, ok)
			assert.Equal(t, filepath.Join(root, tt.want), got)
		})
	}
}

func TestResolver_AbsoluteRequest(t *testing.T) {
	root := tempRoot(t)
	writeTree(t, root, map[string]string{"src/index.ts": "", "lib/x.ts": ""})
	r, _ := newResolver(root, domain.AliasTable{})

	got, ok := r.Resolve(filepath.Join(root, "src/index.ts"), filepath.Join(root, "lib/x"))
	require.True(t, ok)
	assert.Equal(t, filepath.Join(root, "lib/x.ts"), got)
}

func TestResolver_Unresolved(t *testing.T) {
	root := tempRoot(t)
	writeTree(t, root, map[string]string{"src/index.ts": ""})
	r, cache := newResolver(root, domain.AliasTable{})
	from := filepath.Join(root, "src/index.ts")

	for _, request := range []string{"./missing", "react", "@scope/missing"} {
		_, ok := r.Resolve(from, request)
		assert.False(t, ok, request)

		stored, cached := cache.Load(graph.ResolveKey{From: from, Request: request})
		assert.True(t, cached, request)
		assert.Empty(t, stored, request)
	}
}

func TestResolver_SymlinkIsCanonicalized(t *testing.T) {
	root := tempRoot(t)
	writeTree(t, root, map[string]string{"src/index.ts": "", "src/real.ts": ""})
	require.NoError(t, os.Symlink(filepath.Join(root, "src/real.ts"), filepath.Join(root, "src/link.ts")))
	r, _ := newResolver(root, domain.AliasTable{})

	got, ok := r.Resolve(filepath.Join(root, "src/index.ts"), "./link")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(root, "src/real.ts"), got)
}

func TestResolver_Aliases(t *testing.T) {
	root := tempRoot(t)
	writeTree(t, root, map[string]string{
		"src/index.ts":                 "",
		"src/app/util.ts":              "",
		"src/app/ui/button.tsx":        "",
		"src/fallback/thing.ts":        "",
		"config.ts":                    "",
		"src/widgets/index.ts":         "",
		"src/lib/core/extra.ts":        "",
		"node_modules/@app/x/index.js": "",
		"node_modules/@wild/index.js":  "",
	})
	aliases := domain.NewAliasTable(map[string][]string{
		"@app":      {filepath.Join(root, "missing"), filepath.Join(root, "src/app")},
		"@app/ui":   {filepath.Join(root, "src/app/ui")},
		"@cfg":      {filepath.Join(root, "config")},
		"@wild/*":   {filepath.Join(root, "src/widgets")},
		"@fb":       {filepath.Join(root, "src/fallback")},
		"@lib/core": {filepath.Join(root, "src/core")},
		"@lib":      {filepath.Join(root, "src/lib")},
	})
	from := filepath.Join(root, "src/index.ts")

	tests := []struct {
		name    string
		request string
		want    string
	}{
		{name: "second target", request: "@app/util", want: "src/app/util.ts"},
		{name: "longer alias first", request: "@app/ui/button", want: "src/app/ui/button.tsx"},
		{name: "plain alias without remainder", request: "@cfg", want: "config.ts"},
		{name: "wildcard alias with remainder", request: "@wild/index", want: "src/widgets/index.ts"},
		{name: "wildcard alias needs a remainder", request: "@wild", want: "node_modules/@wild/index.js"},
		{name: "alias miss falls through to node_modules", request: "@app/x", want: "node_modules/@app/x/index.js"},
		{name: "failed alias falls through to shorter alias", request: "@lib/core/extra", want: "src/lib/core/extra.ts"},
		{name: "alias target file", request: "@fb/thing", want: "src/fallback/thing.ts"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := newResolver(root, aliases)
			got, ok := r.Resolve(from, tt.request)
			require.True(t, ok)
			assert.Equal(t, filepath.Join(root, tt.want), got)
		})
	}
}

func TestResolver_Packages(t *testing.T) {
	root := tempRoot(t)
	writeTree(t, root, map[string]string{
		"src/index.ts": "",

		"node_modules/plain/index.js":         "",
		"node_modules/plain/sub.js":           "",
		"node_modules/plain/nested/index.mjs": "",

		"node_modules/@scope/pkg/package.json": `{"main": "lib/main.js"}`,
		"node_modules/@scope/pkg/lib/main.js":  "",

		"node_modules/exp-string/package.json": `{"exports": "./dist/esm.js", "module": "mod.js", "main": "main.js"}`,
		"node_modules/exp-string/dist/esm.js":  "",
		"node_modules/exp-string/mod.js":       "",
		"node_modules/exp-string/main.js":      "",

		"node_modules/exp-dot/package.json": `{"exports": {".": "./dot.js"}, "main": "main.js"}`,
		"node_modules/exp-dot/dot.js":       "",
		"node_modules/exp-dot/main.js":      "",

		"node_modules/exp-cond/package.json": `{"exports": {".": {"default": "./default.js", "require": "./cjs.js", "import": "./esm.mjs"}}}`,
		"node_modules/exp-cond/esm.mjs":      "",
		"node_modules/exp-cond/cjs.js":       "",
		"node_modules/exp-cond/default.js":   "",

		"node_modules/exp-miss/package.json": `{"exports": {".": {"import": "./gone.js", "require": "./cjs.js"}}}`,
		"node_modules/exp-miss/cjs.js":       "",

		"node_modules/mod-first/package.json":  `{"module": "esm/index", "main": "cjs/index.js"}`,
		"node_modules/mod-first/esm/index.mjs": "",
		"node_modules/mod-first/cjs/index.js":  "",

		"node_modules/main-only/package.json": `{"main": "./lib"}`,
		"node_modules/main-only/lib/index.js": "",

		"node_modules/broken/package.json": `{"main": `,
		"node_modules/broken/index.ts":     "",

		"node_modules/stale/package.json": `{"main": "gone.js"}`,
		"node_modules/stale/index.cjs":    "",

		"node_modules/non-string/package.json": `{"main": 42, "exports": ["./a.js"]}`,
		"node_modules/non-string/index.js":     "",
	})
	from := filepath.Join(root, "src/index.ts")

	tests := []struct {
		name    string
		request string
		want    string
	}{
		{name: "index without manifest", request: "plain", want: "node_modules/plain/index.js"},
		{name: "deep import of a directory", request: "plain/nested", want: "node_modules/plain/nested/index.mjs"},
		{name: "scoped package main", request: "@scope/pkg", want: "node_modules/@scope/pkg/lib/main.js"},
		{name: "exports string wins", request: "exp-string", want: "node_modules/exp-string/dist/esm.js"},
		{name: "exports dot string", request: "exp-dot", want: "node_modules/exp-dot/dot.js"},
		{name: "exports condition order", request: "exp-cond", want: "node_modules/exp-cond/esm.mjs"},
		{name: "missing condition target", request: "exp-miss", want: "node_modules/exp-miss/cjs.js"},
		{name: "module before main", request: "mod-first", want: "node_modules/mod-first/esm/index.mjs"},
		{name: "main directory", request: "main-only", want: "node_modules/main-only/lib/index.js"},
		{name: "invalid manifest falls back to index", request: "broken", want: "node_modules/broken/index.ts"},
		{name: "stale main falls back to index", request: "stale", want: "node_modules/stale/index.cjs"},
		{name: "non-string fields are ignored", request: "non-string", want: "node_modules/non-string/index.js"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := newResolver(root, domain.AliasTable{})
			got, ok := r.Resolve(from, tt.request)
			require.True(t, ok)
			assert.Equal(t, filepath.Join(root, tt.want), got)
		})
	}
}

func TestResolver_PackagesNeedADirectory(t *testing.T) {
	root := tempRoot(t)
	writeTree(t, root, map[string]string{
		"src/index.ts": "",

		"node_modules/lodash/index.js": "",
		"node_modules/lodash/map.js":   "",

		"node_modules/single.js": "",

		"node_modules/noindex/readme.md": "",
		"node_modules/noindex.ts":        "",
	})
	from := filepath.Join(root, "src/index.ts")

	for _, request := range []string{"lodash/map", "single", "noindex"} {
		t.Run(request, func(t *testing.T) {
			r, _ := newResolver(root, domain.AliasTable{})
			got, ok := r.Resolve(from, request)
			assert.False(t, ok)
			assert.Empty(t, got)
		})
	}
}

func TestResolver_NearestNodeModulesWins(t *testing.T) {
	root := tempRoot(t)
	writeTree(t, root, map[string]string{
		"node_modules/dep/index.js":              "",
		"packages/web/node_modules/dep/index.js": "",
		"packages/web/src/app.ts":                "",
		"packages/api/src/server.ts":             "",
	})
	r, _ := newResolver(root, domain.AliasTable{})

	got, ok := r.Resolve(filepath.Join(root, "packages/web/src/app.ts"), "dep")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(root, "packages/web/node_modules/dep/index.js"), got)

	got, ok = r.Resolve(filepath.Join(root, "packages/api/src/server.ts"), "dep")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(root, "node_modules/dep/index.js"), got)
}

func TestResolver_NodeModulesNotSearchedAboveRoot(t *testing.T) {
	parent := tempRoot(t)
	root := filepath.Join(parent, "workspace")
	writeTree(t, parent, map[string]string{
		"node_modules/outside/index.js": "",
		"workspace/src/index.ts":        "",
	})
	r, _ := newResolver(root, domain.AliasTable{})

	_, ok := r.Resolve(filepath.Join(root, "src/index.ts"), "outside")
	assert.False(t, ok)
}

func TestResolver_ConcurrentSameKey(t *testing.T) {
	root := tempRoot(t)
	writeTree(t, root, map[string]string{"src/index.ts": "", "src/a.ts": ""})
	r, cache := newResolver(root, domain.AliasTable{})
	from := filepath.Join(root, "src/index.ts")

	const workers = 100
	results := make([]string, workers)
	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], _ = r.Resolve(from, "./a")
		}()
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, filepath.Join(root, "src/a.ts"), got)
	}
	assert.Equal(t, 1, cache.Len())
}
