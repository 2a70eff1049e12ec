package checker_test

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abvthecity/oxiclean/internal/adapters/fs"
	"github.com/abvthecity/oxiclean/internal/adapters/logger"
	"github.com/abvthecity/oxiclean/internal/adapters/parser"
	"github.com/abvthecity/oxiclean/internal/adapters/telemetry"
	"github.com/abvthecity/oxiclean/internal/core/domain"
	"github.com/abvthecity/oxiclean/internal/engine/checker"
	"github.com/abvthecity/oxiclean/internal/engine/scheduler"
)

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}
}

func tempRoot(t *testing.T) string {
	t.Helper()
	root, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	return root
}

func newChecker() *checker.Checker {
	tracer := telemetry.NewNoOpTracer()
	return checker.New(
		fs.NewWalker(),
		parser.New(),
		scheduler.NewScheduler(tracer),
		tracer,
		logger.NewWithWriter(io.Discard),
	)
}

// fanOut writes dir.ts importing n leaf modules under dir/.
func fanOut(files map[string]string, dir string, n int) {
	var b strings.Builder
	for i := range n {
		leaf := fmt.Sprintf("%s/leaf%03d.ts", dir, i)
		files[leaf] = fmt.Sprintf("export const v%d = %d;\n", i, i)
		fmt.Fprintf(&b, "import './%s/leaf%03d';\n", filepath.Base(dir), i)
	}
	files[dir+".ts"] = b.String()
}

func disjointSiblings(t *testing.T) string {
	t.Helper()
	root := tempRoot(t)
	files := map[string]string{
		"src/index.ts": "import './a';\nimport './b';\n",
	}
	fanOut(files, "src/a", 150)
	fanOut(files, "src/b", 149)
	writeTree(t, root, files)
	return root
}

func TestBloat_EntryGraphOnly(t *testing.T) {
	root := disjointSiblings(t)

	result, err := newChecker().Bloat(t.Context(), domain.CheckOptions{
		Root:      root,
		Threshold: 200,
		EntryGlob: "src/index",
	}, domain.AliasTable{})

	require.NoError(t, err)
	assert.Equal(t, []domain.Warning{{
		ImportStatement: domain.EntryGraphStatement,
		FromFile:        "src/index.ts",
		Metric:          302,
		EntryGraph:      true,
	}}, result.Warnings)
	assert.Equal(t, 1, result.Entries)
	assert.Equal(t, 302, result.FilesAnalyzed)
}

func TestBloat_ImportWarningsBeforeEntryWarning(t *testing.T) {
	root := disjointSiblings(t)

	result, err := newChecker().Bloat(t.Context(), domain.CheckOptions{
		Root:      root,
		Threshold: 150,
		EntryGlob: "src/index",
		Jobs:      2,
	}, domain.AliasTable{})

	require.NoError(t, err)
	assert.Equal(t, []domain.Warning{
		{ImportStatement: "import './a'", FromFile: "src/index.ts", Metric: 151, ResolvedPath: "src/a.ts"},
		{ImportStatement: "import './b'", FromFile: "src/index.ts", Metric: 150, ResolvedPath: "src/b.ts"},
		{ImportStatement: domain.EntryGraphStatement, FromFile: "src/index.ts", Metric: 302, EntryGraph: true},
	}, result.Warnings)
}

func TestBloat_DefaultEntriesUnderSrc(t *testing.T) {
	root := tempRoot(t)
	writeTree(t, root, map[string]string{
		"packages/web/src/main.ts":      "import './util';\n",
		"packages/web/src/util.ts":      "",
		"packages/web/src/main.test.ts": "import './util';\n",
		"scripts/build.ts":              "import '../packages/web/src/util';\n",
		".hidden/src/x.ts":              "",
	})

	result, err := newChecker().Bloat(t.Context(), domain.CheckOptions{Root: root, Threshold: 2}, domain.AliasTable{})

	require.NoError(t, err)
	assert.Equal(t, 2, result.Entries)
	assert.Equal(t, []domain.Warning{{
		ImportStatement: domain.EntryGraphStatement,
		FromFile:        "packages/web/src/main.ts",
		Metric:          2,
		EntryGraph:      true,
	}}, result.Warnings)
}

func TestBloat_WarningsFollowEntryOrder(t *testing.T) {
	root := tempRoot(t)
	writeTree(t, root, map[string]string{
		"src/a.ts":      "import './shared';\n",
		"src/b.ts":      "import './shared';\n",
		"src/c.ts":      "import './shared';\n",
		"src/shared.ts": "import './dep';\n",
		"src/dep.ts":    "",
	})

	result, err := newChecker().Bloat(t.Context(), domain.CheckOptions{
		Root:      root,
		Threshold: 2,
		Jobs:      4,
	}, domain.AliasTable{})

	require.NoError(t, err)
	var from []string
	for _, w := range result.Warnings {
		if !w.EntryGraph && w.ImportStatement == "import './shared'" {
			from = append(from, w.FromFile)
		}
	}
	assert.Equal(t, []string{"src/a.ts", "src/b.ts", "src/c.ts"}, from)
	assert.Equal(t, 5, result.FilesAnalyzed)
}

func TestBloat_UsesAliases(t *testing.T) {
	root := tempRoot(t)
	writeTree(t, root, map[string]string{
		"src/index.ts":     "import { x } from '@lib/x';\n",
		"libs/shared/x.ts": "import './y';\n",
		"libs/shared/y.ts": "",
	})
	aliases := domain.NewAliasTable(map[string][]string{"@lib": {filepath.Join(root, "libs/shared")}})

	result, err := newChecker().Bloat(t.Context(), domain.CheckOptions{Root: root, Threshold: 2}, aliases)

	require.NoError(t, err)
	require.NotEmpty(t, result.Warnings)
	assert.Equal(t, domain.Warning{
		ImportStatement: "import '@lib/x'",
		FromFile:        "src/index.ts",
		Metric:          2,
		ResolvedPath:    "libs/shared/x.ts",
	}, result.Warnings[0])
}

func TestCheck_NoEntryFiles(t *testing.T) {
	root := tempRoot(t)
	writeTree(t, root, map[string]string{"lib/index.ts": ""})

	_, err := newChecker().Check(t.Context(), domain.CheckBloat, domain.CheckOptions{
		Root:      root,
		Threshold: 1,
	}, domain.AliasTable{})

	require.ErrorContains(t, err, domain.ErrNoEntryFiles.Error())
}

func TestCheck_InvalidExclude(t *testing.T) {
	root := tempRoot(t)
	writeTree(t, root, map[string]string{"src/index.ts": ""})

	_, err := newChecker().Check(t.Context(), domain.CheckDepth, domain.CheckOptions{
		Root:      root,
		Threshold: 1,
		Exclude:   []string{"[unclosed"},
	}, domain.AliasTable{})

	require.ErrorContains(t, err, domain.ErrInvalidExcludePattern.Error())
}

func TestDepth_Chain(t *testing.T) {
	root := tempRoot(t)
	writeTree(t, root, map[string]string{
		"src/index.ts": "import './short';\nconst deep = require('./a');\n",
		"src/short.ts": "",
		"src/a.ts":     "import './b';\n",
		"src/b.ts":     "import './c';\n",
		"src/c.ts":     "",
	})

	result, err := newChecker().Check(t.Context(), domain.CheckDepth, domain.CheckOptions{
		Root:      root,
		Threshold: 3,
		EntryGlob: "index",
	}, domain.AliasTable{})

	require.NoError(t, err)
	assert.Equal(t, []domain.Warning{{
		ImportStatement: "import './a'",
		FromFile:        "src/index.ts",
		Metric:          3,
		ResolvedPath:    "src/a.ts",
	}}, result.Warnings)
	assert.Equal(t, 5, result.FilesAnalyzed)
}

func TestDepth_CycleIsTruncated(t *testing.T) {
	root := tempRoot(t)
	writeTree(t, root, map[string]string{
		"src/entry.ts": "import './a';\n",
		"src/a.ts":     "import './b';\n",
		"src/b.ts":     "import './c';\n",
		"src/c.ts":     "import './a';\n",
	})

	result, err := newChecker().Depth(t.Context(), domain.CheckOptions{
		Root:      root,
		Threshold: 1,
		EntryGlob: "entry",
	}, domain.AliasTable{})

	require.NoError(t, err)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, 3, result.Warnings[0].Metric)
}

func TestDepth_Clean(t *testing.T) {
	root := tempRoot(t)
	writeTree(t, root, map[string]string{"src/index.ts": "import 'react';\n"})

	result, err := newChecker().Depth(t.Context(), domain.CheckOptions{Root: root, Threshold: 1}, domain.AliasTable{})

	require.NoError(t, err)
	assert.Empty(t, result.Warnings)
	assert.Equal(t, 1, result.Entries)
	assert.Equal(t, 1, result.FilesAnalyzed)
}

func TestCheck_TargetOutsideRootHasNoResolvedPath(t *testing.T) {
	root := tempRoot(t)
	outside := tempRoot(t)
	writeTree(t, root, map[string]string{"src/index.ts": "import '@ext/x';\n"})
	writeTree(t, outside, map[string]string{"x.ts": "import './y';\n", "y.ts": ""})
	aliases := domain.NewAliasTable(map[string][]string{"@ext": {outside}})

	for _, kind := range []domain.CheckKind{domain.CheckBloat, domain.CheckDepth} {
		result, err := newChecker().Check(t.Context(), kind, domain.CheckOptions{Root: root, Threshold: 2}, aliases)

		require.NoError(t, err)
		require.NotEmpty(t, result.Warnings)
		assert.Equal(t, domain.Warning{
			ImportStatement: "import '@ext/x'",
			FromFile:        "src/index.ts",
			Metric:          2,
		}, result.Warnings[0])
	}
}
