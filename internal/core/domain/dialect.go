package domain

import (
	"path/filepath"
	"slices"
	"strings"
)

// ResolveExtensions lists the source extensions in resolution priority order.
var ResolveExtensions = []string{"ts", "tsx", "mts", "cts", "js", "jsx", "mjs", "cjs"}

// IndexFiles lists the directory index file names in resolution priority order.
var IndexFiles = func() []string {
	names := make([]string, len(ResolveExtensions))
	for i, ext := range ResolveExtensions {
		names[i] = "index." + ext
	}
	return names
}()

// Dialect describes the syntax flavor of a source file.
type Dialect struct {
	TypeScript bool
	JSX        bool
	// Module is set for .mjs and .mts, which are always ES modules.
	Module bool
}

// Extension returns the file extension of path without the leading dot.
func Extension(path string) string {
	return strings.TrimPrefix(filepath.Ext(path), ".")
}

// IsSourceFile reports whether path has one of the analyzed extensions.
func IsSourceFile(path string) bool {
	return slices.Contains(ResolveExtensions, Extension(path))
}

// DialectFor derives the dialect from the file extension.
func DialectFor(path string) Dialect {
	ext := Extension(path)
	return Dialect{
		TypeScript: ext == "ts" || ext == "tsx" || ext == "mts" || ext == "cts",
		JSX:        ext == "tsx" || ext == "jsx",
		Module:     ext == "mjs" || ext == "mts",
	}
}

// IsTestFile reports whether path looks like a test or spec file.
func IsTestFile(path string) bool {
	return strings.Contains(path, ".test.") || strings.Contains(path, ".spec.")
}
