package ports

import "iter"

// SourceWalker discovers analyzable source files.
//
//go:generate mockgen -source=walker.go -destination=mocks/mock_walker.go -package=mocks
type SourceWalker interface {
	// WalkSources yields absolute paths of source files under root. Ignored, hidden and
	// test files are skipped, as is anything matching one of the exclude globs.
	WalkSources(root string, exclude []string) (iter.Seq[string], error)

	// FindFiles yields every non-ignored file under root with the given base name.
	FindFiles(root, name string) iter.Seq[string]
}
