package domain

import "fmt"

// EntryGraphStatement is the statement text of a whole-graph warning.
const EntryGraphStatement = "Entry file (entire graph)"

// Warning is a single threshold violation.
type Warning struct {
	// ImportStatement is the display text, e.g. "import './foo'".
	ImportStatement string
	// FromFile is the importing entry, relative to the workspace root.
	FromFile string
	// Metric is the reachable module count or the import depth.
	Metric int
	// ResolvedPath is the root-relative resolved target. Empty for entry-graph warnings.
	ResolvedPath string
	// EntryGraph marks the warning raised for an entry's whole reachable graph.
	EntryGraph bool
}

// ImportStatementFor renders the display text of a direct import.
func ImportStatementFor(request string) string {
	return fmt.Sprintf("import '%s'", request)
}

// CheckResult is the outcome of one analysis run.
type CheckResult struct {
	Warnings []Warning
	// FilesAnalyzed is the number of distinct files whose imports were extracted.
	FilesAnalyzed int
	// Entries is the number of entry files that were analyzed.
	Entries int
}

// CheckKind selects the metric computed by a run.
type CheckKind string

const (
	// CheckBloat counts reachable modules.
	CheckBloat CheckKind = "import-bloat"
	// CheckDepth measures the longest import chain.
	CheckDepth CheckKind = "import-depth"
)

// CheckOptions configures a single analysis run.
type CheckOptions struct {
	Root      string
	Threshold int
	EntryGlob string
	Exclude   []string
	Jobs      int
}
