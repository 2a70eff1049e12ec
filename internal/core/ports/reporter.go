package ports

import (
	"io"
	"time"

	"github.com/abvthecity/oxiclean/internal/core/domain"
)

// RunStats describes a finished run for the trailing timing line.
type RunStats struct {
	Elapsed       time.Duration
	FilesAnalyzed int
	Jobs          int
}

// Reporter renders check results for humans.
//
//go:generate mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks
type Reporter interface {
	// Report writes the warning tree, or the all-clear message, followed by the timing line.
	// Paths in warnings are root-relative.
	Report(w io.Writer, kind domain.CheckKind, root string, threshold int, result *domain.CheckResult, stats RunStats) error
}
