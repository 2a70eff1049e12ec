// Package report renders check results as a tree grouped by source file.
package report

import (
	"cmp"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/abvthecity/oxiclean/internal/core/domain"
	"github.com/abvthecity/oxiclean/internal/core/ports"
	"github.com/abvthecity/oxiclean/internal/ui/output"
	"github.com/abvthecity/oxiclean/internal/ui/style"
)

const (
	ruleWidth    = 60
	topOffenders = 5
)

var _ ports.Reporter = (*Reporter)(nil)

// Reporter implements ports.Reporter.
type Reporter struct {
	getwd func() (string, error)
}

// New creates a Reporter that relativizes paths against the process working directory.
func New() *Reporter {
	return &Reporter{getwd: os.Getwd}
}

// NewWithWorkingDir creates a Reporter that relativizes paths against dir.
func NewWithWorkingDir(dir string) *Reporter {
	return &Reporter{getwd: func() (string, error) { return dir, nil }}
}

// labels holds the wording that differs between the checks.
type labels struct {
	header  string
	clean   string
	maximum string
	metric  func(out *termenv.Output, n int, bold bool) string
}

func labelsFor(kind domain.CheckKind, threshold int) labels {
	if kind == domain.CheckDepth {
		return labels{
			header:  "Import depth issues detected (threshold: %s)",
			clean:   "No excessive import depth detected. Threshold: " + strconv.Itoa(threshold),
			maximum: "Maximum depth: %s",
			metric: func(out *termenv.Output, n int, bold bool) string {
				return "depth " + red(out, n, bold)
			},
		}
	}
	return labels{
		header:  "Import bloat detected (threshold: %s modules)",
		clean:   "No bloat detected. Threshold: " + strconv.Itoa(threshold),
		maximum: "Maximum bloat: %s modules",
		metric: func(out *termenv.Output, n int, bold bool) string {
			return red(out, n, bold) + " modules"
		},
	}
}

func red(out *termenv.Output, n int, bold bool) string {
	s := out.String(strconv.Itoa(n)).Foreground(out.Color(string(style.Red)))
	if bold {
		s = s.Bold()
	}
	return s.String()
}

// Report writes the warning tree, or the all-clear message, followed by the timing line.
func (r *Reporter) Report(
	w io.Writer,
	kind domain.CheckKind,
	root string,
	threshold int,
	result *domain.CheckResult,
	stats ports.RunStats,
) error {
	out := output.New(w)
	lbl := labelsFor(kind, threshold)

	var b strings.Builder
	if len(result.Warnings) == 0 {
		check := out.String(style.Check).Foreground(out.Color(string(style.Green))).Bold()
		fmt.Fprintf(&b, "%s %s\n", check, lbl.clean)
	} else {
		r.writeTree(&b, out, lbl, root, threshold, result.Warnings)
	}

	dot := out.String(style.Dot).Foreground(out.Color(string(style.Blue)))
	cyan := func(n int) string {
		return out.String(strconv.Itoa(n)).Foreground(out.Color(string(style.Cyan))).String()
	}
	fmt.Fprintf(&b, "\n%s Finished in %sms on %s files (using %s threads).\n",
		dot, cyan(int(stats.Elapsed.Milliseconds())), cyan(stats.FilesAnalyzed), cyan(stats.Jobs))

	_, err := io.WriteString(w, b.String())
	return err
}

type fileGroup struct {
	path     string
	entry    *domain.Warning
	imports  []domain.Warning
	worstHit int
}

func groupByFile(warnings []domain.Warning) []*fileGroup {
	index := make(map[string]*fileGroup)
	var groups []*fileGroup
	for i := range warnings {
		wr := warnings[i]
		g, ok := index[wr.FromFile]
		if !ok {
			g = &fileGroup{path: wr.FromFile}
			index[wr.FromFile] = g
			groups = append(groups, g)
		}
		if wr.EntryGraph {
			g.entry = &warnings[i]
		} else {
			g.imports = append(g.imports, wr)
		}
		g.worstHit = max(g.worstHit, wr.Metric)
	}

	slices.SortFunc(groups, func(a, b *fileGroup) int {
		if c := cmp.Compare(b.worstHit, a.worstHit); c != 0 {
			return c
		}
		return strings.Compare(a.path, b.path)
	})
	for _, g := range groups {
		slices.SortFunc(g.imports, byMetricDesc)
	}
	return groups
}

func byMetricDesc(a, b domain.Warning) int {
	if c := cmp.Compare(b.Metric, a.Metric); c != 0 {
		return c
	}
	return strings.Compare(a.ImportStatement, b.ImportStatement)
}

func (r *Reporter) writeTree(
	b *strings.Builder,
	out *termenv.Output,
	lbl labels,
	root string,
	threshold int,
	warnings []domain.Warning,
) {
	yellow := out.Color(string(style.Yellow))
	warn := out.String(style.Warning).Foreground(yellow).Bold()
	th := out.String(strconv.Itoa(threshold)).Foreground(yellow)
	fmt.Fprintf(b, "%s "+lbl.header+"\n\n", warn, th)

	for _, g := range groupByFile(warnings) {
		display := r.relativize(root, g.path)
		if g.entry != nil {
			path := out.String(display).Foreground(out.Color(string(style.Blue)))
			fmt.Fprintf(b, "%s (%s)\n", path, lbl.metric(out, g.entry.Metric, true))
		} else {
			fmt.Fprintf(b, "%s\n", out.String(display).Foreground(out.Color(string(style.White))).Bold())
		}

		for i, wr := range g.imports {
			prefix := style.Branch
			if i == len(g.imports)-1 {
				prefix = style.Last
			}
			fmt.Fprintf(b, "%s  %s (%s)\n", out.String(prefix).Faint(), collapse(wr.ImportStatement), lbl.metric(out, wr.Metric, false))
		}
		b.WriteString("\n")
	}

	r.writeSummary(b, out, lbl, root, warnings)
}

func (r *Reporter) writeSummary(
	b *strings.Builder,
	out *termenv.Output,
	lbl labels,
	root string,
	warnings []domain.Warning,
) {
	var violations []domain.Warning
	for _, wr := range warnings {
		if !wr.EntryGraph {
			violations = append(violations, wr)
		}
	}
	if len(violations) == 0 {
		return
	}

	slices.SortStableFunc(violations, func(a, b domain.Warning) int {
		return cmp.Compare(b.Metric, a.Metric)
	})
	top := violations[:min(len(violations), topOffenders)]

	total := out.String(strconv.Itoa(len(violations))).Foreground(out.Color(string(style.Yellow))).Bold()
	worst := out.String(strconv.Itoa(violations[0].Metric)).Foreground(out.Color(string(style.Red))).Bold()

	fmt.Fprintf(b, "%s\n", out.String(strings.Repeat(style.Rule, ruleWidth)).Faint())
	fmt.Fprintf(b, "%s\n", out.String("Summary").Bold())
	fmt.Fprintf(b, "  Total violations: %s\n", total)
	fmt.Fprintf(b, "  "+lbl.maximum+"\n", worst)
	fmt.Fprintf(b, "  Top %d offenders:\n", len(top))
	for i, wr := range top {
		path := out.String(r.relativize(root, wr.FromFile)).Foreground(out.Color(string(style.Blue)))
		fmt.Fprintf(b, "    %d. %s (%s) - %s\n", i+1, collapse(wr.ImportStatement), lbl.metric(out, wr.Metric, false), path)
	}
}

// relativize turns a root-relative path into one relative to the working directory.
func (r *Reporter) relativize(root, relToRoot string) string {
	cwd, err := r.getwd()
	if err != nil || root == "" {
		return relToRoot
	}
	rel, err := filepath.Rel(cwd, filepath.Join(root, relToRoot))
	if err != nil {
		return relToRoot
	}
	return rel
}

// collapse folds every whitespace run, newlines included, into a single space.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
