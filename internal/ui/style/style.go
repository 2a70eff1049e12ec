// Package style provides shared UI styling primitives including the color palette
// and glyphs used by the logger and the report renderer.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Blue   = lipgloss.Color("#3B82F6")
	Cyan   = lipgloss.Color("#06B6D4")
	Slate  = lipgloss.Color("#667085")
	White  = lipgloss.Color("#FFFFFF")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Glyphs.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "⚠"
	Dot     = "●"
	Arrow   = "→"
	Branch  = "├──"
	Last    = "└──"
	Rule    = "─"
)
