// Package paint renders hunk lines with per-byte color attributes derived
// from LCS membership, using lipgloss (backed by termenv) for terminal
// styling so color survives even when standard output is piped into a
// pager.
package paint

import "github.com/charmbracelet/lipgloss"

// Face is a color spec applied to a byte range on output: an optional
// foreground, an optional background, and text attributes.
type Face struct {
	HasFG     bool
	FG        lipgloss.Color
	HasBG     bool
	BG        lipgloss.Color
	Bold      bool
	Italic    bool
	Underline bool
}

// namedColors maps the eight ANSI color names accepted by --colors to the
// lipgloss/termenv numeric ANSI color string ("0".."7").
var namedColors = map[string]lipgloss.Color{
	"black":   lipgloss.Color("0"),
	"red":     lipgloss.Color("1"),
	"green":   lipgloss.Color("2"),
	"yellow":  lipgloss.Color("3"),
	"blue":    lipgloss.Color("4"),
	"magenta": lipgloss.Color("5"),
	"cyan":    lipgloss.Color("6"),
	"white":   lipgloss.Color("7"),
}

// NamedColor looks up one of the eight ANSI color names, returning false if
// name isn't one of them.
func NamedColor(name string) (lipgloss.Color, bool) {
	c, ok := namedColors[name]
	return c, ok
}

// AppConfig holds the four configurable faces plus the debug-stats flag.
type AppConfig struct {
	Debug bool

	Added         Face
	RefineAdded   Face
	Removed       Face
	RefineRemoved Face
}

// DefaultConfig returns the default faces: added/removed are plain
// foreground colors; refine-added/refine-removed are bold white-on-color,
// so refined (non-shared) tokens stand out from the rest of the line.
func DefaultConfig() AppConfig {
	green, _ := NamedColor("green")
	red, _ := NamedColor("red")
	white, _ := NamedColor("white")
	return AppConfig{
		Added:   Face{HasFG: true, FG: green},
		Removed: Face{HasFG: true, FG: red},
		RefineAdded: Face{
			HasFG: true, FG: white,
			HasBG: true, BG: green,
			Bold: true,
		},
		RefineRemoved: Face{
			HasFG: true, FG: white,
			HasBG: true, BG: red,
			Bold: true,
		},
	}
}
