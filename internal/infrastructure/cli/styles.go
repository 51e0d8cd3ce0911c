package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Palette used when colour output is enabled.
var (
	ColorFg      = lipgloss.Color("#e6edf3")
	ColorMuted   = lipgloss.Color("#8b949e")
	ColorAccent  = lipgloss.Color("#58a6ff")
	ColorError   = lipgloss.Color("#f85149")
	ColorSuccess = lipgloss.Color("#3fb950")
	ColorWarning = lipgloss.Color("#d29922")
	ColorMagenta = lipgloss.Color("#bc8cff")
	ColorCyan    = lipgloss.Color("#39c5cf")
)

// Theme is the set of styles the shell renders with.
type Theme struct {
	Banner   lipgloss.Style
	Tagline  lipgloss.Style
	Title    lipgloss.Style
	Rule     lipgloss.Style
	Encode   lipgloss.Style
	Decode   lipgloss.Style
	Shift    lipgloss.Style
	History  lipgloss.Style
	Exit     lipgloss.Style
	Label    lipgloss.Style
	Result   lipgloss.Style
	Error    lipgloss.Style
	Warning  lipgloss.Style
	Success  lipgloss.Style
	Muted    lipgloss.Style
	Emphasis lipgloss.Style
}

// NewTheme builds styles bound to out. With color false every style renders
// its input unchanged.
func NewTheme(out io.Writer, color bool) Theme {
	r := lipgloss.NewRenderer(out)
	plain := r.NewStyle()
	if !color {
		return Theme{
			Banner: plain, Tagline: plain, Title: plain, Rule: plain,
			Encode: plain, Decode: plain, Shift: plain, History: plain, Exit: plain,
			Label: plain, Result: plain, Error: plain, Warning: plain,
			Success: plain, Muted: plain, Emphasis: plain,
		}
	}
	return Theme{
		Banner:   r.NewStyle().Bold(true).Foreground(ColorCyan),
		Tagline:  r.NewStyle().Foreground(ColorWarning),
		Title:    r.NewStyle().Bold(true).Foreground(ColorAccent),
		Rule:     r.NewStyle().Foreground(ColorFg),
		Encode:   r.NewStyle().Foreground(ColorSuccess),
		Decode:   r.NewStyle().Foreground(ColorCyan),
		Shift:    r.NewStyle().Foreground(ColorWarning),
		History:  r.NewStyle().Foreground(ColorMagenta),
		Exit:     r.NewStyle().Foreground(ColorError),
		Label:    r.NewStyle().Foreground(ColorWarning),
		Result:   r.NewStyle().Bold(true).Foreground(ColorSuccess),
		Error:    r.NewStyle().Foreground(ColorError),
		Warning:  r.NewStyle().Foreground(ColorWarning),
		Success:  r.NewStyle().Foreground(ColorSuccess),
		Muted:    r.NewStyle().Foreground(ColorMuted),
		Emphasis: r.NewStyle().Bold(true),
	}
}
