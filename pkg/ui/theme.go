package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Mode is the binary theme preference. It is persisted in the config file
// under the "theme" key and defaults to light.
type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

type Theme struct {
	Renderer *lipgloss.Renderer
	Mode     Mode

	// Colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Subtext   lipgloss.Color

	// Toast levels
	Success lipgloss.Color
	Error   lipgloss.Color
	Warning lipgloss.Color
	Info    lipgloss.Color

	// UI Elements
	Border    lipgloss.Color
	Highlight lipgloss.Color

	// Styles
	Base     lipgloss.Style
	Selected lipgloss.Style
	Header   lipgloss.Style
	Badge    lipgloss.Style
}

// NewTheme returns the palette for the given mode.
func NewTheme(r *lipgloss.Renderer, mode Mode) Theme {
	t := Theme{Renderer: r, Mode: mode}

	if mode == ModeDark {
		t.Primary = lipgloss.Color("#BD93F9")   // Purple
		t.Secondary = lipgloss.Color("#6272A4") // Gray
		t.Subtext = lipgloss.Color("#BFBFBF")   // Dim
		t.Success = lipgloss.Color("#50FA7B")   // Green
		t.Error = lipgloss.Color("#FF5555")     // Red
		t.Warning = lipgloss.Color("#FFB86C")   // Orange
		t.Info = lipgloss.Color("#8BE9FD")      // Cyan
		t.Border = lipgloss.Color("#44475A")
		t.Highlight = lipgloss.Color("#44475A")
		t.Base = r.NewStyle().Foreground(lipgloss.Color("#F8F8F2"))
	} else {
		t.Primary = lipgloss.Color("#7D56F4")
		t.Secondary = lipgloss.Color("#555555")
		t.Subtext = lipgloss.Color("#999999")
		t.Success = lipgloss.Color("#00A800")
		t.Error = lipgloss.Color("#D80000")
		t.Warning = lipgloss.Color("#D88000")
		t.Info = lipgloss.Color("#007EA8")
		t.Border = lipgloss.Color("#DDDDDD")
		t.Highlight = lipgloss.Color("#EEEEEE")
		t.Base = r.NewStyle().Foreground(lipgloss.Color("#000000"))
	}

	t.Selected = r.NewStyle().
		Background(t.Highlight).
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(t.Primary).
		PaddingLeft(1).
		Bold(true)

	headerFg := lipgloss.Color("#FFFFFF")
	if mode == ModeDark {
		headerFg = lipgloss.Color("#282A36")
	}
	t.Header = r.NewStyle().
		Background(t.Primary).
		Foreground(headerFg).
		Bold(true).
		Padding(0, 1)

	t.Badge = r.NewStyle().
		Foreground(t.Primary).
		Bold(true)

	return t
}

// Toggled returns the theme for the opposite mode.
func (t Theme) Toggled() Theme {
	if t.Mode == ModeDark {
		return NewTheme(t.Renderer, ModeLight)
	}
	return NewTheme(t.Renderer, ModeDark)
}

// Icon returns the header glyph for the current mode. Toggling swaps it
// together with the palette.
func (t Theme) Icon() string {
	if t.Mode == ModeDark {
		return "☾"
	}
	return "☀"
}

// LevelColor maps a toast level to its color.
func (t Theme) LevelColor(level string) lipgloss.Color {
	switch level {
	case "success":
		return t.Success
	case "error":
		return t.Error
	case "warning":
		return t.Warning
	case "info":
		return t.Info
	default:
		return t.Subtext
	}
}
