package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// HelpModel is the scrollable key-reference overlay.
type HelpModel struct {
	rendered     string // glamour output, cached per size/theme
	scrollOffset int
	width        int
	height       int
	theme        Theme
	shouldClose  bool
}

// NewHelpModel builds the overlay and renders its markdown once.
func NewHelpModel(theme Theme) HelpModel {
	m := HelpModel{
		width:  78,
		height: 24,
		theme:  theme,
	}
	m.render()
	return m
}

// Init implements tea.Model for the overlay.
func (m HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles scrolling and close keys.
func (m HelpModel) Update(msg tea.Msg) (HelpModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc", "q", "?":
		m.shouldClose = true

	case "j", "down":
		m.scrollOffset++
	case "k", "up":
		if m.scrollOffset > 0 {
			m.scrollOffset--
		}

	case "ctrl+d":
		m.scrollOffset += m.visibleHeight() / 2
	case "ctrl+u":
		m.scrollOffset -= m.visibleHeight() / 2
		if m.scrollOffset < 0 {
			m.scrollOffset = 0
		}

	case "g", "home":
		m.scrollOffset = 0
	case "G", "end":
		m.scrollOffset = 9999 // clamped in View
	}
	return m, nil
}

// ShouldClose reports whether the user dismissed the overlay.
func (m HelpModel) ShouldClose() bool {
	return m.shouldClose
}

// SetSize resizes the overlay and re-renders the markdown at the new width.
func (m *HelpModel) SetSize(width, height int) {
	if width > 90 {
		width = 90
	}
	if width < 48 {
		width = 48
	}
	m.width = width
	m.height = height
	m.render()
}

func (m HelpModel) visibleHeight() int {
	h := m.height - 8 // header, footer, borders
	if h < 5 {
		h = 5
	}
	return h
}

func (m *HelpModel) render() {
	style := "light"
	if m.theme.Mode == ModeDark {
		style = "dark"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(m.width-6),
	)
	if err != nil {
		m.rendered = helpContent
		return
	}
	out, err := r.Render(helpContent)
	if err != nil {
		m.rendered = helpContent
		return
	}
	m.rendered = strings.TrimRight(out, "\n")
}

// View renders the overlay with scroll clamping and indicators.
func (m HelpModel) View() string {
	r := m.theme.Renderer

	lines := strings.Split(m.rendered, "\n")
	visible := m.visibleHeight()

	maxScroll := len(lines) - visible
	if maxScroll < 0 {
		maxScroll = 0
	}
	offset := m.scrollOffset
	if offset > maxScroll {
		offset = maxScroll
	}
	end := offset + visible
	if end > len(lines) {
		end = len(lines)
	}

	var b strings.Builder
	b.WriteString(m.theme.Header.Render("Help"))
	b.WriteString("\n")
	b.WriteString(strings.Join(lines[offset:end], "\n"))
	b.WriteString("\n")

	sub := r.NewStyle().Foreground(m.theme.Subtext)
	if offset > 0 || end < len(lines) {
		var hints []string
		if offset > 0 {
			hints = append(hints, "↑ more above")
		}
		if end < len(lines) {
			hints = append(hints, "↓ more below")
		}
		b.WriteString(sub.Render(strings.Join(hints, "  ")))
		b.WriteString("\n")
	}
	b.WriteString(sub.Render("j/k scroll │ Ctrl+d/u half-page │ Esc close"))

	return r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Primary).
		Padding(1, 2).
		Width(m.width).
		Render(b.String())
}

// CenterHelp returns the overlay centered in the terminal.
func (m HelpModel) CenterHelp(termWidth, termHeight int) string {
	return centerOverlay(m.View(), termWidth, termHeight, m.theme)
}

const helpContent = `## Browsing

| Key | Action |
|-----|--------|
| **j / k** | Move the cursor down / up |
| **h / l** or **← / →** | Previous / next page |
| **Enter** | Open book details |
| **v** | Toggle card / table view |
| **p** | Cycle page size (12 / 24 / 48) |
| **r** | Reload list and statistics |

## Searching & filtering

| Key | Action |
|-----|--------|
| **/** | Search (applies as you type) |
| **s** | Cycle sort field |
| **S** | Flip sort direction |
| **f** | Advanced filter form |
| **F** | Clear all filters |

## Selection & deletion

| Key | Action |
|-----|--------|
| **Space** | Select / deselect the book under the cursor |
| **a** | Select every book on this page |
| **A** | Deselect every book on this page |
| **ctrl+a** | Clear the whole selection |
| **d** | Delete the book under the cursor |
| **D** | Delete all selected books |

Selections survive paging: books picked on one page stay
selected while you browse others.

## Data

| Key | Action |
|-----|--------|
| **i** | Import books from a CSV file |
| **e** | Export the catalog to CSV |

## Appearance

| Key | Action |
|-----|--------|
| **t** | Toggle light / dark theme |

## Book details

| Key | Action |
|-----|--------|
| **c** | Copy the book ID to the clipboard |
| **Esc** | Close |

Press **q** to quit.`
