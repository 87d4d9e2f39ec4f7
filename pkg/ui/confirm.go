package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmModal is a yes/no dialog backed by a huh form. It is used for the
// single-delete and batch-delete confirmations, which must never fire a
// request without an explicit user decision.
type ConfirmModal struct {
	form      *huh.Form
	confirmed *bool
	title     string
	theme     Theme
	width     int
}

// NewConfirmModal builds the dialog. title is the window caption, prompt the
// question shown on the confirm control.
func NewConfirmModal(title, prompt string, theme Theme) ConfirmModal {
	m := ConfirmModal{
		title:     title,
		theme:     theme,
		width:     60,
		confirmed: new(bool),
	}
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(prompt).
				Affirmative("Delete").
				Negative("Cancel").
				Value(m.confirmed),
		),
	).WithTheme(huhTheme(theme)).WithWidth(m.width - 6)
	return m
}

// Init starts the embedded form.
func (m ConfirmModal) Init() tea.Cmd {
	return m.form.Init()
}

// Update forwards messages to the form.
func (m ConfirmModal) Update(msg tea.Msg) (ConfirmModal, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	return m, cmd
}

// Done reports whether the user has answered, and what the answer was.
func (m ConfirmModal) Done() (done, accepted bool) {
	return m.form.State == huh.StateCompleted, *m.confirmed
}

// View renders the dialog.
func (m ConfirmModal) View() string {
	r := m.theme.Renderer
	body := m.theme.Header.Render(m.title) + "\n\n" + m.form.View()
	return r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Error).
		Padding(1, 2).
		Width(m.width).
		Render(body)
}

// CenterModal returns the dialog centered in the terminal.
func (m ConfirmModal) CenterModal(termWidth, termHeight int) string {
	return centerOverlay(m.View(), termWidth, termHeight, m.theme)
}

// huhTheme adapts our palette to huh's form theme.
func huhTheme(t Theme) *huh.Theme {
	base := huh.ThemeBase()
	base.Focused.Title = base.Focused.Title.Foreground(t.Primary).Bold(true)
	base.Focused.FocusedButton = base.Focused.FocusedButton.Background(t.Primary)
	base.Blurred.Title = base.Blurred.Title.Foreground(t.Subtext)
	return base
}
