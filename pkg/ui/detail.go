package ui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Wangshengwei666/JY-Book-Manager/pkg/model"
)

// DetailModal shows a single book fetched on demand. The modal opens in the
// loading state; the parent feeds it the fetch outcome.
type DetailModal struct {
	bookID  string
	book    *model.Book
	loadErr string
	copied  bool

	serverURL string
	theme     Theme
	width     int
	height    int
}

// NewDetailModal creates the modal in its loading state.
func NewDetailModal(bookID, serverURL string, theme Theme) DetailModal {
	return DetailModal{
		bookID:    bookID,
		serverURL: serverURL,
		theme:     theme,
		width:     70,
		height:    24,
	}
}

// SetBook resolves the loading state with a fetched book.
func (m *DetailModal) SetBook(book model.Book) {
	m.book = &book
	m.loadErr = ""
}

// SetError resolves the loading state with an inline error block.
func (m *DetailModal) SetError(msg string) {
	m.book = nil
	m.loadErr = msg
}

// Loaded reports whether the fetch succeeded.
func (m DetailModal) Loaded() bool {
	return m.book != nil
}

// SetSize constrains the modal to the terminal.
func (m *DetailModal) SetSize(termWidth, termHeight int) {
	w := termWidth - 10
	if w > 80 {
		w = 80
	}
	if w < 50 {
		w = 50
	}
	m.width = w
	m.height = termHeight
}

// Update handles keys while the modal is open. 'c' copies the book id to the
// clipboard once a book is loaded.
func (m DetailModal) Update(msg tea.Msg) (DetailModal, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "c":
		if m.book != nil {
			if err := clipboard.WriteAll(m.book.ID); err == nil {
				m.copied = true
			}
		}
	}
	return m, nil
}

// View renders the modal body.
func (m DetailModal) View() string {
	r := m.theme.Renderer

	var b strings.Builder
	title := m.bookID
	if m.book != nil {
		title = m.book.Name
	}
	b.WriteString(m.theme.Header.Render("󰂺 " + title))
	b.WriteString("\n\n")

	switch {
	case m.loadErr != "":
		errStyle := r.NewStyle().
			Foreground(m.theme.Error).
			Border(lipgloss.NormalBorder()).
			BorderForeground(m.theme.Error).
			Padding(0, 1)
		b.WriteString(errStyle.Render("failed to load book: " + m.loadErr))
	case m.book == nil:
		b.WriteString(r.NewStyle().Foreground(m.theme.Subtext).Render("loading…"))
	default:
		b.WriteString(m.renderFields())
	}

	b.WriteString("\n\n")
	b.WriteString(m.renderFooter())

	modalStyle := r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Primary).
		Padding(1, 2).
		Width(m.width)
	return modalStyle.Render(b.String())
}

func (m DetailModal) renderFields() string {
	r := m.theme.Renderer
	label := r.NewStyle().Foreground(m.theme.Subtext).Width(12)
	value := m.theme.Base

	book := m.book
	rows := []struct{ name, val string }{
		{"ID", book.ID},
		{"ISBN", book.ISBN},
		{"Author", book.Author},
		{"Publisher", book.Publisher},
		{"Price", fmt.Sprintf("¥%.2f", book.Price)},
		{"Borrows", fmt.Sprintf("%d", book.InterviewTimes)},
	}

	var b strings.Builder
	for _, row := range rows {
		b.WriteString(label.Render(row.name))
		b.WriteString(value.Render(row.val))
		b.WriteString("\n")
	}

	// The full-page link only appears after a successful fetch.
	link := r.NewStyle().Foreground(m.theme.Info).Underline(true)
	b.WriteString("\n")
	b.WriteString(label.Render("Full page"))
	b.WriteString(link.Render(m.serverURL + "/book/detail/" + book.ID))
	return b.String()
}

func (m DetailModal) renderFooter() string {
	r := m.theme.Renderer
	keyStyle := r.NewStyle().Bold(true).Foreground(m.theme.Primary)
	descStyle := r.NewStyle().Foreground(m.theme.Subtext)

	hints := []string{
		keyStyle.Render("c") + descStyle.Render(" copy id"),
		keyStyle.Render("Esc") + descStyle.Render(" close"),
	}
	if m.copied {
		hints = append(hints, r.NewStyle().Foreground(m.theme.Success).Render("copied ✓"))
	}
	return strings.Join(hints, descStyle.Render(" │ "))
}

// CenterModal returns the modal view centered in the terminal.
func (m DetailModal) CenterModal(termWidth, termHeight int) string {
	return centerOverlay(m.View(), termWidth, termHeight, m.theme)
}

// centerOverlay centers any rendered block in the terminal.
func centerOverlay(view string, termWidth, termHeight int, theme Theme) string {
	padTop := (termHeight - lipgloss.Height(view)) / 2
	padLeft := (termWidth - lipgloss.Width(view)) / 2
	if padTop < 0 {
		padTop = 0
	}
	if padLeft < 0 {
		padLeft = 0
	}
	return theme.Renderer.NewStyle().
		MarginTop(padTop).
		MarginLeft(padLeft).
		Render(view)
}
