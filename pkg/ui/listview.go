package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/Wangshengwei666/JY-Book-Manager/pkg/model"
	"github.com/Wangshengwei666/JY-Book-Manager/pkg/selection"
)

// ViewMode selects the list layout. It is a rendering choice only and never
// affects what was fetched.
type ViewMode string

const (
	ViewCard  ViewMode = "card"
	ViewTable ViewMode = "table"
)

const cardWidth = 34

// truncate shortens s to width terminal cells, wide runes included.
func truncate(s string, width int) string {
	return runewidth.Truncate(s, width, "…")
}

// checkboxMark renders the selection mark for one row. Checked state is
// derived from the selection set on every render, which is what keeps marks
// consistent across page, filter, and view changes.
func checkboxMark(sel *selection.Set, id string) string {
	if sel.Has(id) {
		return "[x]"
	}
	return "[ ]"
}

// renderCards renders the card grid for the fetched books.
func renderCards(books []model.Book, cursor int, sel *selection.Set, theme Theme, width int) string {
	if len(books) == 0 {
		return renderEmptyList(theme)
	}

	perRow := width / (cardWidth + 2)
	if perRow < 1 {
		perRow = 1
	}

	r := theme.Renderer
	var rows []string
	var row []string
	for i, book := range books {
		borderColor := theme.Border
		if i == cursor {
			borderColor = theme.Primary
		}
		cardStyle := r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Padding(0, 1).
			Width(cardWidth)

		mark := checkboxMark(sel, book.ID)
		markStyle := r.NewStyle().Foreground(theme.Secondary)
		if sel.Has(book.ID) {
			markStyle = r.NewStyle().Foreground(theme.Success).Bold(true)
		}

		var b strings.Builder
		b.WriteString(markStyle.Render(mark))
		b.WriteString(" ")
		b.WriteString(theme.Badge.Render(book.ID))
		b.WriteString("\n")
		b.WriteString(theme.Base.Bold(true).Render(truncate(book.Name, cardWidth-2)))
		b.WriteString("\n")
		sub := r.NewStyle().Foreground(theme.Subtext)
		b.WriteString(sub.Render(truncate("author: "+book.Author, cardWidth-2)))
		b.WriteString("\n")
		b.WriteString(sub.Render(truncate("publisher: "+book.Publisher, cardWidth-2)))
		b.WriteString("\n")
		b.WriteString(sub.Render(truncate("ISBN: "+book.ISBN, cardWidth-2)))
		b.WriteString("\n")
		price := r.NewStyle().Foreground(theme.Primary).Bold(true).Render(fmt.Sprintf("¥%.2f", book.Price))
		borrows := sub.Render(fmt.Sprintf("  %d borrows", book.InterviewTimes))
		b.WriteString(price + borrows)

		row = append(row, cardStyle.Render(b.String()))
		if len(row) == perRow {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return strings.Join(rows, "\n")
}

// tableColumns are the table layout widths, id through borrows.
var tableColumns = []struct {
	title string
	width int
}{
	{"", 3}, // checkbox
	{"ID", 9},
	{"Title", 28},
	{"ISBN", 18},
	{"Author", 14},
	{"Publisher", 18},
	{"Price", 9},
	{"Borrows", 7},
}

// renderTable renders the table layout for the fetched books.
func renderTable(books []model.Book, cursor int, sel *selection.Set, theme Theme) string {
	if len(books) == 0 {
		return renderEmptyList(theme)
	}

	r := theme.Renderer
	headStyle := r.NewStyle().Foreground(theme.Primary).Bold(true)
	rowStyle := theme.Base
	cursorStyle := theme.Selected

	var b strings.Builder
	var head []string
	for _, col := range tableColumns {
		head = append(head, runewidth.FillRight(col.title, col.width))
	}
	b.WriteString(headStyle.Render(strings.Join(head, " ")))
	b.WriteString("\n")
	b.WriteString(r.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", lineWidth())))
	b.WriteString("\n")

	for i, book := range books {
		cells := []string{
			checkboxMark(sel, book.ID),
			book.ID,
			truncate(book.Name, tableColumns[2].width),
			truncate(book.ISBN, tableColumns[3].width),
			truncate(book.Author, tableColumns[4].width),
			truncate(book.Publisher, tableColumns[5].width),
			fmt.Sprintf("¥%.2f", book.Price),
			fmt.Sprintf("%d", book.InterviewTimes),
		}
		var padded []string
		for j, cell := range cells {
			padded = append(padded, runewidth.FillRight(cell, tableColumns[j].width))
		}
		line := strings.Join(padded, " ")
		if i == cursor {
			b.WriteString(cursorStyle.Render(line))
		} else {
			b.WriteString(rowStyle.Render(line))
		}
		if i < len(books)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func lineWidth() int {
	w := 0
	for _, col := range tableColumns {
		w += col.width + 1
	}
	return w
}

func renderEmptyList(theme Theme) string {
	r := theme.Renderer
	return r.NewStyle().
		Foreground(theme.Subtext).
		Padding(1, 2).
		Render("No books found. Press F to clear the search and filters.")
}
