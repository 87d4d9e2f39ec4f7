package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/Wangshengwei666/JY-Book-Manager/pkg/model"
)

// filterValues backs the form controls. Kept behind a pointer so the values
// survive the copies bubbletea makes of the parent model.
type filterValues struct {
	priceMin  string
	priceMax  string
	borrowMin string
	borrowMax string
	publisher string
	author    string
	field     string
	keyword   string
}

// FilterForm is the advanced-filter dialog. Submitting with every field left
// blank deactivates the advanced filter and falls back to plain search.
type FilterForm struct {
	form  *huh.Form
	vals  *filterValues
	theme Theme
	width int
}

// NewFilterForm builds the dialog, pre-filled from the currently active
// filter so reopening it shows what is in effect.
func NewFilterForm(current model.AdvancedFilter, theme Theme) FilterForm {
	vals := &filterValues{
		priceMin:  current.PriceMin,
		priceMax:  current.PriceMax,
		borrowMin: current.BorrowMin,
		borrowMax: current.BorrowMax,
		publisher: current.Publisher,
		author:    current.Author,
	}
	if current.FieldSearch != nil {
		vals.field = current.FieldSearch.Field
		vals.keyword = current.FieldSearch.Keyword
	}

	fieldOptions := []huh.Option[string]{huh.NewOption("(none)", "")}
	for _, f := range model.SortFields {
		fieldOptions = append(fieldOptions, huh.NewOption(f, f))
	}

	m := FilterForm{vals: vals, theme: theme, width: 64}
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Price from").Value(&vals.priceMin),
			huh.NewInput().Title("Price to").Value(&vals.priceMax),
			huh.NewInput().Title("Borrows from").Value(&vals.borrowMin),
			huh.NewInput().Title("Borrows to").Value(&vals.borrowMax),
			huh.NewInput().Title("Publisher contains").Value(&vals.publisher),
			huh.NewInput().Title("Author contains").Value(&vals.author),
			huh.NewSelect[string]().Title("Field").Options(fieldOptions...).Value(&vals.field),
			huh.NewInput().Title("Field keyword").Value(&vals.keyword),
		),
	).WithTheme(huhTheme(theme)).WithWidth(m.width - 6)
	return m
}

// Init starts the embedded form.
func (m FilterForm) Init() tea.Cmd {
	return m.form.Init()
}

// Update forwards messages to the form.
func (m FilterForm) Update(msg tea.Msg) (FilterForm, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	return m, cmd
}

// Done reports whether the form was submitted.
func (m FilterForm) Done() bool {
	return m.form.State == huh.StateCompleted
}

// Filter returns the normalized filter the user entered.
func (m FilterForm) Filter() model.AdvancedFilter {
	f := model.AdvancedFilter{
		PriceMin:  m.vals.priceMin,
		PriceMax:  m.vals.priceMax,
		BorrowMin: m.vals.borrowMin,
		BorrowMax: m.vals.borrowMax,
		Publisher: m.vals.publisher,
		Author:    m.vals.author,
	}
	if m.vals.field != "" && m.vals.keyword != "" {
		f.FieldSearch = &model.FieldSearch{Field: m.vals.field, Keyword: m.vals.keyword}
	}
	return f.Normalize()
}

// View renders the dialog.
func (m FilterForm) View() string {
	r := m.theme.Renderer
	body := m.theme.Header.Render("Advanced filter") + "\n\n" + m.form.View()
	return r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Primary).
		Padding(1, 2).
		Width(m.width).
		Render(body)
}

// CenterModal returns the dialog centered in the terminal.
func (m FilterForm) CenterModal(termWidth, termHeight int) string {
	return centerOverlay(m.View(), termWidth, termHeight, m.theme)
}
