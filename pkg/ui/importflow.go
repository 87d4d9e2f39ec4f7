package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/Wangshengwei666/JY-Book-Manager/pkg/csvpreview"
	"github.com/Wangshengwei666/JY-Book-Manager/pkg/model"
)

// importStage tracks where the import dialog is in its flow.
type importStage int

const (
	importPickFile importStage = iota
	importPreview
	importRunning
	importDone
)

// maxImportErrors caps how many per-row errors the summary lists.
const maxImportErrors = 10

// ImportAction is what the parent should do after an Update.
type ImportAction int

const (
	ImportNone ImportAction = iota
	// ImportReadFile asks the parent to read the chosen file.
	ImportReadFile
	// ImportStart asks the parent to upload the file.
	ImportStart
	// ImportClose asks the parent to dismiss the dialog.
	ImportClose
)

// ImportModal drives the CSV import flow: pick a file, preview it, upload,
// show the summary.
type ImportModal struct {
	stage     importStage
	pathInput textinput.Model

	fileName string
	filePath string
	preview  *csvpreview.Preview
	// decodeSkipped is set when the encoding heuristic failed: no preview is
	// shown but the import may still proceed.
	decodeSkipped bool

	report    *model.ImportReport
	reportMsg string

	theme Theme
	width int
}

// NewImportModal opens the dialog at the file-picking stage.
func NewImportModal(theme Theme) ImportModal {
	ti := textinput.New()
	ti.Placeholder = "path/to/books.csv"
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 48

	return ImportModal{
		stage:     importPickFile,
		pathInput: ti,
		theme:     theme,
		width:     72,
	}
}

// Init starts the path input's cursor blink.
func (m ImportModal) Init() tea.Cmd {
	return textinput.Blink
}

// Path returns the chosen file path.
func (m ImportModal) Path() string {
	return m.filePath
}

// SetFileText feeds the dialog the file contents read by the parent. The
// preview is only rendered when the encoding heuristic accepts the text;
// otherwise the dialog still moves on with a bare "file selected" note.
// A file with fewer than two non-blank lines is rejected and the dialog
// stays at the picking stage.
func (m *ImportModal) SetFileText(name, text string) error {
	if csvpreview.LooksDecoded(text) {
		p, err := csvpreview.Parse(text)
		if err != nil {
			return err
		}
		m.preview = p
		m.decodeSkipped = false
	} else {
		m.preview = nil
		m.decodeSkipped = true
	}
	m.fileName = name
	m.stage = importPreview
	return nil
}

// SetRunning marks the upload as in flight and disables the import control.
func (m *ImportModal) SetRunning() {
	m.stage = importRunning
}

// SetResult shows the import summary.
func (m *ImportModal) SetResult(report model.ImportReport, msg string) {
	m.report = &report
	m.reportMsg = msg
	m.stage = importDone
}

// SetFailed re-enables the import control after a failed upload.
func (m *ImportModal) SetFailed() {
	m.stage = importPreview
}

// Update handles keys and returns the action the parent should take.
func (m ImportModal) Update(msg tea.Msg) (ImportModal, tea.Cmd, ImportAction) {
	keyMsg, isKey := msg.(tea.KeyMsg)
	if isKey {
		switch keyMsg.String() {
		case "esc":
			if m.stage != importRunning {
				return m, nil, ImportClose
			}
			return m, nil, ImportNone
		case "enter":
			switch m.stage {
			case importPickFile:
				path := strings.TrimSpace(m.pathInput.Value())
				if path == "" {
					return m, nil, ImportNone
				}
				m.filePath = path
				return m, nil, ImportReadFile
			case importPreview:
				return m, nil, ImportStart
			case importDone:
				return m, nil, ImportClose
			}
			return m, nil, ImportNone
		}
	}

	if m.stage == importPickFile {
		var cmd tea.Cmd
		m.pathInput, cmd = m.pathInput.Update(msg)
		return m, cmd, ImportNone
	}
	return m, nil, ImportNone
}

// View renders the dialog for its current stage.
func (m ImportModal) View() string {
	r := m.theme.Renderer
	sub := r.NewStyle().Foreground(m.theme.Subtext)

	var b strings.Builder
	b.WriteString(m.theme.Header.Render("Import CSV"))
	b.WriteString("\n\n")

	switch m.stage {
	case importPickFile:
		b.WriteString(sub.Render("CSV file to import:"))
		b.WriteString("\n")
		b.WriteString(m.pathInput.View())
		b.WriteString("\n\n")
		b.WriteString(m.footer("Enter preview │ Esc cancel"))

	case importPreview:
		if m.preview != nil {
			b.WriteString(m.renderPreviewTable())
		} else {
			ok := r.NewStyle().Foreground(m.theme.Success)
			b.WriteString(ok.Render("✓ " + m.fileName + " selected, ready to import."))
			b.WriteString("\n")
			b.WriteString(sub.Render("(no preview available for this file)"))
		}
		b.WriteString("\n\n")
		b.WriteString(m.footer("Enter import │ Esc cancel"))

	case importRunning:
		b.WriteString(sub.Render("importing " + m.fileName + "…"))

	case importDone:
		b.WriteString(m.renderResult())
		b.WriteString("\n\n")
		b.WriteString(m.footer("Enter close"))
	}

	return r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Primary).
		Padding(1, 2).
		Width(m.width).
		Render(b.String())
}

func (m ImportModal) renderPreviewTable() string {
	r := m.theme.Renderer
	headStyle := r.NewStyle().Foreground(m.theme.Primary).Bold(true)
	cellStyle := m.theme.Base

	colWidth := 12
	var b strings.Builder
	var head []string
	for _, h := range m.preview.Headers {
		head = append(head, runewidth.FillRight(truncate(h, colWidth), colWidth))
	}
	b.WriteString(headStyle.Render(strings.Join(head, " ")))
	b.WriteString("\n")
	for _, row := range m.preview.Rows {
		var cells []string
		for _, c := range row {
			cells = append(cells, runewidth.FillRight(truncate(c, colWidth), colWidth))
		}
		b.WriteString(cellStyle.Render(strings.Join(cells, " ")))
		b.WriteString("\n")
	}
	if m.preview.TotalDataLines > len(m.preview.Rows) {
		sub := r.NewStyle().Foreground(m.theme.Subtext)
		b.WriteString(sub.Render(fmt.Sprintf("… %d more rows", m.preview.TotalDataLines-len(m.preview.Rows))))
	}
	return b.String()
}

func (m ImportModal) renderResult() string {
	r := m.theme.Renderer
	ok := r.NewStyle().Foreground(m.theme.Success)
	warn := r.NewStyle().Foreground(m.theme.Warning)

	rep := m.report
	var b strings.Builder
	b.WriteString(ok.Render(fmt.Sprintf("✓ imported %d books", rep.SuccessCount)))
	if rep.ErrorCount > 0 {
		b.WriteString("\n")
		b.WriteString(warn.Render(fmt.Sprintf("%d rows failed:", rep.ErrorCount)))
		for i, e := range rep.Errors {
			if i >= maxImportErrors {
				b.WriteString("\n")
				b.WriteString(warn.Render(fmt.Sprintf("… %d more errors", len(rep.Errors)-maxImportErrors)))
				break
			}
			b.WriteString("\n")
			b.WriteString(warn.Render("  • " + e))
		}
	}
	sub := r.NewStyle().Foreground(m.theme.Subtext)
	b.WriteString("\n")
	b.WriteString(sub.Render("list and statistics will refresh shortly"))
	return b.String()
}

func (m ImportModal) footer(hint string) string {
	return m.theme.Renderer.NewStyle().Foreground(m.theme.Subtext).Render(hint)
}

// CenterModal returns the dialog centered in the terminal.
func (m ImportModal) CenterModal(termWidth, termHeight int) string {
	return centerOverlay(m.View(), termWidth, termHeight, m.theme)
}
