package ui

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Wangshengwei666/JY-Book-Manager/pkg/config"
	"github.com/Wangshengwei666/JY-Book-Manager/pkg/model"
	"github.com/Wangshengwei666/JY-Book-Manager/pkg/selection"
)

// searchDebounce is how long typing must pause before the search fires.
const searchDebounce = 500 * time.Millisecond

// importReloadDelay is how long the import summary stays up before the
// catalog refreshes.
const importReloadDelay = 2 * time.Second

// Service is the catalog backend the UI talks to. *api.Client implements it.
type Service interface {
	ListBooks(ctx context.Context, q model.ListQuery) (model.BookPage, error)
	FilterBooks(ctx context.Context, f model.AdvancedFilter, q model.ListQuery) (model.BookPage, error)
	Statistics(ctx context.Context) (model.Statistics, error)
	Book(ctx context.Context, id string) (model.Book, error)
	DeleteBook(ctx context.Context, id string) (string, error)
	DeleteBatch(ctx context.Context, ids []string) (string, error)
	ImportCSV(ctx context.Context, filename string, r io.Reader) (model.ImportReport, string, error)
	ExportCSV(ctx context.Context, w io.Writer) (int64, error)
}

// overlay identifies which modal, if any, sits above the list.
type overlay int

const (
	overlayNone overlay = iota
	overlayHelp
	overlayDetail
	overlayConfirmOne
	overlayConfirmBatch
	overlayFilter
	overlayImport
)

// Messages delivered by commands.

type listLoadedMsg struct {
	seq  int
	page model.BookPage
}

type listFailedMsg struct {
	seq int
	err error
}

type statsLoadedMsg struct {
	stats model.Statistics
}

type statsFailedMsg struct {
	err error
}

type searchDebounceMsg struct {
	token int
}

type bookLoadedMsg struct {
	id   string
	book model.Book
	err  error
}

type deleteDoneMsg struct {
	id  string
	msg string
	err error
}

type batchDeleteDoneMsg struct {
	ids []string
	msg string
	err error
}

type fileReadMsg struct {
	path string
	data []byte
	err  error
}

type importDoneMsg struct {
	report model.ImportReport
	msg    string
	err    error
}

type reloadTickMsg struct{}

type exportDoneMsg struct {
	path  string
	bytes int64
	err   error
}

// ConfigUpdatedMsg is sent from outside the program when the config file
// changes on disk.
type ConfigUpdatedMsg struct {
	Cfg config.Config
}

// UpdateAvailableMsg is sent from outside the program when a newer release
// exists.
type UpdateAvailableMsg struct {
	Tag string
	URL string
}

// perPageCycle is the page sizes the p key rotates through.
var perPageCycle = []int{12, 24, 48}

// Model is the root application state.
type Model struct {
	svc    Service
	logger *log.Logger

	cfg     config.Config
	cfgPath string
	theme   Theme

	width  int
	height int
	ready  bool

	query  model.ListQuery
	filter model.AdvancedFilter

	viewMode ViewMode
	page     model.BookPage
	loading  bool
	listErr  string
	cursor   int

	sel *selection.Set

	stats       statsPanel
	statsLoaded bool

	toasts ToastStack

	searchInput textinput.Model
	searching   bool
	searchToken int

	spin spinner.Model

	// listSeq tags every list request; responses carrying an older tag are
	// dropped so a slow reply can never overwrite a newer page.
	listSeq int

	active       overlay
	help         HelpModel
	detail       DetailModal
	confirm      ConfirmModal
	filterForm   FilterForm
	importModal  ImportModal
	pendingID    string
	pendingBatch []string
	importData   []byte
}

// NewModel builds the root model from a loaded config.
func NewModel(svc Service, cfg config.Config, cfgPath string, logger *log.Logger) Model {
	mode := ModeLight
	if cfg.Theme == config.ThemeDark {
		mode = ModeDark
	}
	theme := NewTheme(lipgloss.DefaultRenderer(), mode)

	viewMode := ViewCard
	if cfg.View == "table" {
		viewMode = ViewTable
	}

	q := model.DefaultListQuery()
	if cfg.PerPage > 0 {
		q.PerPage = cfg.PerPage
	}

	ti := textinput.New()
	ti.Placeholder = "search title, author, publisher, ISBN…"
	ti.CharLimit = 128
	ti.Width = 40

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		svc:         svc,
		logger:      logger,
		cfg:         cfg,
		cfgPath:     cfgPath,
		theme:       theme,
		query:       q,
		viewMode:    viewMode,
		sel:         selection.New(),
		toasts:      NewToastStack(),
		searchInput: ti,
		spin:        sp,
		loading:     true,
	}
}

// Init kicks off the first list and statistics fetches. The first fetch goes
// out at the current sequence number: Init runs on a copy, so a bump here
// would be lost and the reply wrongly treated as stale.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.fetchListSeq(m.listSeq), m.fetchStats(), m.spin.Tick)
}

// fetchList requests the current page under a fresh sequence number; any
// in-flight reply with an older tag will be dropped on arrival.
func (m *Model) fetchList() tea.Cmd {
	m.listSeq++
	return m.fetchListSeq(m.listSeq)
}

func (m *Model) fetchListSeq(seq int) tea.Cmd {
	m.loading = true
	q := m.query
	filter := m.filter
	svc := m.svc
	return func() tea.Msg {
		var (
			page model.BookPage
			err  error
		)
		if filter.IsEmpty() {
			page, err = svc.ListBooks(context.Background(), q)
		} else {
			page, err = svc.FilterBooks(context.Background(), filter, q)
		}
		if err != nil {
			return listFailedMsg{seq: seq, err: err}
		}
		return listLoadedMsg{seq: seq, page: page}
	}
}

func (m *Model) fetchStats() tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		stats, err := svc.Statistics(context.Background())
		if err != nil {
			return statsFailedMsg{err: err}
		}
		return statsLoadedMsg{stats: stats}
	}
}

func (m *Model) fetchBook(id string) tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		book, err := svc.Book(context.Background(), id)
		return bookLoadedMsg{id: id, book: book, err: err}
	}
}

func (m *Model) deleteOne(id string) tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		msg, err := svc.DeleteBook(context.Background(), id)
		return deleteDoneMsg{id: id, msg: msg, err: err}
	}
}

func (m *Model) deleteBatch(ids []string) tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		msg, err := svc.DeleteBatch(context.Background(), ids)
		return batchDeleteDoneMsg{ids: ids, msg: msg, err: err}
	}
}

func readFileCmd(path string) tea.Cmd {
	return func() tea.Msg {
		data, err := os.ReadFile(path)
		return fileReadMsg{path: path, data: data, err: err}
	}
}

func (m *Model) runImport(path string, data []byte) tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		report, msg, err := svc.ImportCSV(context.Background(), filepath.Base(path), bytes.NewReader(data))
		return importDoneMsg{report: report, msg: msg, err: err}
	}
}

func (m *Model) runExport() tea.Cmd {
	svc := m.svc
	path := fmt.Sprintf("books_export_%s.csv", time.Now().Format("20060102_150405"))
	return func() tea.Msg {
		f, err := os.Create(path)
		if err != nil {
			return exportDoneMsg{path: path, err: err}
		}
		defer f.Close()
		n, err := svc.ExportCSV(context.Background(), f)
		return exportDoneMsg{path: path, bytes: n, err: err}
	}
}

func reloadTick() tea.Cmd {
	return tea.Tick(importReloadDelay, func(time.Time) tea.Msg {
		return reloadTickMsg{}
	})
}

// Update routes messages to the active overlay or the list.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.help.SetSize(msg.Width-8, msg.Height-4)
		m.detail.SetSize(msg.Width, msg.Height)
		return m, nil

	case toastExpireMsg:
		m.toasts.Prune()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case ConfigUpdatedMsg:
		return m.applyConfig(msg.Cfg)

	case UpdateAvailableMsg:
		return m, m.toasts.Push(ToastInfo, fmt.Sprintf("update available: %s (%s)", msg.Tag, msg.URL))

	case listLoadedMsg:
		if msg.seq != m.listSeq {
			return m, nil // stale reply
		}
		m.loading = false
		m.listErr = ""
		m.page = msg.page
		if m.cursor >= len(m.page.Books) {
			m.cursor = len(m.page.Books) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		// Deleting the last row of the last page can leave us past the end.
		// Refetch only when the clamp moves the page, so a server that
		// reports pages >= the empty page we asked for cannot loop us.
		if pages := m.page.Pagination.Pages; len(m.page.Books) == 0 && pages > 0 && m.query.Page > pages {
			m.query.Page = pages
			return m, m.fetchList()
		}
		return m, nil

	case listFailedMsg:
		if msg.seq != m.listSeq {
			return m, nil
		}
		m.loading = false
		m.listErr = msg.err.Error()
		m.logger.Printf("WARNING: list load failed: %v", msg.err)
		return m, m.toasts.Push(ToastError, "failed to load books: "+msg.err.Error())

	case statsLoadedMsg:
		m.stats = newStatsPanel(msg.stats)
		m.statsLoaded = true
		return m, nil

	case statsFailedMsg:
		m.logger.Printf("WARNING: statistics load failed: %v", msg.err)
		return m, m.toasts.Push(ToastError, "failed to load statistics: "+msg.err.Error())

	case searchDebounceMsg:
		if msg.token != m.searchToken {
			return m, nil // superseded by more typing
		}
		m.query.Search = strings.TrimSpace(m.searchInput.Value())
		m.query.Page = 1
		return m, m.fetchList()

	case bookLoadedMsg:
		if m.active != overlayDetail {
			return m, nil
		}
		if msg.err != nil {
			m.detail.SetError(msg.err.Error())
			return m, nil
		}
		m.detail.SetBook(msg.book)
		return m, nil

	case deleteDoneMsg:
		if msg.err != nil {
			return m, m.toasts.Push(ToastError, "delete failed: "+msg.err.Error())
		}
		m.sel.Clear()
		note := msg.msg
		if note == "" {
			note = "book deleted"
		}
		return m, tea.Batch(m.toasts.Push(ToastSuccess, note), m.fetchList(), m.fetchStats())

	case batchDeleteDoneMsg:
		if msg.err != nil {
			return m, m.toasts.Push(ToastError, "batch delete failed: "+msg.err.Error())
		}
		m.sel.RemoveAll(msg.ids)
		note := msg.msg
		if note == "" {
			note = fmt.Sprintf("deleted %d books", len(msg.ids))
		}
		return m, tea.Batch(m.toasts.Push(ToastSuccess, note), m.fetchList(), m.fetchStats())

	case fileReadMsg:
		if m.active != overlayImport {
			return m, nil
		}
		if msg.err != nil {
			return m, m.toasts.Push(ToastError, "cannot read file: "+msg.err.Error())
		}
		if err := m.importModal.SetFileText(filepath.Base(msg.path), string(msg.data)); err != nil {
			return m, m.toasts.Push(ToastError, "CSV file must have a header and at least one data row")
		}
		m.importData = msg.data
		return m, nil

	case importDoneMsg:
		if m.active != overlayImport {
			return m, nil
		}
		if msg.err != nil {
			m.importModal.SetFailed()
			return m, m.toasts.Push(ToastError, "import failed: "+msg.err.Error())
		}
		m.importModal.SetResult(msg.report, msg.msg)
		return m, reloadTick()

	case reloadTickMsg:
		return m, tea.Batch(m.fetchList(), m.fetchStats())

	case exportDoneMsg:
		if msg.err != nil {
			return m, m.toasts.Push(ToastError, "export failed: "+msg.err.Error())
		}
		return m, m.toasts.Push(ToastSuccess, fmt.Sprintf("exported to %s (%d bytes)", msg.path, msg.bytes))
	}

	if m.active != overlayNone {
		return m.updateOverlay(msg)
	}
	if m.searching {
		return m.updateSearch(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	return m.handleListKey(keyMsg)
}

// updateOverlay forwards a message to whichever modal is open.
func (m Model) updateOverlay(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.active {
	case overlayHelp:
		var cmd tea.Cmd
		m.help, cmd = m.help.Update(msg)
		if m.help.ShouldClose() {
			m.active = overlayNone
		}
		return m, cmd

	case overlayDetail:
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch keyMsg.String() {
			case "esc", "q", "enter":
				m.active = overlayNone
				return m, nil
			}
		}
		var cmd tea.Cmd
		m.detail, cmd = m.detail.Update(msg)
		return m, cmd

	case overlayConfirmOne, overlayConfirmBatch:
		var cmd tea.Cmd
		m.confirm, cmd = m.confirm.Update(msg)
		done, accepted := m.confirm.Done()
		if !done {
			return m, cmd
		}
		batch := m.active == overlayConfirmBatch
		m.active = overlayNone
		if !accepted {
			return m, cmd
		}
		if batch {
			return m, tea.Batch(cmd, m.deleteBatch(m.pendingBatch))
		}
		return m, tea.Batch(cmd, m.deleteOne(m.pendingID))

	case overlayFilter:
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
			m.active = overlayNone
			return m, nil
		}
		var cmd tea.Cmd
		m.filterForm, cmd = m.filterForm.Update(msg)
		if m.filterForm.Done() {
			m.active = overlayNone
			m.filter = m.filterForm.Filter()
			m.query.Page = 1
			return m, tea.Batch(cmd, m.fetchList())
		}
		return m, cmd

	case overlayImport:
		modal, cmd, action := m.importModal.Update(msg)
		m.importModal = modal
		switch action {
		case ImportClose:
			m.active = overlayNone
			m.importData = nil
			return m, cmd
		case ImportReadFile:
			return m, tea.Batch(cmd, readFileCmd(m.importModal.Path()))
		case ImportStart:
			m.importModal.SetRunning()
			return m, tea.Batch(cmd, m.runImport(m.importModal.Path(), m.importData))
		}
		return m, cmd
	}
	return m, nil
}

// updateSearch handles input while the search bar has focus. Every change
// restarts the debounce timer; only the newest timer fires a reload.
func (m Model) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.searching = false
			m.searchInput.Blur()
			return m, nil
		case "enter":
			m.searching = false
			m.searchInput.Blur()
			m.searchToken++
			m.query.Search = strings.TrimSpace(m.searchInput.Value())
			m.query.Page = 1
			return m, m.fetchList()
		}
	}

	before := m.searchInput.Value()
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	if m.searchInput.Value() == before {
		return m, cmd
	}

	m.searchToken++
	token := m.searchToken
	debounce := tea.Tick(searchDebounce, func(time.Time) tea.Msg {
		return searchDebounceMsg{token: token}
	})
	return m, tea.Batch(cmd, debounce)
}

// handleListKey handles keys while the list has focus.
func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "?":
		m.help = NewHelpModel(m.theme)
		if m.ready {
			m.help.SetSize(m.width-8, m.height-4)
		}
		m.active = overlayHelp
		return m, nil

	case "/":
		m.searching = true
		m.searchInput.Focus()
		return m, textinput.Blink

	case "j", "down":
		if m.cursor < len(m.page.Books)-1 {
			m.cursor++
		}
		return m, nil
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "h", "left":
		if m.query.Page > 1 {
			m.query.Page--
			m.cursor = 0
			return m, m.fetchList()
		}
		return m, nil
	case "l", "right":
		if m.query.Page < m.page.Pagination.Pages {
			m.query.Page++
			m.cursor = 0
			return m, m.fetchList()
		}
		return m, nil

	case "g":
		m.cursor = 0
		return m, nil
	case "G":
		if n := len(m.page.Books); n > 0 {
			m.cursor = n - 1
		}
		return m, nil

	case "v":
		// View style only; the loaded page is reused as is.
		if m.viewMode == ViewCard {
			m.viewMode = ViewTable
		} else {
			m.viewMode = ViewCard
		}
		m.persistView()
		return m, nil

	case "p":
		m.query.PerPage = nextPerPage(m.query.PerPage)
		m.query.Page = 1
		m.cursor = 0
		m.cfg.PerPage = m.query.PerPage
		m.persistConfig()
		return m, m.fetchList()

	case "s":
		m.query.SortBy = nextSortField(m.query.SortBy)
		m.query.Page = 1
		return m, m.fetchList()
	case "S":
		if m.query.SortOrder == model.SortAsc {
			m.query.SortOrder = model.SortDesc
		} else {
			m.query.SortOrder = model.SortAsc
		}
		m.query.Page = 1
		return m, m.fetchList()

	case " ":
		if book, ok := m.cursorBook(); ok {
			m.sel.Toggle(book.ID, !m.sel.Has(book.ID))
		}
		return m, nil

	case "a":
		m.sel.SetAll(m.pageIDs(), true)
		return m, nil
	case "A":
		// Deselect the rendered rows only; picks on other pages survive.
		m.sel.SetAll(m.pageIDs(), false)
		return m, nil
	case "ctrl+a":
		m.sel.Clear()
		return m, nil

	case "enter":
		book, ok := m.cursorBook()
		if !ok {
			return m, nil
		}
		m.detail = NewDetailModal(book.ID, m.cfg.ServerURL, m.theme)
		if m.ready {
			m.detail.SetSize(m.width, m.height)
		}
		m.active = overlayDetail
		return m, m.fetchBook(book.ID)

	case "d":
		book, ok := m.cursorBook()
		if !ok {
			return m, nil
		}
		m.pendingID = book.ID
		prompt := fmt.Sprintf("Delete %q (%s)? This cannot be undone.", book.Name, book.ID)
		m.confirm = NewConfirmModal("Delete book", prompt, m.theme)
		m.active = overlayConfirmOne
		return m, m.confirm.Init()

	case "D":
		if m.sel.Len() == 0 {
			return m, m.toasts.Push(ToastWarning, "no books selected")
		}
		m.pendingBatch = m.sel.IDs()
		prompt := fmt.Sprintf("Delete %d selected books? This cannot be undone.", len(m.pendingBatch))
		m.confirm = NewConfirmModal("Delete selected books", prompt, m.theme)
		m.active = overlayConfirmBatch
		return m, m.confirm.Init()

	case "f":
		m.filterForm = NewFilterForm(m.filter, m.theme)
		m.active = overlayFilter
		return m, m.filterForm.Init()

	case "F":
		// Full reset: filter, search, sorts, and page size back to defaults.
		m.filter = model.AdvancedFilter{}
		m.searchInput.SetValue("")
		m.query = model.DefaultListQuery()
		if m.cfg.PerPage > 0 {
			m.query.PerPage = m.cfg.PerPage
		}
		return m, m.fetchList()

	case "i":
		m.importModal = NewImportModal(m.theme)
		m.active = overlayImport
		return m, m.importModal.Init()

	case "e":
		return m, tea.Batch(m.toasts.Push(ToastInfo, "exporting…"), m.runExport())

	case "r":
		return m, tea.Batch(m.fetchList(), m.fetchStats())

	case "t":
		m.theme = m.theme.Toggled()
		if m.theme.Mode == ModeDark {
			m.cfg.Theme = config.ThemeDark
		} else {
			m.cfg.Theme = config.ThemeLight
		}
		m.persistConfig()
		return m, nil
	}
	return m, nil
}

// applyConfig folds a changed config file into the running UI.
func (m Model) applyConfig(cfg config.Config) (tea.Model, tea.Cmd) {
	m.cfg = cfg

	mode := ModeLight
	if cfg.Theme == config.ThemeDark {
		mode = ModeDark
	}
	if mode != m.theme.Mode {
		m.theme = NewTheme(m.theme.Renderer, mode)
	}

	var cmd tea.Cmd
	if cfg.PerPage > 0 && cfg.PerPage != m.query.PerPage {
		m.query.PerPage = cfg.PerPage
		m.query.Page = 1
		cmd = m.fetchList()
	}
	return m, tea.Batch(cmd, m.toasts.Push(ToastInfo, "configuration reloaded"))
}

func (m *Model) persistConfig() {
	if m.cfgPath == "" {
		return
	}
	if err := config.Save(m.cfgPath, m.cfg); err != nil {
		m.logger.Printf("WARNING: failed to save config: %v", err)
	}
}

func (m *Model) persistView() {
	if m.viewMode == ViewTable {
		m.cfg.View = "table"
	} else {
		m.cfg.View = "card"
	}
	m.persistConfig()
}

func (m Model) cursorBook() (model.Book, bool) {
	if m.cursor < 0 || m.cursor >= len(m.page.Books) {
		return model.Book{}, false
	}
	return m.page.Books[m.cursor], true
}

func (m Model) pageIDs() []string {
	ids := make([]string, 0, len(m.page.Books))
	for _, b := range m.page.Books {
		ids = append(ids, b.ID)
	}
	return ids
}

func nextPerPage(cur int) int {
	for i, n := range perPageCycle {
		if n == cur {
			return perPageCycle[(i+1)%len(perPageCycle)]
		}
	}
	return perPageCycle[0]
}

func nextSortField(cur string) string {
	for i, f := range model.SortFields {
		if f == cur {
			return model.SortFields[(i+1)%len(model.SortFields)]
		}
	}
	return model.SortFields[0]
}

// View renders the whole screen.
func (m Model) View() string {
	if !m.ready {
		return "loading…"
	}

	switch m.active {
	case overlayHelp:
		return m.help.CenterHelp(m.width, m.height)
	case overlayDetail:
		return m.detail.CenterModal(m.width, m.height)
	case overlayConfirmOne, overlayConfirmBatch:
		return m.confirm.CenterModal(m.width, m.height)
	case overlayFilter:
		return m.filterForm.CenterModal(m.width, m.height)
	case overlayImport:
		return m.importModal.CenterModal(m.width, m.height)
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	switch {
	case m.loading && len(m.page.Books) == 0:
		b.WriteString(m.spin.View() + m.theme.Base.Render("loading books…"))
		b.WriteString("\n")
	case m.listErr != "" && len(m.page.Books) == 0:
		errStyle := m.theme.Renderer.NewStyle().Foreground(m.theme.Error)
		b.WriteString(errStyle.Render("✗ " + m.listErr))
		b.WriteString("\n")
	case len(m.page.Books) == 0:
		b.WriteString(renderEmptyList(m.theme))
		b.WriteString("\n")
	case m.viewMode == ViewCard:
		b.WriteString(renderCards(m.page.Books, m.cursor, m.sel, m.theme, m.width))
		b.WriteString("\n")
	default:
		b.WriteString(renderTable(m.page.Books, m.cursor, m.sel, m.theme))
		b.WriteString("\n")
	}

	p := m.page.Pagination
	b.WriteString(renderPagination(p.Page, p.Pages, p.Total, m.theme))
	b.WriteString("\n")

	if m.statsLoaded {
		b.WriteString(m.stats.View(m.theme))
		b.WriteString("\n")
	}

	b.WriteString(m.renderFooter())

	if m.toasts.Len() > 0 {
		b.WriteString("\n")
		b.WriteString(m.toasts.View(m.theme))
	}
	return b.String()
}

func (m Model) renderHeader() string {
	r := m.theme.Renderer
	title := m.theme.Header.Render("📚 Book Catalog")
	sub := r.NewStyle().Foreground(m.theme.Subtext)

	var parts []string
	parts = append(parts, title)
	parts = append(parts, sub.Render(m.theme.Icon()))

	if m.searching {
		parts = append(parts, m.searchInput.View())
	} else if m.query.Search != "" {
		parts = append(parts, sub.Render("search: "+m.query.Search))
	}
	if !m.filter.IsEmpty() {
		parts = append(parts, m.theme.Badge.Render("filtered"))
	}
	parts = append(parts, sub.Render(fmt.Sprintf("sort: %s %s", m.query.SortBy, m.query.SortOrder)))
	if m.sel.Len() > 0 {
		parts = append(parts, m.theme.Badge.Render(fmt.Sprintf("%d selected", m.sel.Len())))
	}
	return strings.Join(parts, "  ")
}

func (m Model) renderFooter() string {
	sub := m.theme.Renderer.NewStyle().Foreground(m.theme.Subtext)
	return sub.Render("j/k move │ h/l page │ Space select │ / search │ v view │ d/D delete │ i import │ e export │ ? help │ q quit")
}
