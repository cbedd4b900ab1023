package ui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pellmont/folio/internal/pager"
	"github.com/pellmont/folio/internal/prefs"
)

// View represents the current active view.
type View int

const (
	ViewList View = iota
	ViewDetail
	ViewLogs
)

// Options configures the UI.
type Options struct {
	Context    context.Context
	Controller *pager.Controller
	Endpoint   string
	LogPath    string
	ThemeName  string
	PrefsPath  string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx        context.Context
	controller *pager.Controller
	endpoint   string
	logPath    string
	prefsPath  string

	// UI state
	keys        keyMap
	theme       Theme
	currentView View
	width       int
	height      int
	ready       bool
	focusedPane int // 0 = list, 1 = detail

	// Data state
	snapshot    pager.Snapshot
	lastUpdated time.Time

	// List state
	selectedRow int
	filterInput textinput.Model
	spinner     spinner.Model

	// Detail state
	detailViewport viewport.Model

	// Log state
	logViewport viewport.Model
	logLines    []string

	// Help overlay
	showHelp bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Nightfox"
	}
	theme := GetTheme(themeName)

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent))

	filter := textinput.New()
	filter.Prompt = "/"
	filter.Placeholder = "filter"
	filter.CharLimit = 64
	filter.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent))

	return Model{
		ctx:         ctx,
		controller:  opts.Controller,
		endpoint:    opts.Endpoint,
		logPath:     opts.LogPath,
		prefsPath:   prefsPath,
		keys:        DefaultKeyMap(),
		theme:       theme,
		currentView: ViewList,
		filterInput: filter,
		spinner:     sp,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		m.spinner.Tick,
	}
	// Dispatch the first page immediately on start
	if m.controller != nil {
		if f := m.controller.LoadInitial(); f != nil {
			cmds = append(cmds, runFetch(m.ctx, f))
		}
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.refreshSnapshot()
		m.clampSelection()
		m.updateDetailViewport()
		m.updateLogViewport()
		return m, nil

	case listRefreshMsg:
		m.refreshSnapshot()
		m.lastUpdated = time.Now()
		m.clampSelection()
		m.updateDetailViewport()
		if cmd := m.maybeLoadMore(); cmd != nil {
			return m, cmd
		}
		return m, nil

	case logLinesMsg:
		m.logLines = msg
		m.updateLogViewport()
		return m, nil

	case spinner.TickMsg:
		// Keep the spinner running only while a fetch is in flight.
		if !m.snapshot.Phase.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key closes the help overlay
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	// The filter input swallows keys while focused
	if m.filterInput.Focused() {
		return m.handleFilterKey(msg)
	}

	// Global keys
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "h", "?":
		m.showHelp = true
		return m, nil

	case "T":
		// Cycle theme and remember the choice
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.spinner.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Accent))
		if m.prefsPath != "" {
			_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name})
		}
		m.updateDetailViewport()
		m.updateLogViewport()
		return m, nil

	case "l":
		m.currentView = ViewLogs
		m.updateLogViewport()
		return m, readLogsCmd(m.logPath)

	case "esc":
		if m.currentView != ViewList {
			m.currentView = ViewList
			m.updateDetailViewport()
			return m, nil
		}
		if m.filterQuery() != "" {
			m.filterInput.Reset()
			m.clampSelection()
			m.updateDetailViewport()
		}
		return m, nil

	case "r":
		if m.currentView == ViewLogs {
			return m, readLogsCmd(m.logPath)
		}
		if m.controller != nil && m.snapshot.Phase == pager.PhaseFailed {
			return m, m.dispatch(m.controller.Retry())
		}
		return m, nil
	}

	// View-specific keys
	switch m.currentView {
	case ViewList:
		return m.handleListKey(msg)
	case ViewDetail:
		return m.handleDetailKey(msg)
	case ViewLogs:
		return m.handleLogsKey(msg)
	}

	return m, nil
}

// handleFilterKey processes keyboard input while the filter is focused.
func (m Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.filterInput.Reset()
		m.filterInput.Blur()
		m.clampSelection()
		m.updateDetailViewport()
		return m, nil

	case "enter":
		m.filterInput.Blur()
		m.clampSelection()
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.clampSelection()
	m.updateDetailViewport()
	return m, cmd
}

// handleListKey processes keyboard input for the list view.
func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Tab) {
		m.focusedPane = 1 - m.focusedPane
		return m, nil
	}

	// Detail pane focused: navigation scrolls the pane viewport
	if m.focusedPane == 1 {
		var cmd tea.Cmd
		m.detailViewport, cmd = m.detailViewport.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Filter):
		m.filterInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.OpenDetail):
		if m.selectedEntity() != nil {
			m.currentView = ViewDetail
			m.updateDetailViewport()
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.moveSelection(1)
	case key.Matches(msg, m.keys.Up):
		m.moveSelection(-1)
	case key.Matches(msg, m.keys.Top):
		m.setSelection(0)
	case key.Matches(msg, m.keys.Bottom):
		m.setSelection(len(m.visibleEntities()) - 1)
	case key.Matches(msg, m.keys.HalfPageDown):
		m.moveSelection(m.halfPage())
	case key.Matches(msg, m.keys.HalfPageUp):
		m.moveSelection(-m.halfPage())

	default:
		return m, nil
	}

	m.updateDetailViewport()
	if cmd := m.maybeLoadMore(); cmd != nil {
		return m, cmd
	}
	return m, nil
}

// handleDetailKey processes keyboard input for the detail view.
func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.detailViewport, cmd = m.detailViewport.Update(msg)
	return m, cmd
}

// handleLogsKey processes keyboard input for the logs view.
func (m Model) handleLogsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.logViewport, cmd = m.logViewport.Update(msg)
	return m, cmd
}

// moveSelection moves the cursor by delta rows, clamped.
func (m *Model) moveSelection(delta int) {
	m.setSelection(m.selectedRow + delta)
}

// setSelection moves the cursor to row, clamped.
func (m *Model) setSelection(row int) {
	m.selectedRow = row
	m.clampSelection()
}

// halfPage returns half the visible list height in rows.
func (m Model) halfPage() int {
	return max((m.height-5)/2, 1)
}

// refreshSnapshot re-reads the controller state.
func (m *Model) refreshSnapshot() {
	if m.controller != nil {
		m.snapshot = m.controller.Snapshot()
	}
}

// dispatch records the phase change from a controller operation and
// returns the command that runs the fetch. A nil fetch means the
// operation was a no-op.
func (m *Model) dispatch(f *pager.Fetch) tea.Cmd {
	if f == nil {
		return nil
	}
	m.refreshSnapshot()
	return tea.Batch(runFetch(m.ctx, f), m.spinner.Tick)
}

// maybeLoadMore dispatches the next page fetch when the selection sits
// near the end of the loaded list. Skipped while a filter narrows the
// view, since row positions no longer track the loaded list.
func (m *Model) maybeLoadMore() tea.Cmd {
	if m.controller == nil {
		return nil
	}
	if m.filterQuery() != "" || m.filterInput.Focused() {
		return nil
	}
	if m.snapshot.Phase != pager.PhaseReady {
		return nil
	}
	if !nearEnd(m.selectedRow, len(m.snapshot.Items)) {
		return nil
	}
	return m.dispatch(m.controller.LoadMore())
}

// renderMain renders the full UI: header, command bar, content.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")
	b.WriteString(m.renderContent())

	return b.String()
}

// renderContent renders the main content area based on current view.
func (m Model) renderContent() string {
	switch m.currentView {
	case ViewList:
		return m.renderList()
	case ViewDetail:
		return m.renderDetailView()
	case ViewLogs:
		return m.renderLogs()
	default:
		return ""
	}
}

// Messages

// listRefreshMsg signals that a fetch settled and the snapshot should
// be re-read.
type listRefreshMsg struct{}

// Commands

// runFetch executes a dispatched fetch and posts a refresh once it
// settles.
func runFetch(ctx context.Context, f *pager.Fetch) tea.Cmd {
	return func() tea.Msg {
		f.Run(ctx)
		return listRefreshMsg{}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
