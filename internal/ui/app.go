package ui

import (
	"time"

	"timeago/internal/debug"
	appErrors "timeago/internal/errors"
	"timeago/internal/feed"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	minListHeight      = 3
	copyToastDuration  = 3 * time.Second
	errorToastDuration = 10 * time.Second
)

// Config configures the timeline app.
type Config struct {
	Store        feed.Store
	OutputFormat string
	Version      string
}

// row pairs an entry with its live time label.
type row struct {
	entry feed.Entry
	label TimeAgo
}

// App implements the Bubble Tea model for the timeline: a scrollable list of
// entries whose time labels refresh themselves while on screen.
type App struct {
	store feed.Store
	rows  []row

	cursor  int
	topLine int

	keys KeyMap
	mods Modifiers

	showDetail bool
	showHelp   bool
	ready      bool
	loading    bool

	width  int
	height int

	outputFormat   string
	version        string
	renderMarkdown func(string) string

	lastError       string
	showErrorToast  bool
	errorToastStart time.Time

	copiedLabel    string
	showCopyToast  bool
	copyToastStart time.Time

	lastRenderAt time.Time
}

// NewApp creates the timeline model. Entries are loaded asynchronously by
// Init, so construction never blocks on the store.
func NewApp(cfg Config) (*App, error) {
	if cfg.Store == nil {
		return nil, appErrors.New(appErrors.CodeConfigurationError, "feed store is required", nil)
	}
	return &App{
		store:        cfg.Store,
		keys:         DefaultKeyMap(),
		loading:      true,
		outputFormat: cfg.OutputFormat,
		version:      cfg.Version,
	}, nil
}

func (m *App) Init() tea.Cmd {
	return loadEntries(m.store)
}

func (m *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		noteWidth := clampDimension(msg.Width-8, 20, 100)
		m.renderMarkdown = buildMarkdownRenderer(m.outputFormat, noteWidth)
		m.ensureCursorVisible()

	case entriesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.lastError = msg.err.Error()
			m.showErrorToast = true
			m.errorToastStart = timeNow()
			debug.Logf("feed: loading entries failed: %v", msg.err)
			cmds = append(cmds, scheduleErrorToastTick())
			break
		}
		m.setEntries(msg.entries)

	case RenderedMsg:
		m.lastRenderAt = timeNow()

	case startMsg:
		cmds = append(cmds, m.routeLabelMsg(msg.id, msg))

	case TickMsg:
		cmds = append(cmds, m.routeLabelMsg(msg.ID, msg))

	case copyToastTickMsg:
		if m.showCopyToast {
			if timeNow().Sub(m.copyToastStart) >= copyToastDuration {
				m.showCopyToast = false
			} else {
				cmds = append(cmds, scheduleCopyToastTick())
			}
		}

	case errorToastTickMsg:
		if m.showErrorToast {
			if timeNow().Sub(m.errorToastStart) >= errorToastDuration {
				m.showErrorToast = false
			} else {
				cmds = append(cmds, scheduleErrorToastTick())
			}
		}

	case tea.KeyMsg:
		if cmd, quit := m.handleKey(msg); quit {
			return m, cmd
		} else if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	// Reconcile label visibility after every pass so labels that were
	// started, rebound, or scrolled while a command was in flight settle
	// into the right ticking state.
	if cmd := m.syncVisibility(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m *App) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if key.Matches(msg, m.keys.Quit) {
		return tea.Quit, true
	}

	if m.showHelp {
		if key.Matches(msg, m.keys.Help) || key.Matches(msg, m.keys.Escape) {
			m.showHelp = false
		}
		return nil, false
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	case key.Matches(msg, m.keys.Escape):
		m.showDetail = false
	case key.Matches(msg, m.keys.Up):
		m.cursor--
		m.ensureCursorVisible()
	case key.Matches(msg, m.keys.Down):
		m.cursor++
		m.ensureCursorVisible()
	case key.Matches(msg, m.keys.Home):
		m.cursor = 0
		m.ensureCursorVisible()
	case key.Matches(msg, m.keys.End):
		m.cursor = len(m.rows) - 1
		m.ensureCursorVisible()
	case key.Matches(msg, m.keys.PageUp):
		m.cursor -= clampDimension(m.listHeight(), 1, len(m.rows))
		m.ensureCursorVisible()
	case key.Matches(msg, m.keys.PageDown):
		m.cursor += clampDimension(m.listHeight(), 1, len(m.rows))
		m.ensureCursorVisible()
	case key.Matches(msg, m.keys.Strict):
		m.mods.Strict = !m.mods.Strict
		return m.rebindAll(), false
	case key.Matches(msg, m.keys.Seconds):
		m.mods.Seconds = !m.mods.Seconds
		return m.rebindAll(), false
	case key.Matches(msg, m.keys.Detail):
		m.showDetail = !m.showDetail
		m.ensureCursorVisible()
	case key.Matches(msg, m.keys.Copy):
		return m.copySelectedLabel(), false
	case key.Matches(msg, m.keys.Refresh):
		if !m.loading {
			m.loading = true
			return loadEntries(m.store), false
		}
	}
	return nil, false
}

// setEntries replaces the timeline wholesale, stopping the old labels so any
// in-flight ticks land dead.
func (m *App) setEntries(entries []feed.Entry) {
	for i := range m.rows {
		m.rows[i].label = m.rows[i].label.Stop()
	}
	rows := make([]row, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, row{
			entry: e,
			label: NewTimeAgo(e.At, WithModifiers(m.mods)),
		})
	}
	m.rows = rows
	m.ensureCursorVisible()
}

// rebindAll re-derives every label's options from the current modifier set.
func (m *App) rebindAll() tea.Cmd {
	var cmds []tea.Cmd
	for i := range m.rows {
		var cmd tea.Cmd
		m.rows[i].label, cmd = m.rows[i].label.SetModifiers(m.mods)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

func (m *App) copySelectedLabel() tea.Cmd {
	if len(m.rows) == 0 {
		return nil
	}
	label := m.rows[m.cursor].label.Label()
	if label == "" {
		return nil
	}
	if err := clipboard.WriteAll(label); err != nil {
		debug.Logf("clipboard: copy failed: %v", err)
		m.lastError = "clipboard copy failed"
		m.showErrorToast = true
		m.errorToastStart = timeNow()
		return scheduleErrorToastTick()
	}
	m.copiedLabel = label
	m.showCopyToast = true
	m.copyToastStart = timeNow()
	return scheduleCopyToastTick()
}

// routeLabelMsg delivers a label-scoped message to the row carrying that id.
func (m *App) routeLabelMsg(id int, msg tea.Msg) tea.Cmd {
	for i := range m.rows {
		if m.rows[i].label.ID() == id {
			var cmd tea.Cmd
			m.rows[i].label, cmd = m.rows[i].label.Update(msg)
			return cmd
		}
	}
	return nil
}

// syncVisibility suspends labels that scrolled off screen and wakes labels
// that scrolled back in. Never-started labels in the window get their initial
// Start instead.
func (m *App) syncVisibility() tea.Cmd {
	if len(m.rows) == 0 {
		return nil
	}
	var cmds []tea.Cmd
	lh := m.listHeight()
	for i := range m.rows {
		visible := i >= m.topLine && i < m.topLine+lh
		label := m.rows[i].label
		switch {
		case visible && label.State() == BindingIdle:
			cmds = append(cmds, label.Start())
		case visible && label.Hidden():
			var cmd tea.Cmd
			m.rows[i].label, cmd = label.Show()
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		case !visible && !label.Hidden() && label.State() == BindingScheduled:
			m.rows[i].label = label.Hide()
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// listHeight returns how many entry rows fit between the chrome.
func (m *App) listHeight() int {
	// Header, two pane border rows, footer.
	h := m.height - 4
	if m.showDetail {
		h -= m.detailHeight()
	}
	if h < minListHeight {
		h = minListHeight
	}
	return h
}

// detailHeight reserves rows for the detail strip below the list.
func (m *App) detailHeight() int {
	if len(m.rows) == 0 {
		return 0
	}
	return clampDimension(m.height/3, 4, 12)
}

func (m *App) ensureCursorVisible() {
	if len(m.rows) == 0 {
		m.cursor = 0
		m.topLine = 0
		return
	}
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	lh := m.listHeight()
	if m.cursor < m.topLine {
		m.topLine = m.cursor
	}
	if m.cursor >= m.topLine+lh {
		m.topLine = m.cursor - lh + 1
	}
	maxTop := len(m.rows) - lh
	if maxTop < 0 {
		maxTop = 0
	}
	if m.topLine > maxTop {
		m.topLine = maxTop
	}
	if m.topLine < 0 {
		m.topLine = 0
	}
}

// Rows returns the current row count (for testing).
func (m *App) Rows() int {
	return len(m.rows)
}

// Cursor returns the selected row index (for testing).
func (m *App) Cursor() int {
	return m.cursor
}
