package ui

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"timeago/internal/config"
	"timeago/internal/debug"
	"timeago/internal/distance"
)

// BindingState is the lifecycle state of a TimeAgo label.
type BindingState int

const (
	// BindingIdle - constructed but not started.
	BindingIdle BindingState = iota
	// BindingScheduled - live, with a refresh tick armed (or suspended by Hide).
	BindingScheduled
	// BindingDestroyed - stopped for good; no tick is ever accepted again.
	BindingDestroyed
)

func (s BindingState) String() string {
	switch s {
	case BindingScheduled:
		return "scheduled"
	case BindingDestroyed:
		return "destroyed"
	default:
		return "idle"
	}
}

// TickMsg asks one TimeAgo label to re-render. It carries the label id and a
// tag snapshot; a tick armed before a rebind, hide, or stop carries a stale
// tag and is discarded on arrival.
type TickMsg struct {
	// ID identifies which label the tick belongs to.
	ID  int
	tag int
}

// RenderedMsg is emitted after every successful render. Hosts that track
// refreshes (event logs, tests) consume it; everyone else ignores it.
type RenderedMsg struct {
	ID     int
	IsPast bool
}

// startMsg transitions a label from idle to scheduled.
type startMsg struct {
	id int
}

// placeholderLabel is shown when the bound value never parsed.
const placeholderLabel = "…"

var (
	lastTimeAgoID int
	timeAgoIDMtx  sync.Mutex
)

func nextTimeAgoID() int {
	timeAgoIDMtx.Lock()
	defer timeAgoIDMtx.Unlock()
	lastTimeAgoID++
	return lastTimeAgoID
}

var timeNow = time.Now

// TimeAgo keeps one rendered distance label in sync with a bound date value:
// it renders on bind, refreshes on a repeating tick, pauses while hidden,
// and emits RenderedMsg after each successful render. A parse or render
// failure is logged and the previous label stays on screen; the timer stays
// alive so a later rebind recovers.
type TimeAgo struct {
	// Style wraps the rendered label in View.
	Style lipgloss.Style

	id       int
	tag      int
	state    BindingState
	hidden   bool
	raw      any
	instant  distance.Instant
	mods     Modifiers
	opts     distance.Options
	interval time.Duration
	label    string
	isPast   bool
}

// TimeAgoOption configures a TimeAgo at construction time.
type TimeAgoOption func(*TimeAgo)

// WithModifiers applies a parsed directive configuration.
func WithModifiers(mods Modifiers) TimeAgoOption {
	return func(t *TimeAgo) {
		t.mods = mods
		t.opts = mods.Options()
	}
}

// WithStyle sets the label style.
func WithStyle(style lipgloss.Style) TimeAgoOption {
	return func(t *TimeAgo) {
		t.Style = style
	}
}

// WithInterval overrides the refresh cadence. Without it the label ticks at
// the slow cadence, or the fast one when the seconds modifier is set.
func WithInterval(interval time.Duration) TimeAgoOption {
	return func(t *TimeAgo) {
		t.interval = interval
	}
}

// NewTimeAgo creates an idle label bound to value. The label text is
// computed up front so View is meaningful before the program loop starts
// delivering messages.
func NewTimeAgo(value any, opts ...TimeAgoOption) TimeAgo {
	t := TimeAgo{
		id:    nextTimeAgoID(),
		state: BindingIdle,
		raw:   value,
		opts:  Modifiers{}.Options(),
	}
	for _, opt := range opts {
		opt(&t)
	}
	t.instant = distance.NewInstant(value)
	if !t.render() {
		t.label = placeholderLabel
	}
	return t
}

// Init arms the label: an immediate render plus the first tick.
func (t TimeAgo) Init() tea.Cmd {
	return t.Start()
}

// Start returns the command that transitions the label to scheduled. Idempotent
// while live; a destroyed label ignores it.
func (t TimeAgo) Start() tea.Cmd {
	id := t.id
	return func() tea.Msg {
		return startMsg{id: id}
	}
}

// Update handles the label's own messages. Foreign ids, stale tags, and
// anything after Stop fall through untouched.
func (t TimeAgo) Update(msg tea.Msg) (TimeAgo, tea.Cmd) {
	switch msg := msg.(type) {
	case startMsg:
		if msg.id != t.id || t.state == BindingDestroyed {
			return t, nil
		}
		if t.state == BindingScheduled && !t.hidden {
			// Already armed; a duplicate start must not spawn a second
			// tick stream.
			return t, nil
		}
		t.state = BindingScheduled
		t.hidden = false
		if t.render() {
			return t, tea.Batch(t.emitRendered(), t.scheduleTick())
		}
		return t, t.scheduleTick()

	case TickMsg:
		if msg.ID != t.id || msg.tag != t.tag || t.state != BindingScheduled || t.hidden {
			return t, nil
		}
		if t.render() {
			return t, tea.Batch(t.emitRendered(), t.scheduleTick())
		}
		return t, t.scheduleTick()
	}

	return t, nil
}

// SetValue rebinds the label to a new date value. The pending tick is
// cancelled before anything else so it can never deliver a label for the old
// value, then the new distance renders immediately and a fresh tick is armed.
func (t TimeAgo) SetValue(value any) (TimeAgo, tea.Cmd) {
	if t.state == BindingDestroyed {
		return t, nil
	}
	t.tag++
	t.raw = value
	t.instant = distance.NewInstant(value)
	t.state = BindingScheduled
	if t.hidden {
		// Suspended: the render waits for Show.
		return t, nil
	}
	if t.render() {
		return t, tea.Batch(t.emitRendered(), t.scheduleTick())
	}
	return t, t.scheduleTick()
}

// SetModifiers swaps the directive configuration and re-renders the same
// value under it.
func (t TimeAgo) SetModifiers(mods Modifiers) (TimeAgo, tea.Cmd) {
	if t.state == BindingDestroyed {
		return t, nil
	}
	t.mods = mods
	t.opts = mods.Options()
	return t.SetValue(t.raw)
}

// Hide suspends refreshing. The pending tick is cancelled via the tag, so
// nothing fires while the label is off screen.
func (t TimeAgo) Hide() TimeAgo {
	if t.state == BindingDestroyed || t.hidden {
		return t
	}
	t.hidden = true
	t.tag++
	return t
}

// Show resumes a hidden label: exactly one immediate render, then the
// regular cadence.
func (t TimeAgo) Show() (TimeAgo, tea.Cmd) {
	if t.state == BindingDestroyed || !t.hidden {
		return t, nil
	}
	t.hidden = false
	if t.state != BindingScheduled {
		return t, nil
	}
	if t.render() {
		return t, tea.Batch(t.emitRendered(), t.scheduleTick())
	}
	return t, t.scheduleTick()
}

// Stop destroys the binding. Any tick still in flight carries a stale tag
// and a destroyed state rejects everything else, so no render can happen
// afterwards.
func (t TimeAgo) Stop() TimeAgo {
	t.state = BindingDestroyed
	t.tag++
	return t
}

// View renders the current label.
func (t TimeAgo) View() string {
	return t.Style.Render(t.label)
}

// Label returns the current text without styling, for hosts that compose
// their own row styles or copy the label elsewhere.
func (t TimeAgo) Label() string {
	return t.label
}

// Value returns the currently bound raw value.
func (t TimeAgo) Value() any {
	return t.raw
}

// IsPast reports whether the bound date was at or before the clock on the
// last render.
func (t TimeAgo) IsPast() bool {
	return t.isPast
}

// Modifiers returns the active directive configuration.
func (t TimeAgo) Modifiers() Modifiers {
	return t.mods
}

// ID returns the label id carried by this binding's messages.
func (t TimeAgo) ID() int {
	return t.id
}

// State returns the lifecycle state (for testing).
func (t TimeAgo) State() BindingState {
	return t.state
}

// Hidden returns whether refreshing is suspended (for testing).
func (t TimeAgo) Hidden() bool {
	return t.hidden
}

// render recomputes the label against the current clock. On failure the
// previous label is kept and the failure goes to the debug log, never into
// the program loop.
func (t *TimeAgo) render() bool {
	if !t.instant.Valid() {
		debug.Logf("timeago[%d]: not rendering %v: invalid date value", t.id, t.raw)
		return false
	}
	now := distance.NewInstant(timeNow())
	label, err := distance.Between(now, t.instant, t.opts)
	if err != nil {
		debug.Logf("timeago[%d]: render failed: %v", t.id, err)
		return false
	}
	t.label = label
	t.isPast = t.instant.Compare(now) <= 0
	return true
}

func (t TimeAgo) emitRendered() tea.Cmd {
	msg := RenderedMsg{ID: t.id, IsPast: t.isPast}
	return func() tea.Msg {
		return msg
	}
}

func (t TimeAgo) scheduleTick() tea.Cmd {
	id, tag := t.id, t.tag
	return tea.Tick(t.tickInterval(), func(time.Time) tea.Msg {
		return TickMsg{ID: id, tag: tag}
	})
}

// tickInterval resolves the refresh cadence: an explicit override wins, then
// the configured fast cadence when the seconds modifier asks for sub-minute
// granularity, then the configured slow cadence.
func (t TimeAgo) tickInterval() time.Duration {
	if t.interval > 0 {
		return t.interval
	}
	key, fallback := config.KeyRefreshSlowSeconds, config.DefaultSlowRefreshSeconds
	if t.mods.Seconds {
		key, fallback = config.KeyRefreshFastSeconds, config.DefaultFastRefreshSeconds
	}
	seconds := config.GetInt(key)
	if seconds <= 0 {
		seconds = fallback
	}
	return time.Duration(seconds) * time.Second
}
