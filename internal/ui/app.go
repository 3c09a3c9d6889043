package ui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/boxcast/boxcast-go/boxcast"
	"github.com/boxcast/boxcast-go/internal/config"
	"github.com/boxcast/boxcast-go/internal/logtail"
	"github.com/boxcast/boxcast-go/internal/prefs"
	"github.com/boxcast/boxcast-go/internal/state"
)

// View represents the current active view.
type View int

const (
	ViewBroadcasts View = iota
	ViewLogs
)

// Tab selects which broadcast list is shown.
type Tab int

const (
	TabLive Tab = iota
	TabArchived
)

func (t Tab) String() string {
	if t == TabArchived {
		return prefs.TabArchived
	}
	return prefs.TabLive
}

func tabFromPref(value string) Tab {
	if value == prefs.TabArchived {
		return TabArchived
	}
	return TabLive
}

const (
	viewFetchTimeout = 10 * time.Second
	logLines         = 500
)

// Client is the part of the BoxCast client the UI calls directly. Lists come
// from the store, which the poller keeps current.
type Client interface {
	GetBroadcastView(ctx context.Context, broadcastID string) (boxcast.BroadcastView, error)
	GetRenditions(ctx context.Context, view boxcast.BroadcastView) ([]boxcast.Rendition, error)
}

// Options configures the UI.
type Options struct {
	Context   context.Context
	Client    Client
	Store     *state.Store
	Config    *config.Config
	PollTick  time.Duration
	ThemeName string
	Tab       string
	PrefsPath string
}

// viewState tracks the playback view lookup for one broadcast.
type viewState struct {
	loading       bool
	view          boxcast.BroadcastView
	renditions    []boxcast.Rendition
	err           error
	renditionsErr error
	fetchedAt     time.Time
}

// Model is the root application state for Bubble Tea.
type Model struct {
	ctx       context.Context
	client    Client
	store     *state.Store
	config    *config.Config
	prefsPath string
	pollTick  time.Duration
	keys      keyMap
	now       func() time.Time

	theme       Theme
	currentView View
	tab         Tab
	width       int
	height      int
	ready       bool
	focusedPane int // 0 = table, 1 = detail
	showHelp    bool

	snapshot    state.Snapshot
	lastUpdated time.Time

	table          table.Model
	detailViewport viewport.Model
	logViewport    viewport.Model
	logEntries     []logtail.Entry
	logErr         error

	views map[string]*viewState
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	pollTick := opts.PollTick
	if pollTick <= 0 {
		pollTick = time.Second
	}
	// The store is local, so the UI can re-read it more often than the poller writes.
	if pollTick > time.Second {
		pollTick = time.Second
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	theme := GetTheme(opts.ThemeName)
	t := table.New(
		table.WithColumns(broadcastColumns(80)),
		table.WithFocused(true),
	)
	t.SetStyles(theme.TableStyles())

	return Model{
		ctx:         ctx,
		client:      opts.Client,
		store:       opts.Store,
		config:      opts.Config,
		prefsPath:   prefsPath,
		pollTick:    pollTick,
		keys:        defaultKeyMap(),
		now:         time.Now,
		theme:       theme,
		currentView: ViewBroadcasts,
		tab:         tabFromPref(opts.Tab),
		table:       t,
		views:       make(map[string]*viewState),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(m.pollTick)}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
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
		if !m.ready {
			m.detailViewport = viewport.New(0, 0)
			m.logViewport = viewport.New(0, 0)
		}
		m.ready = true
		m.layout()
		m.updateTable()
		m.updateDetailViewport()
		m.updateLogViewport()
		return m, nil

	case tickMsg:
		return m.handleTick()

	case snapshotMsg:
		m.snapshot = state.Snapshot(msg)
		m.lastUpdated = m.now()
		m.updateTable()
		m.updateDetailViewport()
		return m, nil

	case viewMsg:
		m.views[msg.id] = &viewState{
			view:          msg.view,
			renditions:    msg.renditions,
			err:           msg.err,
			renditionsErr: msg.renditionsErr,
			fetchedAt:     m.now(),
		}
		m.updateTable()
		m.updateDetailViewport()
		return m, nil

	case logsMsg:
		m.logEntries = msg.entries
		m.logErr = msg.err
		m.updateLogViewport()
		return m, nil
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

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.table.SetStyles(m.theme.TableStyles())
		m.savePrefs()
		m.updateDetailViewport()
		m.updateLogViewport()
		return m, nil

	case key.Matches(msg, m.keys.Logs):
		if m.currentView == ViewLogs {
			m.currentView = ViewBroadcasts
			return m, nil
		}
		m.currentView = ViewLogs
		return m, m.readLogs()

	case key.Matches(msg, m.keys.Broadcasts):
		m.currentView = ViewBroadcasts
		return m, nil
	}

	if m.currentView == ViewLogs {
		var cmd tea.Cmd
		m.logViewport, cmd = m.logViewport.Update(msg)
		return m, cmd
	}
	return m.handleBroadcastsKey(msg)
}

func (m Model) handleBroadcastsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.SwitchTab):
		if m.tab == TabLive {
			m.tab = TabArchived
		} else {
			m.tab = TabLive
		}
		m.table.SetCursor(0)
		m.savePrefs()
		m.updateTable()
		m.updateDetailViewport()
		return m, nil

	case key.Matches(msg, m.keys.FocusPane):
		m.toggleFocus()
		return m, nil

	case key.Matches(msg, m.keys.LoadView), key.Matches(msg, m.keys.Refresh):
		return m, m.loadSelectedView()
	}

	var cmd tea.Cmd
	if m.focusedPane == 0 {
		before := m.table.Cursor()
		m.table, cmd = m.table.Update(msg)
		if m.table.Cursor() != before {
			m.updateDetailViewport()
		}
		return m, cmd
	}
	m.detailViewport, cmd = m.detailViewport.Update(msg)
	return m, cmd
}

func (m *Model) toggleFocus() {
	if m.focusedPane == 0 {
		m.focusedPane = 1
		m.table.Blur()
		return
	}
	m.focusedPane = 0
	m.table.Focus()
}

// loadSelectedView marks the selected broadcast as loading and returns the fetch command.
func (m *Model) loadSelectedView() tea.Cmd {
	b, ok := m.selectedBroadcast()
	if !ok || m.client == nil {
		return nil
	}
	vs := m.views[b.ID]
	if vs != nil && vs.loading {
		return nil
	}
	m.views[b.ID] = &viewState{loading: true}
	m.updateDetailViewport()
	return fetchViewCmd(m.ctx, m.client, b.ID)
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	if m.currentView == ViewLogs {
		if cmd := m.readLogs(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	cmds = append(cmds, tickCmd(m.pollTick))
	return m, tea.Batch(cmds...)
}

func (m Model) currentList() boxcast.BroadcastList {
	if m.tab == TabArchived {
		return m.snapshot.Archived
	}
	return m.snapshot.Live
}

func (m Model) selectedBroadcast() (boxcast.Broadcast, bool) {
	list := m.currentList()
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(list) {
		return boxcast.Broadcast{}, false
	}
	return list[idx], true
}

func (m Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name, Tab: m.tab.String()})
}

func (m Model) readLogs() tea.Cmd {
	if m.config == nil || m.config.LogFile == "" {
		return nil
	}
	return readLogsCmd(m.config.LogFile)
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

type viewMsg struct {
	id            string
	view          boxcast.BroadcastView
	renditions    []boxcast.Rendition
	err           error
	renditionsErr error
}

type logsMsg struct {
	entries []logtail.Entry
	err     error
}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

func fetchViewCmd(parent context.Context, client Client, broadcastID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(parent, viewFetchTimeout)
		defer cancel()

		view, err := client.GetBroadcastView(ctx, broadcastID)
		if err != nil {
			return viewMsg{id: broadcastID, err: err}
		}
		renditions, rerr := client.GetRenditions(ctx, view)
		return viewMsg{id: broadcastID, view: view, renditions: renditions, renditionsErr: rerr}
	}
}

func readLogsCmd(path string) tea.Cmd {
	return func() tea.Msg {
		entries, err := logtail.Read(path, logLines)
		return logsMsg{entries: entries, err: err}
	}
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	if opts.Store == nil {
		return errors.New("ui requires a data store")
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
