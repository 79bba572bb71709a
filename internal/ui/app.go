package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"shellpanel/internal/logsink"
	"shellpanel/internal/prefs"
	"shellpanel/internal/session"
	"shellpanel/internal/state"
)

// SnapshotSource supplies the latest session snapshot. Implemented by
// *state.Store; tests supply canned snapshots.
type SnapshotSource interface {
	Snapshot() state.Snapshot
}

// Options configures the UI.
type Options struct {
	Context       context.Context
	Source        SnapshotSource
	Control       session.Controller
	FileSink      logsink.Sink
	ClipboardSink logsink.Sink
	PollTick      time.Duration
	ThemeName     string
	PrefsPath     string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	source    SnapshotSource
	control   session.Controller
	fileSink  logsink.Sink
	clipSink  logsink.Sink
	prefsPath string
	pollTick  time.Duration

	// UI state
	keys   keyMap
	theme  Theme
	width  int
	height int
	ready  bool

	// Data state
	snapshot state.Snapshot
	tabs     []state.Tab

	// Navigation state
	nav       nav
	detail    *detailView
	statusMsg string
	showHelp  bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	pollTick := opts.PollTick
	if pollTick == 0 {
		pollTick = time.Second
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Nightfox"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	m := Model{
		ctx:       ctx,
		source:    opts.Source,
		control:   opts.Control,
		fileSink:  opts.FileSink,
		clipSink:  opts.ClipboardSink,
		prefsPath: prefsPath,
		pollTick:  pollTick,
		keys:      DefaultKeyMap(),
		theme:     GetTheme(themeName),
	}
	m.tabs = m.snapshot.Tabs()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		tickCmd(m.pollTick),
	}
	// Fetch snapshot immediately on start
	if m.source != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.source))
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
		m.reclamp()
		return m, nil

	case tickMsg:
		var cmds []tea.Cmd
		if m.source != nil {
			cmds = append(cmds, fetchSnapshotCmd(m.source))
		}
		cmds = append(cmds, tickCmd(m.pollTick))
		return m, tea.Batch(cmds...)

	case snapshotMsg:
		m.applySnapshot(state.Snapshot(msg))
		return m, nil

	case actionResultMsg:
		if msg.err != nil {
			m.statusMsg = fmt.Sprintf("%s %s failed: %v", msg.verb, msg.id, msg.err)
		}
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
	if m.detail != nil {
		return m.renderDetail()
	}
	return m.renderList()
}

// handleKey processes keyboard input. Unrecognized keys are ignored.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// ctrl+c always quits, even from overlays.
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	// Status messages are transient: any keypress clears them.
	m.statusMsg = ""

	if m.detail != nil {
		return m.handleDetailKey(msg)
	}
	return m.handleListKey(msg)
}

// handleListKey processes keyboard input for the tabbed list screen.
func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys
	switch {
	case key.Matches(msg, keys.Quit), key.Matches(msg, keys.Back):
		return m, tea.Quit

	case key.Matches(msg, keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		if m.prefsPath != "" {
			_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name})
		}
		return m, nil

	case key.Matches(msg, keys.NextTab):
		m.nav.nextTab(len(m.tabs))
		m.reclamp()
		return m, nil

	case key.Matches(msg, keys.PrevTab):
		m.nav.prevTab(len(m.tabs))
		m.reclamp()
		return m, nil

	case key.Matches(msg, keys.Up):
		m.nav.moveUp()
		return m, nil

	case key.Matches(msg, keys.Down):
		m.nav.moveDown(len(m.activeTab().Sessions))
		return m, nil

	case key.Matches(msg, keys.Open):
		if sess, ok := m.selectedSession(); ok {
			m.detail = openDetail(sess)
		}
		return m, nil

	case key.Matches(msg, keys.Kill):
		return m, m.forwardAction(actionKill)

	case key.Matches(msg, keys.Resume):
		return m, m.forwardAction(actionResume)

	case key.Matches(msg, keys.Promote):
		return m, m.forwardAction(actionPromote)

	case key.Matches(msg, keys.Diagnostics):
		return m, m.forwardAction(actionDiagnostics)
	}

	return m, nil
}

// handleDetailKey processes keyboard input for the modal detail screen.
func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys
	d := m.detail
	switch {
	case key.Matches(msg, keys.Quit), key.Matches(msg, keys.Back), key.Matches(msg, keys.Open):
		m.detail = nil
		return m, nil

	case key.Matches(msg, keys.Up):
		d.scrollUp()
		return m, nil

	case key.Matches(msg, keys.Down):
		d.scrollDown(m.detailLogRows(len(d.metadataLines())))
		return m, nil

	case key.Matches(msg, keys.CopyFile):
		d.copyLog(m.fileSink)
		return m, nil

	case key.Matches(msg, keys.CopyClipboard):
		d.copyLog(m.clipSink)
		return m, nil

	case key.Matches(msg, keys.Diagnostics):
		return m, m.forwardActionFor(d.id, actionDiagnostics)
	}

	return m, nil
}

// applySnapshot installs a fresh poll result and re-derives every clamped
// index. Entry counts may have changed since the last render; nothing here
// assumes a previously valid index still is.
func (m *Model) applySnapshot(snap state.Snapshot) {
	m.snapshot = snap
	m.tabs = snap.Tabs()
	m.reclamp()
	if m.detail != nil {
		rows := m.detailLogRows(len(m.detail.metadataLines()))
		m.detail.refresh(snap.Sessions, rows)
	}
}

// reclamp forces navigation state back into the bounds of the current tabs.
func (m *Model) reclamp() {
	if len(m.tabs) == 0 {
		m.nav = nav{}
		return
	}
	m.nav.tab = clamp(m.nav.tab, 0, len(m.tabs)-1)
	m.nav.clampTo(len(m.activeTab().Sessions))
}

// activeTab returns the tab the navigation state points at.
func (m Model) activeTab() state.Tab {
	if len(m.tabs) == 0 {
		return state.Tab{}
	}
	return m.tabs[clamp(m.nav.tab, 0, len(m.tabs)-1)]
}

// selectedSession returns the currently selected session, if any.
func (m Model) selectedSession() (session.Session, bool) {
	tab := m.activeTab()
	if len(tab.Sessions) == 0 {
		return session.Session{}, false
	}
	idx := clamp(m.nav.selected, 0, len(tab.Sessions)-1)
	return tab.Sessions[idx], true
}

// listRows returns the row budget for the session list: total height minus
// header, tab bar, spacer and controls lines.
func (m Model) listRows() int {
	return max(m.height-4, 0)
}

// Process-control actions

const (
	actionKill        = "kill"
	actionResume      = "resume"
	actionPromote     = "promote"
	actionDiagnostics = "diagnostics"
)

// forwardAction sends a control command for the selected session. Without
// a controller or a selection this is a no-op.
func (m Model) forwardAction(verb string) tea.Cmd {
	sess, ok := m.selectedSession()
	if !ok {
		return nil
	}
	return m.forwardActionFor(sess.ID, verb)
}

func (m Model) forwardActionFor(id, verb string) tea.Cmd {
	if m.control == nil {
		return nil
	}
	ctrl := m.control
	base := m.ctx
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(base, actionTimeout)
		defer cancel()

		var err error
		switch verb {
		case actionKill:
			err = ctrl.Kill(ctx, id)
		case actionResume:
			err = ctrl.Resume(ctx, id)
		case actionPromote:
			err = ctrl.Promote(ctx, id)
		case actionDiagnostics:
			err = ctrl.Diagnostics(ctx, id)
		}
		return actionResultMsg{verb: verb, id: id, err: err}
	}
}

const actionTimeout = 5 * time.Second

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

type actionResultMsg struct {
	verb string
	id   string
	err  error
}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(source SnapshotSource) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(source.Snapshot())
	}
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
