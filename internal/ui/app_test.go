package ui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"shellpanel/internal/session"
	"shellpanel/internal/state"
)

type fakeSource struct {
	snap state.Snapshot
}

func (f *fakeSource) Snapshot() state.Snapshot { return f.snap }

type fakeController struct {
	calls []string
}

func (f *fakeController) Kill(ctx context.Context, id string) error {
	f.calls = append(f.calls, "kill:"+id)
	return nil
}

func (f *fakeController) Resume(ctx context.Context, id string) error {
	f.calls = append(f.calls, "resume:"+id)
	return nil
}

func (f *fakeController) Promote(ctx context.Context, id string) error {
	f.calls = append(f.calls, "promote:"+id)
	return nil
}

func (f *fakeController) Diagnostics(ctx context.Context, id string) error {
	f.calls = append(f.calls, "diagnostics:"+id)
	return nil
}

func keyRunes(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func testSessions() []session.Session {
	return []session.Session{
		{ID: "run-1", Label: "build", Status: session.StatusRunning, Log: []string{"a", "b"}},
		{ID: "run-2", Label: "watch", Status: session.StatusRunning},
		{ID: "done-1", Label: "lint", Status: session.StatusCompleted},
		{ID: "fail-1", Label: "deploy", Status: session.StatusFailed},
	}
}

func testModel(t *testing.T, ctrl session.Controller) Model {
	t.Helper()
	m := New(Options{
		Source:    &fakeSource{},
		Control:   ctrl,
		PrefsPath: t.TempDir() + "/prefs.toml",
	})

	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = next.(Model)

	next, _ = m.Update(snapshotMsg(state.Snapshot{
		Sessions:    testSessions(),
		LastUpdated: time.Now(),
	}))
	return next.(Model)
}

func TestModelTabNavigation(t *testing.T) {
	m := testModel(t, nil)

	if got := m.activeTab().Name; got != state.TabRunning {
		t.Fatalf("initial tab = %q, want %q", got, state.TabRunning)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(Model)
	if got := m.activeTab().Name; got != state.TabCompleted {
		t.Fatalf("after right: tab = %q, want %q", got, state.TabCompleted)
	}

	// Moving from a two-entry tab to a one-entry tab re-clamps the cursor.
	m.nav.selected = 1
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(Model)
	if got := m.activeTab().Name; got != state.TabFailed {
		t.Fatalf("after second right: tab = %q", got)
	}
	if m.nav.selected != 0 {
		t.Fatalf("selection not re-clamped: %d", m.nav.selected)
	}

	// Left from the first tab wraps to the last.
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(Model)
	if got := m.activeTab().Name; got != state.TabRunning {
		t.Fatalf("tabs did not wrap: %q", got)
	}
}

func TestModelOpenAndDismissDetail(t *testing.T) {
	m := testModel(t, nil)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	if m.detail == nil {
		t.Fatal("enter did not open detail")
	}
	if m.detail.id != "run-1" {
		t.Fatalf("detail opened on %q, want run-1", m.detail.id)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)
	if m.detail != nil {
		t.Fatal("esc did not dismiss detail")
	}
}

func TestModelEnterOnEmptyTab(t *testing.T) {
	m := New(Options{Source: &fakeSource{}})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = next.(Model)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	if m.detail != nil {
		t.Fatal("enter on empty tab opened a detail view")
	}
}

func TestModelActionDispatch(t *testing.T) {
	ctrl := &fakeController{}
	m := testModel(t, ctrl)

	_, cmd := m.Update(keyRunes('K'))
	if cmd == nil {
		t.Fatal("kill key produced no command")
	}
	if msg := cmd(); msg.(actionResultMsg).err != nil {
		t.Fatalf("kill action failed: %v", msg.(actionResultMsg).err)
	}
	if len(ctrl.calls) != 1 || ctrl.calls[0] != "kill:run-1" {
		t.Fatalf("controller calls = %v", ctrl.calls)
	}

	// Diagnostics from inside the detail view targets the viewed session.
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	_, cmd = m.Update(keyRunes('d'))
	if cmd == nil {
		t.Fatal("diagnostics key produced no command")
	}
	cmd()
	if last := ctrl.calls[len(ctrl.calls)-1]; last != "diagnostics:run-1" {
		t.Fatalf("controller calls = %v", ctrl.calls)
	}
}

func TestModelActionWithoutController(t *testing.T) {
	m := testModel(t, nil)
	if _, cmd := m.Update(keyRunes('K')); cmd != nil {
		t.Fatal("kill without controller produced a command")
	}
}

func TestModelSnapshotReclampsDetail(t *testing.T) {
	m := testModel(t, nil)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	if m.detail == nil {
		t.Fatal("enter did not open detail")
	}

	// The viewed session fails on the next poll; the detail follows it.
	next, _ = m.Update(snapshotMsg(state.Snapshot{
		Sessions: []session.Session{
			{ID: "run-1", Label: "build", Status: session.StatusFailed, Log: []string{"a"}},
		},
		LastUpdated: time.Now(),
	}))
	m = next.(Model)
	if m.detail.sess.Status != session.StatusFailed {
		t.Fatalf("detail status = %q, want failed", m.detail.sess.Status)
	}
}

func TestModelStatusMessageClearsOnKeypress(t *testing.T) {
	m := testModel(t, nil)

	next, _ := m.Update(actionResultMsg{verb: "kill", id: "run-1", err: context.DeadlineExceeded})
	m = next.(Model)
	if m.statusMsg == "" {
		t.Fatal("failed action did not set a status message")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(Model)
	if m.statusMsg != "" {
		t.Fatalf("status message survived a keypress: %q", m.statusMsg)
	}
}

func TestModelHelpOverlay(t *testing.T) {
	m := testModel(t, nil)

	next, _ := m.Update(keyRunes('?'))
	m = next.(Model)
	if !m.showHelp {
		t.Fatal("? did not open help")
	}

	next, _ = m.Update(keyRunes('x'))
	m = next.(Model)
	if m.showHelp {
		t.Fatal("keypress did not close help")
	}
}

func TestModelViewSmoke(t *testing.T) {
	m := testModel(t, nil)

	if out := m.View(); out == "" {
		t.Fatal("list view rendered empty")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	if out := m.View(); out == "" {
		t.Fatal("detail view rendered empty")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)
	next, _ = m.Update(keyRunes('?'))
	m = next.(Model)
	if out := m.View(); out == "" {
		t.Fatal("help view rendered empty")
	}
}
