package state

import (
	"fmt"
	"sync"
	"time"

	"shellpanel/internal/session"
)

// Tab names, in display order. The enumeration is stable even when a tab
// holds no sessions.
const (
	TabRunning   = "RUNNING"
	TabCompleted = "COMPLETED"
	TabFailed    = "FAILED"
)

// TabNames returns the fixed tab enumeration in display order.
func TabNames() []string {
	return []string{TabRunning, TabCompleted, TabFailed}
}

// Tab is one lifecycle partition of the session list. Sessions keep the
// order the supervisor reported them in.
type Tab struct {
	Name     string
	Sessions []session.Session
}

// Snapshot represents the latest data available to the UI.
type Snapshot struct {
	Sessions            []session.Session
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int // Number of consecutive poll failures
}

// IsOffline returns true when the supervisor has been unreachable for
// multiple polls.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Tabs partitions the snapshot's sessions into the three fixed tabs.
// A session's tab is a pure function of its status; anything that is not
// terminal counts as running.
func (s Snapshot) Tabs() []Tab {
	tabs := []Tab{{Name: TabRunning}, {Name: TabCompleted}, {Name: TabFailed}}
	for _, sess := range s.Sessions {
		switch sess.Status {
		case session.StatusCompleted:
			tabs[1].Sessions = append(tabs[1].Sessions, sess)
		case session.StatusFailed:
			tabs[2].Sessions = append(tabs[2].Sessions, sess)
		default:
			tabs[0].Sessions = append(tabs[0].Sessions, sess)
		}
	}
	return tabs
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update replaces the stored session list. When err is non-nil the previous
// data is kept but the error is recorded for visibility.
func (s *Store) Update(sessions []session.Session, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.LastUpdated = time.Now()
		s.snapshot.ConsecutiveFailures++
		return
	}

	s.snapshot.Sessions = cloneSessions(sessions)
	s.snapshot.LastError = nil
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.ConsecutiveFailures = 0
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Sessions = cloneSessions(s.snapshot.Sessions)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

// cloneSessions copies the outer slice. Log slices are shared; they are
// append-only on the producer side and never mutated by the panel.
func cloneSessions(sessions []session.Session) []session.Session {
	if len(sessions) == 0 {
		return nil
	}
	dup := make([]session.Session, len(sessions))
	copy(dup, sessions)
	return dup
}
