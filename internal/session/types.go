package session

import "time"

const clockLayout = "15:04:05"

// Status describes a session's lifecycle state.
type Status string

const (
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Mode describes where a session runs relative to the agent loop.
type Mode string

const (
	ModeForeground Mode = "foreground"
	ModeBackground Mode = "background"
)

// ListResponse mirrors /api/sessions.
type ListResponse struct {
	Sessions []Session `json:"sessions"`
}

// Session describes one supervised shell session in transport-friendly form.
// Log carries the lines captured so far; the panel treats them as immutable.
type Session struct {
	ID         string   `json:"id"`
	Label      string   `json:"label"`
	Info       string   `json:"info"`
	Status     Status   `json:"status"`
	Mode       Mode     `json:"mode"`
	PID        int      `json:"pid,omitempty"`
	EndedBy    string   `json:"endedBy,omitempty"`
	PromotedBy string   `json:"promotedBy,omitempty"`
	StartedAt  string   `json:"startedAt"`
	FinishedAt string   `json:"finishedAt,omitempty"`
	Summary    string   `json:"summary,omitempty"`
	Log        []string `json:"log"`
}

// Terminal reports whether the session has finished, successfully or not.
func (s Session) Terminal() bool {
	return s.Status == StatusCompleted || s.Status == StatusFailed
}

// ParsedStartedAt returns the parsed StartedAt timestamp.
func (s Session) ParsedStartedAt() time.Time {
	return parseTime(s.StartedAt)
}

// ParsedFinishedAt returns the parsed FinishedAt timestamp.
func (s Session) ParsedFinishedAt() time.Time {
	return parseTime(s.FinishedAt)
}

func parseTime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	// The supervisor emits bare wall-clock times for same-day sessions.
	if t, err := time.ParseInLocation(clockLayout, value, time.Local); err == nil {
		return t
	}
	return time.Time{}
}
