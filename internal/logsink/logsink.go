// Package logsink persists session logs outside the panel. The detail
// view's copy actions hand the full log to a Sink and surface the returned
// destination (or error) as a transient status message.
package logsink

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
)

// Sink receives a session's full log. It returns a human-readable
// destination for the status line.
type Sink interface {
	Persist(id string, lines []string) (string, error)
}

// FileSink writes logs to <Dir>/<id>.log.
type FileSink struct {
	Dir string
}

// Persist writes the joined lines, creating the export directory as needed.
func (s FileSink) Persist(id string, lines []string) (string, error) {
	if strings.TrimSpace(id) == "" {
		return "", fmt.Errorf("session id required")
	}
	if strings.TrimSpace(s.Dir) == "" {
		return "", fmt.Errorf("export dir not configured")
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(s.Dir, sanitize(id)+".log")
	content := strings.Join(lines, "\n")
	if len(lines) > 0 {
		content += "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write log: %w", err)
	}
	return path, nil
}

// ClipboardSink copies logs to the system clipboard.
type ClipboardSink struct{}

// Persist writes the joined lines to the clipboard.
func (ClipboardSink) Persist(id string, lines []string) (string, error) {
	if err := clipboard.WriteAll(strings.Join(lines, "\n")); err != nil {
		return "", fmt.Errorf("copy to clipboard: %w", err)
	}
	return "clipboard", nil
}

// Nop discards logs. Used when no sink is wired, e.g. in tests.
type Nop struct{}

// Persist reports a discard destination without side effects.
func (Nop) Persist(id string, lines []string) (string, error) {
	return "discarded", nil
}

// sanitize keeps ids safe to use as file names.
func sanitize(id string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-' || r == '_' || r == '.':
			return r
		default:
			return '_'
		}
	}, id)
}
