package ui

import (
	"fmt"
	"strings"

	"shellpanel/internal/logsink"
	"shellpanel/internal/session"
)

// detailView is the modal drill-down over one session. It exists only
// while open; dismissing discards it, so reopening always starts at the
// top of the log.
type detailView struct {
	id     string
	sess   session.Session
	offset int // first visible log line
	status string
}

func openDetail(sess session.Session) *detailView {
	return &detailView{id: sess.ID, sess: sess}
}

// scrollUp moves the log window one line toward the start.
func (d *detailView) scrollUp() {
	if d.offset > 0 {
		d.offset--
	}
}

// scrollDown moves the log window one line toward the end, clamped so the
// last page stays full.
func (d *detailView) scrollDown(rows int) {
	d.offset = clamp(d.offset+1, 0, maxScroll(len(d.sess.Log), rows))
}

// refresh re-resolves the viewed session from a fresh snapshot. A session
// that vanished keeps its last-known data; a log that shrank pulls the
// offset back into range.
func (d *detailView) refresh(sessions []session.Session, rows int) {
	for _, sess := range sessions {
		if sess.ID == d.id {
			d.sess = sess
			break
		}
	}
	d.offset = clamp(d.offset, 0, maxScroll(len(d.sess.Log), rows))
}

// copyLog persists the full log through the sink and records the outcome
// as a transient status message. The scroll position is untouched.
func (d *detailView) copyLog(sink logsink.Sink) {
	if sink == nil {
		return
	}
	dest, err := sink.Persist(d.id, d.sess.Log)
	if err != nil {
		d.status = "Copy failed: " + err.Error()
		return
	}
	d.status = "Log copied to " + dest
}

// metadataLines builds the header block shown above the log.
func (d *detailView) metadataLines() []string {
	sess := d.sess

	started := sess.StartedAt
	if started == "" {
		started = "-"
	}
	lines := []string{
		fmt.Sprintf("Status: %s", sess.Status),
		fmt.Sprintf("Started: %s", started),
	}
	if sess.Mode != "" {
		lines = append(lines, fmt.Sprintf("Mode: %s", sess.Mode))
	}
	if sess.Terminal() {
		finished := sess.FinishedAt
		if finished == "" {
			finished = "-"
		}
		endedBy := sess.EndedBy
		if endedBy == "" {
			endedBy = "agent"
		}
		lines = append(lines,
			fmt.Sprintf("Finished: %s", finished),
			fmt.Sprintf("Ended by: %s", endedBy),
		)
	}
	if sess.PromotedBy != "" {
		lines = append(lines, fmt.Sprintf("Promoted by: %s", sess.PromotedBy))
	}
	if sess.PID != 0 {
		lines = append(lines, fmt.Sprintf("PID: %d", sess.PID))
	}
	if sess.Summary != "" {
		lines = append(lines, fmt.Sprintf("Summary: %s", sess.Summary))
	}
	lines = append(lines, "Logs:")
	return lines
}

// renderDetail renders the modal detail screen.
func (m Model) renderDetail() string {
	d := m.detail
	if d == nil {
		return ""
	}
	styles := m.theme.Styles()
	var b strings.Builder

	header := fmt.Sprintf("[PROCESS]: %s (%s)", d.id, d.sess.Label)
	b.WriteString(styles.Text.Bold(true).Render(truncate(header, m.width)))
	b.WriteString("\n")

	meta := d.metadataLines()
	for _, line := range meta {
		b.WriteString(styles.Text.Render(truncate(line, m.width)))
		b.WriteString("\n")
	}

	rule := styles.FaintText.Render(strings.Repeat("─", max(m.width, 1)))
	b.WriteString(rule)
	b.WriteString("\n")

	rows := m.detailLogRows(len(meta))
	start, count := scrollWindow(len(d.sess.Log), d.offset, rows)
	for i := 0; i < count; i++ {
		b.WriteString("  ")
		b.WriteString(styles.Text.Render(truncate(d.sess.Log[start+i], max(m.width-3, 0))))
		b.WriteString("\n")
	}
	for i := count; i < rows; i++ {
		b.WriteString("\n")
	}

	b.WriteString(rule)
	b.WriteString("\n")
	if d.status != "" {
		b.WriteString(styles.MutedText.Render(truncate(d.status, m.width)))
	}
	b.WriteString("\n")

	controls := "↑/↓ scroll · c copy to file · y copy to clipboard · d diagnostics · q/Esc back"
	b.WriteString(styles.FaintText.Render(truncate(controls, m.width)))

	return b.String()
}

// detailLogRows returns the row budget for the log block given the number
// of metadata lines above it.
func (m Model) detailLogRows(metaLines int) int {
	// header + metadata + two rules + status + controls
	return max(m.height-metaLines-5, 0)
}
