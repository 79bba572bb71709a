package ui

import (
	"fmt"
	"strings"
	"time"

	"shellpanel/internal/session"
)

// renderList renders the tabbed session list screen.
func (m Model) renderList() string {
	styles := m.theme.Styles()
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderTabBar())
	b.WriteString("\n")

	tab := m.activeTab()
	rows := m.listRows()
	total := len(tab.Sessions)

	if total == 0 {
		for i := 0; i < rows; i++ {
			if i == 0 {
				b.WriteString(styles.MutedText.Render("No sessions"))
			}
			b.WriteString("\n")
		}
	} else {
		start, count := window(total, m.nav.selected, rows)
		for i := 0; i < count; i++ {
			idx := start + i
			b.WriteString(m.renderRow(tab.Sessions[idx], idx == m.nav.selected))
			b.WriteString("\n")
		}
		for i := count; i < rows; i++ {
			b.WriteString("\n")
		}
	}

	b.WriteString(m.renderFooter())
	return b.String()
}

// renderHeader renders the top status line.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()

	parts := []string{styles.AccentText.Bold(true).Render("SHELL PANEL")}

	if m.snapshot.IsOffline() {
		parts = append(parts, styles.StatusStyle("failed").Render("supervisor offline"))
	} else if !m.snapshot.LastUpdated.IsZero() {
		age := humanizeDuration(time.Since(m.snapshot.LastUpdated))
		parts = append(parts, styles.FaintText.Render(fmt.Sprintf("updated %s ago", age)))
	}

	if n := len(m.snapshot.Sessions); n > 0 {
		parts = append(parts, styles.MutedText.Render(fmt.Sprintf("%d sessions", n)))
	}

	return truncate(strings.Join(parts, "  ·  "), max(m.width, 0))
}

// renderTabBar renders the tab strip, active tab bracketed the way the
// original panel drew it.
func (m Model) renderTabBar() string {
	styles := m.theme.Styles()

	labels := make([]string, 0, len(m.tabs))
	for i, tab := range m.tabs {
		label := fmt.Sprintf("%s (%d)", strings.ToLower(tab.Name), len(tab.Sessions))
		if i == m.nav.tab {
			label = fmt.Sprintf("[%s (%d)]", tab.Name, len(tab.Sessions))
			labels = append(labels, styles.AccentText.Bold(true).Render(label))
			continue
		}
		labels = append(labels, styles.MutedText.Render(label))
	}
	sep := styles.FaintText.Render(" - ")
	return truncate(strings.Join(labels, sep), max(m.width, 0))
}

// renderRow renders one session line: id, label, one-line info.
func (m Model) renderRow(sess session.Session, selected bool) string {
	styles := m.theme.Styles()
	width := max(m.width, 0)

	body := fmt.Sprintf("%s %s %s", padRight(sess.ID, 8), padRight(sess.Label, 20), sess.Info)
	if selected {
		return styles.Selected.Render(padRight("> "+body, width))
	}

	idPart := styles.StatusStyle(string(sess.Status)).Render(padRight(sess.ID, 8))
	rest := styles.Text.Render(truncate(fmt.Sprintf(" %s %s", padRight(sess.Label, 20), sess.Info), max(width-10, 0)))
	return "  " + idPart + rest
}

// renderFooter renders the controls hint, with any transient status
// message in front of it.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()

	controls := "←/→ tabs · ↑/↓ select · Enter details · K kill · d diagnostics · r resume · Ctrl+R background · ? help · q/Esc exit"
	if m.statusMsg != "" {
		return truncate(styles.MutedText.Render(m.statusMsg)+"  "+styles.FaintText.Render(controls), max(m.width, 0))
	}
	return styles.FaintText.Render(truncate(controls, max(m.width, 0)))
}
