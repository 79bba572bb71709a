package ui

import (
	"fmt"
	"time"

	"github.com/mattn/go-runewidth"
)

// truncate cuts a string to the given display width, ellipsizing when it
// does not fit. Width-aware so wide runes in labels do not break layout.
func truncate(value string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	return runewidth.Truncate(value, width, "…")
}

// padRight pads a string with spaces to the given display width.
func padRight(value string, width int) string {
	return runewidth.FillRight(truncate(value, width), width)
}

// humanizeDuration renders a duration the way the header shows staleness.
func humanizeDuration(d time.Duration) string {
	switch {
	case d < time.Second:
		return "now"
	case d < time.Minute:
		return fmt.Sprintf("%ds", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	default:
		return fmt.Sprintf("%dh", int(d.Hours()))
	}
}
