// Package ui implements the terminal interface using Bubble Tea.
//
// The interface has three screens. The list screen shows sessions grouped
// into RUNNING, COMPLETED and FAILED tabs with a selection cursor and a
// viewport window that follows it. The detail screen is a modal drill-down
// over one session with a scrollable log and copy actions. The help screen
// is a centered overlay listing every key binding.
//
// The model is single-threaded in the Bubble Tea sense: all state changes
// happen inside Update, driven by key presses, resize events, poll ticks
// and snapshot messages. Process-control actions (kill, resume, promote,
// diagnostics) are fire-and-forget commands whose results come back as
// messages; the visible state catches up through the next poll.
//
// Navigation indices are never trusted across messages. Every snapshot,
// resize and tab switch re-clamps the selection and scroll offsets against
// the current data, so a tab that shrinks or empties under the cursor can
// not produce an out-of-range read.
package ui
