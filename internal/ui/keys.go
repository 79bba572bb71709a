package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the panel.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Back       key.Binding

	// Tabs
	NextTab key.Binding
	PrevTab key.Binding

	// Selection / scrolling
	Up   key.Binding
	Down key.Binding

	// Detail
	Open          key.Binding
	CopyFile      key.Binding
	CopyClipboard key.Binding

	// Process control
	Kill        key.Binding
	Resume      key.Binding
	Promote     key.Binding
	Diagnostics key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Back / quit"),
		),

		NextTab: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "Next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "Previous tab"),
		),

		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "Move up / scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "Move down / scroll down"),
		),

		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Open detail / dismiss"),
		),
		CopyFile: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Copy log to file"),
		),
		CopyClipboard: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "Copy log to clipboard"),
		),

		Kill: key.NewBinding(
			key.WithKeys("K"),
			key.WithHelp("K", "Kill session"),
		),
		Resume: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Resume session"),
		),
		Promote: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "Move to background"),
		),
		Diagnostics: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "Collect diagnostics"),
		),
	}
}
