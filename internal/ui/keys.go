package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit   key.Binding
	Help   key.Binding
	Escape key.Binding

	// Tab switching
	Tab         key.Binding
	ShiftTab    key.Binding
	TabProfile  key.Binding
	TabFriends  key.Binding
	TabRequests key.Binding

	// Selection
	Up   key.Binding
	Down key.Binding

	// Actions
	Open   key.Binding
	Add    key.Binding
	Delete key.Binding
	Reject key.Binding
	Sort   key.Binding
	CopyID key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Back / close"),
		),

		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Next tab"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "Previous tab"),
		),
		TabProfile: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "Profile"),
		),
		TabFriends: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "Friends"),
		),
		TabRequests: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "Requests"),
		),

		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("j/down", "Move down"),
		),

		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Open friend / accept request"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "Add gift / add friend / accept"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "Delete selected"),
		),
		Reject: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Reject request"),
		),
		Sort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "Cycle sort order"),
		),
		CopyID: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Copy your ID"),
		),
	}
}
