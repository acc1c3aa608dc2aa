package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the TUI.
type KeyMap struct {
	// Navigation
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding // Previous column
	Right key.Binding // Next column

	// Job management
	New        key.Binding // Add job to the focused column
	EditDesc   key.Binding // Edit description
	EditClient key.Binding // Edit client
	EditTeam   key.Binding // Edit team
	Pick       key.Binding // Pick up job to move it
	Drop       key.Binding // Drop carried job on target column
	Delete     key.Binding // Remove job

	// Input
	Submit    key.Binding // Submit form / commit edit
	NextField key.Binding
	PrevField key.Binding
	Newline   key.Binding // Line break in multi-line fields

	// General
	Help    key.Binding
	Logout  key.Binding
	Quit    key.Binding
	Escape  key.Binding // Cancel/back
	Confirm key.Binding // Confirm action (in confirm mode)
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev column"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next column"),
		),
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new job"),
		),
		EditDesc: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit description"),
		),
		EditClient: key.NewBinding(
			key.WithKeys("E"),
			key.WithHelp("E", "edit client"),
		),
		EditTeam: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "edit team"),
		),
		Pick: key.NewBinding(
			key.WithKeys("m", " "),
			key.WithHelp("m/space", "move"),
		),
		Drop: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "drop"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "save"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev field"),
		),
		Newline: key.NewBinding(
			key.WithKeys("alt+enter", "ctrl+j"),
			key.WithHelp("alt+enter", "new line"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Logout: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "logout"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("y", "confirm"),
		),
	}
}

// ShortHelp returns keybindings to show in the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Up, k.Down, k.New, k.EditDesc, k.Pick, k.Delete, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},               // Navigation
		{k.New, k.EditDesc, k.EditClient, k.EditTeam}, // Job fields
		{k.Pick, k.Drop, k.Delete},                    // Board
		{k.Submit, k.Newline, k.NextField, k.Escape},  // Input
		{k.Help, k.Logout, k.Quit},                    // General
	}
}

// dragHelp returns the bindings shown while a job is carried.
func (k KeyMap) dragHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Drop, k.Escape}
}

// inputHelp returns the bindings shown while a form or edit is open.
func (k KeyMap) inputHelp(multiline bool) []key.Binding {
	if multiline {
		return []key.Binding{k.Submit, k.Newline, k.NextField, k.Escape}
	}
	return []key.Binding{k.Submit, k.NextField, k.Escape}
}
