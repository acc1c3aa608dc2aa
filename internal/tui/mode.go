// Package tui provides the terminal dashboard for the dispatch board.
package tui

// Mode represents the current UI mode.
type Mode int

const (
	ModeLogin   Mode = iota // Sign-in screen
	ModeNormal              // Board navigation mode
	ModeAdd                 // New job form
	ModeEdit                // Inline edit of one field
	ModeDrag                // Carrying a job to another column
	ModeConfirm             // Confirmation dialog mode
	ModeHelp                // Help overlay mode
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeLogin:
		return "login"
	case ModeNormal:
		return "normal"
	case ModeAdd:
		return "add"
	case ModeEdit:
		return "edit"
	case ModeDrag:
		return "drag"
	case ModeConfirm:
		return "confirm"
	case ModeHelp:
		return "help"
	default:
		return "unknown"
	}
}

// IsInputMode returns true if the mode accepts text input.
func (m Mode) IsInputMode() bool {
	switch m {
	case ModeLogin, ModeAdd, ModeEdit:
		return true
	case ModeNormal, ModeDrag, ModeConfirm, ModeHelp:
		return false
	}
	return false
}

// ConfirmAction represents the type of action requiring confirmation.
type ConfirmAction int

const (
	ConfirmNone   ConfirmAction = iota
	ConfirmDelete               // Remove job
)

// String returns a human-readable description of the action.
func (a ConfirmAction) String() string {
	switch a {
	case ConfirmNone:
		return ""
	case ConfirmDelete:
		return "delete"
	}
	return ""
}

// FormField identifies the focused input of the new job form.
type FormField int

const (
	FormClient FormField = iota
	FormDescription
	FormTeam
)

const formFieldCount = 3

// Next returns the following field, wrapping around.
func (f FormField) Next() FormField {
	return (f + 1) % formFieldCount
}

// Prev returns the preceding field, wrapping around.
func (f FormField) Prev() FormField {
	return (f + formFieldCount - 1) % formFieldCount
}

// String returns the job field name the form field fills.
func (f FormField) String() string {
	switch f {
	case FormClient:
		return "client"
	case FormDescription:
		return "description"
	case FormTeam:
		return "team"
	}
	return ""
}
