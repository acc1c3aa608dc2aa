package tui

import (
	"github.com/bstc-oman/dispatch/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Colors defines the color palette for the TUI.
var Colors = struct {
	// Base colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Muted     lipgloss.Color
	Error     lipgloss.Color
	Success   lipgloss.Color

	// Card text
	TitleNormal   lipgloss.Color
	TitleSelected lipgloss.Color
	DescNormal    lipgloss.Color

	// Stage colors
	Dispatched lipgloss.Color
	Inspection lipgloss.Color
	Repairing  lipgloss.Color
	Completed  lipgloss.Color
}{
	Primary:   lipgloss.Color("#0984E3"), // Blue
	Secondary: lipgloss.Color("#74B9FF"), // Light blue
	Muted:     lipgloss.Color("#636E72"), // Gray
	Error:     lipgloss.Color("#D63031"), // Red
	Success:   lipgloss.Color("#00B894"), // Green

	TitleNormal:   lipgloss.Color("#DFE6E9"), // Light gray
	TitleSelected: lipgloss.Color("#FFEAA7"), // Yellow
	DescNormal:    lipgloss.Color("#B2BEC3"), // Gray

	Dispatched: lipgloss.Color("#74B9FF"), // Light blue
	Inspection: lipgloss.Color("#FDCB6E"), // Yellow
	Repairing:  lipgloss.Color("#E17055"), // Orange
	Completed:  lipgloss.Color("#00B894"), // Green
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	// App
	App lipgloss.Style

	// Header
	HeaderTitle    lipgloss.Style
	HeaderSubtitle lipgloss.Style
	HeaderInfo     lipgloss.Style

	// Stats row
	StatCard  lipgloss.Style
	StatCount lipgloss.Style

	// Board
	Column        lipgloss.Style
	ColumnFocused lipgloss.Style
	ColumnTarget  lipgloss.Style
	ColumnTitle   lipgloss.Style
	Card          lipgloss.Style
	CardSelected  lipgloss.Style
	CardCarried   lipgloss.Style
	CardClient    lipgloss.Style
	CardDesc      lipgloss.Style
	CardMeta      lipgloss.Style
	EmptyColumn   lipgloss.Style
	ColumnCount   lipgloss.Style

	// Dialog
	Dialog       lipgloss.Style
	DialogTitle  lipgloss.Style
	DialogPrompt lipgloss.Style

	// Input
	InputLabel         lipgloss.Style
	InputActive        lipgloss.Style
	Suggestion         lipgloss.Style
	SuggestionSelected lipgloss.Style

	// Status line
	ErrorMsg  lipgloss.Style
	StatusMsg lipgloss.Style

	// Footer
	Footer lipgloss.Style
}

// DefaultStyles returns the default styles for the TUI.
func DefaultStyles() Styles {
	return Styles{
		App: lipgloss.NewStyle().
			Padding(1, 2),

		HeaderTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary),

		HeaderSubtitle: lipgloss.NewStyle().
			Foreground(Colors.DescNormal),

		HeaderInfo: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		StatCard: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Muted).
			Padding(0, 1).
			MarginRight(1),

		StatCount: lipgloss.NewStyle().
			Bold(true),

		Column: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Muted).
			Padding(0, 1),

		ColumnFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Secondary).
			Padding(0, 1),

		ColumnTarget: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(Colors.TitleSelected).
			Padding(0, 1),

		ColumnTitle: lipgloss.NewStyle().
			Bold(true),

		Card: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(Colors.Muted).
			PaddingLeft(1).
			MarginBottom(1),

		CardSelected: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(Colors.TitleSelected).
			PaddingLeft(1).
			MarginBottom(1),

		CardCarried: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(Colors.Muted).
			Foreground(Colors.Muted).
			Faint(true).
			PaddingLeft(1).
			MarginBottom(1),

		CardClient: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.TitleNormal),

		CardDesc: lipgloss.NewStyle().
			Foreground(Colors.DescNormal),

		CardMeta: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		EmptyColumn: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Italic(true),

		ColumnCount: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Primary).
			Padding(1, 2),

		DialogTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary).
			MarginBottom(1),

		DialogPrompt: lipgloss.NewStyle().
			Foreground(Colors.TitleNormal),

		InputLabel: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Width(13),

		InputActive: lipgloss.NewStyle().
			Foreground(Colors.Secondary).
			Bold(true).
			Width(13),

		Suggestion: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			PaddingLeft(13),

		SuggestionSelected: lipgloss.NewStyle().
			Foreground(Colors.TitleSelected).
			PaddingLeft(13),

		ErrorMsg: lipgloss.NewStyle().
			Foreground(Colors.Error).
			Bold(true),

		StatusMsg: lipgloss.NewStyle().
			Foreground(Colors.Success),

		Footer: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			MarginTop(1),
	}
}

// StageColor returns the accent color of a stage. Columns outside the
// four built-in stages use the primary color.
func StageColor(s domain.Stage) lipgloss.Color {
	switch s {
	case domain.StageDispatched:
		return Colors.Dispatched
	case domain.StageInspection:
		return Colors.Inspection
	case domain.StageRepairing:
		return Colors.Repairing
	case domain.StageCompleted:
		return Colors.Completed
	default:
		return Colors.Primary
	}
}

// StageStyle returns the title style for a stage.
func (s Styles) StageStyle(stage domain.Stage) lipgloss.Style {
	return s.ColumnTitle.Foreground(StageColor(stage))
}

// StageIcon returns an icon for a stage.
func StageIcon(s domain.Stage) string {
	switch s {
	case domain.StageDispatched:
		return "➜"
	case domain.StageInspection:
		return "◎"
	case domain.StageRepairing:
		return "⚙"
	case domain.StageCompleted:
		return "✓"
	default:
		return "•"
	}
}
