package tui

import (
	"fmt"
	"strings"

	"github.com/bstc-oman/dispatch/internal/board"
	"github.com/bstc-oman/dispatch/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const (
	appTitle    = "BSTC Dashboard"
	appSubtitle = "Breakdown Maintenance Service"
	appLocation = "Muscat, Oman"
	emptyColumn = "No jobs in this status"
	minColWidth = 22
	cardHeight  = 5 // Lines per card including margin
)

// View renders the TUI.
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var content string
	switch m.mode {
	case ModeLogin:
		return m.viewLogin()
	case ModeHelp:
		content = m.viewHelp()
	case ModeNormal, ModeAdd, ModeEdit, ModeDrag, ModeConfirm:
		content = m.viewMain()
	}

	return m.styles.App.Render(content)
}

// viewMain renders the dashboard.
func (m *Model) viewMain() string {
	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n\n")

	v := m.container.Board.View()
	b.WriteString(m.viewStats(v))
	b.WriteString("\n")
	b.WriteString(m.viewBoard(v))

	// Dialogs/overlays
	switch m.mode {
	case ModeNormal, ModeDrag, ModeLogin, ModeHelp:
		// No overlay for these modes
	case ModeConfirm:
		b.WriteString("\n")
		b.WriteString(m.viewConfirmDialog())
	case ModeAdd:
		b.WriteString("\n")
		b.WriteString(m.viewAddForm())
	case ModeEdit:
		b.WriteString("\n")
		b.WriteString(m.viewEditDialog())
	}

	b.WriteString("\n")
	b.WriteString(m.viewStatusLine())
	b.WriteString(m.viewFooter())

	return b.String()
}

// contentWidth is the usable width inside the app padding.
func (m *Model) contentWidth() int {
	w := m.width - 4
	if w < minColWidth {
		w = minColWidth
	}
	return w
}

// viewHeader renders the title block and the clock.
func (m *Model) viewHeader() string {
	left := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.HeaderTitle.Render(appTitle),
		m.styles.HeaderSubtitle.Render(appSubtitle),
	)

	now := m.now.In(m.loc)
	clockText := now.Format("Mon, 02 Jan 2006  15:04:05")
	if !m.remoteClock {
		clockText += " (local)"
	}
	place := appLocation
	if m.user != "" {
		place = m.user + " · " + place
	}
	right := lipgloss.JoinVertical(lipgloss.Right,
		m.styles.HeaderInfo.Render(place),
		m.styles.HeaderSubtitle.Render(clockText),
	)

	spacing := m.contentWidth() - lipgloss.Width(left) - lipgloss.Width(right)
	if spacing < 1 {
		spacing = 1
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left, strings.Repeat(" ", spacing), right)
}

// viewStats renders one count card per column plus the total.
func (m *Model) viewStats(v board.View[domain.Stage]) string {
	cards := make([]string, 0, len(v.Columns)+1)
	for _, c := range v.Columns {
		color := StageColor(c.Column.ID)
		body := lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.NewStyle().Foreground(color).Render(StageIcon(c.Column.ID)+" "+c.Column.Title()),
			m.styles.StatCount.Render(fmt.Sprintf("%d", c.Count)),
		)
		cards = append(cards, m.styles.StatCard.BorderForeground(color).Render(body))
	}
	total := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.HeaderInfo.Render("Total"),
		m.styles.StatCount.Render(fmt.Sprintf("%d", v.Total)),
	)
	cards = append(cards, m.styles.StatCard.Render(total))
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

// viewBoard renders the columns side by side.
func (m *Model) viewBoard(v board.View[domain.Stage]) string {
	n := len(v.Columns)
	if n == 0 {
		return ""
	}
	// Border (2) and padding (2) per column
	outer := m.contentWidth() / n
	if outer < minColWidth {
		outer = minColWidth
	}
	inner := outer - 4

	var carriedID string
	if d, ok := m.container.Drag.State().(board.Dragging[domain.Stage]); ok {
		carriedID = d.Item.ID
	}
	schema := m.container.Board.Schema()

	cols := make([]string, 0, n)
	for i, c := range v.Columns {
		var body strings.Builder
		title := m.styles.StageStyle(c.Column.ID).Render(truncate(c.Column.Title(), inner-4))
		body.WriteString(title + " " + m.styles.ColumnCount.Render(fmt.Sprintf("(%d)", c.Count)))
		body.WriteString("\n\n")

		if c.Empty() {
			body.WriteString(m.styles.EmptyColumn.Render(truncate(emptyColumn, inner)))
		} else {
			start, end := cardWindow(len(c.Items), m.selectedRowIn(i), m.maxCards())
			if start > 0 {
				body.WriteString(m.styles.CardMeta.Render(fmt.Sprintf("↑ %d more", start)) + "\n")
			}
			for r := start; r < end; r++ {
				job := c.Items[r]
				style := m.styles.Card
				switch {
				case carriedID != "" && job.ID == carriedID:
					style = m.styles.CardCarried
				case m.mode != ModeDrag && i == m.col && r == m.row:
					style = m.styles.CardSelected
				}
				body.WriteString(style.Render(m.renderCard(job, schema, inner-2)))
				body.WriteString("\n")
			}
			if end < len(c.Items) {
				body.WriteString(m.styles.CardMeta.Render(fmt.Sprintf("↓ %d more", len(c.Items)-end)))
			}
		}

		style := m.styles.Column
		switch {
		case m.mode == ModeDrag && i == m.dragTarget:
			style = m.styles.ColumnTarget
		case m.mode != ModeDrag && i == m.col:
			style = m.styles.ColumnFocused
		}
		cols = append(cols, style.Width(outer-2).Render(strings.TrimRight(body.String(), "\n")))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

// selectedRowIn returns the selected row of column i, or 0 for unfocused columns.
func (m *Model) selectedRowIn(i int) int {
	if i == m.col {
		return m.row
	}
	return 0
}

// maxCards returns how many cards fit in a column, 0 meaning no limit.
func (m *Model) maxCards() int {
	if m.height == 0 {
		return 0
	}
	// Header, stats, column title, status and footer
	n := (m.height - 16) / cardHeight
	if n < 1 {
		n = 1
	}
	return n
}

// cardWindow returns the range of cards to show so the selected one is visible.
func cardWindow(total, selected, limit int) (start, end int) {
	if limit <= 0 || total <= limit {
		return 0, total
	}
	start = selected - limit + 1
	if start < 0 {
		start = 0
	}
	end = start + limit
	if end > total {
		end = total
		start = end - limit
	}
	return start, end
}

// renderCard renders a job card. The first schema field is the headline,
// multi-line fields show their first line and other fields are labelled.
func (m *Model) renderCard(job domain.Job, schema domain.Schema, width int) string {
	lines := make([]string, 0, len(schema.Fields))
	for i, f := range schema.Fields {
		v := strings.TrimSpace(job.Field(f.Name))
		switch {
		case i == 0:
			lines = append(lines, m.styles.CardClient.Render(truncate(v, width)))
		case v == "":
			continue
		case f.Multiline:
			first, _, more := strings.Cut(v, "\n")
			if more {
				first += " …"
			}
			lines = append(lines, m.styles.CardDesc.Render(truncate(first, width)))
		default:
			lines = append(lines, m.styles.CardMeta.Render(truncate(f.Title()+": "+v, width)))
		}
	}
	return strings.Join(lines, "\n")
}

// truncate shortens s to width display cells.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

// viewConfirmDialog renders the confirmation dialog.
func (m *Model) viewConfirmDialog() string {
	var action, target string
	color := Colors.Error

	switch m.confirmAction {
	case ConfirmNone:
		return ""
	case ConfirmDelete:
		action = "Delete"
		target = "job " + m.confirmJobID
		if job, ok := m.container.Board.Get(m.confirmJobID); ok {
			target = jobLabel(job)
		}
	}

	title := m.styles.DialogTitle.Foreground(color).Render(fmt.Sprintf("%s %s?", action, target))
	prompt := m.styles.DialogPrompt.Render("This action cannot be undone.")
	buttons := lipgloss.JoinHorizontal(lipgloss.Left,
		m.styles.StageStyle(domain.StageCompleted).Render("[ y ] Confirm"), "  ",
		m.styles.HeaderInfo.Render("[ n ] Cancel"),
	)

	content := lipgloss.JoinVertical(lipgloss.Left, title, prompt, "", buttons)
	return m.styles.Dialog.BorderForeground(color).Render(content)
}

// viewAddForm renders the new job form.
func (m *Model) viewAddForm() string {
	col := m.focusedColumn()
	title := m.styles.DialogTitle.Render("◆ New Job in " + col.Title())

	row := func(f FormField, label, input string) string {
		style := m.styles.InputLabel
		if m.formField == f {
			style = m.styles.InputActive
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, style.Render(label), input)
	}

	lines := []string{
		title,
		row(FormClient, "Client", m.clientInput.View()),
		row(FormDescription, "Description", m.descInput.View()),
		row(FormTeam, "Team", m.teamInput.View()),
	}
	if m.formField == FormTeam {
		for i, s := range m.suggestions {
			style := m.styles.Suggestion
			if i == m.suggestion {
				style = m.styles.SuggestionSelected
			}
			lines = append(lines, style.Render(s))
		}
	}
	lines = append(lines, "", m.help.ShortHelpView(m.keys.inputHelp(m.formField == FormDescription)))

	return m.styles.Dialog.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// viewEditDialog renders the inline editor.
func (m *Model) viewEditDialog() string {
	cur, ok := m.container.Edit.State().(board.Editing)
	if !ok {
		return ""
	}
	label := cur.Field
	if def, found := m.container.Board.Schema().Lookup(cur.Field); found {
		label = def.Title()
	}
	target := "job " + cur.ItemID
	if job, found := m.container.Board.Get(cur.ItemID); found {
		target = jobLabel(job)
	}

	input := m.editInput.View()
	if m.editMultiline {
		input = m.editArea.View()
	}
	content := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.DialogTitle.Render(fmt.Sprintf("✎ Edit %s of %s", label, target)),
		input,
		"",
		m.help.ShortHelpView(m.keys.inputHelp(m.editMultiline)),
	)
	return m.styles.Dialog.Render(content)
}

// viewStatusLine renders the latest error or status message.
func (m *Model) viewStatusLine() string {
	switch {
	case m.err != nil:
		return m.styles.ErrorMsg.Render("Error: "+m.err.Error()) + "\n"
	case m.mode == ModeDrag:
		d, ok := m.container.Drag.State().(board.Dragging[domain.Stage])
		if !ok {
			return ""
		}
		target := m.columns()[m.dragTarget]
		return m.styles.StatusMsg.Render(fmt.Sprintf("Moving %s → %s", jobLabel(d.Item), target.Title())) + "\n"
	case m.status != "":
		return m.styles.StatusMsg.Render(m.status) + "\n"
	}
	return ""
}

// viewFooter renders the key hints for the mode.
func (m *Model) viewFooter() string {
	var binds []key.Binding
	switch m.mode {
	case ModeNormal:
		binds = m.keys.ShortHelp()
	case ModeDrag:
		binds = m.keys.dragHelp()
	case ModeConfirm, ModeAdd, ModeEdit, ModeLogin, ModeHelp:
		// Hints are shown in the dialogs/views themselves
		return ""
	}
	return m.styles.Footer.Render(m.help.ShortHelpView(binds))
}

// viewHelp renders the help view.
func (m *Model) viewHelp() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.viewHeader(),
		"",
		m.styles.HeaderTitle.Render("KEYBOARD SHORTCUTS"),
		"",
		m.help.FullHelpView(m.keys.FullHelp()),
		m.styles.Footer.Render("? or esc to close"),
	)
}

// viewLogin renders the sign-in screen.
func (m *Model) viewLogin() string {
	userLabel, passLabel := m.styles.InputLabel, m.styles.InputLabel
	if m.passInput.Focused() {
		passLabel = m.styles.InputActive
	} else {
		userLabel = m.styles.InputActive
	}

	lines := []string{
		m.styles.HeaderTitle.Render(appTitle),
		m.styles.HeaderSubtitle.Render(appSubtitle),
		m.styles.HeaderInfo.Render(appLocation),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, userLabel.Render("Username"), m.userInput.View()),
		lipgloss.JoinHorizontal(lipgloss.Top, passLabel.Render("Password"), m.passInput.View()),
		"",
	}
	if m.err != nil {
		lines = append(lines, m.styles.ErrorMsg.Render(m.err.Error()))
	}
	lines = append(lines, m.styles.HeaderInfo.Render("enter sign in · tab switch field · ctrl+c quit"))

	box := m.styles.Dialog.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
