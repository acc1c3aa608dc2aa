package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/bstc-oman/dispatch/internal/domain"
	"github.com/bstc-oman/dispatch/internal/usecase"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.updateLayoutSizes()
		return m, nil

	case MsgTick:
		m.now = msg.Time.Add(m.clockOffset)
		cmds := []tea.Cmd{m.tick()}
		if !m.lastSync.IsZero() && msg.Time.Sub(m.lastSync) >= clockResync {
			m.lastSync = msg.Time
			cmds = append(cmds, m.syncClock())
		}
		return m, tea.Batch(cmds...)

	case MsgClockSynced:
		m.remoteClock = msg.Remote
		m.clockOffset = 0
		if msg.Remote {
			m.clockOffset = msg.Time.Sub(msg.Local)
		}
		m.now = msg.Time
		m.lastSync = msg.Local
		return m, nil

	case MsgClearStatus:
		if msg.Seq == m.statusSeq {
			m.status = ""
		}
		return m, nil
	}

	// Cursor blink and other component messages
	return m, m.updateFocusedInput(msg)
}

// handleKeyMsg handles keyboard input.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	// Clear error on any key press
	if m.err != nil {
		m.err = nil
	}

	switch m.mode {
	case ModeLogin:
		return m.handleLoginMode(msg)
	case ModeNormal:
		return m.handleNormalMode(msg)
	case ModeAdd:
		return m.handleAddMode(msg)
	case ModeEdit:
		return m.handleEditMode(msg)
	case ModeDrag:
		return m.handleDragMode(msg)
	case ModeConfirm:
		return m.handleConfirmMode(msg)
	case ModeHelp:
		return m.handleHelpMode(msg)
	}

	return m, nil
}

// handleLoginMode handles keys on the sign-in screen.
func (m *Model) handleLoginMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.NextField), key.Matches(msg, m.keys.PrevField),
		msg.Type == tea.KeyUp, msg.Type == tea.KeyDown:
		m.toggleLoginFocus()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		if m.userInput.Focused() && m.passInput.Value() == "" && m.userInput.Value() != "" {
			m.toggleLoginFocus()
			return m, nil
		}
		return m, m.login()
	}

	return m, m.updateFocusedInput(msg)
}

func (m *Model) toggleLoginFocus() {
	if m.userInput.Focused() {
		m.userInput.Blur()
		m.passInput.Focus()
		return
	}
	m.passInput.Blur()
	m.userInput.Focus()
}

// login runs the stub sign-in and opens the board.
func (m *Model) login() tea.Cmd {
	out, err := m.container.LoginUseCase().Execute(context.Background(), usecase.LoginInput{
		Username: m.userInput.Value(),
		Password: m.passInput.Value(),
	})
	if err != nil {
		m.setError(err)
		return nil
	}

	m.user = out.Username
	m.passInput.Reset()
	m.userInput.Blur()
	m.passInput.Blur()
	m.mode = ModeNormal
	m.syncFocusToActiveColumn()
	return m.setStatus("Signed in as " + out.Username)
}

// logout abandons any drag or edit and returns to the sign-in screen.
func (m *Model) logout() {
	m.container.Drag.Cancel()
	m.container.Edit.Cancel()
	m.container.Logger.Info("", "auth", "signed out "+m.user)

	m.user = ""
	m.status = ""
	m.mode = ModeLogin
	m.userInput.Reset()
	m.passInput.Reset()
	m.passInput.Blur()
	m.userInput.Focus()
}

// handleNormalMode handles keys while browsing the board.
func (m *Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Left):
		m.focusColumn(m.col - 1)
		return m, nil

	case key.Matches(msg, m.keys.Right):
		m.focusColumn(m.col + 1)
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.row > 0 {
			m.row--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.row < len(m.jobsInFocus())-1 {
			m.row++
		}
		return m, nil

	case key.Matches(msg, m.keys.New):
		m.openAddForm()
		return m, nil

	case key.Matches(msg, m.keys.EditDesc):
		m.startEdit(domain.FieldDescription)
		return m, nil

	case key.Matches(msg, m.keys.EditClient):
		m.startEdit(domain.FieldClient)
		return m, nil

	case key.Matches(msg, m.keys.EditTeam):
		m.startEdit(domain.FieldTeam)
		return m, nil

	case key.Matches(msg, m.keys.Pick):
		m.beginDrag()
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		job, ok := m.SelectedJob()
		if !ok {
			return m, nil
		}
		m.mode = ModeConfirm
		m.confirmAction = ConfirmDelete
		m.confirmJobID = job.ID
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.mode = ModeHelp
		return m, nil

	case key.Matches(msg, m.keys.Logout):
		m.logout()
		return m, nil
	}

	return m, nil
}

// beginDrag picks up the selected job.
func (m *Model) beginDrag() {
	job, ok := m.SelectedJob()
	if !ok {
		return
	}
	if err := m.container.Drag.BeginDrag(job); err != nil {
		m.setError(err)
		return
	}
	m.mode = ModeDrag
	m.dragTarget = m.col
}

// handleDragMode handles keys while a job is carried.
func (m *Model) handleDragMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Left):
		if m.dragTarget > 0 {
			m.dragTarget--
		}
		return m, nil

	case key.Matches(msg, m.keys.Right):
		if m.dragTarget < len(m.columns())-1 {
			m.dragTarget++
		}
		return m, nil

	case key.Matches(msg, m.keys.Drop):
		return m, m.drop()

	case key.Matches(msg, m.keys.Escape):
		m.container.Drag.Cancel()
		m.mode = ModeNormal
		return m, m.setStatus("Move cancelled")
	}

	return m, nil
}

// drop releases the carried job over the target column.
func (m *Model) drop() tea.Cmd {
	carried, _ := m.container.Drag.Dragging()
	target := m.columns()[m.dragTarget]
	err := m.container.Drag.DropOn(target.ID)
	m.mode = ModeNormal
	if err != nil {
		m.setError(err)
		m.clampRow()
		return nil
	}

	m.selectJob(carried.ID)
	if carried.ColumnID == target.ID {
		return nil
	}
	return m.setStatus(fmt.Sprintf("Moved %s to %s", jobLabel(carried), target.Title()))
}

// openAddForm shows the new job form for the focused column.
func (m *Model) openAddForm() {
	m.mode = ModeAdd
	m.formField = FormClient
	m.clientInput.Reset()
	m.descInput.Reset()
	m.teamInput.Reset()
	m.suggestion = 0
	m.suggestions = rankTeams(m.teamNames(), "")
	m.focusFormField()
}

// closeAddForm hides the form and clears its inputs.
func (m *Model) closeAddForm() {
	m.mode = ModeNormal
	m.clientInput.Reset()
	m.descInput.Reset()
	m.teamInput.Reset()
	m.clientInput.Blur()
	m.descInput.Blur()
	m.teamInput.Blur()
	m.suggestions = nil
}

// handleAddMode handles keys in the new job form.
func (m *Model) handleAddMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.closeAddForm()
		return m, nil

	case key.Matches(msg, m.keys.NextField):
		if m.formField == FormTeam && m.acceptSuggestion() {
			return m, nil
		}
		m.formField = m.formField.Next()
		m.focusFormField()
		return m, nil

	case key.Matches(msg, m.keys.PrevField):
		m.formField = m.formField.Prev()
		m.focusFormField()
		return m, nil

	case m.formField == FormTeam && msg.Type == tea.KeyUp:
		if m.suggestion > 0 {
			m.suggestion--
		}
		return m, nil

	case m.formField == FormTeam && msg.Type == tea.KeyDown:
		if m.suggestion < len(m.suggestions)-1 {
			m.suggestion++
		}
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		return m, m.submitAddForm()
	}

	cmd := m.updateFocusedInput(msg)
	if m.formField == FormTeam {
		m.suggestions = rankTeams(m.teamNames(), m.teamInput.Value())
		m.suggestion = 0
	}
	return m, cmd
}

// acceptSuggestion fills the team input with the highlighted suggestion.
// It returns false when there is nothing new to accept. On an empty input a
// suggestion is only taken after the user has moved through the list.
func (m *Model) acceptSuggestion() bool {
	if m.suggestion >= len(m.suggestions) {
		return false
	}
	if m.teamInput.Value() == "" && m.suggestion == 0 {
		return false
	}
	name := m.suggestions[m.suggestion]
	if name == m.teamInput.Value() {
		return false
	}
	m.teamInput.SetValue(name)
	m.teamInput.CursorEnd()
	m.suggestions = rankTeams(m.teamNames(), name)
	m.suggestion = 0
	return true
}

// focusFormField focuses the current field in the new job form.
func (m *Model) focusFormField() {
	m.clientInput.Blur()
	m.descInput.Blur()
	m.teamInput.Blur()

	switch m.formField {
	case FormClient:
		m.clientInput.Focus()
	case FormDescription:
		m.descInput.Focus()
	case FormTeam:
		m.teamInput.Focus()
	}
}

// submitAddForm adds the job to the focused column.
// Validation errors keep the form open with its contents.
func (m *Model) submitAddForm() tea.Cmd {
	schema := m.container.Board.Schema()
	values := map[string]string{
		domain.FieldClient:      m.clientInput.Value(),
		domain.FieldDescription: m.descInput.Value(),
		domain.FieldTeam:        m.teamInput.Value(),
	}
	fields := make(map[string]string, len(values))
	for name, v := range values {
		if schema.Has(name) {
			fields[name] = v
		}
	}

	out, err := m.container.AddJobUseCase().Execute(context.Background(), usecase.AddJobInput{
		Fields: fields,
		Column: string(m.focusedColumn().ID),
	})
	if err != nil {
		m.setError(err)
		return nil
	}

	m.closeAddForm()
	m.selectJob(out.Job.ID)
	return m.setStatus("Added " + jobLabel(out.Job))
}

// startEdit opens an inline edit of a field of the selected job.
// Boards without the field edit their first field instead.
func (m *Model) startEdit(field string) {
	job, ok := m.SelectedJob()
	if !ok {
		return
	}
	schema := m.container.Board.Schema()
	def, ok := schema.Lookup(field)
	if !ok {
		if len(schema.Fields) == 0 {
			return
		}
		def = schema.Fields[0]
	}

	current := job.Field(def.Name)
	m.container.Edit.StartEdit(job.ID, def.Name, current)
	m.editMultiline = def.Multiline
	if def.Multiline {
		m.editArea.SetValue(current)
		m.editArea.Focus()
	} else {
		m.editInput.SetValue(current)
		m.editInput.CursorEnd()
		m.editInput.Focus()
	}
	m.mode = ModeEdit
}

// endEdit leaves edit mode and clears the editor.
func (m *Model) endEdit() {
	m.mode = ModeNormal
	m.editInput.Reset()
	m.editInput.Blur()
	m.editArea.Reset()
	m.editArea.Blur()
	m.clampRow()
}

// handleEditMode handles keys during an inline edit.
func (m *Model) handleEditMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.container.Edit.Cancel()
		m.endEdit()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		return m, m.commitEdit()
	}

	cmd := m.updateFocusedInput(msg)
	value := m.editInput.Value()
	if m.editMultiline {
		value = m.editArea.Value()
	}
	if err := m.container.Edit.UpdateDraft(value); err != nil {
		m.setError(err)
		m.endEdit()
	}
	return m, cmd
}

// commitEdit writes the draft to the board. A rejected draft keeps the
// editor open when the session is still active so the user can fix it.
func (m *Model) commitEdit() tea.Cmd {
	cur, _ := m.container.Edit.Current()
	err := m.container.Edit.Commit()
	if err == nil {
		m.endEdit()
		def, _ := m.container.Board.Schema().Lookup(cur.Field)
		return m.setStatus("Saved " + def.Title())
	}

	m.setError(err)
	if _, editing := m.container.Edit.Current(); editing && errors.Is(err, domain.ErrValidation) {
		return nil
	}
	m.endEdit()
	return nil
}

// handleConfirmMode handles keys in the confirmation dialog.
func (m *Model) handleConfirmMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), msg.String() == "n", msg.String() == "N":
		m.mode = ModeNormal
		m.confirmAction = ConfirmNone
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		action := m.confirmAction
		m.mode = ModeNormal
		m.confirmAction = ConfirmNone
		switch action {
		case ConfirmNone:
			// Nothing to confirm
		case ConfirmDelete:
			return m, m.removeJob(m.confirmJobID)
		}
	}

	return m, nil
}

// removeJob removes a job from the board.
func (m *Model) removeJob(id string) tea.Cmd {
	out, err := m.container.RemoveJobUseCase().Execute(context.Background(), usecase.RemoveJobInput{ID: id})
	m.clampRow()
	if err != nil {
		m.setError(err)
		return nil
	}
	if !out.Removed {
		return nil
	}
	return m.setStatus("Removed " + jobLabel(out.Job))
}

// handleHelpMode handles keys in help mode.
func (m *Model) handleHelpMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) || key.Matches(msg, m.keys.Escape) || key.Matches(msg, m.keys.Quit) {
		m.mode = ModeNormal
	}
	return m, nil
}

// updateFocusedInput forwards a message to the input that has focus.
func (m *Model) updateFocusedInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.mode {
	case ModeLogin:
		if m.passInput.Focused() {
			m.passInput, cmd = m.passInput.Update(msg)
		} else {
			m.userInput, cmd = m.userInput.Update(msg)
		}
	case ModeAdd:
		switch m.formField {
		case FormClient:
			m.clientInput, cmd = m.clientInput.Update(msg)
		case FormDescription:
			m.descInput, cmd = m.descInput.Update(msg)
		case FormTeam:
			m.teamInput, cmd = m.teamInput.Update(msg)
		}
	case ModeEdit:
		if m.editMultiline {
			m.editArea, cmd = m.editArea.Update(msg)
		} else {
			m.editInput, cmd = m.editInput.Update(msg)
		}
	case ModeNormal, ModeDrag, ModeConfirm, ModeHelp:
		// No text input
	}
	return cmd
}

// updateLayoutSizes sizes the inputs to the window.
func (m *Model) updateLayoutSizes() {
	w := m.width - 24
	if w < 20 {
		w = 20
	}
	m.userInput.Width = 32
	m.passInput.Width = 32
	m.clientInput.Width = w
	m.teamInput.Width = w
	m.editInput.Width = w
	m.descInput.SetWidth(w)
	m.editArea.SetWidth(w)
}

// jobLabel names a job in status messages.
func jobLabel(j domain.Job) string {
	if c := j.Field(domain.FieldClient); c != "" {
		return fmt.Sprintf("job %s (%s)", j.ID, c)
	}
	return "job " + j.ID
}
