package tui

import (
	"testing"
	"time"

	"github.com/bstc-oman/dispatch/internal/app"
	"github.com/bstc-oman/dispatch/internal/board"
	"github.com/bstc-oman/dispatch/internal/domain"
	"github.com/bstc-oman/dispatch/internal/infra/seed"
	"github.com/bstc-oman/dispatch/internal/testutil"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func newTestModel(t *testing.T) (*Model, *testutil.MockLogger) {
	t.Helper()
	logger := &testutil.MockLogger{}
	c, err := app.NewWithDeps(
		app.NewConfig(t.TempDir()),
		domain.NewDefaultConfig(),
		&testutil.MockClock{NowTime: testNow},
		&testutil.MockIDGenerator{Prefix: "j"},
		logger,
	)
	require.NoError(t, err)
	require.NoError(t, c.Board.Import(seed.SampleJobs()))

	m := New(c)
	m.Update(tea.WindowSizeMsg{Width: 160, Height: 60})
	return m, logger
}

// newBoardModel returns a model signed in as "dispatcher".
func newBoardModel(t *testing.T) *Model {
	t.Helper()
	m, _ := newTestModel(t)
	typeText(m, "dispatcher")
	press(m, tea.KeyTab)
	typeText(m, "secret")
	press(m, tea.KeyEnter)
	require.Equal(t, ModeNormal, m.mode)
	return m
}

func typeText(m *Model, s string) {
	for _, r := range s {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func press(m *Model, k tea.KeyType) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: k})
	return cmd
}

func pressAlt(m *Model, k tea.KeyType) {
	m.Update(tea.KeyMsg{Type: k, Alt: true})
}

func selectedID(t *testing.T, m *Model) string {
	t.Helper()
	job, ok := m.SelectedJob()
	require.True(t, ok)
	return job.ID
}

func TestLogin(t *testing.T) {
	m, logger := newTestModel(t)
	assert.Equal(t, ModeLogin, m.Mode())

	// Empty credentials are rejected
	press(m, tea.KeyEnter)
	assert.ErrorIs(t, m.err, domain.ErrEmptyUsername)
	assert.Equal(t, ModeLogin, m.mode)

	// Enter on the username field moves to the password
	typeText(m, "dispatcher")
	press(m, tea.KeyEnter)
	assert.True(t, m.passInput.Focused())

	typeText(m, "secret")
	press(m, tea.KeyEnter)

	assert.Equal(t, ModeNormal, m.mode)
	assert.Equal(t, "dispatcher", m.User())
	assert.Empty(t, m.passInput.Value())
	assert.Contains(t, m.status, "dispatcher")
	require.NotEmpty(t, logger.ByLevel("INFO"))
}

func TestLogin_MissingPassword(t *testing.T) {
	m, _ := newTestModel(t)

	typeText(m, "dispatcher")
	press(m, tea.KeyTab)
	press(m, tea.KeyEnter)

	assert.ErrorIs(t, m.err, domain.ErrEmptyPassword)
	assert.Equal(t, ModeLogin, m.mode)
}

func TestLogin_QuitKeyIsTyped(t *testing.T) {
	m, _ := newTestModel(t)

	typeText(m, "q")

	assert.Equal(t, "q", m.userInput.Value())
	assert.Equal(t, ModeLogin, m.mode)
}

func TestLogout(t *testing.T) {
	m := newBoardModel(t)

	typeText(m, "L")

	assert.Equal(t, ModeLogin, m.mode)
	assert.Empty(t, m.User())
	assert.Empty(t, m.userInput.Value())
	assert.True(t, m.userInput.Focused())
}

func TestCtrlCQuits(t *testing.T) {
	m, _ := newTestModel(t)

	cmd := press(m, tea.KeyCtrlC)

	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestNavigation(t *testing.T) {
	m := newBoardModel(t)

	assert.Equal(t, 0, m.col)
	assert.Equal(t, "1", selectedID(t, m))

	typeText(m, "j")
	assert.Equal(t, "5", selectedID(t, m))
	typeText(m, "j")
	assert.Equal(t, "5", selectedID(t, m), "selection stops at the last card")

	typeText(m, "l")
	assert.Equal(t, 1, m.col)
	assert.Equal(t, 0, m.row)
	assert.Equal(t, domain.StageInspection, m.container.Board.ActiveColumn())
	assert.NoError(t, m.err)

	typeText(m, "lll")
	assert.Equal(t, 3, m.col, "focus stops at the last column")

	typeText(m, "hhhhh")
	assert.Equal(t, 0, m.col)
	assert.Equal(t, domain.StageDispatched, m.container.Board.ActiveColumn())
}

func TestAddJob(t *testing.T) {
	m := newBoardModel(t)
	typeText(m, "ll")
	typeText(m, "n")
	require.Equal(t, ModeAdd, m.mode)

	typeText(m, "Sohar Port")
	press(m, tea.KeyTab)
	typeText(m, "Crane hydraulic leak")
	press(m, tea.KeyTab)
	typeText(m, "tea")
	assert.Equal(t, []string{"Team Alpha", "Team Beta", "Team Gamma"}, m.suggestions)

	press(m, tea.KeyDown)
	press(m, tea.KeyTab)
	assert.Equal(t, "Team Beta", m.teamInput.Value())
	assert.Equal(t, FormTeam, m.formField)

	press(m, tea.KeyEnter)

	assert.Equal(t, ModeNormal, m.mode)
	job, ok := m.container.Board.Get("j1")
	require.True(t, ok)
	assert.Equal(t, domain.StageRepairing, job.ColumnID)
	assert.Equal(t, "Sohar Port", job.Field(domain.FieldClient))
	assert.Equal(t, "Crane hydraulic leak", job.Field(domain.FieldDescription))
	assert.Equal(t, "Team Beta", job.Field(domain.FieldTeam))
	assert.Equal(t, testNow.Format(domain.CallTimeLayout), job.Field(domain.FieldCallTime))
	assert.Equal(t, "j1", selectedID(t, m))
	assert.Contains(t, m.status, "Sohar Port")
}

func TestAddJob_ValidationKeepsForm(t *testing.T) {
	m := newBoardModel(t)
	typeText(m, "n")
	typeText(m, "Sohar Port")

	press(m, tea.KeyEnter)

	assert.ErrorIs(t, m.err, domain.ErrValidation)
	assert.Equal(t, ModeAdd, m.mode)
	assert.Equal(t, "Sohar Port", m.clientInput.Value())
	assert.Equal(t, 6, m.container.Board.Len())
}

func TestAddJob_Escape(t *testing.T) {
	m := newBoardModel(t)
	typeText(m, "n")
	typeText(m, "Sohar Port")

	press(m, tea.KeyEsc)

	assert.Equal(t, ModeNormal, m.mode)
	assert.Empty(t, m.clientInput.Value())
	assert.Equal(t, 6, m.container.Board.Len())
}

func TestAddJob_TabOnEmptyTeamMovesOn(t *testing.T) {
	m := newBoardModel(t)
	typeText(m, "n")
	press(m, tea.KeyTab)
	press(m, tea.KeyTab)
	require.Equal(t, FormTeam, m.formField)

	press(m, tea.KeyTab)

	assert.Equal(t, FormClient, m.formField)
	assert.Empty(t, m.teamInput.Value())
}

func TestEditClient(t *testing.T) {
	m := newBoardModel(t)

	typeText(m, "E")
	require.Equal(t, ModeEdit, m.mode)
	assert.True(t, m.container.Edit.IsEditing("1"))
	assert.Equal(t, "Al Manar Transport", m.editInput.Value())

	// Clearing the field and committing is rejected and keeps the editor open
	press(m, tea.KeyCtrlU)
	press(m, tea.KeyEnter)
	assert.ErrorIs(t, m.err, domain.ErrValidation)
	assert.Equal(t, ModeEdit, m.mode)
	job, _ := m.container.Board.Get("1")
	assert.Equal(t, "Al Manar Transport", job.Field(domain.FieldClient))

	typeText(m, "Al Manar Group")
	press(m, tea.KeyEnter)

	assert.Equal(t, ModeNormal, m.mode)
	assert.IsType(t, board.EditInactive{}, m.container.Edit.State())
	job, _ = m.container.Board.Get("1")
	assert.Equal(t, "Al Manar Group", job.Field(domain.FieldClient))
}

func TestEditDescription_Multiline(t *testing.T) {
	m := newBoardModel(t)

	typeText(m, "e")
	require.Equal(t, ModeEdit, m.mode)
	require.True(t, m.editMultiline)

	press(m, tea.KeyCtrlU)
	typeText(m, "Compressor replaced")
	pressAlt(m, tea.KeyEnter)
	typeText(m, "Gas refilled")
	press(m, tea.KeyEnter)

	assert.Equal(t, ModeNormal, m.mode)
	job, _ := m.container.Board.Get("1")
	assert.Equal(t, "Compressor replaced\nGas refilled", job.Field(domain.FieldDescription))
}

func TestEdit_EscapeDiscardsDraft(t *testing.T) {
	m := newBoardModel(t)

	typeText(m, "t")
	press(m, tea.KeyCtrlU)
	typeText(m, "Team Omega")
	press(m, tea.KeyEsc)

	assert.Equal(t, ModeNormal, m.mode)
	assert.IsType(t, board.EditInactive{}, m.container.Edit.State())
	job, _ := m.container.Board.Get("1")
	assert.Equal(t, "Team Alpha", job.Field(domain.FieldTeam))
}

func TestEdit_DraftTracksInput(t *testing.T) {
	m := newBoardModel(t)

	typeText(m, "E")
	typeText(m, " LLC")

	cur, ok := m.container.Edit.Current()
	require.True(t, ok)
	assert.Equal(t, "Al Manar Transport LLC", cur.Draft)
}

func TestDragAndDrop(t *testing.T) {
	m := newBoardModel(t)

	typeText(m, "m")
	require.Equal(t, ModeDrag, m.mode)
	carried, ok := m.container.Drag.Dragging()
	require.True(t, ok)
	assert.Equal(t, "1", carried.ID)

	typeText(m, "ll")
	assert.Equal(t, 2, m.dragTarget)
	press(m, tea.KeyEnter)

	assert.Equal(t, ModeNormal, m.mode)
	assert.IsType(t, board.DragIdle{}, m.container.Drag.State())
	job, _ := m.container.Board.Get("1")
	assert.Equal(t, domain.StageRepairing, job.ColumnID)
	assert.Equal(t, 2, m.col)
	assert.Equal(t, "1", selectedID(t, m))
	assert.Contains(t, m.status, "Repairing")
}

func TestDrag_SpacePicksUp(t *testing.T) {
	m := newBoardModel(t)

	m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})

	assert.Equal(t, ModeDrag, m.mode)
}

func TestDrag_Escape(t *testing.T) {
	m := newBoardModel(t)
	before := m.container.Board.Items()

	typeText(m, "ml")
	press(m, tea.KeyEsc)

	assert.Equal(t, ModeNormal, m.mode)
	assert.IsType(t, board.DragIdle{}, m.container.Drag.State())
	assert.Equal(t, before, m.container.Board.Items())
}

func TestDrag_DropOnSameColumn(t *testing.T) {
	m := newBoardModel(t)
	before := m.container.Board.Items()

	typeText(m, "m")
	press(m, tea.KeyEnter)

	assert.Equal(t, ModeNormal, m.mode)
	assert.Equal(t, before, m.container.Board.Items())
	assert.NotContains(t, m.status, "Moved")
}

func TestDrag_EmptyColumnDoesNothing(t *testing.T) {
	m := newBoardModel(t)
	m.container.Board.RemoveItem("2")
	typeText(m, "l")

	typeText(m, "m")

	assert.Equal(t, ModeNormal, m.mode)
	assert.IsType(t, board.DragIdle{}, m.container.Drag.State())
}

func TestDelete(t *testing.T) {
	m := newBoardModel(t)

	typeText(m, "d")
	require.Equal(t, ModeConfirm, m.mode)
	assert.Equal(t, ConfirmDelete, m.confirmAction)

	typeText(m, "n")
	assert.Equal(t, ModeNormal, m.mode)
	assert.Equal(t, 6, m.container.Board.Len())

	typeText(m, "dy")
	assert.Equal(t, ModeNormal, m.mode)
	assert.Equal(t, 5, m.container.Board.Len())
	_, ok := m.container.Board.Get("1")
	assert.False(t, ok)
	assert.Equal(t, "5", selectedID(t, m))
}

func TestDelete_LastCardClampsSelection(t *testing.T) {
	m := newBoardModel(t)
	typeText(m, "j")
	require.Equal(t, "5", selectedID(t, m))

	typeText(m, "dy")

	assert.Equal(t, 0, m.row)
	assert.Equal(t, "1", selectedID(t, m))
}

func TestHelpMode(t *testing.T) {
	m := newBoardModel(t)

	typeText(m, "?")
	assert.Equal(t, ModeHelp, m.mode)

	press(m, tea.KeyEsc)
	assert.Equal(t, ModeNormal, m.mode)
}

func TestErrorClearedOnKeyPress(t *testing.T) {
	m := newBoardModel(t)
	m.setError(domain.ErrItemNotFound)

	typeText(m, "j")

	assert.NoError(t, m.err)
}

func TestUpdate_ClockSynced(t *testing.T) {
	m, _ := newTestModel(t)
	remote := testNow.Add(time.Hour)

	m.Update(MsgClockSynced{Time: remote, Local: testNow, Remote: true})
	assert.True(t, m.remoteClock)
	assert.Equal(t, remote, m.now)

	m.Update(MsgTick{Time: testNow.Add(10 * time.Second)})
	assert.Equal(t, remote.Add(10*time.Second), m.now)
}

func TestUpdate_ClockSyncedLocal(t *testing.T) {
	m, _ := newTestModel(t)
	m.clockOffset = time.Hour

	m.Update(MsgClockSynced{Time: testNow, Local: testNow})
	m.Update(MsgTick{Time: testNow.Add(time.Second)})

	assert.False(t, m.remoteClock)
	assert.Equal(t, testNow.Add(time.Second), m.now)
}

func TestUpdate_ClearStatus(t *testing.T) {
	m, _ := newTestModel(t)
	m.setStatus("first")
	m.setStatus("second")

	m.Update(MsgClearStatus{Seq: 1})
	assert.Equal(t, "second", m.status)

	m.Update(MsgClearStatus{Seq: 2})
	assert.Empty(t, m.status)
}

func TestNew_FocusesActiveColumn(t *testing.T) {
	cfg := domain.NewDefaultConfig()
	cfg.Board.DefaultColumn = string(domain.StageRepairing)
	c, err := app.NewWithDeps(app.NewConfig(t.TempDir()), cfg, &testutil.MockClock{NowTime: testNow}, &testutil.MockIDGenerator{}, nil)
	require.NoError(t, err)

	m := New(c)

	assert.Equal(t, 2, m.col)
}

func TestSyncClock_UsesTimeSource(t *testing.T) {
	m, _ := newTestModel(t)
	remote := testNow.Add(90 * time.Second)
	m.container.TimeSource = &testutil.MockTimeSource{Time: remote, Remote: true}

	msg := m.syncClock()()

	synced, ok := msg.(MsgClockSynced)
	require.True(t, ok)
	assert.Equal(t, remote, synced.Time)
	assert.Equal(t, testNow, synced.Local)
	assert.True(t, synced.Remote)
}
