package tui

import (
	"context"
	"time"

	"github.com/bstc-oman/dispatch/internal/app"
	"github.com/bstc-oman/dispatch/internal/domain"
	"github.com/bstc-oman/dispatch/internal/infra/clock"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	statusTTL   = 4 * time.Second
	clockResync = 10 * time.Minute
)

// Model is the main bubbletea model for the TUI.
type Model struct {
	// Dependencies (pointers first for alignment)
	container *app.Container
	config    *domain.Config
	loc       *time.Location
	err       error

	// State
	user        string
	status      string
	suggestions []string
	now         time.Time
	lastSync    time.Time
	clockOffset time.Duration

	// Components
	keys   KeyMap
	styles Styles
	help   help.Model

	// Input state (large structs)
	userInput   textinput.Model
	passInput   textinput.Model
	clientInput textinput.Model
	teamInput   textinput.Model
	descInput   textarea.Model
	editInput   textinput.Model
	editArea    textarea.Model

	// Numeric state (smaller types last)
	mode          Mode
	confirmAction ConfirmAction
	formField     FormField
	width         int
	height        int
	col           int // Focused column index
	row           int // Selected card within the focused column
	dragTarget    int // Column index the carried job would land in
	suggestion    int
	statusSeq     int
	confirmJobID  string
	editMultiline bool
	remoteClock   bool
}

// New creates a new TUI Model with the given container.
// The board is expected to be loaded already.
func New(c *app.Container) *Model {
	ui := textinput.New()
	ui.Placeholder = "Username"
	ui.CharLimit = 64
	ui.Focus()

	pi := textinput.New()
	pi.Placeholder = "Password"
	pi.CharLimit = 128
	pi.EchoMode = textinput.EchoPassword
	pi.EchoCharacter = '•'

	ci := textinput.New()
	ci.Placeholder = "Client name"
	ci.CharLimit = 120

	ti := textinput.New()
	ti.Placeholder = "Assigned team (optional)"
	ti.CharLimit = 80

	ei := textinput.New()
	ei.CharLimit = 200

	keys := DefaultKeyMap()

	m := &Model{
		container:   c,
		config:      c.AppConfig,
		loc:         clock.Location(),
		mode:        ModeLogin,
		keys:        keys,
		styles:      DefaultStyles(),
		help:        help.New(),
		userInput:   ui,
		passInput:   pi,
		clientInput: ci,
		teamInput:   ti,
		descInput:   newTextArea("Describe the breakdown", keys),
		editInput:   ei,
		editArea:    newTextArea("", keys),
		now:         c.Clock.Now(),
	}
	if m.config == nil {
		m.config = domain.NewDefaultConfig()
	}
	m.syncFocusToActiveColumn()
	return m
}

// newTextArea returns a textarea whose enter key is left to the model so it can submit.
func newTextArea(placeholder string, keys KeyMap) textarea.Model {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.CharLimit = 2000
	ta.SetHeight(3)
	ta.KeyMap.InsertNewline = keys.Newline
	return ta
}

// Init initializes the model and returns the initial command.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.tick(),
		m.syncClock(),
	)
}

// tick schedules the next clock update.
func (m *Model) tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return MsgTick{Time: t}
	})
}

// syncClock returns a command that asks the time source for the current time.
// It runs off the update loop and never touches board state.
func (m *Model) syncClock() tea.Cmd {
	ts := m.container.TimeSource
	clk := m.container.Clock
	return func() tea.Msg {
		t, remote := ts.Now(context.Background())
		return MsgClockSynced{Time: t, Local: clk.Now(), Remote: remote}
	}
}

// setStatus shows an informational message and schedules its removal.
func (m *Model) setStatus(s string) tea.Cmd {
	m.err = nil
	m.status = s
	m.statusSeq++
	seq := m.statusSeq
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return MsgClearStatus{Seq: seq}
	})
}

// setError shows an error in the status line until the next key press.
func (m *Model) setError(err error) {
	m.status = ""
	m.err = err
}

// columns returns the board columns in display order.
func (m *Model) columns() []domain.Column[domain.Stage] {
	return m.container.Board.Columns()
}

// focusedColumn returns the focused column.
func (m *Model) focusedColumn() domain.Column[domain.Stage] {
	return m.columns()[m.col]
}

// jobsInFocus returns the jobs of the focused column.
func (m *Model) jobsInFocus() []domain.Job {
	return m.container.Board.ItemsByColumn(m.focusedColumn().ID)
}

// SelectedJob returns the selected job, if the focused column has one.
func (m *Model) SelectedJob() (domain.Job, bool) {
	jobs := m.jobsInFocus()
	if len(jobs) == 0 {
		return domain.Job{}, false
	}
	return jobs[m.row], true
}

// focusColumn moves focus to column i and makes it the board's active column,
// so new jobs land where the user is looking.
func (m *Model) focusColumn(i int) {
	cols := m.columns()
	if i < 0 || i >= len(cols) {
		return
	}
	m.col = i
	if err := m.container.Board.SetActiveColumn(cols[i].ID); err != nil {
		m.setError(err)
	}
	m.clampRow()
}

// clampRow keeps the card selection inside the focused column.
func (m *Model) clampRow() {
	n := m.container.Board.Count(m.focusedColumn().ID)
	if m.row >= n {
		m.row = n - 1
	}
	if m.row < 0 {
		m.row = 0
	}
}

// selectJob focuses the column holding the job and selects its card.
func (m *Model) selectJob(id string) {
	job, ok := m.container.Board.Get(id)
	if !ok {
		m.clampRow()
		return
	}
	for i, c := range m.columns() {
		if c.ID != job.ColumnID {
			continue
		}
		m.focusColumn(i)
		for r, j := range m.jobsInFocus() {
			if j.ID == id {
				m.row = r
			}
		}
		return
	}
}

// syncFocusToActiveColumn focuses the board's active column.
func (m *Model) syncFocusToActiveColumn() {
	active := m.container.Board.ActiveColumn()
	for i, c := range m.columns() {
		if c.ID == active {
			m.col = i
		}
	}
	m.clampRow()
}

// teamNames returns the configured team names.
func (m *Model) teamNames() []string {
	return m.config.Teams.Names
}

// Mode returns the current UI mode.
func (m *Model) Mode() Mode {
	return m.mode
}

// User returns the signed-in user, empty on the login screen.
func (m *Model) User() string {
	return m.user
}
