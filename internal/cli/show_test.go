package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/bstc-oman/dispatch/internal/domain"
	"github.com/bstc-oman/dispatch/internal/infra/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowCommand_Text(t *testing.T) {
	e := newTestEnv(t)

	out, err := execute(t, newShowCommand(e))

	require.NoError(t, err)
	assert.Contains(t, out, "Dispatched (2)")
	assert.Contains(t, out, "Inspection (1)")
	assert.Contains(t, out, "Repairing (1)")
	assert.Contains(t, out, "Completed (2)")
	assert.Contains(t, out, "#1    Al Manar Transport")
	assert.Contains(t, out, "Team: Team Alpha")
	assert.Contains(t, out, "Call Time: 2025-08-12 09:30 AM")
	assert.Contains(t, out, "Total: 6")

	// Columns keep board order
	assert.Less(t, strings.Index(out, "Dispatched"), strings.Index(out, "Inspection"))
	assert.Less(t, strings.Index(out, "Repairing"), strings.Index(out, "Completed"))
}

func TestShowCommand_Column(t *testing.T) {
	e := newTestEnv(t)

	out, err := execute(t, newShowCommand(e), "--column", "inspection")

	require.NoError(t, err)
	assert.Contains(t, out, "Inspection (1)")
	assert.Contains(t, out, "Oman Logistics Co.")
	assert.NotContains(t, out, "Dispatched")
	assert.Contains(t, out, "Total: 1")
}

func TestShowCommand_UnknownColumn(t *testing.T) {
	e := newTestEnv(t)

	_, err := execute(t, newShowCommand(e), "--column", "Archived")

	assert.ErrorIs(t, err, domain.ErrInvalidColumn)
}

func TestShowCommand_JSON(t *testing.T) {
	e := newTestEnv(t)

	out, err := execute(t, newShowCommand(e), "--json")
	require.NoError(t, err)

	var got boardJSON
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 6, got.Total)
	require.Len(t, got.Columns, 4)
	assert.Equal(t, "Dispatched", got.Columns[0].ID)
	assert.Equal(t, 2, got.Columns[0].Count)
	require.Len(t, got.Columns[0].Jobs, 2)
	assert.Equal(t, "1", got.Columns[0].Jobs[0].ID)
	assert.Equal(t, "Al Manar Transport", got.Columns[0].Jobs[0].Fields[domain.FieldClient])
	assert.NotEmpty(t, got.Columns[0].Jobs[0].Created)
}

func TestShowCommand_YAMLRoundTrips(t *testing.T) {
	e := newTestEnv(t)

	out, err := execute(t, newShowCommand(e), "--yaml")
	require.NoError(t, err)

	jobs, err := seed.Decode(strings.NewReader(out))
	require.NoError(t, err)
	want := seed.SampleJobs()
	require.Len(t, jobs, len(want))
	for i := range want {
		assert.Equal(t, want[i].ID, jobs[i].ID)
		assert.Equal(t, want[i].ColumnID, jobs[i].ColumnID)
		assert.Equal(t, want[i].Fields, jobs[i].Fields)
		assert.False(t, jobs[i].Created.IsZero())
	}
}

func TestShowCommand_SeedFile(t *testing.T) {
	e := newTestEnv(t)
	path := writeFile(t, t.TempDir(), "jobs.yaml", testSeed)

	out, err := execute(t, newShowCommand(e), "--seed", path)

	require.NoError(t, err)
	assert.Contains(t, out, "Dispatched (0)")
	assert.Contains(t, out, "No jobs in this status")
	assert.Contains(t, out, "Nizwa Dairy")
	assert.Contains(t, out, "Total: 2")
}

func TestShowCommand_BadSeedFile(t *testing.T) {
	e := newTestEnv(t)
	path := writeFile(t, t.TempDir(), "jobs.yaml", "jobs:\n  - id: \"1\"\n    column: Archived\n    fields: {client: X, description: Y}\n")

	_, err := execute(t, newShowCommand(e), "--seed", path)

	require.ErrorIs(t, err, domain.ErrInvalidColumn)
	assert.Zero(t, e.c.Board.Len())
}

func TestShowCommand_Kanban(t *testing.T) {
	e := newTestEnv(t)

	out, err := execute(t, newShowCommand(e), "--kanban")

	require.NoError(t, err)
	assert.Contains(t, out, "Dispatched (2)")
	assert.Contains(t, out, "Market Research")
	assert.Contains(t, out, "Completed (1)")
	assert.Contains(t, out, "Total: 7")
	assert.NotContains(t, out, "Al Manar Transport")
}

func TestShowCommand_KanbanJSON(t *testing.T) {
	e := newTestEnv(t)

	out, err := execute(t, newShowCommand(e), "--kanban", "--json")
	require.NoError(t, err)

	var got boardJSON
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 7, got.Total)
	assert.Equal(t, "Market Research", got.Columns[0].Jobs[0].Fields[domain.FieldContent])
}

func TestShowCommand_ConflictingFormats(t *testing.T) {
	e := newTestEnv(t)

	_, err := execute(t, newShowCommand(e), "--json", "--yaml")

	assert.EqualError(t, err, "cannot use --json and --yaml together")
}
