package usecase

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bstc-oman/dispatch/internal/board"
	"github.com/bstc-oman/dispatch/internal/domain"
	"github.com/bstc-oman/dispatch/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEmptyBoard(t *testing.T) *JobBoard {
	t.Helper()
	b, err := board.NewStore(domain.DefaultStages(), domain.DefaultJobSchema())
	require.NoError(t, err)
	return b
}

func TestLoadBoard_Execute_Sample(t *testing.T) {
	b := newEmptyBoard(t)
	logger := &testutil.MockLogger{}

	out, err := NewLoadBoard(b, logger).Execute(context.Background(), LoadBoardInput{Sample: true})

	require.NoError(t, err)
	assert.Equal(t, "sample", out.Source)
	assert.Equal(t, 6, out.Count)
	assert.Equal(t, 6, b.Len())
	require.Len(t, logger.Entries, 1)
	assert.Contains(t, logger.Entries[0].Msg, "loaded 6 jobs")
}

func TestLoadBoard_Execute_Empty(t *testing.T) {
	b := newEmptyBoard(t)

	out, err := NewLoadBoard(b, domain.NopLogger{}).Execute(context.Background(), LoadBoardInput{})

	require.NoError(t, err)
	assert.Equal(t, "empty", out.Source)
	assert.Zero(t, b.Len())
}

func TestLoadBoard_Execute_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`jobs:
  - id: a
    column: Repairing
    fields: {client: Sohar Port, description: Crane leak}
`), 0o644))
	b := newEmptyBoard(t)

	out, err := NewLoadBoard(b, domain.NopLogger{}).Execute(context.Background(), LoadBoardInput{Path: path, Sample: true})

	require.NoError(t, err)
	assert.Equal(t, path, out.Source)
	assert.Equal(t, []string{"a"}, stageIDs(b, domain.StageRepairing))
}

func TestLoadBoard_Execute_InvalidFileLoadsNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`jobs:
  - id: a
    column: Repairing
    fields: {client: Sohar Port, description: Crane leak}
  - id: b
    column: Archived
    fields: {client: X, description: Y}
`), 0o644))
	b := newEmptyBoard(t)

	_, err := NewLoadBoard(b, domain.NopLogger{}).Execute(context.Background(), LoadBoardInput{Path: path})

	assert.ErrorIs(t, err, domain.ErrInvalidColumn)
	assert.Zero(t, b.Len())
}
