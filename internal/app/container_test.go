package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bstc-oman/dispatch/internal/domain"
	"github.com/bstc-oman/dispatch/internal/infra/seed"
	"github.com/bstc-oman/dispatch/internal/testutil"
	"github.com/bstc-oman/dispatch/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

func newTestContainer(t *testing.T, cfg *domain.Config, logger domain.Logger) *Container {
	t.Helper()
	c, err := NewWithDeps(NewConfig(t.TempDir()), cfg, &testutil.MockClock{NowTime: testNow}, &testutil.MockIDGenerator{Prefix: "n"}, logger)
	require.NoError(t, err)
	return c
}

func TestNewWithDeps_DefaultBoard(t *testing.T) {
	c := newTestContainer(t, domain.NewDefaultConfig(), nil)

	assert.Equal(t, domain.DefaultStages(), c.Board.Columns())
	assert.Equal(t, domain.StageDispatched, c.Board.ActiveColumn())
	assert.Equal(t, domain.DefaultJobSchema(), c.Board.Schema())
}

func TestNewWithDeps_DefaultColumn(t *testing.T) {
	cfg := domain.NewDefaultConfig()
	cfg.Board.DefaultColumn = "Repairing"

	c := newTestContainer(t, cfg, nil)

	assert.Equal(t, domain.StageRepairing, c.Board.ActiveColumn())
	assert.Empty(t, cfg.Warnings)
}

func TestNewWithDeps_UnknownDefaultColumnWarns(t *testing.T) {
	cfg := domain.NewDefaultConfig()
	cfg.Board.DefaultColumn = "Archived"

	c := newTestContainer(t, cfg, nil)

	assert.Equal(t, domain.StageDispatched, c.Board.ActiveColumn())
	require.Len(t, cfg.Warnings, 1)
	assert.Contains(t, cfg.Warnings[0], "Archived")
}

func TestNewWithDeps_DuplicateColumns(t *testing.T) {
	cfg := domain.NewDefaultConfig()
	cfg.Board.Columns = []domain.ColumnConfig{{ID: "a"}, {ID: "a"}}

	_, err := NewWithDeps(NewConfig(t.TempDir()), cfg, domain.RealClock{}, &testutil.MockIDGenerator{}, nil)

	assert.ErrorIs(t, err, domain.ErrDuplicateColumn)
}

func TestContainer_LogsBoardEvents(t *testing.T) {
	logger := &testutil.MockLogger{}
	c := newTestContainer(t, domain.NewDefaultConfig(), logger)
	ctx := context.Background()

	_, err := c.LoadBoardUseCase().Execute(ctx, usecase.LoadBoardInput{Sample: true})
	require.NoError(t, err)
	_, err = c.MoveJobUseCase().Execute(ctx, usecase.MoveJobInput{ID: "1", To: "Completed"})
	require.NoError(t, err)
	_, err = c.EditJobUseCase().Execute(ctx, usecase.EditJobInput{ID: "2", Field: domain.FieldClient, Value: ""})
	require.Error(t, err)

	info := logger.ByLevel("INFO")
	require.Len(t, info, 2)
	assert.Equal(t, "1", info[1].ItemID)
	assert.Equal(t, "moved", info[1].Category)
	assert.Equal(t, "Dispatched -> Completed", info[1].Msg)

	warn := logger.ByLevel("WARN")
	require.Len(t, warn, 1)
	assert.Equal(t, "edited", warn[0].Category)
	assert.Contains(t, warn[0].Msg, "client cannot be empty")
}

func TestContainer_ReplayRoutesMoveAndEdit(t *testing.T) {
	logger := &testutil.MockLogger{}
	c := newTestContainer(t, domain.NewDefaultConfig(), logger)
	ctx := context.Background()
	_, err := c.LoadBoardUseCase().Execute(ctx, usecase.LoadBoardInput{Sample: true})
	require.NoError(t, err)
	value := "Compressor replaced"

	out, err := c.ReplayUseCase().Execute(ctx, usecase.ReplayInput{Script: &seed.Script{Steps: []seed.Step{
		{Op: seed.OpMove, ID: "5", To: "repairing"},
		{Op: seed.OpMove, ID: "5", To: "Repairing"},
		{Op: seed.OpEdit, ID: "5", Field: domain.FieldDescription, Value: &value},
	}}})

	require.NoError(t, err)
	require.Len(t, out.Results, 3)
	assert.Zero(t, out.Failed)
	assert.Equal(t, "moved 5 from Dispatched to Repairing", out.Results[0].Detail)
	assert.Equal(t, "5 already in Repairing", out.Results[1].Detail)
	assert.Equal(t, "set description of 5", out.Results[2].Detail)
	job, _ := c.Board.Get("5")
	assert.Equal(t, value, job.Field(domain.FieldDescription))
}

func TestContainer_DragUsesEditGuard(t *testing.T) {
	c := newTestContainer(t, domain.NewDefaultConfig(), nil)
	_, err := c.LoadBoardUseCase().Execute(context.Background(), usecase.LoadBoardInput{Sample: true})
	require.NoError(t, err)
	job, _ := c.Board.Get("3")

	c.Edit.StartEdit("3", domain.FieldClient, job.Field(domain.FieldClient))

	assert.ErrorIs(t, c.Drag.BeginDrag(job), domain.ErrItemBeingEdited)
}

func TestContainer_TimeSourceIsLocal(t *testing.T) {
	c := newTestContainer(t, domain.NewDefaultConfig(), nil)

	got, remote := c.TimeSource.Now(context.Background())

	assert.False(t, remote)
	assert.True(t, testNow.Equal(got))
}

func TestNew_ReadsWorkspaceConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	workDir := t.TempDir()
	cfg := NewConfig(workDir)
	require.NoError(t, os.MkdirAll(cfg.WorkspaceDir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(cfg.WorkspaceDir, domain.ConfigFileName), []byte(`
[board]
default_column = "Inspection"

[log]
level = "debug"
`), 0o600))

	c, err := New(cfg)
	require.NoError(t, err)
	defer func() { _ = c.Close() }()

	assert.Equal(t, domain.StageInspection, c.Board.ActiveColumn())
	assert.NotNil(t, c.ConfigManager)

	_, err = c.AddJobUseCase().Execute(context.Background(), usecase.AddJobInput{
		Fields: map[string]string{domain.FieldClient: "PDO", domain.FieldDescription: "Pump"},
	})
	require.NoError(t, err)
	content, err := os.ReadFile(domain.LogPath(cfg.WorkspaceDir))
	require.NoError(t, err)
	assert.Contains(t, string(content), "[added] added to Inspection")
}
