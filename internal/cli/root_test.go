package cli

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/bstc-oman/dispatch/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockLaunchTUI replaces launchTUIFunc for the duration of the test and
// returns a pointer to the container it was called with.
func mockLaunchTUI(t *testing.T) (called *bool, got **app.Container) {
	t.Helper()
	originalFunc := launchTUIFunc
	t.Cleanup(func() {
		launchTUIFunc = originalFunc
	})

	var c *app.Container
	var wasCalled bool
	launchTUIFunc = func(container *app.Container) error {
		wasCalled = true
		c = container
		return nil
	}
	return &wasCalled, &c
}

func TestNewRootCommand_NoArgs_LaunchesTUI(t *testing.T) {
	called, _ := mockLaunchTUI(t)

	// Create root command without a container factory (not used in this test)
	root := NewRootCommand(nil, "test-version")
	_, err := execute(t, root)

	assert.NoError(t, err)
	assert.True(t, *called, "launchTUIFunc should be called when no arguments are provided")
}

func TestNewRootCommand_WithHelp_ShowsHelp(t *testing.T) {
	called, _ := mockLaunchTUI(t)

	root := NewRootCommand(nil, "test-version")
	out, err := execute(t, root, "--help")

	assert.NoError(t, err)
	assert.False(t, *called, "launchTUIFunc should NOT be called when --help is provided")
	assert.Contains(t, out, "Board Commands:")
	assert.Contains(t, out, "Setup Commands:")
	assert.Contains(t, out, "replay")
}

func TestNewRootCommand_Version(t *testing.T) {
	root := NewRootCommand(nil, "1.2.3")
	out, err := execute(t, root, "--version")

	require.NoError(t, err)
	assert.Contains(t, out, "1.2.3")
}

func TestNewRootCommand_GlobalFlagsReachContainer(t *testing.T) {
	called, got := mockLaunchTUI(t)
	isolateGlobalConfig(t)
	configDir := filepath.Join(t.TempDir(), "ws")

	var gotCfg app.Config
	factory := func(cfg app.Config) (*app.Container, error) {
		gotCfg = cfg
		return app.New(cfg)
	}

	root := NewRootCommand(factory, "test")
	_, err := execute(t, root, "--config-dir", configDir, "--log-level", "debug")

	require.NoError(t, err)
	require.True(t, *called)
	assert.Equal(t, configDir, gotCfg.WorkspaceDir)
	assert.Equal(t, "debug", gotCfg.LogLevel)
	require.NotNil(t, *got)
	assert.Equal(t, 6, (*got).Board.Len(), "the dashboard opens on the sample jobs")
}

func TestNewRootCommand_SeedFlag(t *testing.T) {
	_, got := mockLaunchTUI(t)
	isolateGlobalConfig(t)
	dir := t.TempDir()
	seedPath := writeFile(t, dir, "jobs.yaml", testSeed)

	root := NewRootCommand(app.New, "test")
	_, err := execute(t, root, "--config-dir", filepath.Join(dir, ".dispatch"), "tui", "--seed", seedPath)

	require.NoError(t, err)
	require.NotNil(t, *got)
	assert.Equal(t, 2, (*got).Board.Len())
	_, ok := (*got).Board.Get("10")
	assert.True(t, ok)
}

func TestNewRootCommand_PrintsConfigWarnings(t *testing.T) {
	mockLaunchTUI(t)
	isolateGlobalConfig(t)
	configDir := t.TempDir()
	writeWorkspaceConfig(t, configDir, "[teams]\ncolour = \"red\"\n")

	root := NewRootCommand(app.New, "test")
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs([]string{"--config-dir", configDir, "show"})

	require.NoError(t, root.Execute())
	assert.Contains(t, stderr.String(), "Warning: workspace config: unknown key in [teams]: colour")
	assert.Contains(t, stdout.String(), "Total: 6")
}

func TestNewRootCommand_ContainerError(t *testing.T) {
	called, _ := mockLaunchTUI(t)
	boom := errors.New("boom")

	root := NewRootCommand(func(app.Config) (*app.Container, error) { return nil, boom }, "test")
	_, err := execute(t, root)

	require.ErrorIs(t, err, boom)
	assert.False(t, *called)
}

func TestNewRootCommand_TemplateSkipsContainer(t *testing.T) {
	root := NewRootCommand(func(app.Config) (*app.Container, error) {
		return nil, errors.New("broken config")
	}, "test")

	out, err := execute(t, root, "config", "template")

	require.NoError(t, err)
	assert.Contains(t, out, "[board]")
}
