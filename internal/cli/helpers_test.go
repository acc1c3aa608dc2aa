package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/bstc-oman/dispatch/internal/app"
	"github.com/bstc-oman/dispatch/internal/domain"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

// isolateGlobalConfig points the global config at an empty directory.
func isolateGlobalConfig(t *testing.T) string {
	t.Helper()
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	return configHome
}

// newTestEnv creates an env with a real container in a temporary workspace.
func newTestEnv(t *testing.T) *env {
	t.Helper()
	isolateGlobalConfig(t)

	c, err := app.New(app.NewConfig(t.TempDir()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	return &env{c: c}
}

// execute runs cmd with args and returns stdout.
func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func writeWorkspaceConfig(t *testing.T, workspaceDir, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(workspaceDir, 0o750))
	writeFile(t, workspaceDir, domain.ConfigFileName, content)
}

const testSeed = `jobs:
  - id: "10"
    column: Inspection
    fields:
      client: Nizwa Dairy
      description: Chiller not cooling
      team: Team Beta
  - id: "11"
    column: Completed
    fields:
      client: Sur Fisheries
      description: Freezer door seal
`
