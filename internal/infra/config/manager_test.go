package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bstc-oman/dispatch/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_WorkspaceConfigInfo(t *testing.T) {
	t.Run("returns info when file exists", func(t *testing.T) {
		workspaceDir := t.TempDir()
		configContent := "[log]\nlevel = \"debug\"\n"
		writeConfig(t, workspaceDir, configContent)

		info := NewManagerWithGlobalDir(workspaceDir, "").WorkspaceConfigInfo()

		assert.Equal(t, filepath.Join(workspaceDir, domain.ConfigFileName), info.Path)
		assert.Equal(t, configContent, info.Content)
		assert.True(t, info.Exists)
	})

	t.Run("returns info when file does not exist", func(t *testing.T) {
		workspaceDir := t.TempDir()

		info := NewManagerWithGlobalDir(workspaceDir, "").WorkspaceConfigInfo()

		assert.Equal(t, filepath.Join(workspaceDir, domain.ConfigFileName), info.Path)
		assert.Empty(t, info.Content)
		assert.False(t, info.Exists)
	})
}

func TestManager_GlobalConfigInfo(t *testing.T) {
	t.Run("empty global dir", func(t *testing.T) {
		info := NewManagerWithGlobalDir(t.TempDir(), "").GlobalConfigInfo()
		assert.Empty(t, info.Path)
		assert.False(t, info.Exists)
	})

	t.Run("existing file", func(t *testing.T) {
		globalDir := t.TempDir()
		writeConfig(t, globalDir, "[teams]\nnames = [\"A\"]\n")

		info := NewManagerWithGlobalDir(t.TempDir(), globalDir).GlobalConfigInfo()
		assert.True(t, info.Exists)
		assert.Contains(t, info.Content, "names")
	})
}

func TestManager_InitWorkspace(t *testing.T) {
	t.Run("creates directory and file", func(t *testing.T) {
		workspaceDir := filepath.Join(t.TempDir(), ".dispatch")
		manager := NewManagerWithGlobalDir(workspaceDir, "")

		path, err := manager.InitWorkspace(domain.NewDefaultConfig())
		require.NoError(t, err)

		assert.Equal(t, filepath.Join(workspaceDir, domain.ConfigFileName), path)
		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(content), "# dispatch configuration")
	})

	t.Run("refuses to overwrite", func(t *testing.T) {
		workspaceDir := t.TempDir()
		writeConfig(t, workspaceDir, "# mine\n")
		manager := NewManagerWithGlobalDir(workspaceDir, "")

		_, err := manager.InitWorkspace(domain.NewDefaultConfig())
		assert.ErrorIs(t, err, domain.ErrConfigExists)

		content, err := os.ReadFile(filepath.Join(workspaceDir, domain.ConfigFileName))
		require.NoError(t, err)
		assert.Equal(t, "# mine\n", string(content))
	})
}
