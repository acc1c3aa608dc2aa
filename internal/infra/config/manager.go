package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bstc-oman/dispatch/internal/domain"
)

// Ensure Manager implements domain.ConfigManager.
var _ domain.ConfigManager = (*Manager)(nil)

// Manager manages configuration files.
type Manager struct {
	workspaceDir  string // Path to ./.dispatch directory
	globalConfDir string // Path to global config directory (e.g., ~/.config/dispatch)
}

// NewManager creates a new Manager.
func NewManager(workspaceDir string) *Manager {
	return &Manager{
		workspaceDir:  workspaceDir,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewManagerWithGlobalDir creates a new Manager with a custom global config directory.
// This is useful for testing.
func NewManagerWithGlobalDir(workspaceDir, globalConfDir string) *Manager {
	return &Manager{
		workspaceDir:  workspaceDir,
		globalConfDir: globalConfDir,
	}
}

// WorkspaceConfigInfo returns information about the workspace config file.
func (m *Manager) WorkspaceConfigInfo() domain.ConfigInfo {
	return configInfo(filepath.Join(m.workspaceDir, domain.ConfigFileName))
}

// GlobalConfigInfo returns information about the global config file.
func (m *Manager) GlobalConfigInfo() domain.ConfigInfo {
	if m.globalConfDir == "" {
		return domain.ConfigInfo{}
	}
	return configInfo(filepath.Join(m.globalConfDir, domain.ConfigFileName))
}

func configInfo(path string) domain.ConfigInfo {
	content, err := os.ReadFile(path)
	if err != nil {
		return domain.ConfigInfo{Path: path}
	}
	return domain.ConfigInfo{
		Path:    path,
		Content: string(content),
		Exists:  true,
	}
}

// InitWorkspace creates the workspace config file from the default template.
func (m *Manager) InitWorkspace(cfg *domain.Config) (string, error) {
	path := filepath.Join(m.workspaceDir, domain.ConfigFileName)
	if _, err := os.Stat(path); err == nil {
		return path, domain.ErrConfigExists
	}

	content, err := domain.RenderConfigTemplate(cfg)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(m.workspaceDir, 0o750); err != nil {
		return "", fmt.Errorf("create workspace directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return "", fmt.Errorf("write config: %w", err)
	}
	return path, nil
}
