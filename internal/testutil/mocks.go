// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bstc-oman/dispatch/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// MockIDGenerator is a test double for domain.IDGenerator.
// It returns Prefix followed by 1, 2, 3, ...
type MockIDGenerator struct {
	Prefix string
	N      int
}

// Ensure MockIDGenerator implements domain.IDGenerator interface.
var _ domain.IDGenerator = (*MockIDGenerator)(nil)

// NewID returns the next sequential ID.
func (m *MockIDGenerator) NewID() string {
	m.N++
	return fmt.Sprintf("%s%d", m.Prefix, m.N)
}

// LogEntry is a single line recorded by MockLogger.
type LogEntry struct {
	Level    string
	ItemID   string
	Category string
	Msg      string
}

// MockLogger is a test double for domain.Logger that records every call.
type MockLogger struct {
	Entries []LogEntry
	mu      sync.Mutex
}

// Ensure MockLogger implements domain.Logger interface.
var _ domain.Logger = (*MockLogger)(nil)

func (m *MockLogger) record(level, itemID, category, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries = append(m.Entries, LogEntry{Level: level, ItemID: itemID, Category: category, Msg: msg})
}

// Info records an info entry.
func (m *MockLogger) Info(itemID, category, msg string) { m.record("INFO", itemID, category, msg) }

// Debug records a debug entry.
func (m *MockLogger) Debug(itemID, category, msg string) { m.record("DEBUG", itemID, category, msg) }

// Warn records a warn entry.
func (m *MockLogger) Warn(itemID, category, msg string) { m.record("WARN", itemID, category, msg) }

// Error records an error entry.
func (m *MockLogger) Error(itemID, category, msg string) { m.record("ERROR", itemID, category, msg) }

// ByLevel returns the recorded entries of a level.
func (m *MockLogger) ByLevel(level string) []LogEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []LogEntry
	for _, e := range m.Entries {
		if e.Level == level {
			out = append(out, e)
		}
	}
	return out
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config       *domain.Config
	GlobalConfig *domain.Config
	LoadErr      error
	GlobalErr    error
}

// NewMockConfigLoader creates a new MockConfigLoader with default config.
func NewMockConfigLoader() *MockConfigLoader {
	return &MockConfigLoader{
		Config: domain.NewDefaultConfig(),
	}
}

// Ensure MockConfigLoader implements domain.ConfigLoader interface.
var _ domain.ConfigLoader = (*MockConfigLoader)(nil)

// Load returns the configured config or error.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.Config, nil
}

// LoadGlobal returns the configured config or error.
func (m *MockConfigLoader) LoadGlobal() (*domain.Config, error) {
	if m.GlobalErr != nil {
		return nil, m.GlobalErr
	}
	if m.GlobalConfig != nil {
		return m.GlobalConfig, nil
	}
	return m.Config, nil
}

// MockConfigManager is a test double for domain.ConfigManager.
type MockConfigManager struct {
	InitErr    error
	InitConfig *domain.Config
	Workspace  domain.ConfigInfo
	Global     domain.ConfigInfo
	InitCalled bool
}

// Ensure MockConfigManager implements domain.ConfigManager interface.
var _ domain.ConfigManager = (*MockConfigManager)(nil)

// WorkspaceConfigInfo returns the configured workspace info.
func (m *MockConfigManager) WorkspaceConfigInfo() domain.ConfigInfo {
	return m.Workspace
}

// GlobalConfigInfo returns the configured global info.
func (m *MockConfigManager) GlobalConfigInfo() domain.ConfigInfo {
	return m.Global
}

// InitWorkspace records the call and returns the workspace path or the configured error.
func (m *MockConfigManager) InitWorkspace(cfg *domain.Config) (string, error) {
	m.InitCalled = true
	m.InitConfig = cfg
	if m.InitErr != nil {
		return "", m.InitErr
	}
	return m.Workspace.Path, nil
}

// MockTimeSource is a test double for domain.TimeSource.
type MockTimeSource struct {
	Time   time.Time
	Remote bool
}

// Ensure MockTimeSource implements domain.TimeSource interface.
var _ domain.TimeSource = (*MockTimeSource)(nil)

// Now returns the configured time.
func (m *MockTimeSource) Now(_ context.Context) (time.Time, bool) {
	return m.Time, m.Remote
}
