package domain

import (
	"context"
	"time"
)

// IDGenerator produces unique, monotonically increasing item IDs.
type IDGenerator interface {
	// NewID returns a fresh ID. IDs returned by one generator never repeat.
	NewID() string
}

// Logger records board activity. itemID is empty for board-wide entries.
type Logger interface {
	Info(itemID, category, msg string)
	Debug(itemID, category, msg string)
	Warn(itemID, category, msg string)
	Error(itemID, category, msg string)
}

// ConfigLoader loads configuration.
type ConfigLoader interface {
	// Load returns the merged configuration (workspace + global).
	Load() (*Config, error)

	// LoadGlobal returns only the global configuration.
	LoadGlobal() (*Config, error)
}

// ConfigInfo describes a config file on disk.
type ConfigInfo struct {
	Path    string
	Content string
	Exists  bool
}

// ConfigManager manages configuration files.
type ConfigManager interface {
	// WorkspaceConfigInfo returns information about the workspace config file.
	WorkspaceConfigInfo() ConfigInfo

	// GlobalConfigInfo returns information about the global config file.
	GlobalConfigInfo() ConfigInfo

	// InitWorkspace writes a commented template rendered from cfg into the workspace
	// directory. It fails with ErrConfigExists if the file is already there.
	InitWorkspace(cfg *Config) (path string, err error)
}

// TimeSource provides the wall clock shown in the dashboard header.
type TimeSource interface {
	// Now returns the current time and whether it came from the remote source.
	Now(ctx context.Context) (t time.Time, remote bool)
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) Info(_, _, _ string)  {}
func (NopLogger) Debug(_, _, _ string) {}
func (NopLogger) Warn(_, _, _ string)  {}
func (NopLogger) Error(_, _, _ string) {}
