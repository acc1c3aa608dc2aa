package domain

import (
	"bytes"
	_ "embed"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"
	"time"
)

//go:embed config_template.toml
var configTemplateContent string

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings []string    `toml:"-"`
	Teams    TeamsConfig `toml:"teams"`
	Board    BoardConfig `toml:"board"`
	Seed     SeedConfig  `toml:"seed"`
	Clock    ClockConfig `toml:"clock"`
	Log      LogConfig   `toml:"log"`
}

// BoardConfig holds board layout settings from [board] section.
type BoardConfig struct {
	Columns       []ColumnConfig `toml:"columns,omitempty"`        // Ordered columns (default: the four stages)
	Fields        []FieldDef     `toml:"fields,omitempty"`         // Editable fields (default: job schema)
	DefaultColumn string         `toml:"default_column,omitempty"` // Column new jobs land in
}

// ColumnConfig is one entry of [board].columns.
type ColumnConfig struct {
	ID    string `toml:"id"`
	Label string `toml:"label"`
}

// TeamsConfig holds maintenance team names from [teams] section.
type TeamsConfig struct {
	Names []string `toml:"names,omitempty"`
}

// SeedConfig holds settings for the initial board contents from [seed] section.
type SeedConfig struct {
	Path   string `toml:"path,omitempty"`   // YAML seed file; empty = built-in sample jobs
	Sample bool   `toml:"sample,omitempty"` // Load built-in sample jobs when Path is empty
}

// ClockConfig holds settings for the header clock from [clock] section.
type ClockConfig struct {
	URL     string        `toml:"url,omitempty"`     // Remote time endpoint; empty = local clock only
	Timeout time.Duration `toml:"timeout,omitempty"` // Remote fetch timeout
}

// LogConfig holds logging settings from [log] section.
type LogConfig struct {
	Level string `toml:"level,omitempty"` // Log level: debug, info, warn, error
}

// Directory and file names.
const (
	AppDirName       = "dispatch"    // Global config directory name
	WorkspaceDirName = ".dispatch"   // Workspace data directory name
	ConfigFileName   = "config.toml" // Config file name
	LogFileName      = "dispatch.log"
)

// Default configuration values.
const (
	DefaultLogLevel      = "info"
	DefaultClockTimeout  = 3 * time.Second
	DefaultColumnID      = string(StageDispatched)
	DefaultClockLocation = "Asia/Muscat"
)

// WorkspaceDir returns the workspace data directory for a working directory.
func WorkspaceDir(root string) string {
	return filepath.Join(root, WorkspaceDirName)
}

// WorkspaceConfigPath returns the workspace config path.
func WorkspaceConfigPath(root string) string {
	return filepath.Join(WorkspaceDir(root), ConfigFileName)
}

// GlobalDir returns the global config directory path.
// configHome is typically XDG_CONFIG_HOME or ~/.config (resolved by caller).
func GlobalDir(configHome string) string {
	return filepath.Join(configHome, AppDirName)
}

// GlobalConfigPath returns the global config path.
func GlobalConfigPath(configHome string) string {
	return filepath.Join(GlobalDir(configHome), ConfigFileName)
}

// LogPath returns the log file path inside a data directory.
func LogPath(dataDir string) string {
	return filepath.Join(dataDir, "logs", LogFileName)
}

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Board: BoardConfig{
			DefaultColumn: DefaultColumnID,
		},
		Teams: TeamsConfig{
			Names: []string{"Team Alpha", "Team Beta", "Team Gamma"},
		},
		Seed: SeedConfig{
			Sample: true,
		},
		Clock: ClockConfig{
			Timeout: DefaultClockTimeout,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// Columns returns the configured board columns.
func (c *Config) Columns() []Column[Stage] {
	return ColumnsFromConfig(c.Board.Columns)
}

// Schema returns the configured item schema.
func (c *Config) Schema() Schema {
	return SchemaFromConfig(c.Board.Fields)
}

// templateData holds all data for rendering the config template.
type templateData struct {
	DefaultColumn string
	LogLevel      string
	Teams         string
	Timeout       string
	Columns       []ColumnConfig
}

// RenderConfigTemplate renders a commented config file from the given Config.
func RenderConfigTemplate(cfg *Config) (string, error) {
	cols := cfg.Board.Columns
	if len(cols) == 0 {
		for _, c := range DefaultStages() {
			cols = append(cols, ColumnConfig{ID: string(c.ID), Label: c.Label})
		}
	}
	quoted := make([]string, 0, len(cfg.Teams.Names))
	for _, n := range cfg.Teams.Names {
		quoted = append(quoted, fmt.Sprintf("%q", n))
	}

	data := templateData{
		DefaultColumn: cfg.Board.DefaultColumn,
		LogLevel:      cfg.Log.Level,
		Teams:         strings.Join(quoted, ", "),
		Timeout:       cfg.Clock.Timeout.String(),
		Columns:       cols,
	}

	tmpl, err := template.New("config").Delims("<<", ">>").Parse(configTemplateContent)
	if err != nil {
		return "", fmt.Errorf("parse config template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute config template: %w", err)
	}
	return buf.String(), nil
}
