// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/bstc-oman/dispatch/internal/domain"
	"github.com/pelletier/go-toml/v2"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	workspaceDir  string // Path to ./.dispatch directory
	globalConfDir string // Path to global config directory (e.g., ~/.config/dispatch)
}

// NewLoader creates a new Loader.
func NewLoader(workspaceDir string) *Loader {
	return &Loader{
		workspaceDir:  workspaceDir,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config directory.
// This is useful for testing.
func NewLoaderWithGlobalDir(workspaceDir, globalConfDir string) *Loader {
	return &Loader{
		workspaceDir:  workspaceDir,
		globalConfDir: globalConfDir,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalDir(configHome)
}

// Load returns the merged configuration (workspace + global).
// Workspace config takes precedence over global config; keys absent from both keep
// their defaults.
func (l *Loader) Load() (*domain.Config, error) {
	cfg := domain.NewDefaultConfig()

	if l.globalConfDir != "" {
		if err := l.applyFile(cfg, filepath.Join(l.globalConfDir, domain.ConfigFileName), "global"); err != nil {
			return nil, err
		}
	}
	if l.workspaceDir != "" {
		if err := l.applyFile(cfg, filepath.Join(l.workspaceDir, domain.ConfigFileName), "workspace"); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// LoadGlobal returns only the global configuration applied over the defaults.
func (l *Loader) LoadGlobal() (*domain.Config, error) {
	if l.globalConfDir == "" {
		return nil, os.ErrNotExist
	}
	cfg := domain.NewDefaultConfig()
	path := filepath.Join(l.globalConfDir, domain.ConfigFileName)
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	if err := l.applyFile(cfg, path, "global"); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyFile applies the file at path onto cfg. A missing file is not an error.
func (l *Loader) applyFile(cfg *domain.Config, path, source string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s config: %w", source, err)
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parse %s config %s: %w", source, path, err)
	}

	warnings := applyRaw(cfg, raw)
	for _, w := range warnings {
		cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("%s config: %s", source, w))
	}
	return nil
}

// applyRaw copies every recognized key of raw into cfg and returns warnings for the rest.
func applyRaw(cfg *domain.Config, raw map[string]any) []string {
	var warnings []string

	for section, value := range raw {
		m, ok := value.(map[string]any)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
			continue
		}
		switch section {
		case "board":
			warnings = append(warnings, applyBoard(&cfg.Board, m)...)
		case "teams":
			for k, v := range m {
				switch k {
				case "names":
					cfg.Teams.Names = stringSlice(v)
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [teams]: %s", k))
				}
			}
		case "seed":
			for k, v := range m {
				switch k {
				case "path":
					if s, ok := v.(string); ok {
						cfg.Seed.Path = s
					}
				case "sample":
					if b, ok := v.(bool); ok {
						cfg.Seed.Sample = b
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [seed]: %s", k))
				}
			}
		case "clock":
			for k, v := range m {
				switch k {
				case "url":
					if s, ok := v.(string); ok {
						cfg.Clock.URL = s
					}
				case "timeout":
					d, err := parseDuration(v)
					if err != nil {
						warnings = append(warnings, fmt.Sprintf("invalid [clock] timeout: %v", err))
						continue
					}
					cfg.Clock.Timeout = d
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [clock]: %s", k))
				}
			}
		case "log":
			for k, v := range m {
				switch k {
				case "level":
					if s, ok := v.(string); ok {
						cfg.Log.Level = s
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [log]: %s", k))
				}
			}
		default:
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
		}
	}

	sort.Strings(warnings)
	return warnings
}

func applyBoard(b *domain.BoardConfig, m map[string]any) []string {
	var warnings []string
	for k, v := range m {
		switch k {
		case "default_column":
			if s, ok := v.(string); ok {
				b.DefaultColumn = s
			}
		case "columns":
			cols, w := parseColumns(v)
			warnings = append(warnings, w...)
			if len(cols) > 0 {
				b.Columns = cols
			}
		case "fields":
			fields, w := parseFields(v)
			warnings = append(warnings, w...)
			if len(fields) > 0 {
				b.Fields = fields
			}
		default:
			warnings = append(warnings, fmt.Sprintf("unknown key in [board]: %s", k))
		}
	}
	return warnings
}

func parseColumns(v any) ([]domain.ColumnConfig, []string) {
	list, _ := v.([]any)
	var cols []domain.ColumnConfig
	var warnings []string
	for i, entry := range list {
		m, ok := entry.(map[string]any)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("[board] columns[%d] is not a table", i))
			continue
		}
		var c domain.ColumnConfig
		for k, val := range m {
			s, _ := val.(string)
			switch k {
			case "id":
				c.ID = s
			case "label":
				c.Label = s
			default:
				warnings = append(warnings, fmt.Sprintf("unknown key in [board] columns[%d]: %s", i, k))
			}
		}
		if strings.TrimSpace(c.ID) == "" {
			warnings = append(warnings, fmt.Sprintf("[board] columns[%d] has no id", i))
			continue
		}
		cols = append(cols, c)
	}
	return cols, warnings
}

func parseFields(v any) ([]domain.FieldDef, []string) {
	list, _ := v.([]any)
	var fields []domain.FieldDef
	var warnings []string
	for i, entry := range list {
		m, ok := entry.(map[string]any)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("[board] fields[%d] is not a table", i))
			continue
		}
		var f domain.FieldDef
		for k, val := range m {
			switch k {
			case "name":
				f.Name, _ = val.(string)
			case "label":
				f.Label, _ = val.(string)
			case "required":
				f.Required, _ = val.(bool)
			case "multiline":
				f.Multiline, _ = val.(bool)
			default:
				warnings = append(warnings, fmt.Sprintf("unknown key in [board] fields[%d]: %s", i, k))
			}
		}
		if strings.TrimSpace(f.Name) == "" {
			warnings = append(warnings, fmt.Sprintf("[board] fields[%d] has no name", i))
			continue
		}
		fields = append(fields, f)
	}
	return fields, warnings
}

func stringSlice(v any) []string {
	list, _ := v.([]any)
	out := make([]string, 0, len(list))
	for _, e := range list {
		if s, ok := e.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// parseDuration accepts a duration string ("3s", "500ms") or a number of seconds.
func parseDuration(v any) (time.Duration, error) {
	switch x := v.(type) {
	case string:
		d, err := time.ParseDuration(x)
		if err != nil {
			return 0, err
		}
		if d <= 0 {
			return 0, fmt.Errorf("must be positive: %s", x)
		}
		return d, nil
	case int64:
		if x <= 0 {
			return 0, fmt.Errorf("must be positive: %d", x)
		}
		return time.Duration(x) * time.Second, nil
	case float64:
		if x <= 0 {
			return 0, fmt.Errorf("must be positive: %g", x)
		}
		return time.Duration(x * float64(time.Second)), nil
	default:
		return 0, fmt.Errorf("unsupported value %v", v)
	}
}
