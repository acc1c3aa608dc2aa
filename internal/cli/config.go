package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/bstc-oman/dispatch/internal/domain"
	"github.com/bstc-oman/dispatch/internal/usecase"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

// newConfigCommand creates the config command.
func newConfigCommand(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long:  `Manage dispatch configuration files and settings.`,
		// No RunE: shows subcommand list when called without arguments
	}

	cmd.AddCommand(newConfigShowCommand(e))
	cmd.AddCommand(newConfigTemplateCommand())
	cmd.AddCommand(newConfigInitCommand(e))

	return cmd
}

// newConfigShowCommand creates the config show subcommand.
func newConfigShowCommand(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display effective configuration",
		Long: `Display effective configuration after merging all sources.

Shows which config files were loaded, any warnings, and the final merged configuration.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := e.c.ShowConfigUseCase().Execute(cmd.Context(), usecase.ShowConfigInput{})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()

			_, _ = fmt.Fprintln(w, "[Loaded from]")
			for _, info := range []domain.ConfigInfo{out.GlobalConfig, out.WorkspaceConfig} {
				if info.Exists {
					_, _ = fmt.Fprintf(w, "- %s\n", info.Path)
				} else {
					_, _ = fmt.Fprintf(w, "- %s (not found)\n", info.Path)
				}
			}

			if len(out.Effective.Warnings) > 0 {
				_, _ = fmt.Fprintln(w)
				_, _ = fmt.Fprintln(w, "[Warnings]")
				for _, warn := range out.Effective.Warnings {
					_, _ = fmt.Fprintf(w, "- %s\n", warn)
				}
			}

			_, _ = fmt.Fprintln(w)
			_, _ = fmt.Fprintln(w, "[Effective Config]")
			return formatEffectiveConfig(w, out.Effective)
		},
	}

	return cmd
}

// formatEffectiveConfig formats the effective config in TOML format.
// Default columns and fields are spelled out so the output shows the board actually in use.
func formatEffectiveConfig(w io.Writer, cfg *domain.Config) error {
	columns := make([]domain.ColumnConfig, 0, len(cfg.Columns()))
	for _, c := range cfg.Columns() {
		columns = append(columns, domain.ColumnConfig{ID: string(c.ID), Label: c.Label})
	}

	clock := map[string]any{"timeout": cfg.Clock.Timeout.String()}
	if cfg.Clock.URL != "" {
		clock["url"] = cfg.Clock.URL
	}

	output := map[string]any{
		"board": map[string]any{
			"default_column": cfg.Board.DefaultColumn,
			"columns":        columns,
			"fields":         cfg.Schema().Fields,
		},
		"teams": cfg.Teams,
		"seed":  cfg.Seed,
		"clock": clock,
		"log":   cfg.Log,
	}

	if err := toml.NewEncoder(w).Encode(output); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// newConfigTemplateCommand creates the config template subcommand.
func newConfigTemplateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Output configuration template",
		Long: `Output a configuration file template to stdout.

The template is rendered from the defaults and does not read any
config file, so it works even if existing files are broken.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := usecase.NewShowConfigTemplate().Execute(cmd.Context(), usecase.ShowConfigTemplateInput{})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), out.Template)
			return nil
		},
	}

	return cmd
}

// newConfigInitCommand creates the config init subcommand.
func newConfigInitCommand(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate configuration file template",
		Long: `Generate the workspace configuration file at .dispatch/config.toml
(or under --config-dir). Values from the global config are carried over.

Error conditions:
- Target file already exists: error`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Without a global file the template uses the defaults
			cfg, err := e.c.ConfigLoader.LoadGlobal()
			if err != nil && !errors.Is(err, os.ErrNotExist) {
				return err
			}

			out, err := e.c.InitConfigUseCase().Execute(cmd.Context(), usecase.InitConfigInput{
				Config: cfg,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created config file: %s\n", out.Path)
			return nil
		},
	}

	return cmd
}
