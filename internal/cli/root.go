// Package cli provides the command-line interface for dispatch.
package cli

import (
	"fmt"
	"os"

	"github.com/bstc-oman/dispatch/internal/app"
	"github.com/bstc-oman/dispatch/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// Command group IDs.
const (
	groupSetup = "setup"
	groupBoard = "board"
)

// ContainerFunc builds the container once the global flags are known.
type ContainerFunc func(cfg app.Config) (*app.Container, error)

// launchTUIFunc is a function variable for launching the TUI, allowing it to be mocked in tests.
var launchTUIFunc = launchTUI

// env carries the container from the root command to its subcommands.
type env struct {
	newContainer ContainerFunc
	c            *app.Container
	configDir    string
	logLevel     string
}

// setup builds the container unless one is already set.
func (e *env) setup() error {
	if e.c != nil || e.newContainer == nil {
		return nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get current directory: %w", err)
	}
	cfg := app.NewConfig(cwd)
	if e.configDir != "" {
		cfg.WorkspaceDir = e.configDir
	}
	cfg.LogLevel = e.logLevel

	c, err := e.newContainer(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	e.c = c
	return nil
}

// NewRootCommand creates the root command for dispatch.
// newContainer is called after flag parsing; a nil function leaves the container unset (e.g. in tests).
func NewRootCommand(newContainer ContainerFunc, version string) *cobra.Command {
	e := &env{newContainer: newContainer}
	var seedPath string

	root := &cobra.Command{
		Use:   "dispatch",
		Short: "Maintenance dispatch job board",
		Long: `dispatch is a terminal job board for a breakdown maintenance service.

Service jobs move through four stages: Dispatched, Inspection, Repairing
and Completed. Running dispatch without a subcommand opens the dashboard.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// The template is rendered from defaults and must work with a broken config
			if cmd.Name() == "template" {
				return nil
			}
			if err := e.setup(); err != nil {
				return err
			}
			if e.c == nil {
				return nil
			}
			for _, w := range e.c.AppConfig.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if e.c == nil {
				return nil
			}
			return e.c.Close()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd, e, seedPath)
		},
	}

	root.PersistentFlags().StringVar(&e.configDir, "config-dir", "", "Workspace directory holding config.toml and logs (default ./.dispatch)")
	root.PersistentFlags().StringVar(&e.logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides [log] level)")
	root.Flags().StringVar(&seedPath, "seed", "", "YAML file with the initial jobs")

	// Define command groups
	root.AddGroup(
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
		&cobra.Group{ID: groupBoard, Title: "Board Commands:"},
	)

	configCmd := newConfigCommand(e)
	configCmd.GroupID = groupSetup

	tuiCmd := newTUICommand(e)
	tuiCmd.GroupID = groupBoard

	showCmd := newShowCommand(e)
	showCmd.GroupID = groupBoard

	replayCmd := newReplayCommand(e)
	replayCmd.GroupID = groupBoard

	root.AddCommand(
		configCmd,
		tuiCmd,
		showCmd,
		replayCmd,
	)

	return root
}

// launchTUI runs the dashboard until the user quits.
func launchTUI(c *app.Container) error {
	p := tea.NewProgram(tui.New(c), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
