package cli

import (
	"github.com/bstc-oman/dispatch/internal/app"
	"github.com/bstc-oman/dispatch/internal/usecase"
	"github.com/spf13/cobra"
)

// newTUICommand creates the tui command for launching the dashboard.
// Running `dispatch` without arguments does the same.
func newTUICommand(e *env) *cobra.Command {
	var seedPath string

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Launch the dashboard",
		Long: `Launch the interactive dashboard.

The board starts from --seed, the [seed] path in config.toml, or the
built-in sample jobs, in that order.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd, e, seedPath)
		},
	}

	cmd.Flags().StringVar(&seedPath, "seed", "", "YAML file with the initial jobs")

	return cmd
}

// runTUI seeds the board and launches the dashboard.
func runTUI(cmd *cobra.Command, e *env, seedPath string) error {
	if e.c != nil {
		if _, err := loadBoard(cmd, e.c, seedPath); err != nil {
			return err
		}
	}
	return launchTUIFunc(e.c)
}

// loadBoard fills the board from seedPath, falling back to the [seed] config.
func loadBoard(cmd *cobra.Command, c *app.Container, seedPath string) (*usecase.LoadBoardOutput, error) {
	in := usecase.LoadBoardInput{
		Path:   c.AppConfig.Seed.Path,
		Sample: c.AppConfig.Seed.Sample,
	}
	if seedPath != "" {
		in.Path = seedPath
	}
	return c.LoadBoardUseCase().Execute(cmd.Context(), in)
}
