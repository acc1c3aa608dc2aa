package cli

import (
	"errors"

	"github.com/bstc-oman/dispatch/internal/board"
	"github.com/bstc-oman/dispatch/internal/domain"
	"github.com/bstc-oman/dispatch/internal/infra/seed"
	"github.com/bstc-oman/dispatch/internal/usecase"
	"github.com/spf13/cobra"
)

// newShowCommand creates the show command.
func newShowCommand(e *env) *cobra.Command {
	var opts struct {
		seedPath string
		column   string
		asJSON   bool
		asYAML   bool
		kanban   bool
	}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the board",
		Long: `Print the seeded board with per-column counts.

Output formats:
  (default)  Columns and cards as text
  --json     Board view as JSON
  --yaml     Jobs as a seed file that --seed reads back

--kanban prints the plain task board instead of the dispatch jobs.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.asJSON && opts.asYAML {
				return errors.New("cannot use --json and --yaml together")
			}
			w := cmd.OutOrStdout()

			if opts.kanban {
				v, err := kanbanView()
				if err != nil {
					return err
				}
				if opts.asJSON {
					return writeJSON(w, toBoardJSON(v))
				}
				printBoard(w, v, domain.KanbanSchema())
				return nil
			}

			if _, err := loadBoard(cmd, e.c, opts.seedPath); err != nil {
				return err
			}
			if opts.asYAML {
				return seed.Encode(w, e.c.Board.Items())
			}

			out, err := e.c.ShowBoardUseCase().Execute(cmd.Context(), usecase.ShowBoardInput{
				Column: opts.column,
			})
			if err != nil {
				return err
			}
			if opts.asJSON {
				return writeJSON(w, toBoardJSON(out.View))
			}
			printBoard(w, out.View, e.c.Board.Schema())
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.seedPath, "seed", "", "YAML file with the initial jobs")
	cmd.Flags().StringVarP(&opts.column, "column", "c", "", "Show a single column (id or label)")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&opts.asYAML, "yaml", false, "Output jobs as a YAML seed file")
	cmd.Flags().BoolVar(&opts.kanban, "kanban", false, "Show the plain task board")

	return cmd
}

// kanbanView builds the plain task board from its sample items.
func kanbanView() (board.View[string], error) {
	cols, items := seed.SampleKanban()
	s, err := board.NewStore(cols, domain.KanbanSchema())
	if err != nil {
		return board.View[string]{}, err
	}
	if err := s.Import(items); err != nil {
		return board.View[string]{}, err
	}
	return s.View(), nil
}
