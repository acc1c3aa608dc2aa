package cli

import (
	"fmt"

	"github.com/bstc-oman/dispatch/internal/infra/seed"
	"github.com/bstc-oman/dispatch/internal/usecase"
	"github.com/spf13/cobra"
)

// stepJSON is the JSON shape of one replayed step.
type stepJSON struct {
	Op     string `json:"op"`
	ID     string `json:"id,omitempty"`
	Detail string `json:"detail,omitempty"`
	Error  string `json:"error,omitempty"`
	Index  int    `json:"index"`
}

// replayJSON is the JSON shape of a replay run.
type replayJSON struct {
	Steps  []stepJSON `json:"steps"`
	Board  boardJSON  `json:"board"`
	Failed int        `json:"failed"`
}

// newReplayCommand creates the replay command.
func newReplayCommand(e *env) *cobra.Command {
	var opts struct {
		seedPath string
		asJSON   bool
		strict   bool
	}

	cmd := &cobra.Command{
		Use:   "replay FILE",
		Short: "Replay a script of board operations",
		Long: `Replay a YAML script of board operations against the seeded board.

Each step is one of: add, edit, move, remove, drag, drop, cancel-drag,
start-edit, draft, commit, cancel-edit. A rejected step is reported and
the script continues. The final board is printed at the end.

Example script:
  steps:
    - op: add
      fields: {client: Sohar Port, description: Crane hydraulic leak}
    - op: drag
      id: "1"
    - op: drop
      to: Repairing`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			script, err := seed.LoadScript(args[0])
			if err != nil {
				return err
			}
			if _, err := loadBoard(cmd, e.c, opts.seedPath); err != nil {
				return err
			}

			out, err := e.c.ReplayUseCase().Execute(cmd.Context(), usecase.ReplayInput{Script: script})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if opts.asJSON {
				if err := writeJSON(w, toReplayJSON(out)); err != nil {
					return err
				}
			} else {
				for _, r := range out.Results {
					if r.Err != nil {
						_, _ = fmt.Fprintf(w, "%3d. %-11s rejected: %v\n", r.Index, r.Step.Op, r.Err)
						continue
					}
					_, _ = fmt.Fprintf(w, "%3d. %-11s %s\n", r.Index, r.Step.Op, r.Detail)
				}
				_, _ = fmt.Fprintf(w, "\n%d of %d steps rejected\n\n", out.Failed, len(out.Results))
				printBoard(w, out.View, e.c.Board.Schema())
			}

			if opts.strict && out.Failed > 0 {
				return fmt.Errorf("%d of %d steps rejected", out.Failed, len(out.Results))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.seedPath, "seed", "", "YAML file with the initial jobs")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Exit with an error if any step is rejected")

	return cmd
}

func toReplayJSON(out *usecase.ReplayOutput) replayJSON {
	res := replayJSON{
		Steps:  make([]stepJSON, 0, len(out.Results)),
		Board:  toBoardJSON(out.View),
		Failed: out.Failed,
	}
	for _, r := range out.Results {
		s := stepJSON{Index: r.Index, Op: string(r.Step.Op), ID: r.Step.ID, Detail: r.Detail}
		if r.Err != nil {
			s.Error = r.Err.Error()
		}
		res.Steps = append(res.Steps, s)
	}
	return res
}
