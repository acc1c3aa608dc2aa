package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bstc-oman/dispatch/internal/board"
	"github.com/bstc-oman/dispatch/internal/domain"
	"github.com/bstc-oman/dispatch/internal/infra/seed"
)

// ReplayInput contains the script to replay.
type ReplayInput struct {
	Script *seed.Script
}

// StepResult is the outcome of one replayed step.
type StepResult struct {
	Err    error     // Rejection, if any
	Step   seed.Step // The step as scripted
	Detail string    // Human-readable outcome
	Index  int       // 1-based step number
}

// ReplayOutput contains every step outcome and the final board.
type ReplayOutput struct {
	Results []StepResult
	View    board.View[domain.Stage]
	Failed  int // Number of rejected steps
}

// Replay runs a script of board operations, including drag and inline-edit gestures,
// against the board. A rejected step is recorded and the script continues.
type Replay struct {
	board   *JobBoard
	drag    *board.Coordinator[domain.Stage]
	edit    *board.EditSession[domain.Stage]
	add     *AddJob
	editJob *EditJob
	moveJob *MoveJob
	logger  domain.Logger
}

// NewReplay creates a new Replay use case.
func NewReplay(
	b *JobBoard,
	drag *board.Coordinator[domain.Stage],
	edit *board.EditSession[domain.Stage],
	add *AddJob,
	editJob *EditJob,
	moveJob *MoveJob,
	logger domain.Logger,
) *Replay {
	return &Replay{
		board:   b,
		drag:    drag,
		edit:    edit,
		add:     add,
		editJob: editJob,
		moveJob: moveJob,
		logger:  logger,
	}
}

// Execute replays every step in order.
func (uc *Replay) Execute(ctx context.Context, in ReplayInput) (*ReplayOutput, error) {
	if in.Script == nil {
		return nil, errors.New("replay: no script")
	}
	if err := in.Script.Validate(); err != nil {
		return nil, err
	}

	out := &ReplayOutput{Results: make([]StepResult, 0, len(in.Script.Steps))}
	for i, st := range in.Script.Steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		detail, err := uc.apply(ctx, st)
		res := StepResult{Index: i + 1, Step: st, Detail: detail, Err: err}
		if err != nil {
			out.Failed++
			uc.logger.Warn(st.ID, "replay", fmt.Sprintf("step %d (%s) rejected: %v", i+1, st.Op, err))
		} else {
			uc.logger.Debug(st.ID, "replay", fmt.Sprintf("step %d (%s): %s", i+1, st.Op, detail))
		}
		out.Results = append(out.Results, res)
	}

	out.View = uc.board.View()
	return out, nil
}

func (uc *Replay) apply(ctx context.Context, st seed.Step) (string, error) {
	switch st.Op {
	case seed.OpAdd:
		res, err := uc.add.Execute(ctx, AddJobInput{Fields: st.Fields, Column: st.Column})
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("added %s to %s", res.Job.ID, res.Job.ColumnID), nil

	case seed.OpEdit:
		res, err := uc.editJob.Execute(ctx, EditJobInput{ID: st.ID, Field: st.Field, Value: *st.Value})
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("set %s of %s", st.Field, res.Job.ID), nil

	case seed.OpMove:
		res, err := uc.moveJob.Execute(ctx, MoveJobInput{ID: st.ID, To: st.To})
		if err != nil {
			return "", err
		}
		if !res.Moved {
			return fmt.Sprintf("%s already in %s", res.Job.ID, res.Job.ColumnID), nil
		}
		return fmt.Sprintf("moved %s from %s to %s", res.Job.ID, res.From, res.Job.ColumnID), nil

	case seed.OpRemove:
		_, ok := uc.board.Get(st.ID)
		uc.board.RemoveItem(st.ID)
		if !ok {
			return fmt.Sprintf("%s not on board", st.ID), nil
		}
		return fmt.Sprintf("removed %s", st.ID), nil

	case seed.OpDrag:
		item, ok := uc.board.Get(st.ID)
		if !ok {
			return "", fmt.Errorf("%w: %s", domain.ErrItemNotFound, st.ID)
		}
		if err := uc.drag.BeginDrag(item); err != nil {
			return "", err
		}
		return fmt.Sprintf("picked up %s from %s", st.ID, item.ColumnID), nil

	case seed.OpDrop:
		item, _ := uc.drag.Dragging()
		to := resolveColumn(uc.board, st.To)
		if err := uc.drag.DropOn(to); err != nil {
			return "", err
		}
		return fmt.Sprintf("dropped %s on %s", item.ID, to), nil

	case seed.OpCancelDrag:
		uc.drag.Cancel()
		return "drag cancelled", nil

	case seed.OpStartEdit:
		item, ok := uc.board.Get(st.ID)
		if !ok {
			return "", fmt.Errorf("%w: %s", domain.ErrItemNotFound, st.ID)
		}
		uc.edit.StartEdit(st.ID, st.Field, item.Field(st.Field))
		return fmt.Sprintf("editing %s of %s", st.Field, st.ID), nil

	case seed.OpDraft:
		if err := uc.edit.UpdateDraft(*st.Value); err != nil {
			return "", err
		}
		return "draft updated", nil

	case seed.OpCommit:
		cur, _ := uc.edit.Current()
		if err := uc.edit.Commit(); err != nil {
			return "", err
		}
		return fmt.Sprintf("committed %s of %s", cur.Field, cur.ItemID), nil

	case seed.OpCancelEdit:
		uc.edit.Cancel()
		return "edit cancelled", nil
	}
	return "", fmt.Errorf("%w: %q", domain.ErrUnknownOperation, st.Op)
}
