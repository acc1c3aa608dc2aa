package usecase

import (
	"context"
	"fmt"

	"github.com/bstc-oman/dispatch/internal/domain"
)

// MoveJobInput contains the parameters for moving a job.
type MoveJobInput struct {
	ID string // Job ID (required)
	To string // Target column ID or label (required)
}

// MoveJobOutput contains the result of moving a job.
type MoveJobOutput struct {
	Job   domain.Job   // The job after the move
	From  domain.Stage // Column before the move
	Moved bool         // False when the job was already in the target column
}

// MoveJob is the use case for moving a job to another column.
type MoveJob struct {
	board *JobBoard
}

// NewMoveJob creates a new MoveJob use case.
func NewMoveJob(b *JobBoard) *MoveJob {
	return &MoveJob{
		board: b,
	}
}

// Execute moves a job.
func (uc *MoveJob) Execute(_ context.Context, in MoveJobInput) (*MoveJobOutput, error) {
	before, ok := uc.board.Get(in.ID)
	if !ok {
		return nil, fmt.Errorf("move job: %w: %s", domain.ErrItemNotFound, in.ID)
	}

	to := resolveColumn(uc.board, in.To)
	if err := uc.board.MoveItem(in.ID, to); err != nil {
		return nil, fmt.Errorf("move job: %w", err)
	}

	after, _ := uc.board.Get(in.ID)
	return &MoveJobOutput{
		Job:   after,
		From:  before.ColumnID,
		Moved: before.ColumnID != after.ColumnID,
	}, nil
}
