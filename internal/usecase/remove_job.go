package usecase

import (
	"context"

	"github.com/bstc-oman/dispatch/internal/domain"
)

// RemoveJobInput contains the parameters for removing a job.
type RemoveJobInput struct {
	ID string // Job ID (required)
}

// RemoveJobOutput contains the result of removing a job.
type RemoveJobOutput struct {
	Job     domain.Job // The removed job (zero if it did not exist)
	Removed bool       // False when no job had the ID
}

// RemoveJob is the use case for removing a job from the board.
type RemoveJob struct {
	board *JobBoard
}

// NewRemoveJob creates a new RemoveJob use case.
func NewRemoveJob(b *JobBoard) *RemoveJob {
	return &RemoveJob{
		board: b,
	}
}

// Execute removes a job. Removing an unknown ID is not an error.
func (uc *RemoveJob) Execute(_ context.Context, in RemoveJobInput) (*RemoveJobOutput, error) {
	job, ok := uc.board.Get(in.ID)
	uc.board.RemoveItem(in.ID)
	return &RemoveJobOutput{Job: job, Removed: ok}, nil
}
