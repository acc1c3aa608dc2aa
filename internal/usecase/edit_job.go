package usecase

import (
	"context"
	"fmt"

	"github.com/bstc-oman/dispatch/internal/domain"
)

// EditJobInput contains the parameters for editing one field of a job.
type EditJobInput struct {
	ID    string // Job ID (required)
	Field string // Field name (required)
	Value string // New value
}

// EditJobOutput contains the result of editing a job.
type EditJobOutput struct {
	Job domain.Job // The updated job
}

// EditJob is the use case for editing a job field.
type EditJob struct {
	board *JobBoard
}

// NewEditJob creates a new EditJob use case.
func NewEditJob(b *JobBoard) *EditJob {
	return &EditJob{
		board: b,
	}
}

// Execute edits a job field.
func (uc *EditJob) Execute(_ context.Context, in EditJobInput) (*EditJobOutput, error) {
	if err := uc.board.EditField(in.ID, in.Field, in.Value); err != nil {
		return nil, fmt.Errorf("edit job: %w", err)
	}

	job, ok := uc.board.Get(in.ID)
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	return &EditJobOutput{Job: job}, nil
}
