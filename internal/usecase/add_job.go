package usecase

import (
	"context"
	"fmt"

	"github.com/bstc-oman/dispatch/internal/domain"
)

// AddJobInput contains the parameters for adding a job.
type AddJobInput struct {
	Fields map[string]string // Field values by name
	Column string            // Target column (empty = active column)
}

// AddJobOutput contains the result of adding a job.
type AddJobOutput struct {
	Job domain.Job
}

// AddJob is the use case for adding a job to the board.
type AddJob struct {
	board *JobBoard
	clock domain.Clock
}

// NewAddJob creates a new AddJob use case.
func NewAddJob(b *JobBoard, clock domain.Clock) *AddJob {
	return &AddJob{
		board: b,
		clock: clock,
	}
}

// Execute adds a job. When the board has a call_time field and none is given,
// the call time is stamped with the current time.
func (uc *AddJob) Execute(_ context.Context, in AddJobInput) (*AddJobOutput, error) {
	fields := make(map[string]string, len(in.Fields)+1)
	for k, v := range in.Fields {
		fields[k] = v
	}
	if uc.board.Schema().Has(domain.FieldCallTime) && fields[domain.FieldCallTime] == "" {
		fields[domain.FieldCallTime] = uc.clock.Now().Format(domain.CallTimeLayout)
	}

	var col *domain.Stage
	if in.Column != "" {
		c := resolveColumn(uc.board, in.Column)
		col = &c
	}

	job, err := uc.board.AddItem(col, fields)
	if err != nil {
		return nil, fmt.Errorf("add job: %w", err)
	}
	return &AddJobOutput{Job: job}, nil
}
