package usecase

import (
	"context"
	"fmt"

	"github.com/bstc-oman/dispatch/internal/domain"
	"github.com/bstc-oman/dispatch/internal/infra/seed"
)

// LoadBoardInput contains the parameters for filling the board with its initial jobs.
type LoadBoardInput struct {
	Path   string // YAML seed file (empty = built-in sample jobs)
	Sample bool   // Load the sample jobs when Path is empty
}

// LoadBoardOutput contains the result of loading the board.
type LoadBoardOutput struct {
	Source string // Seed file path, "sample" or "empty"
	Count  int    // Number of jobs loaded
}

// LoadBoard is the use case for seeding the board at startup.
type LoadBoard struct {
	board  *JobBoard
	logger domain.Logger
}

// NewLoadBoard creates a new LoadBoard use case.
func NewLoadBoard(b *JobBoard, logger domain.Logger) *LoadBoard {
	return &LoadBoard{
		board:  b,
		logger: logger,
	}
}

// Execute imports the seed jobs. Nothing is imported if any job is invalid.
func (uc *LoadBoard) Execute(_ context.Context, in LoadBoardInput) (*LoadBoardOutput, error) {
	var jobs []domain.Job
	source := "empty"
	switch {
	case in.Path != "":
		var err error
		jobs, err = seed.LoadFile(in.Path)
		if err != nil {
			return nil, err
		}
		source = in.Path
	case in.Sample:
		jobs = seed.SampleJobs()
		source = "sample"
	}

	if err := uc.board.Import(jobs); err != nil {
		return nil, fmt.Errorf("load board from %s: %w", source, err)
	}

	uc.logger.Info("", "board", fmt.Sprintf("loaded %d jobs from %s", len(jobs), source))
	return &LoadBoardOutput{Source: source, Count: len(jobs)}, nil
}
