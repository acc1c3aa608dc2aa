package usecase

import (
	"context"

	"github.com/bstc-oman/dispatch/internal/board"
	"github.com/bstc-oman/dispatch/internal/domain"
)

// ShowBoardInput contains the parameters for showing the board.
type ShowBoardInput struct {
	Column string // Restrict to one column (empty = all)
}

// ShowBoardOutput contains the board view.
type ShowBoardOutput struct {
	View board.View[domain.Stage]
}

// ShowBoard is the use case for reading the per-column board view.
type ShowBoard struct {
	board *JobBoard
}

// NewShowBoard creates a new ShowBoard use case.
func NewShowBoard(b *JobBoard) *ShowBoard {
	return &ShowBoard{
		board: b,
	}
}

// Execute returns the current board view.
func (uc *ShowBoard) Execute(_ context.Context, in ShowBoardInput) (*ShowBoardOutput, error) {
	v := uc.board.View()
	if in.Column == "" {
		return &ShowBoardOutput{View: v}, nil
	}

	col, ok := v.Column(resolveColumn(uc.board, in.Column))
	if !ok {
		return nil, &domain.InvalidColumnError{Column: in.Column}
	}
	return &ShowBoardOutput{View: board.View[domain.Stage]{
		Columns: []board.ColumnView[domain.Stage]{col},
		Total:   col.Count,
	}}, nil
}
