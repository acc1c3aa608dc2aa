package domain

import (
	"errors"
	"fmt"
)

// Domain errors.
var (
	ErrValidation       = errors.New("validation failed")
	ErrInvalidField     = errors.New("invalid field")
	ErrInvalidColumn    = errors.New("invalid column")
	ErrItemNotFound     = errors.New("job not found")
	ErrDuplicateItemID  = errors.New("duplicate job id")
	ErrNoColumns        = errors.New("board has no columns")
	ErrDuplicateColumn  = errors.New("duplicate column")
	ErrNotDragging      = errors.New("no drag in progress")
	ErrNotEditing       = errors.New("no edit in progress")
	ErrItemBeingEdited  = errors.New("job is being edited")
	ErrEmptyUsername    = errors.New("username cannot be empty")
	ErrEmptyPassword    = errors.New("password cannot be empty")
	ErrConfigExists     = errors.New("config file already exists")
	ErrUnknownOperation = errors.New("unknown operation")
)

// ValidationError reports a required text field that is blank after trimming.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s cannot be empty", e.Field)
}

// Is makes errors.Is(err, ErrValidation) match.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// InvalidFieldError reports a field name that is not part of the schema.
type InvalidFieldError struct {
	Field string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("unknown field %q", e.Field)
}

// Is makes errors.Is(err, ErrInvalidField) match.
func (e *InvalidFieldError) Is(target error) bool {
	return target == ErrInvalidField
}

// InvalidColumnError reports a column key outside the configured set.
type InvalidColumnError struct {
	Column string
}

func (e *InvalidColumnError) Error() string {
	return fmt.Sprintf("unknown column %q", e.Column)
}

// Is makes errors.Is(err, ErrInvalidColumn) match.
func (e *InvalidColumnError) Is(target error) bool {
	return target == ErrInvalidColumn
}
