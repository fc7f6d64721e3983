package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrEmptyInput      = errors.New("input text is empty")
	ErrTaskNotFound    = errors.New("task not found")
	ErrNothingToUpdate = errors.New("nothing to update")
	ErrInvalidDeadline = errors.New("deadline could not be parsed")
	ErrInvalidDate     = errors.New("date could not be parsed")
)
