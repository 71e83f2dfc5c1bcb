package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrTaskNotFound  = errors.New("task not found")
	ErrEmptyTitle    = errors.New("task title is empty")
	ErrInvalidRange  = errors.New("invalid date range")
	ErrMissingTarget = errors.New("no task reference or title fragment given")
)
