package domain

import "errors"

var (
	ErrNoItems        = errors.New("wheel has no items")
	ErrSpinInProgress = errors.New("spin already in progress")
	ErrIdeaNotFound   = errors.New("idea not found")
	ErrInvalidIdea    = errors.New("idea title must not be empty")
	ErrInvalidOrder   = errors.New("order must list every idea exactly once")
)
