package task

import "errors"

// Validation errors raised at the input boundary. None of them alter the
// task collection.
var (
	ErrEmptyTitle      = errors.New("title is empty")
	ErrTitleTooLong    = errors.New("title exceeds 1000 characters")
	ErrEmptyDeadline   = errors.New("deadline is empty")
	ErrInvalidDeadline = errors.New("invalid deadline, use YYYY-MM-DD")
)
