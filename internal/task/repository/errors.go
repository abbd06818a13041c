package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert task")
	ErrFailedToList   = errors.New("failed to list tasks")
	ErrFailedToCount  = errors.New("failed to count tasks")
)
