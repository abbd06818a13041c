package repository

import "smart-task-scheduler/internal/task"

// CreateTaskOptions holds a validated submission to store.
type CreateTaskOptions struct {
	Title    string
	Priority task.Priority
	Deadline task.Date
}
