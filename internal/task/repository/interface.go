package repository

import (
	"context"

	"smart-task-scheduler/internal/task"
)

// Repository is the task store. ListTasks always returns tasks in
// task.Compare order.
type Repository interface {
	InsertTask(ctx context.Context, opt CreateTaskOptions) (task.Task, error)
	ListTasks(ctx context.Context) ([]task.Task, error)
	CountTasks(ctx context.Context) (int, error)
}
