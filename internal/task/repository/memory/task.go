package memory

import (
	"context"

	"smart-task-scheduler/internal/task"
	"smart-task-scheduler/internal/task/repository"
)

// InsertTask stamps the task with an id and adds it to the orderer.
func (r *implRepository) InsertTask(ctx context.Context, opt repository.CreateTaskOptions) (task.Task, error) {
	t := task.New(opt.Title, opt.Priority, opt.Deadline).WithID(r.newID(), r.now())
	r.orderer.Insert(t)
	r.l.Debugf(ctx, "%s: stored %q", r.dsn("InsertTask"), t.String())
	return t, nil
}

// ListTasks returns every stored task in order.
func (r *implRepository) ListTasks(ctx context.Context) ([]task.Task, error) {
	return r.orderer.ListOrdered(), nil
}

// CountTasks returns the number of stored tasks.
func (r *implRepository) CountTasks(ctx context.Context) (int, error) {
	return r.orderer.Len(), nil
}
