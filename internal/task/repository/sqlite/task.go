package sqlite

import (
	"context"
	"time"

	"smart-task-scheduler/internal/task"
	"smart-task-scheduler/internal/task/repository"
)

const deadlineLayout = "2006-01-02"

// InsertTask stores a new row and returns the stamped task.
func (r *implRepository) InsertTask(ctx context.Context, opt repository.CreateTaskOptions) (task.Task, error) {
	const query = `
		INSERT INTO tasks (id, title, priority, deadline, created_at)
		VALUES (?, ?, ?, ?, ?)`

	t := task.New(opt.Title, opt.Priority, opt.Deadline).WithID(r.newID(), r.now())
	_, err := r.db.ExecContext(ctx, query,
		t.ID(), t.Title(), string(t.Priority()), t.Deadline().String(), t.CreatedAt().UnixNano(),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("InsertTask"), err)
		return task.Task{}, repository.ErrFailedToInsert
	}
	return t, nil
}

// ListTasks reads rows in insertion order and sorts them with task.SortTasks,
// so ties keep insertion order exactly like the memory backend.
func (r *implRepository) ListTasks(ctx context.Context) ([]task.Task, error) {
	const query = `SELECT id, title, priority, deadline, created_at FROM tasks ORDER BY seq`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, repository.ErrFailedToList
	}
	defer rows.Close()

	tasks := []task.Task{}
	for rows.Next() {
		var (
			id, title, priority, deadline string
			createdAt                     int64
		)
		if err := rows.Scan(&id, &title, &priority, &deadline, &createdAt); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTasks"), err)
			return nil, repository.ErrFailedToList
		}
		d, err := time.Parse(deadlineLayout, deadline)
		if err != nil {
			r.l.Errorf(ctx, "%s deadline %q: %v", r.dsn("ListTasks"), deadline, err)
			return nil, repository.ErrFailedToList
		}
		tasks = append(tasks,
			task.New(title, task.Priority(priority), task.DateOf(d)).WithID(id, time.Unix(0, createdAt)),
		)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListTasks"), err)
		return nil, repository.ErrFailedToList
	}

	task.SortTasks(tasks)
	return tasks, nil
}

// CountTasks returns the number of stored rows.
func (r *implRepository) CountTasks(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tasks`).Scan(&n); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CountTasks"), err)
		return 0, repository.ErrFailedToCount
	}
	return n, nil
}
