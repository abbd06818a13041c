package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smart-task-scheduler/internal/task"
	"smart-task-scheduler/internal/task/repository"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func newTestRepo(t *testing.T) repository.Repository {
	t.Helper()
	db, err := OpenInMemory(context.Background(), t.Name())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return New(db, &mockLogger{})
}

func TestInsertAndListOrdered(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for _, opt := range []repository.CreateTaskOptions{
		{Title: "Write report", Priority: task.PriorityMedium, Deadline: task.NewDate(2024, 6, 10)},
		{Title: "Escalate", Priority: task.Priority("Urgent"), Deadline: task.NewDate(2023, 1, 1)},
		{Title: "Fix bug", Priority: task.PriorityHigh, Deadline: task.NewDate(2024, 6, 1)},
		{Title: "Plan trip", Priority: task.PriorityLow, Deadline: task.NewDate(2024, 5, 1)},
		{Title: "Hotfix", Priority: task.PriorityHigh, Deadline: task.NewDate(2024, 5, 31)},
	} {
		_, err := repo.InsertTask(ctx, opt)
		require.NoError(t, err)
	}

	got, err := repo.ListTasks(ctx)
	require.NoError(t, err)

	rendered := make([]string, len(got))
	for i, tk := range got {
		rendered[i] = tk.String()
		assert.NotEmpty(t, tk.ID())
	}
	assert.Equal(t, []string{
		"Hotfix (High) - Due: 2024-05-31",
		"Fix bug (High) - Due: 2024-06-01",
		"Write report (Medium) - Due: 2024-06-10",
		"Plan trip (Low) - Due: 2024-05-01",
		"Escalate (Urgent) - Due: 2023-01-01",
	}, rendered)

	n, err := repo.CountTasks(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
}

func TestTiesKeepInsertionOrder(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for _, title := range []string{"one", "two", "three"} {
		_, err := repo.InsertTask(ctx, repository.CreateTaskOptions{
			Title: title, Priority: task.PriorityLow, Deadline: task.NewDate(2024, 2, 2),
		})
		require.NoError(t, err)
	}

	got, err := repo.ListTasks(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "one", got[0].Title())
	assert.Equal(t, "two", got[1].Title())
	assert.Equal(t, "three", got[2].Title())
}

func TestEmptyDatabase(t *testing.T) {
	repo := newTestRepo(t)

	got, err := repo.ListTasks(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)

	n, err := repo.CountTasks(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSeparateDatabasesAreIsolated(t *testing.T) {
	ctx := context.Background()
	dbA, err := OpenInMemory(ctx, "isolated-a")
	require.NoError(t, err)
	defer dbA.Close()
	dbB, err := OpenInMemory(ctx, "isolated-b")
	require.NoError(t, err)
	defer dbB.Close()

	_, err = New(dbA, &mockLogger{}).InsertTask(ctx, repository.CreateTaskOptions{
		Title: "only in A", Priority: task.PriorityHigh, Deadline: task.NewDate(2024, 1, 1),
	})
	require.NoError(t, err)

	n, err := New(dbB, &mockLogger{}).CountTasks(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestClosedDatabaseReturnsRepositoryErrors(t *testing.T) {
	db, err := OpenInMemory(context.Background(), "closed")
	require.NoError(t, err)
	repo := New(db, &mockLogger{})
	db.Close()

	_, err = repo.InsertTask(context.Background(), repository.CreateTaskOptions{Title: "x", Deadline: task.NewDate(2024, 1, 1)})
	assert.ErrorIs(t, err, repository.ErrFailedToInsert)

	_, err = repo.ListTasks(context.Background())
	assert.ErrorIs(t, err, repository.ErrFailedToList)

	_, err = repo.CountTasks(context.Background())
	assert.ErrorIs(t, err, repository.ErrFailedToCount)
}
