package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"smart-task-scheduler/internal/task"
	"smart-task-scheduler/internal/task/repository"
	"smart-task-scheduler/pkg/datemath"
)

// Mock logger for testing
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

// mockRepo keeps inserted tasks in an Orderer and can be told to fail.
type mockRepo struct {
	orderer *task.Orderer
	inserts []repository.CreateTaskOptions
	failErr error
}

func newMockRepo() *mockRepo {
	return &mockRepo{orderer: task.NewOrderer()}
}

func (m *mockRepo) InsertTask(ctx context.Context, opt repository.CreateTaskOptions) (task.Task, error) {
	if m.failErr != nil {
		return task.Task{}, m.failErr
	}
	m.inserts = append(m.inserts, opt)
	t := task.New(opt.Title, opt.Priority, opt.Deadline).WithID("id", time.Time{})
	m.orderer.Insert(t)
	return t, nil
}

func (m *mockRepo) ListTasks(ctx context.Context) ([]task.Task, error) {
	if m.failErr != nil {
		return nil, m.failErr
	}
	return m.orderer.ListOrdered(), nil
}

func (m *mockRepo) CountTasks(ctx context.Context) (int, error) {
	return m.orderer.Len(), nil
}

var errRepo = errors.New("repo down")

func newTestUseCase(t *testing.T, repo repository.Repository, opts Options) (*implUseCase, *prometheus.Registry) {
	t.Helper()
	parser, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	reg := prometheus.NewRegistry()
	uc := New(&mockLogger{}, repo, parser, NewMetrics(reg), opts)
	uc.now = func() time.Time { return time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) }
	return uc, reg
}
