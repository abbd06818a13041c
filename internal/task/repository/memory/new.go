package memory

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"smart-task-scheduler/internal/task"
	"smart-task-scheduler/internal/task/repository"
	"smart-task-scheduler/pkg/log"
)

type implRepository struct {
	orderer *task.Orderer
	l       log.Logger
	now     func() time.Time
	newID   func() string
}

// New creates a Repository backed by a task.Orderer living in process memory.
func New(l log.Logger) repository.Repository {
	return &implRepository{
		orderer: task.NewOrderer(),
		l:       l,
		now:     time.Now,
		newID:   func() string { return uuid.NewString() },
	}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("task/repository/memory.%s", method)
}
