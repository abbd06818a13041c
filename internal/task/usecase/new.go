package usecase

import (
	"time"

	"smart-task-scheduler/internal/task/repository"
	"smart-task-scheduler/pkg/datemath"
	pkgLog "smart-task-scheduler/pkg/log"
)

// Options tunes input handling.
type Options struct {
	// RelativeDates also accepts "today", "tomorrow", "in 3 days", "next friday".
	RelativeDates bool
}

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	dateMath *datemath.Parser
	metrics  *Metrics
	opts     Options
	now      func() time.Time
}

// New creates a new task UseCase instance.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	dateMath *datemath.Parser,
	metrics *Metrics,
	opts Options,
) *implUseCase {
	return &implUseCase{
		l:        l,
		repo:     repo,
		dateMath: dateMath,
		metrics:  metrics,
		opts:     opts,
		now:      time.Now,
	}
}
