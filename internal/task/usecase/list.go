package usecase

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"smart-task-scheduler/internal/task"
	"smart-task-scheduler/pkg/tracing"
)

// List returns every task ordered by priority rank, then deadline.
func (uc *implUseCase) List(ctx context.Context) (output task.ListOutput, err error) {
	ctx, span := tracing.StartSpan(ctx, "task.usecase.List")
	start := time.Now()
	defer func() {
		uc.metrics.observeList(time.Since(start))
		tracing.EndSpan(span, err)
	}()

	tasks, err := uc.repo.ListTasks(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTasks: %v", err)
		return task.ListOutput{}, err
	}

	span.SetAttributes(attribute.Int("task.count", len(tasks)))
	return task.ListOutput{
		Tasks: tasks,
		Total: len(tasks),
	}, nil
}
