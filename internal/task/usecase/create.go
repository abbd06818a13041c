package usecase

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"smart-task-scheduler/internal/task"
	"smart-task-scheduler/pkg/tracing"
)

// Create validates the submission and stores the resulting task. Validation
// failures leave the collection untouched.
func (uc *implUseCase) Create(ctx context.Context, input task.CreateInput) (output task.CreateOutput, err error) {
	ctx, span := tracing.StartSpan(ctx, "task.usecase.Create",
		attribute.String("task.priority", input.Priority),
	)
	start := time.Now()
	defer func() {
		uc.metrics.observeCreate(time.Since(start), err)
		tracing.EndSpan(span, err)
	}()

	opt, err := uc.validate(input)
	if err != nil {
		uc.l.Warnf(ctx, "uc.Create validate: %v", err)
		return task.CreateOutput{}, err
	}

	t, err := uc.repo.InsertTask(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create InsertTask: %v", err)
		return task.CreateOutput{}, err
	}

	span.SetAttributes(attribute.String("task.id", t.ID()))
	uc.l.Infof(ctx, "task added: %s", t.String())
	return task.CreateOutput{Task: t}, nil
}
