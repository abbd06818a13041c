package task

import "context"

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// Create validates a raw submission and adds the resulting task.
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)

	// List returns every task ordered by priority rank, then deadline.
	List(ctx context.Context) (ListOutput, error)
}
