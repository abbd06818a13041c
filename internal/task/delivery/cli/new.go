package cli

import (
	"context"
	"io"

	"smart-task-scheduler/internal/task"
	pkgLog "smart-task-scheduler/pkg/log"
)

// Handler drives the task use case from a terminal.
type Handler interface {
	// Serve runs the interactive session until in is exhausted, the user
	// quits, or ctx is cancelled.
	Serve(ctx context.Context, in io.Reader, out io.Writer) error
	// Order inserts every record and prints the ordered task list. It
	// returns how many records were rejected.
	Order(ctx context.Context, records []Record, out io.Writer) (int, error)
}

type handler struct {
	l      pkgLog.Logger
	uc     task.UseCase
	prompt string
}

// New creates a new CLI handler. An empty prompt disables prompting.
func New(l pkgLog.Logger, uc task.UseCase, prompt string) Handler {
	return &handler{
		l:      l,
		uc:     uc,
		prompt: prompt,
	}
}
