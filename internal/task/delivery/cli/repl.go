package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"smart-task-scheduler/internal/task"
)

const helpText = `Commands:
  add <title> | <priority> | <deadline>   add a task (priority High, Medium or Low; deadline YYYY-MM-DD)
  add <title> | <deadline>                add a Medium priority task
  list                                    show tasks by priority, then deadline
  help                                    show this help
  quit                                    leave`

// Serve reads one command per line.
func (h *handler) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)

	fmt.Fprintln(out, "Smart Task Scheduler. Type 'help' for commands.")
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if h.prompt != "" {
			fmt.Fprint(out, h.prompt)
		}
		if !scanner.Scan() {
			return scanner.Err()
		}

		quit, err := h.dispatch(ctx, scanner.Text(), out)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

// dispatch executes a single line. The returned error is fatal to the
// session; user mistakes are printed instead.
func (h *handler) dispatch(ctx context.Context, line string, out io.Writer) (bool, error) {
	cmd, args, _ := strings.Cut(strings.TrimSpace(line), " ")

	switch strings.ToLower(cmd) {
	case "":
		return false, nil
	case "quit", "exit":
		fmt.Fprintln(out, "Bye.")
		return true, nil
	case "help":
		fmt.Fprintln(out, helpText)
		return false, nil
	case "add":
		h.add(ctx, args, out)
		return false, nil
	case "list":
		return false, h.list(ctx, out)
	default:
		fmt.Fprintf(out, "Error: unknown command %q, type 'help'\n", cmd)
		return false, nil
	}
}

func (h *handler) add(ctx context.Context, args string, out io.Writer) {
	input, err := parseAddArgs(args)
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return
	}

	output, err := h.uc.Create(ctx, input)
	if err != nil {
		h.l.Debugf(ctx, "cli.add: %v", err)
		fmt.Fprintf(out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(out, "Added: %s\n", output.Task)
}

func (h *handler) list(ctx context.Context, out io.Writer) error {
	output, err := h.uc.List(ctx)
	if err != nil {
		h.l.Errorf(ctx, "cli.list: %v", err)
		return err
	}
	printLines(out, output)
	return nil
}

func printLines(out io.Writer, output task.ListOutput) {
	if output.Total == 0 {
		fmt.Fprintln(out, "No tasks yet.")
		return
	}
	for i, line := range output.Lines() {
		fmt.Fprintf(out, "%d. %s\n", i+1, line)
	}
}

// parseAddArgs splits "title | priority | deadline". With two fields the
// priority is left empty so the use case applies its default.
func parseAddArgs(args string) (task.CreateInput, error) {
	parts := strings.Split(args, "|")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	switch len(parts) {
	case 3:
		return task.CreateInput{Title: parts[0], Priority: parts[1], Deadline: parts[2]}, nil
	case 2:
		return task.CreateInput{Title: parts[0], Deadline: parts[1]}, nil
	default:
		return task.CreateInput{}, ErrUsage
	}
}
