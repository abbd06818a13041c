package usecase

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"smart-task-scheduler/internal/task"
	repo "smart-task-scheduler/internal/task/repository"
	"smart-task-scheduler/pkg/datemath"
)

const maxTitleLength = 1000

// validate turns a raw submission into repository options.
func (uc *implUseCase) validate(input task.CreateInput) (repo.CreateTaskOptions, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return repo.CreateTaskOptions{}, task.ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		return repo.CreateTaskOptions{}, task.ErrTitleTooLong
	}

	deadline, err := uc.parseDeadline(input.Deadline)
	if err != nil {
		return repo.CreateTaskOptions{}, err
	}

	priority := task.PriorityMedium
	if strings.TrimSpace(input.Priority) != "" {
		priority = task.ParsePriority(input.Priority)
	}

	return repo.CreateTaskOptions{
		Title:    title,
		Priority: priority,
		Deadline: deadline,
	}, nil
}

func (uc *implUseCase) parseDeadline(value string) (task.Date, error) {
	if strings.TrimSpace(value) == "" {
		return task.Date{}, task.ErrEmptyDeadline
	}

	var (
		t   time.Time
		err error
	)
	if uc.opts.RelativeDates {
		t, err = uc.dateMath.ParseAny(value, uc.now())
	} else {
		t, err = uc.dateMath.ParseDate(value)
	}
	if err != nil {
		if errors.Is(err, datemath.ErrEmptyInput) {
			return task.Date{}, task.ErrEmptyDeadline
		}
		return task.Date{}, fmt.Errorf("%w: %q", task.ErrInvalidDeadline, strings.TrimSpace(value))
	}
	return task.DateOf(t), nil
}
