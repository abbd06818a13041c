package http

import (
	"errors"
	"net/http"

	"smart-task-scheduler/internal/task"
	pkgErrors "smart-task-scheduler/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrEmptyTitle),
		errors.Is(err, task.ErrTitleTooLong),
		errors.Is(err, task.ErrEmptyDeadline),
		errors.Is(err, task.ErrInvalidDeadline):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
