package http

import (
	"errors"

	"goldensage/internal/task"
	pkgErrors "goldensage/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrTitleRequired):
		return pkgErrors.NewHTTPError(400, "title is required")
	case errors.Is(err, task.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(404, "task not found")
	default:
		return pkgErrors.NewHTTPError(500, "something went wrong")
	}
}
