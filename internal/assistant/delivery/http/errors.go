package http

import (
	"errors"

	"goldensage/internal/assistant"
	pkgErrors "goldensage/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, assistant.ErrEmptyInput):
		return pkgErrors.NewHTTPError(400, "text is required")
	default:
		return pkgErrors.NewHTTPError(500, "something went wrong")
	}
}
