package http

import (
	"errors"

	"goldensage/internal/sos"
	pkgErrors "goldensage/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, sos.ErrPatientNotFound):
		return pkgErrors.NewHTTPError(404, "patient not found")
	default:
		return pkgErrors.NewHTTPError(500, "something went wrong")
	}
}
