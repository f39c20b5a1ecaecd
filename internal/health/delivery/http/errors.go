package http

import (
	"errors"

	"goldensage/internal/health"
	pkgErrors "goldensage/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, health.ErrPatientNotFound):
		return pkgErrors.NewHTTPError(404, "patient not found")
	case errors.Is(err, health.ErrMedicationNotFound):
		return pkgErrors.NewHTTPError(404, "medication not found")
	case errors.Is(err, health.ErrNotYourPatient):
		return pkgErrors.NewHTTPError(403, "patient does not belong to this guardian")
	default:
		return pkgErrors.NewHTTPError(500, "something went wrong")
	}
}
