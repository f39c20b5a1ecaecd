package http

import (
	"errors"

	"goldensage/internal/user"
	pkgErrors "goldensage/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, user.ErrEmailTaken):
		return pkgErrors.NewHTTPError(409, "email is already registered")
	case errors.Is(err, user.ErrInvalidCredentials):
		return pkgErrors.NewHTTPError(401, "invalid email or password")
	case errors.Is(err, user.ErrUserNotFound):
		return pkgErrors.NewHTTPError(404, "user not found")
	default:
		return pkgErrors.NewHTTPError(500, "something went wrong")
	}
}
