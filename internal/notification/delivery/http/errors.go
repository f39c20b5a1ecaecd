package http

import (
	pkgErrors "goldensage/pkg/errors"
)

func (h *handler) mapError(err error) error {
	return pkgErrors.NewHTTPError(500, "something went wrong")
}
