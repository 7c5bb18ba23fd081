package http

import (
	"mentalbank/internal/balance"
	pkgErrors "mentalbank/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch err {
	case balance.ErrInvalidTarget:
		return pkgErrors.NewHTTPError(400, "target balance must not be negative")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
