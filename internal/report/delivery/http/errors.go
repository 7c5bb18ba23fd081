package http

import (
	"mentalbank/internal/goal"
	pkgErrors "mentalbank/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch err {
	case goal.ErrInvalidTimeFrame:
		return pkgErrors.NewHTTPError(400, "invalid time frame")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
