package http

import (
	"mentalbank/internal/transfer"
	pkgErrors "mentalbank/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors. The
// transfer error strings are client-facing contract and pass through
// unchanged.
func (h *handler) mapError(err error) error {
	switch err {
	case transfer.ErrUnsupportedFormat:
		return pkgErrors.NewHTTPError(400, transfer.ErrUnsupportedFormat.Error())
	case transfer.ErrProcessingFailed:
		return pkgErrors.NewHTTPError(422, transfer.ErrProcessingFailed.Error())
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
