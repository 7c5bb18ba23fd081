package http

import (
	"mentalbank/internal/goal"
	pkgErrors "mentalbank/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch err {
	case goal.ErrGoalNotFound:
		return pkgErrors.NewHTTPError(404, "goal not found")
	case goal.ErrMilestoneNotFound:
		return pkgErrors.NewHTTPError(404, "milestone not found")
	case goal.ErrInvalidTimeFrame:
		return pkgErrors.NewHTTPError(400, "invalid time frame")
	case goal.ErrInvalidProgress:
		return pkgErrors.NewHTTPError(400, "progress must be between 0 and 100")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
