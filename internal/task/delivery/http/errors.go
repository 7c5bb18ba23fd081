package http

import (
	"mentalbank/internal/task"
	pkgErrors "mentalbank/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch err {
	case task.ErrTaskNotFound:
		return pkgErrors.NewHTTPError(404, "task not found")
	case task.ErrCategoryNotFound:
		return pkgErrors.NewHTTPError(404, "category not found")
	case task.ErrDuplicateName:
		return pkgErrors.NewHTTPError(409, "category name already exists")
	case task.ErrInvalidPriority:
		return pkgErrors.NewHTTPError(400, "invalid priority")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
