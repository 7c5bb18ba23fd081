package http

import (
	"github.com/gin-gonic/gin"

	"mentalbank/internal/middleware"
	syncPkg "mentalbank/internal/sync"
	pkgErrors "mentalbank/pkg/errors"
	"mentalbank/pkg/response"
)

// Resync godoc
// @Summary     Re-push upcoming goals to the calendar
// @Description Enqueues a full resync of goals due within the next 30 days.
// @Tags        Sync
// @Produce     json
// @Success     200 {object} response.Resp "OK"
// @Failure     503 {object} response.Resp "Queue unavailable"
// @Router      /api/v1/sync/calendar [POST]
func (h *handler) Resync(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	if err := h.uc.Resync(ctx, sc); err != nil {
		h.l.Errorf(ctx, "uc.Resync: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// mapError translates domain/use-case errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch err {
	case syncPkg.ErrPublisherUnavailable:
		return pkgErrors.NewHTTPError(503, "calendar sync is not configured")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
