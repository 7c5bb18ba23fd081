package http

import (
	"github.com/gin-gonic/gin"

	"mentalbank/internal/middleware"
	"mentalbank/pkg/response"
)

// GetBalance godoc
// @Summary     Current balance snapshot
// @Description Earned value of completed tasks against the target, with today's growth.
// @Tags        Balance
// @Produce     json
// @Success     200 {object} balanceResp
// @Router      /api/v1/balance [GET]
func (h *handler) GetBalance(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	output, err := h.uc.GetBalance(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.GetBalance: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newBalanceResp(output))
}

// UpdateTarget godoc
// @Summary     Set the target balance
// @Tags        Balance
// @Accept      json
// @Produce     json
// @Param       body body updateTargetReq true "New target"
// @Success     200 {object} balanceResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/balance/target [PUT]
func (h *handler) UpdateTarget(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	var req updateTargetReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.UpdateTarget(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateTarget: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newBalanceResp(output))
}
