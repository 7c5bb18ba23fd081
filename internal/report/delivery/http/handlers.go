package http

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"mentalbank/internal/middleware"
	"mentalbank/pkg/response"
)

// cacheKey scopes a cached aggregate to one user and one exact query.
func (h *handler) cacheKey(c *gin.Context, endpoint string) string {
	sc := middleware.GetScope(c)
	return fmt.Sprintf("%s:%s:%s", sc.UserID, endpoint, c.Request.URL.RawQuery)
}

// UpcomingGoals godoc
// @Summary     Goals due soon
// @Description Active goals with a target date inside the horizon, soonest first.
// @Tags        Report
// @Produce     json
// @Param       horizon_days query int false "Look-ahead window in days (default: 7)"
// @Param       limit        query int false "Max goals returned"
// @Success     200 {object} upcomingGoalsResp
// @Router      /api/v1/reports/upcoming-goals [GET]
func (h *handler) UpcomingGoals(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	key := h.cacheKey(c, "upcoming-goals")
	if cached, ok := h.cache.Get(key); ok {
		response.OK(c, cached)
		return
	}

	var req upcomingGoalsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.UpcomingGoals(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.UpcomingGoals: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	resp := h.newUpcomingGoalsResp(output)
	h.cache.Add(key, resp)
	response.OK(c, resp)
}

// GoalSummary godoc
// @Summary     Goal completion and progress per time frame
// @Description One summary per requested frame, or all frames when omitted.
// @Tags        Report
// @Produce     json
// @Param       time_frame query string false "weekly, monthly, biannual or annual"
// @Success     200 {object} goalSummaryResp
// @Router      /api/v1/reports/goal-summary [GET]
func (h *handler) GoalSummary(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	key := h.cacheKey(c, "goal-summary")
	if cached, ok := h.cache.Get(key); ok {
		response.OK(c, cached)
		return
	}

	var req goalSummaryReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.GoalSummary(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.GoalSummary: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	resp := h.newGoalSummaryResp(output)
	h.cache.Add(key, resp)
	response.OK(c, resp)
}

// Categories godoc
// @Summary     Per-category task rollup
// @Tags        Report
// @Produce     json
// @Success     200 {object} categoriesResp
// @Router      /api/v1/reports/categories [GET]
func (h *handler) Categories(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	key := h.cacheKey(c, "categories")
	if cached, ok := h.cache.Get(key); ok {
		response.OK(c, cached)
		return
	}

	output, err := h.uc.Categories(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Categories: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	resp := h.newCategoriesResp(output)
	h.cache.Add(key, resp)
	response.OK(c, resp)
}

// Insights godoc
// @Summary     Task activity summary for a recent window
// @Tags        Report
// @Produce     json
// @Param       window_days query int false "Window size in days (default: 30)"
// @Success     200 {object} insightsResp
// @Router      /api/v1/reports/insights [GET]
func (h *handler) Insights(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	key := h.cacheKey(c, "insights")
	if cached, ok := h.cache.Get(key); ok {
		response.OK(c, cached)
		return
	}

	var req insightsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Insights(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Insights: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	resp := h.newInsightsResp(output)
	h.cache.Add(key, resp)
	response.OK(c, resp)
}
