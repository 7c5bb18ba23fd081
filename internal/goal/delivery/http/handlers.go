package http

import (
	"github.com/gin-gonic/gin"

	"mentalbank/internal/middleware"
	"mentalbank/pkg/response"
)

// CreateGoal godoc
// @Summary     Create a new goal
// @Tags        Goal
// @Accept      json
// @Produce     json
// @Param       body body createGoalReq true "Goal data"
// @Success     200 {object} goalDetailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/goals [POST]
func (h *handler) CreateGoal(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	req, err := h.processCreateGoalReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.CreateGoal(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateGoal: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newGoalDetailResp(output))
}

// ListGoals godoc
// @Summary     List goals
// @Description Returns a paginated list of goals with optional filters.
// @Tags        Goal
// @Produce     json
// @Param       time_frame query string false "Filter by time frame (weekly/monthly/biannual/annual)"
// @Param       active     query bool   false "Filter by active flag"
// @Param       limit      query int    false "Page size (default: 20)"
// @Param       offset     query int    false "Page offset (default: 0)"
// @Success     200 {object} listGoalsResp
// @Router      /api/v1/goals [GET]
func (h *handler) ListGoals(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	req, err := h.processListGoalsReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ListGoals(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListGoals: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListGoalsResp(output))
}

// DetailGoal godoc
// @Summary     Get goal detail with milestones
// @Description Milestone status reflects the due date: pending milestones past due show as overdue.
// @Tags        Goal
// @Produce     json
// @Param       id path string true "Goal ID"
// @Success     200 {object} goalWithMilestonesResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/goals/{id} [GET]
func (h *handler) DetailGoal(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID)
		return
	}

	output, err := h.uc.DetailGoal(ctx, sc, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.DetailGoal: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newGoalWithMilestonesResp(output))
}

// UpdateGoal godoc
// @Summary     Update a goal
// @Description Partial update; omitted fields are unchanged.
// @Tags        Goal
// @Accept      json
// @Produce     json
// @Param       id   path string        true "Goal ID"
// @Param       body body updateGoalReq true "Fields to update"
// @Success     200 {object} goalDetailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/goals/{id} [PUT]
func (h *handler) UpdateGoal(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	req, err := h.processUpdateGoalReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.UpdateGoal(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateGoal: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newGoalDetailResp(output))
}

// DeleteGoal godoc
// @Summary     Delete a goal
// @Description Removes the goal and its milestones.
// @Tags        Goal
// @Produce     json
// @Param       id path string true "Goal ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/goals/{id} [DELETE]
func (h *handler) DeleteGoal(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID)
		return
	}

	if err := h.uc.DeleteGoal(ctx, sc, id); err != nil {
		h.l.Errorf(ctx, "uc.DeleteGoal: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// CreateMilestone godoc
// @Summary     Add a milestone to a goal
// @Tags        Milestone
// @Accept      json
// @Produce     json
// @Param       id   path string             true "Goal ID"
// @Param       body body createMilestoneReq true "Milestone data"
// @Success     200 {object} milestoneDetailResp
// @Failure     404 {object} response.Resp "Goal not found"
// @Router      /api/v1/goals/{id}/milestones [POST]
func (h *handler) CreateMilestone(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	req, err := h.processCreateMilestoneReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.CreateMilestone(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateMilestone: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newMilestoneDetailResp(output))
}

// ListMilestones godoc
// @Summary     List a goal's milestones
// @Tags        Milestone
// @Produce     json
// @Param       id path string true "Goal ID"
// @Success     200 {object} listMilestonesResp
// @Failure     404 {object} response.Resp "Goal not found"
// @Router      /api/v1/goals/{id}/milestones [GET]
func (h *handler) ListMilestones(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID)
		return
	}

	output, err := h.uc.ListMilestones(ctx, sc, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListMilestones: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListMilestonesResp(output))
}

// UpdateMilestone godoc
// @Summary     Update a milestone
// @Tags        Milestone
// @Accept      json
// @Produce     json
// @Param       id           path string             true "Goal ID"
// @Param       milestone_id path string             true "Milestone ID"
// @Param       body         body updateMilestoneReq true "Fields to update"
// @Success     200 {object} milestoneDetailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/goals/{id}/milestones/{milestone_id} [PUT]
func (h *handler) UpdateMilestone(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	req, err := h.processUpdateMilestoneReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.UpdateMilestone(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateMilestone: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newMilestoneDetailResp(output))
}

// CompleteMilestone godoc
// @Summary     Mark a milestone completed
// @Description Pending and overdue milestones transition to completed. Idempotent.
// @Tags        Milestone
// @Produce     json
// @Param       id           path string true "Goal ID"
// @Param       milestone_id path string true "Milestone ID"
// @Success     200 {object} milestoneDetailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/goals/{id}/milestones/{milestone_id}/complete [POST]
func (h *handler) CompleteMilestone(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	goalID, id, err := h.milestoneIDs(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.CompleteMilestone(ctx, sc, goalID, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.CompleteMilestone: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newMilestoneDetailResp(output))
}

// DeleteMilestone godoc
// @Summary     Delete a milestone
// @Tags        Milestone
// @Produce     json
// @Param       id           path string true "Goal ID"
// @Param       milestone_id path string true "Milestone ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/goals/{id}/milestones/{milestone_id} [DELETE]
func (h *handler) DeleteMilestone(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	goalID, id, err := h.milestoneIDs(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.DeleteMilestone(ctx, sc, goalID, id); err != nil {
		h.l.Errorf(ctx, "uc.DeleteMilestone: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
