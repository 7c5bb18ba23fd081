package http

import (
	"errors"

	"github.com/gin-gonic/gin"
)

var (
	errMissingID          = errors.New("id is required")
	errMissingMilestoneID = errors.New("milestone id is required")
)

// processCreateGoalReq binds and validates the create goal request body.
func (h *handler) processCreateGoalReq(c *gin.Context) (createGoalReq, error) {
	var req createGoalReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processListGoalsReq binds the list goals query parameters.
func (h *handler) processListGoalsReq(c *gin.Context) (listGoalsReq, error) {
	var req listGoalsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processUpdateGoalReq binds the update goal request body + URI param.
func (h *handler) processUpdateGoalReq(c *gin.Context) (updateGoalReq, error) {
	var req updateGoalReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, errMissingID
	}
	return req, nil
}

// processCreateMilestoneReq binds the create milestone body + goal URI param.
func (h *handler) processCreateMilestoneReq(c *gin.Context) (createMilestoneReq, error) {
	var req createMilestoneReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.GoalID = c.Param("id")
	if req.GoalID == "" {
		return req, errMissingID
	}
	return req, nil
}

// processUpdateMilestoneReq binds the update milestone body + URI params.
func (h *handler) processUpdateMilestoneReq(c *gin.Context) (updateMilestoneReq, error) {
	var req updateMilestoneReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.GoalID = c.Param("id")
	if req.GoalID == "" {
		return req, errMissingID
	}
	req.ID = c.Param("milestone_id")
	if req.ID == "" {
		return req, errMissingMilestoneID
	}
	return req, nil
}

// milestoneIDs extracts the goal and milestone IDs from the URI.
func (h *handler) milestoneIDs(c *gin.Context) (goalID, id string, err error) {
	goalID = c.Param("id")
	if goalID == "" {
		return "", "", errMissingID
	}
	id = c.Param("milestone_id")
	if id == "" {
		return "", "", errMissingMilestoneID
	}
	return goalID, id, nil
}
