package http

import (
	"github.com/gin-gonic/gin"

	"mentalbank/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All routes are protected by the Auth middleware.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	goals := rg.Group("/goals")
	{
		goals.POST("", mw.Auth(), h.CreateGoal)
		goals.GET("", mw.Auth(), h.ListGoals)
		goals.GET("/:id", mw.Auth(), h.DetailGoal)
		goals.PUT("/:id", mw.Auth(), h.UpdateGoal)
		goals.DELETE("/:id", mw.Auth(), h.DeleteGoal)

		goals.POST("/:id/milestones", mw.Auth(), h.CreateMilestone)
		goals.GET("/:id/milestones", mw.Auth(), h.ListMilestones)
		goals.PUT("/:id/milestones/:milestone_id", mw.Auth(), h.UpdateMilestone)
		goals.POST("/:id/milestones/:milestone_id/complete", mw.Auth(), h.CompleteMilestone)
		goals.DELETE("/:id/milestones/:milestone_id", mw.Auth(), h.DeleteMilestone)
	}
}
