package http

import (
	"github.com/gin-gonic/gin"

	"mentalbank/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All routes are protected by the Auth middleware.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	reports := rg.Group("/reports")
	{
		reports.GET("/upcoming-goals", mw.Auth(), h.UpcomingGoals)
		reports.GET("/goal-summary", mw.Auth(), h.GoalSummary)
		reports.GET("/categories", mw.Auth(), h.Categories)
		reports.GET("/insights", mw.Auth(), h.Insights)
	}
}
