package http

import (
	"github.com/gin-gonic/gin"

	"mentalbank/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All routes are protected by the Auth middleware.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks")
	{
		tasks.POST("", mw.Auth(), h.CreateTask)
		tasks.GET("", mw.Auth(), h.ListTasks)
		tasks.GET("/:id", mw.Auth(), h.DetailTask)
		tasks.PUT("/:id", mw.Auth(), h.UpdateTask)
		tasks.POST("/:id/complete", mw.Auth(), h.CompleteTask)
		tasks.DELETE("/:id", mw.Auth(), h.DeleteTask)
	}

	categories := rg.Group("/categories")
	{
		categories.POST("", mw.Auth(), h.CreateCategory)
		categories.GET("", mw.Auth(), h.ListCategories)
		categories.PUT("/:id", mw.Auth(), h.UpdateCategory)
		categories.DELETE("/:id", mw.Auth(), h.DeleteCategory)
	}
}
