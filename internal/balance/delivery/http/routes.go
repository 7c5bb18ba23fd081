package http

import (
	"github.com/gin-gonic/gin"

	"mentalbank/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All routes are protected by the Auth middleware.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	balance := rg.Group("/balance")
	{
		balance.GET("", mw.Auth(), h.GetBalance)
		balance.PUT("/target", mw.Auth(), h.UpdateTarget)
	}
}
