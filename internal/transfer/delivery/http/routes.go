package http

import (
	"github.com/gin-gonic/gin"

	"mentalbank/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All routes are protected by the Auth middleware.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	transfer := rg.Group("/transfer")
	{
		transfer.GET("/export", mw.Auth(), h.Export)
		transfer.POST("/import", mw.Auth(), h.Import)
	}
}
