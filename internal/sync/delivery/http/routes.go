package http

import (
	"github.com/gin-gonic/gin"

	"mentalbank/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All routes are protected by the Auth middleware.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	sync := rg.Group("/sync")
	{
		sync.POST("/calendar", mw.Auth(), h.Resync)
	}
}
