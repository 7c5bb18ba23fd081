package middleware

import (
	"github.com/gin-gonic/gin"

	"mentalbank/internal/model"
	"mentalbank/pkg/response"
	"mentalbank/pkg/scope"
)

const scopeKey = "x-mentalbank-scope"

// Auth validates the Bearer token and stores the resolved scope in the
// request context for downstream handlers.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		token := scope.ExtractBearer(c.GetHeader("Authorization"))
		if token == "" {
			m.l.Warnf(ctx, "middleware.Auth.ExtractBearer: %v", scope.ErrMissingToken)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		userID, err := m.jwtManager.Verify(token)
		if err != nil {
			m.l.Warnf(ctx, "middleware.Auth.Verify: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(scopeKey, model.Scope{UserID: userID})
		c.Next()
	}
}

// GetScope returns the scope stored by Auth. Handlers registered behind
// Auth can assume a non-empty scope.
func GetScope(c *gin.Context) model.Scope {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}
	}
	sc, ok := v.(model.Scope)
	if !ok {
		return model.Scope{}
	}
	return sc
}
