package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"campus-day-planner/internal/model"
	"campus-day-planner/pkg/response"
)

const scopeKey = "scope"

// Auth validates the bearer token and attaches the caller's scope to the
// request. Unknown or missing tokens are rejected before any handler runs.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		userID, ok := m.tokens[token]
		if !ok {
			m.l.Warnf(c.Request.Context(), "middleware.Auth: unknown token from %s", c.ClientIP())
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(scopeKey, model.Scope{UserID: userID})
		c.Next()
	}
}

// GetScope returns the scope attached by Auth. The zero scope means the
// route skipped authentication.
func GetScope(c *gin.Context) model.Scope {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}
	}
	sc, _ := v.(model.Scope)
	return sc
}
