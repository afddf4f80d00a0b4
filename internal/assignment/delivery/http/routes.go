package http

import (
	"github.com/gin-gonic/gin"

	"campus-day-planner/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods. Every route
// requires auth and counts against the caller's rate limit.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	assignments := rg.Group("/assignments", mw.Auth(), mw.RateLimit())
	{
		assignments.POST("", h.Create)
		assignments.GET("", h.List)
		assignments.GET("/:id", h.Detail)
		assignments.PUT("/:id", h.Update)
		assignments.DELETE("/:id", h.Delete)
	}
}
