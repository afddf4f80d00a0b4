package http

import (
	"github.com/gin-gonic/gin"

	"campus-day-planner/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods. Every route
// requires auth and counts against the caller's rate limit.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	calendarGroup := rg.Group("/calendar", mw.Auth(), mw.RateLimit())
	{
		calendarGroup.POST("/events", h.CreateEvent)
		calendarGroup.DELETE("/events/:id", h.DeleteEvent)
		calendarGroup.POST("/sync", h.Sync)
	}
}
