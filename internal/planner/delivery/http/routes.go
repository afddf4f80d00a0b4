package http

import (
	"github.com/gin-gonic/gin"

	"campus-day-planner/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods. Every route
// requires auth and counts against the caller's rate limit.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	plannerGroup := rg.Group("/planner", mw.Auth(), mw.RateLimit())
	{
		plannerGroup.GET("/day-plan", h.GetDayPlan)
		plannerGroup.POST("/day-plan/refresh", h.Refresh)
		plannerGroup.PUT("/preferences", h.SetPreferences)
	}
}
