package http

import (
	"github.com/gin-gonic/gin"

	"campus-day-planner/internal/middleware"
	"campus-day-planner/pkg/response"
)

// GetDayPlan godoc
// @Summary     Get the day plan
// @Description Returns the cached plan for the date or runs the full pipeline: calendar fetch, free-time analysis, study-block proposal, agent decision, bus suggestions.
// @Tags        Planner
// @Accept      json
// @Produce     json
// @Param       date    query string false "today, tomorrow or YYYY-MM-DD (default: today)"
// @Param       refresh query bool   false "Bypass the cache"
// @Success     200 {object} dayPlanResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     503 {object} response.Resp "Calendar provider unavailable"
// @Security    BearerAuth
// @Router      /api/v1/planner/day-plan [GET]
func (h *handler) GetDayPlan(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGetDayPlanReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.GetDayPlan(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.GetDayPlan: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDayPlanResp(output))
}

// Refresh godoc
// @Summary     Force-regenerate the day plan
// @Description Drops the cached plan for the date and runs the pipeline again.
// @Tags        Planner
// @Accept      json
// @Produce     json
// @Param       body body refreshReq false "Date to regenerate (default: today)"
// @Success     200 {object} dayPlanResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     503 {object} response.Resp "Calendar provider unavailable"
// @Security    BearerAuth
// @Router      /api/v1/planner/day-plan/refresh [POST]
func (h *handler) Refresh(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRefreshReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.GetDayPlan(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.GetDayPlan (refresh): %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDayPlanResp(output))
}

// SetPreferences godoc
// @Summary     Set day preferences
// @Description Upserts the caller's mood/feeling bias for a date and invalidates that date's cached plan.
// @Tags        Planner
// @Accept      json
// @Produce     json
// @Param       body body setPreferencesReq true "Mood and feeling"
// @Success     200 {object} preferencesResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Security    BearerAuth
// @Router      /api/v1/planner/preferences [PUT]
func (h *handler) SetPreferences(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSetPreferencesReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.SetPreferences(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SetPreferences: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newPreferencesResp(output))
}
