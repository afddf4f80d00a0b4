package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campus-day-planner/internal/calendar"
	"campus-day-planner/internal/middleware"
	"campus-day-planner/internal/planner"
	"campus-day-planner/pkg/response"
)

// CreateEvent godoc
// @Summary     Create a calendar event
// @Description Writes a new event to Google Calendar and invalidates that day's cached plan.
// @Tags        Calendar
// @Accept      json
// @Produce     json
// @Param       body body createEventReq true "Event data"
// @Success     200 {object} createEventResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     503 {object} response.Resp "Calendar provider unavailable"
// @Security    BearerAuth
// @Router      /api/v1/calendar/events [POST]
func (h *handler) CreateEvent(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateEventReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.CreateEvent(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateEvent: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newCreateEventResp(output))
}

// DeleteEvent godoc
// @Summary     Delete a calendar event
// @Description Removes an event from Google Calendar and invalidates today's cached plan.
// @Tags        Calendar
// @Accept      json
// @Produce     json
// @Param       id path string true "Provider event ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     503 {object} response.Resp "Calendar provider unavailable"
// @Security    BearerAuth
// @Router      /api/v1/calendar/events/{id} [DELETE]
func (h *handler) DeleteEvent(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	if err := h.uc.DeleteEvent(ctx, middleware.GetScope(c), id); err != nil {
		h.l.Errorf(ctx, "uc.DeleteEvent: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// Sync godoc
// @Summary     Sync study blocks to the calendar
// @Description Generates (or loads) the day plan for the date and pushes its study blocks to Google Calendar as real events.
// @Tags        Calendar
// @Accept      json
// @Produce     json
// @Param       body body syncReq false "Date to sync (default: today)"
// @Success     200 {object} syncResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     503 {object} response.Resp "Calendar provider unavailable"
// @Security    BearerAuth
// @Router      /api/v1/calendar/sync [POST]
func (h *handler) Sync(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	req, err := h.processSyncReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	planOut, err := h.planner.GetDayPlan(ctx, sc, planner.GetDayPlanInput{Date: req.Date})
	if err != nil {
		h.l.Errorf(ctx, "uc.GetDayPlan (sync): %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	output, err := h.uc.SyncStudyBlocks(ctx, sc, calendar.SyncStudyBlocksInput{
		Date:   planOut.Plan.Date,
		Events: planOut.Plan.Events,
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.SyncStudyBlocks: %v", err)
		// Partial syncs report how far they got.
		response.Error(c, h.mapError(err), map[string]interface{}{"synced": output.Synced})
		return
	}

	response.OK(c, h.newSyncResp(planOut.Plan.Date, output))
}
