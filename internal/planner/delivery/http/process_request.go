package http

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
)

// processGetDayPlanReq binds the day-plan query parameters.
func (h *handler) processGetDayPlanReq(c *gin.Context) (getDayPlanReq, error) {
	var req getDayPlanReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processRefreshReq binds the optional refresh body. An empty body means
// refresh today.
func (h *handler) processRefreshReq(c *gin.Context) (refreshReq, error) {
	var req refreshReq
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		return req, err
	}
	return req, nil
}

// processSetPreferencesReq binds and validates the preferences body.
func (h *handler) processSetPreferencesReq(c *gin.Context) (setPreferencesReq, error) {
	var req setPreferencesReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
