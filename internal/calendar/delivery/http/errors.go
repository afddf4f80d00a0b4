package http

import (
	"net/http"

	"campus-day-planner/internal/calendar"
	"campus-day-planner/internal/planner"
	pkgErrors "campus-day-planner/pkg/errors"
	"campus-day-planner/pkg/response"
)

// mapError translates calendar and planner errors into HTTP errors from
// pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case calendar.ErrProviderUnavailable, planner.ErrCalendarUnavailable:
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "calendar provider unavailable, try again shortly")
	case calendar.ErrInvalidEvent:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid event payload")
	case planner.ErrInvalidDate:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid date")
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, response.DefaultErrorMessage)
	}
}
