package http

import (
	"net/http"

	"campus-day-planner/internal/planner"
	pkgErrors "campus-day-planner/pkg/errors"
	"campus-day-planner/pkg/response"
)

// mapError translates planner errors into HTTP errors from pkg/errors.
// Calendar outages are 503 so clients know a retry can succeed.
func (h *handler) mapError(err error) error {
	switch err {
	case planner.ErrCalendarUnavailable:
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "calendar provider unavailable, try again shortly")
	case planner.ErrInvalidDate:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid date")
	case planner.ErrInvalidPreferences:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid mood or feeling")
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, response.DefaultErrorMessage)
	}
}
