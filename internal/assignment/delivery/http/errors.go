package http

import (
	"net/http"

	"campus-day-planner/internal/assignment"
	pkgErrors "campus-day-planner/pkg/errors"
	"campus-day-planner/pkg/response"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case assignment.ErrAssignmentNotFound:
		return pkgErrors.NewHTTPError(http.StatusNotFound, "assignment not found")
	case assignment.ErrInvalidPayload:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid assignment payload")
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, response.DefaultErrorMessage)
	}
}
