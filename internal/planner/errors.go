package planner

import "errors"

var (
	// ErrCalendarUnavailable means the calendar provider could not be
	// reached; the request fails and nothing is cached. Retryable.
	ErrCalendarUnavailable = errors.New("calendar provider unavailable")

	// ErrInvalidDate means the requested date could not be parsed.
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidPreferences means an unknown mood or feeling value was sent.
	ErrInvalidPreferences = errors.New("invalid preferences")
)
