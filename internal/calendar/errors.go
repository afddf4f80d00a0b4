package calendar

import "errors"

var (
	// ErrProviderUnavailable means the calendar provider rejected or never
	// received the call.
	ErrProviderUnavailable = errors.New("calendar provider unavailable")

	// ErrInvalidEvent means the event input failed validation.
	ErrInvalidEvent = errors.New("invalid event")
)
