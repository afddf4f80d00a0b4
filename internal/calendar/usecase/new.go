package usecase

import (
	"context"
	"time"

	"campus-day-planner/pkg/gcalendar"
	pkgLog "campus-day-planner/pkg/log"
)

// googleCalendar is the slice of the Google Calendar client this domain
// uses.
type googleCalendar interface {
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
}

// planInvalidator is the cache hook mutations fire.
type planInvalidator interface {
	Invalidate(ctx context.Context, userID, date string)
	InvalidateToday(ctx context.Context, userID string, loc *time.Location)
}

type implUseCase struct {
	l          pkgLog.Logger
	gcal       googleCalendar
	cache      planInvalidator
	calendarID string
	timezone   string
	location   *time.Location
}

// New creates a new calendar UseCase instance. calendarID empty means the
// account's primary calendar.
func New(
	l pkgLog.Logger,
	gcal googleCalendar,
	cache planInvalidator,
	calendarID string,
	timezone string,
	location *time.Location,
) *implUseCase {
	if location == nil {
		location = time.UTC
	}
	return &implUseCase{
		l:          l,
		gcal:       gcal,
		cache:      cache,
		calendarID: calendarID,
		timezone:   timezone,
		location:   location,
	}
}
