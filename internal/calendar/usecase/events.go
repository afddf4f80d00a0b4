package usecase

import (
	"context"
	"time"

	"campus-day-planner/internal/calendar"
	"campus-day-planner/internal/model"
	"campus-day-planner/pkg/gcalendar"
)

// ListEventsForDay fetches the real events overlapping [day, day+24h),
// mapped into the planner's event model.
func (uc *implUseCase) ListEventsForDay(ctx context.Context, day time.Time) ([]model.Event, error) {
	raw, err := uc.gcal.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: uc.calendarID,
		TimeMin:    day,
		TimeMax:    day.AddDate(0, 0, 1),
	})
	if err != nil {
		uc.l.Errorf(ctx, "calendar: list events failed: %v", err)
		return nil, calendar.ErrProviderUnavailable
	}

	events := make([]model.Event, 0, len(raw))
	for _, e := range raw {
		if !e.EndTime.After(e.StartTime) {
			continue // all-day markers and zero-length entries don't block time
		}
		events = append(events, model.Event{
			ID:          e.ID,
			Title:       e.Summary,
			Start:       e.StartTime.In(uc.location),
			End:         e.EndTime.In(uc.location),
			Location:    e.Location,
			Description: e.Description,
			Kind:        model.EventKindCalendar,
		})
	}
	return events, nil
}

// CreateEvent writes one event to the provider, then invalidates the cached
// plan for the day it lands on.
func (uc *implUseCase) CreateEvent(ctx context.Context, sc model.Scope, input calendar.CreateEventInput) (calendar.CreateEventOutput, error) {
	if input.Title == "" || !input.End.After(input.Start) {
		return calendar.CreateEventOutput{}, calendar.ErrInvalidEvent
	}

	created, err := uc.gcal.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.calendarID,
		Summary:     input.Title,
		Description: input.Description,
		StartTime:   input.Start,
		EndTime:     input.End,
		Timezone:    uc.timezone,
	})
	if err != nil {
		uc.l.Errorf(ctx, "calendar: create event failed: %v", err)
		return calendar.CreateEventOutput{}, calendar.ErrProviderUnavailable
	}

	date := input.Start.In(uc.location).Format("2006-01-02")
	uc.cache.Invalidate(ctx, sc.UserID, date)

	return calendar.CreateEventOutput{Event: model.Event{
		ID:          created.ID,
		Title:       created.Summary,
		Start:       created.StartTime.In(uc.location),
		End:         created.EndTime.In(uc.location),
		Description: created.Description,
		Kind:        model.EventKindCalendar,
	}}, nil
}

// DeleteEvent removes an event from the provider. The provider API does not
// return the deleted event, so the safe invalidation target is today.
func (uc *implUseCase) DeleteEvent(ctx context.Context, sc model.Scope, eventID string) error {
	if eventID == "" {
		return calendar.ErrInvalidEvent
	}
	if err := uc.gcal.DeleteEvent(ctx, uc.calendarID, eventID); err != nil {
		uc.l.Errorf(ctx, "calendar: delete event failed: %v", err)
		return calendar.ErrProviderUnavailable
	}
	uc.cache.InvalidateToday(ctx, sc.UserID, uc.location)
	return nil
}
