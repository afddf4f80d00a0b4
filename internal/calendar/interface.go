package calendar

import (
	"context"
	"time"

	"campus-day-planner/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// ListEventsForDay returns the user's real calendar events overlapping
	// the given day. day is the start of the day in the planner's timezone.
	ListEventsForDay(ctx context.Context, day time.Time) ([]model.Event, error)

	// CreateEvent writes a new event to the provider and invalidates the
	// affected day's cached plan.
	CreateEvent(ctx context.Context, sc model.Scope, input CreateEventInput) (CreateEventOutput, error)

	// DeleteEvent removes an event from the provider and invalidates today's
	// cached plan (the provider does not tell us which day it was on).
	DeleteEvent(ctx context.Context, sc model.Scope, eventID string) error

	// SyncStudyBlocks pushes a plan's study blocks to the provider as real
	// events and invalidates that date's cached plan.
	SyncStudyBlocks(ctx context.Context, sc model.Scope, input SyncStudyBlocksInput) (SyncStudyBlocksOutput, error)
}
