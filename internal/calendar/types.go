package calendar

import (
	"time"

	"campus-day-planner/internal/model"
)

// CreateEventInput describes a new real calendar event.
type CreateEventInput struct {
	Title       string
	Description string
	Start       time.Time
	End         time.Time
}

// CreateEventOutput carries the created event as stored by the provider.
type CreateEventOutput struct {
	Event model.Event
}

// SyncStudyBlocksInput pushes a day plan's study blocks to the real
// calendar. Events holds the plan's merged event list; only assignment-kind
// entries are synced.
type SyncStudyBlocksInput struct {
	Date   string // YYYY-MM-DD
	Events []model.Event
}

// SyncStudyBlocksOutput reports how many blocks were pushed.
type SyncStudyBlocksOutput struct {
	Synced int
}
