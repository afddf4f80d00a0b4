package model

import "time"

// EventKind classifies where a day-plan event came from.
type EventKind string

const (
	// EventKindCalendar is a real commitment fetched from Google Calendar.
	EventKindCalendar EventKind = "calendar"
	// EventKindAssignment is a study block synthesized by the scheduler.
	EventKindAssignment EventKind = "assignment"
	// EventKindCommute is a bus ride injected from a transit suggestion.
	EventKindCommute EventKind = "commute"
)

// Event is one entry on a user's day, either fetched from the calendar
// provider or synthesized by the scheduling pipeline. Times are zoned to the
// planner's configured location.
type Event struct {
	ID          string
	Title       string
	Start       time.Time
	End         time.Time
	Location    string
	Description string
	Kind        EventKind
}

// Duration returns the event length.
func (e Event) Duration() time.Duration {
	return e.End.Sub(e.Start)
}

// FreeBlock is a contiguous gap of a day with no commitment. Derived, never
// persisted; End is always after Start.
type FreeBlock struct {
	Start time.Time
	End   time.Time
}

// Duration returns the gap length.
func (b FreeBlock) Duration() time.Duration {
	return b.End.Sub(b.Start)
}

// DurationMinutes returns the gap length in whole minutes.
func (b FreeBlock) DurationMinutes() int {
	return int(b.End.Sub(b.Start).Minutes())
}
