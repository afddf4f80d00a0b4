package planner

import (
	"fmt"
	"time"

	"campus-day-planner/internal/model"
)

// ProposedBlock is a scheduler-generated candidate study session for one
// assignment. IDs are synthetic but stable: "assignment-{assignmentID}-{seq}"
// with a per-assignment counter starting at 0, so identical inputs always
// produce identical blocks.
type ProposedBlock struct {
	ID           string
	AssignmentID string
	Seq          int
	Title        string
	Description  string
	Start        time.Time
	End          time.Time
}

// BlockID builds the stable synthetic id for an assignment block.
func BlockID(assignmentID string, seq int) string {
	return fmt.Sprintf("assignment-%s-%d", assignmentID, seq)
}

// Duration returns the block length.
func (b ProposedBlock) Duration() time.Duration {
	return b.End.Sub(b.Start)
}

// Hours returns the block length in fractional hours.
func (b ProposedBlock) Hours() float64 {
	return b.End.Sub(b.Start).Hours()
}

// ToEvent converts the block into an assignment-kind calendar event for the
// merged day view.
func (b ProposedBlock) ToEvent() model.Event {
	return model.Event{
		ID:          b.ID,
		Title:       b.Title,
		Start:       b.Start,
		End:         b.End,
		Description: b.Description,
		Kind:        model.EventKindAssignment,
	}
}

// --- UseCase Inputs ---

type GetDayPlanInput struct {
	Date         string // "today", "tomorrow" or YYYY-MM-DD; empty means today
	ForceRefresh bool
}

type SetPreferencesInput struct {
	Date    string // YYYY-MM-DD; empty means today
	Mood    model.Mood
	Feeling model.Feeling
}

// --- UseCase Outputs ---

type GetDayPlanOutput struct {
	Plan   model.DayPlan
	Cached bool
}

type SetPreferencesOutput struct {
	Preferences model.Preferences
}
