package http

import (
	"time"

	"campus-day-planner/internal/calendar"
	"campus-day-planner/internal/model"
)

// --- Request DTOs ---

type createEventReq struct {
	Title       string    `json:"title"       binding:"required,min=1,max=255"`
	Description string    `json:"description" binding:"max=1000"`
	Start       time.Time `json:"start"       binding:"required"`
	End         time.Time `json:"end"         binding:"required"`
}

func (r createEventReq) toInput() calendar.CreateEventInput {
	return calendar.CreateEventInput{
		Title:       r.Title,
		Description: r.Description,
		Start:       r.Start,
		End:         r.End,
	}
}

type syncReq struct {
	Date string `json:"date"` // empty means today
}

// --- Response DTOs ---

type eventResp struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Location    string    `json:"location,omitempty"`
	Description string    `json:"description,omitempty"`
	Kind        string    `json:"kind"`
}

func newEventResp(e model.Event) eventResp {
	return eventResp{
		ID:          e.ID,
		Title:       e.Title,
		Start:       e.Start,
		End:         e.End,
		Location:    e.Location,
		Description: e.Description,
		Kind:        string(e.Kind),
	}
}

type createEventResp struct {
	Event eventResp `json:"event"`
}

func (h *handler) newCreateEventResp(out calendar.CreateEventOutput) createEventResp {
	return createEventResp{Event: newEventResp(out.Event)}
}

type syncResp struct {
	Date   string `json:"date"`
	Synced int    `json:"synced"`
}

func (h *handler) newSyncResp(date string, out calendar.SyncStudyBlocksOutput) syncResp {
	return syncResp{Date: date, Synced: out.Synced}
}
