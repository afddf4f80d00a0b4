package http

import (
	"time"

	"campus-day-planner/internal/model"
	"campus-day-planner/internal/planner"
)

// --- Request DTOs ---

type getDayPlanReq struct {
	Date    string `form:"date"`    // "today", "tomorrow" or YYYY-MM-DD; empty means today
	Refresh bool   `form:"refresh"` // bypass the cache
}

func (r getDayPlanReq) toInput() planner.GetDayPlanInput {
	return planner.GetDayPlanInput{
		Date:         r.Date,
		ForceRefresh: r.Refresh,
	}
}

type refreshReq struct {
	Date string `json:"date"` // empty means today
}

func (r refreshReq) toInput() planner.GetDayPlanInput {
	return planner.GetDayPlanInput{
		Date:         r.Date,
		ForceRefresh: true,
	}
}

type setPreferencesReq struct {
	Date    string `json:"date"`
	Mood    string `json:"mood"    binding:"required"`
	Feeling string `json:"feeling" binding:"required"`
}

func (r setPreferencesReq) toInput() planner.SetPreferencesInput {
	return planner.SetPreferencesInput{
		Date:    r.Date,
		Mood:    model.Mood(r.Mood),
		Feeling: model.Feeling(r.Feeling),
	}
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

type freeBlockResp struct {
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
	Minutes int       `json:"minutes"`
}

type busSuggestionResp struct {
	Direction         string             `json:"direction"`
	DepartureAt       time.Time          `json:"departure_at"`
	ArrivalAt         time.Time          `json:"arrival_at"`
	Reason            string             `json:"reason,omitempty"`
	IsLateNight       bool               `json:"is_late_night"`
	MinutesUntilLeave int                `json:"minutes_until_leave,omitempty"`
	Backup            *busSuggestionResp `json:"backup,omitempty"`
}

func newBusSuggestionResp(s *model.BusSuggestion) *busSuggestionResp {
	if s == nil {
		return nil
	}
	return &busSuggestionResp{
		Direction:         string(s.Direction),
		DepartureAt:       s.DepartureAt,
		ArrivalAt:         s.ArrivalAt,
		Reason:            s.Reason,
		IsLateNight:       s.IsLateNight,
		MinutesUntilLeave: s.MinutesUntilLeave,
		Backup:            newBusSuggestionResp(s.Backup),
	}
}

type busSuggestionsResp struct {
	Outbound *busSuggestionResp `json:"outbound,omitempty"`
	Inbound  *busSuggestionResp `json:"inbound,omitempty"`
}

type dayPlanResp struct {
	Date           string              `json:"date"`
	Mode           string              `json:"mode"`
	ModeReason     string              `json:"mode_reason,omitempty"`
	FromFallback   bool                `json:"from_fallback,omitempty"`
	Summary        string              `json:"summary"`
	Events         []eventResp         `json:"events"`
	FreeBlocks     []freeBlockResp     `json:"free_blocks"`
	BusSuggestions *busSuggestionsResp `json:"bus_suggestions,omitempty"`
	GeneratedAt    time.Time           `json:"generated_at"`
	Cached         bool                `json:"cached"`
}

func (h *handler) newDayPlanResp(out planner.GetDayPlanOutput) dayPlanResp {
	plan := out.Plan

	events := make([]eventResp, len(plan.Events))
	for i, e := range plan.Events {
		events[i] = newEventResp(e)
	}

	free := make([]freeBlockResp, len(plan.FreeBlocks))
	for i, b := range plan.FreeBlocks {
		free[i] = freeBlockResp{Start: b.Start, End: b.End, Minutes: b.DurationMinutes()}
	}

	var bus *busSuggestionsResp
	if plan.BusSuggestions != nil {
		bus = &busSuggestionsResp{
			Outbound: newBusSuggestionResp(plan.BusSuggestions.Outbound),
			Inbound:  newBusSuggestionResp(plan.BusSuggestions.Inbound),
		}
	}

	return dayPlanResp{
		Date:           plan.Date,
		Mode:           string(plan.Decision.Mode),
		ModeReason:     plan.Decision.Reason,
		FromFallback:   plan.Decision.FromFallback,
		Summary:        plan.Summary,
		Events:         events,
		FreeBlocks:     free,
		BusSuggestions: bus,
		GeneratedAt:    plan.GeneratedAt,
		Cached:         out.Cached,
	}
}

type preferencesResp struct {
	Date    string `json:"date"`
	Mood    string `json:"mood"`
	Feeling string `json:"feeling"`
}

func (h *handler) newPreferencesResp(out planner.SetPreferencesOutput) preferencesResp {
	return preferencesResp{
		Date:    out.Preferences.Date,
		Mood:    string(out.Preferences.Mood),
		Feeling: string(out.Preferences.Feeling),
	}
}
