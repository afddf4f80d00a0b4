package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"campus-day-planner/internal/model"
	"campus-day-planner/internal/planner"
	"campus-day-planner/internal/planner/agent"
	"campus-day-planner/internal/planner/freetime"
	"campus-day-planner/internal/planner/repository"
)

// GetDayPlan serves the cached plan for (user, date) or runs the full
// pipeline: fetch events, compute free time, schedule study blocks, let the
// planning agent trim them, attach bus suggestions, cache.
//
// A calendar failure is fatal and caches nothing. Repository and transit
// failures degrade the plan instead of failing it. The cache write happens
// once, after the full merge, and is skipped when the caller has gone away.
func (uc *implUseCase) GetDayPlan(ctx context.Context, sc model.Scope, input planner.GetDayPlanInput) (planner.GetDayPlanOutput, error) {
	now := uc.now()

	day, err := uc.dateMath.Parse(input.Date, now)
	if err != nil {
		return planner.GetDayPlanOutput{}, planner.ErrInvalidDate
	}
	date := day.Format("2006-01-02")

	uc.cache.PurgeOlderThan(ctx, time.Duration(uc.cfg.RetentionDays)*24*time.Hour)

	if !input.ForceRefresh {
		if plan, ok := uc.cache.Get(sc.UserID, date); ok {
			uc.l.Debugf(ctx, "planner: cache hit for user %s on %s", sc.UserID, date)
			return planner.GetDayPlanOutput{Plan: plan, Cached: true}, nil
		}
	} else {
		uc.cache.Invalidate(ctx, sc.UserID, date)
	}

	events, err := uc.events.ListEventsForDay(ctx, day)
	if err != nil {
		uc.l.Errorf(ctx, "planner: calendar fetch failed for %s: %v", date, err)
		return planner.GetDayPlanOutput{}, planner.ErrCalendarUnavailable
	}

	dayStart := day.Add(time.Duration(uc.cfg.DayStartHour) * time.Hour)
	dayEnd := day.Add(time.Duration(uc.cfg.DayEndHour) * time.Hour)
	free := freetime.Calculate(events, dayStart, dayEnd)

	assignments, err := uc.repo.ListPendingAssignments(ctx, repository.ListPendingAssignmentsOptions{UserID: sc.UserID})
	if err != nil {
		uc.l.Warnf(ctx, "planner: assignment read failed, planning without study blocks: %v", err)
		assignments = nil
	}

	prefs, err := uc.repo.GetPreferences(ctx, repository.GetPreferencesOptions{UserID: sc.UserID, Date: date})
	if err != nil {
		uc.l.Warnf(ctx, "planner: preferences read failed, using neutral bias: %v", err)
		prefs = model.Preferences{}
	}

	proposal := uc.sched.Propose(ctx, now, events, free, assignments)

	res, err := uc.agent.Decide(ctx, agent.Input{
		Date:        date,
		Mood:        prefs.Mood,
		Feeling:     prefs.Feeling,
		Events:      events,
		Proposed:    proposal,
		Assignments: assignments,
	}, now)
	if err != nil {
		return planner.GetDayPlanOutput{}, err
	}

	merged := make([]model.Event, 0, len(events)+len(res.Blocks)+2)
	merged = append(merged, events...)
	for _, b := range res.Blocks {
		merged = append(merged, b.ToEvent())
	}

	var bus *model.BusSuggestions
	if uc.transit != nil {
		bus = uc.transit.SuggestForDay(ctx, day, now, merged)
	}
	merged = append(merged, commuteEvents(bus)...)

	sort.SliceStable(merged, func(i, j int) bool {
		if !merged[i].Start.Equal(merged[j].Start) {
			return merged[i].Start.Before(merged[j].Start)
		}
		return merged[i].ID < merged[j].ID
	})

	plan := model.DayPlan{
		UserID:         sc.UserID,
		Date:           date,
		Events:         merged,
		FreeBlocks:     freetime.FilterShort(free, time.Duration(uc.cfg.MinFreeBlockMinutes)*time.Minute),
		Decision:       res.Decision,
		BusSuggestions: bus,
		Summary:        buildSummary(events, res, bus),
		GeneratedAt:    now,
	}

	// The caller gave up somewhere along the pipeline; leave the cache
	// untouched rather than store a plan nobody received.
	if ctx.Err() != nil {
		return planner.GetDayPlanOutput{}, ctx.Err()
	}

	uc.cache.Put(plan)
	uc.l.Infof(ctx, "planner: generated plan for user %s on %s (%d events, mode %s)",
		sc.UserID, date, len(merged), res.Decision.Mode)

	return planner.GetDayPlanOutput{Plan: plan, Cached: false}, nil
}

// commuteEvents turns bus suggestions into commute-kind events for the
// merged day view.
func commuteEvents(bus *model.BusSuggestions) []model.Event {
	if bus == nil {
		return nil
	}
	var out []model.Event
	if s := bus.Outbound; s != nil {
		out = append(out, model.Event{
			ID:    "commute-outbound",
			Title: "Bus to campus",
			Start: s.DepartureAt,
			End:   s.ArrivalAt,
			Kind:  model.EventKindCommute,
		})
	}
	if s := bus.Inbound; s != nil {
		out = append(out, model.Event{
			ID:    "commute-inbound",
			Title: "Bus home",
			Start: s.DepartureAt,
			End:   s.ArrivalAt,
			Kind:  model.EventKindCommute,
		})
	}
	return out
}

func buildSummary(events []model.Event, res agent.Result, bus *model.BusSuggestions) string {
	var b strings.Builder

	switch len(events) {
	case 0:
		b.WriteString("No calendar events today.")
	case 1:
		b.WriteString("1 calendar event today.")
	default:
		fmt.Fprintf(&b, "%d calendar events today.", len(events))
	}

	if n := len(res.Blocks); n > 0 {
		hours := 0.0
		for _, blk := range res.Blocks {
			hours += blk.Hours()
		}
		fmt.Fprintf(&b, " %d study block(s) totalling %.1fh.", n, hours)
	}
	if reason := strings.TrimSuffix(res.Decision.Reason, "."); reason != "" {
		b.WriteString(" " + reason + ".")
	}

	if bus != nil {
		if s := bus.Outbound; s != nil {
			fmt.Fprintf(&b, " Bus to campus at %s.", s.DepartureAt.Format("15:04"))
		}
		if s := bus.Inbound; s != nil {
			fmt.Fprintf(&b, " Bus home at %s.", s.DepartureAt.Format("15:04"))
			if s.IsLateNight {
				b.WriteString(" That is a late one, pack a snack.")
			}
		}
	}

	return b.String()
}
