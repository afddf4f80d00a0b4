package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"campus-day-planner/internal/model"
	"campus-day-planner/internal/planner"
	"campus-day-planner/internal/planner/agent"
	"campus-day-planner/pkg/datemath"
)

func testConfig() Config {
	return Config{
		DayStartHour:        8,
		DayEndHour:          22,
		MinFreeBlockMinutes: 15,
		RetentionDays:       7,
	}
}

type fixture struct {
	uc      *implUseCase
	repo    *mockRepo
	events  *mockEvents
	sched   *mockSched
	agent   *mockAgent
	transit *mockTransit
	cache   *mockCache
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dm, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("parser: %v", err)
	}

	f := &fixture{
		repo:    &mockRepo{},
		events:  &mockEvents{},
		sched:   &mockSched{},
		agent:   &mockAgent{},
		transit: &mockTransit{},
		cache:   newMockCache(),
	}
	f.uc = New(&mockLogger{}, f.repo, f.events, f.sched, f.agent, f.transit, f.cache, dm, testConfig())
	f.uc.now = func() time.Time { return time.Date(2026, 3, 2, 7, 0, 0, 0, time.UTC) }
	return f
}

func lecture(id string, startHour, endHour int) model.Event {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	return model.Event{
		ID:       id,
		Title:    "Lecture",
		Start:    day.Add(time.Duration(startHour) * time.Hour),
		End:      day.Add(time.Duration(endHour) * time.Hour),
		Location: "Science Building 12",
		Kind:     model.EventKindCalendar,
	}
}

func sc() model.Scope { return model.Scope{UserID: "u1"} }

func TestGetDayPlan(t *testing.T) {
	ctx := context.Background()

	t.Run("full pipeline produces a cached plan", func(t *testing.T) {
		f := newFixture(t)
		f.events.events = []model.Event{lecture("lec-1", 10, 12)}
		f.sched.proposal = []planner.ProposedBlock{{
			ID:           "assignment-a1-0",
			AssignmentID: "a1",
			Title:        "Work on Essay",
			Start:        time.Date(2026, 3, 2, 13, 0, 0, 0, time.UTC),
			End:          time.Date(2026, 3, 2, 14, 0, 0, 0, time.UTC),
		}}
		f.agent.res = agent.Result{
			Decision: model.Decision{Mode: model.ModeNormal, KeptBlockIDs: []string{"assignment-a1-0"}, Reason: "Steady day"},
			Blocks:   f.sched.proposal,
		}

		out, err := f.uc.GetDayPlan(ctx, sc(), planner.GetDayPlanInput{Date: "2026-03-02"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Cached {
			t.Error("first request must not be served from cache")
		}
		if out.Plan.Date != "2026-03-02" || out.Plan.UserID != "u1" {
			t.Errorf("bad plan identity: %+v", out.Plan)
		}
		// Lecture plus the surviving study block.
		if len(out.Plan.Events) != 2 {
			t.Fatalf("expected 2 merged events, got %d", len(out.Plan.Events))
		}
		if out.Plan.Events[0].ID != "lec-1" || out.Plan.Events[1].Kind != model.EventKindAssignment {
			t.Errorf("merged events out of order: %+v", out.Plan.Events)
		}
		if f.cache.puts != 1 {
			t.Errorf("expected exactly one cache write, got %d", f.cache.puts)
		}
		if out.Plan.Summary == "" {
			t.Error("plan must carry a summary")
		}
	})

	t.Run("second request hits the cache", func(t *testing.T) {
		f := newFixture(t)
		f.agent.res = agent.Result{Decision: model.Decision{Mode: model.ModeOff}}

		if _, err := f.uc.GetDayPlan(ctx, sc(), planner.GetDayPlanInput{Date: "2026-03-02"}); err != nil {
			t.Fatalf("first request: %v", err)
		}
		out, err := f.uc.GetDayPlan(ctx, sc(), planner.GetDayPlanInput{Date: "2026-03-02"})
		if err != nil {
			t.Fatalf("second request: %v", err)
		}
		if !out.Cached {
			t.Error("expected a cache hit")
		}
		if f.events.calls != 1 {
			t.Errorf("calendar must be fetched once, got %d calls", f.events.calls)
		}
	})

	t.Run("force refresh regenerates and overwrites", func(t *testing.T) {
		f := newFixture(t)
		f.agent.res = agent.Result{Decision: model.Decision{Mode: model.ModeOff}}

		if _, err := f.uc.GetDayPlan(ctx, sc(), planner.GetDayPlanInput{Date: "2026-03-02"}); err != nil {
			t.Fatalf("first request: %v", err)
		}
		out, err := f.uc.GetDayPlan(ctx, sc(), planner.GetDayPlanInput{Date: "2026-03-02", ForceRefresh: true})
		if err != nil {
			t.Fatalf("refresh request: %v", err)
		}
		if out.Cached {
			t.Error("forced refresh must not be served from cache")
		}
		if f.events.calls != 2 {
			t.Errorf("expected a second calendar fetch, got %d calls", f.events.calls)
		}
		if f.cache.puts != 2 {
			t.Errorf("expected the refreshed plan cached, got %d puts", f.cache.puts)
		}
	})

	t.Run("calendar failure is fatal and caches nothing", func(t *testing.T) {
		f := newFixture(t)
		f.events.err = errors.New("google is down")

		_, err := f.uc.GetDayPlan(ctx, sc(), planner.GetDayPlanInput{Date: "2026-03-02"})
		if !errors.Is(err, planner.ErrCalendarUnavailable) {
			t.Fatalf("expected ErrCalendarUnavailable, got %v", err)
		}
		if f.cache.puts != 0 {
			t.Error("nothing may be cached on a fatal failure")
		}
	})

	t.Run("assignment read failure degrades to no study blocks", func(t *testing.T) {
		f := newFixture(t)
		f.repo.assignmentsErr = errors.New("db down")
		f.agent.res = agent.Result{Decision: model.Decision{Mode: model.ModeOff}}

		out, err := f.uc.GetDayPlan(ctx, sc(), planner.GetDayPlanInput{Date: "2026-03-02"})
		if err != nil {
			t.Fatalf("assignment failure must not be fatal: %v", err)
		}
		if len(out.Plan.Events) != 0 {
			t.Errorf("expected an empty plan, got %+v", out.Plan.Events)
		}
	})

	t.Run("nil transit suggestions just omit the bus", func(t *testing.T) {
		f := newFixture(t)
		f.events.events = []model.Event{lecture("lec-1", 10, 12)}
		f.agent.res = agent.Result{Decision: model.Decision{Mode: model.ModeOff}}
		f.transit.suggestions = nil

		out, err := f.uc.GetDayPlan(ctx, sc(), planner.GetDayPlanInput{Date: "2026-03-02"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Plan.BusSuggestions != nil {
			t.Error("expected no bus suggestions")
		}
		if f.cache.puts != 1 {
			t.Error("a plan without a commute is still cacheable")
		}
	})

	t.Run("bus suggestions appear as commute events", func(t *testing.T) {
		f := newFixture(t)
		f.events.events = []model.Event{lecture("lec-1", 10, 12)}
		f.agent.res = agent.Result{Decision: model.Decision{Mode: model.ModeOff}}
		dep := time.Date(2026, 3, 2, 9, 25, 0, 0, time.UTC)
		f.transit.suggestions = &model.BusSuggestions{
			Outbound: &model.BusSuggestion{Direction: model.DirectionOutbound, DepartureAt: dep, ArrivalAt: dep.Add(25 * time.Minute)},
		}

		out, err := f.uc.GetDayPlan(ctx, sc(), planner.GetDayPlanInput{Date: "2026-03-02"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Plan.Events) != 2 {
			t.Fatalf("expected lecture + commute, got %+v", out.Plan.Events)
		}
		if out.Plan.Events[0].Kind != model.EventKindCommute {
			t.Errorf("commute should sort before the lecture: %+v", out.Plan.Events[0])
		}
	})

	t.Run("preferences are passed through to the agent", func(t *testing.T) {
		f := newFixture(t)
		f.repo.prefs = model.Preferences{UserID: "u1", Date: "2026-03-02", Mood: model.MoodGrind, Feeling: model.FeelingOnTop}
		f.agent.res = agent.Result{Decision: model.Decision{Mode: model.ModeOff}}

		if _, err := f.uc.GetDayPlan(ctx, sc(), planner.GetDayPlanInput{Date: "2026-03-02"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f.agent.last.Mood != model.MoodGrind || f.agent.last.Feeling != model.FeelingOnTop {
			t.Errorf("agent input missing preferences: %+v", f.agent.last)
		}
	})

	t.Run("invalid date is rejected", func(t *testing.T) {
		f := newFixture(t)
		if _, err := f.uc.GetDayPlan(ctx, sc(), planner.GetDayPlanInput{Date: "someday"}); !errors.Is(err, planner.ErrInvalidDate) {
			t.Fatalf("expected ErrInvalidDate, got %v", err)
		}
	})

	t.Run("canceled caller gets no cache write", func(t *testing.T) {
		f := newFixture(t)
		f.agent.res = agent.Result{Decision: model.Decision{Mode: model.ModeOff}}

		cctx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := f.uc.GetDayPlan(cctx, sc(), planner.GetDayPlanInput{Date: "2026-03-02"})
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
		if f.cache.puts != 0 {
			t.Error("a canceled request must not write the cache")
		}
	})
}
