package usecase

import (
	"context"
	"time"

	"campus-day-planner/internal/model"
	"campus-day-planner/internal/planner"
	"campus-day-planner/internal/planner/agent"
	"campus-day-planner/internal/planner/repository"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type mockRepo struct {
	assignments    []model.Assignment
	assignmentsErr error
	prefs          model.Preferences
	prefsErr       error
	upserted       *repository.UpsertPreferencesOptions
	upsertErr      error
}

func (m *mockRepo) ListPendingAssignments(ctx context.Context, opt repository.ListPendingAssignmentsOptions) ([]model.Assignment, error) {
	return m.assignments, m.assignmentsErr
}

func (m *mockRepo) GetPreferences(ctx context.Context, opt repository.GetPreferencesOptions) (model.Preferences, error) {
	return m.prefs, m.prefsErr
}

func (m *mockRepo) UpsertPreferences(ctx context.Context, opt repository.UpsertPreferencesOptions) (model.Preferences, error) {
	m.upserted = &opt
	if m.upsertErr != nil {
		return model.Preferences{}, m.upsertErr
	}
	return model.Preferences{
		UserID:  opt.UserID,
		Date:    opt.Date,
		Mood:    model.Mood(opt.Mood),
		Feeling: model.Feeling(opt.Feeling),
	}, nil
}

type mockEvents struct {
	events []model.Event
	err    error
	calls  int
}

func (m *mockEvents) ListEventsForDay(ctx context.Context, day time.Time) ([]model.Event, error) {
	m.calls++
	return m.events, m.err
}

type mockSched struct {
	proposal []planner.ProposedBlock
}

func (m *mockSched) Propose(ctx context.Context, now time.Time, events []model.Event, freeBlocks []model.FreeBlock, assignments []model.Assignment) []planner.ProposedBlock {
	return m.proposal
}

type mockAgent struct {
	res  agent.Result
	err  error
	last agent.Input
}

func (m *mockAgent) Decide(ctx context.Context, in agent.Input, now time.Time) (agent.Result, error) {
	m.last = in
	return m.res, m.err
}

type mockTransit struct {
	suggestions *model.BusSuggestions
	calls       int
}

func (m *mockTransit) SuggestForDay(ctx context.Context, date time.Time, now time.Time, events []model.Event) *model.BusSuggestions {
	m.calls++
	return m.suggestions
}

// mockCache is an in-memory PlanStore recording its traffic.
type mockCache struct {
	entries     map[string]model.DayPlan
	puts        int
	invalidated []string
}

func newMockCache() *mockCache {
	return &mockCache{entries: map[string]model.DayPlan{}}
}

func (m *mockCache) Get(userID, date string) (model.DayPlan, bool) {
	p, ok := m.entries[userID+"|"+date]
	return p, ok
}

func (m *mockCache) Put(plan model.DayPlan) {
	m.puts++
	m.entries[plan.UserID+"|"+plan.Date] = plan
}

func (m *mockCache) Invalidate(ctx context.Context, userID, date string) {
	m.invalidated = append(m.invalidated, userID+"|"+date)
	delete(m.entries, userID+"|"+date)
}

func (m *mockCache) PurgeOlderThan(ctx context.Context, retention time.Duration) int {
	return 0
}
