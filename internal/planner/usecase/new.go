package usecase

import (
	"context"
	"time"

	"campus-day-planner/internal/model"
	"campus-day-planner/internal/planner"
	"campus-day-planner/internal/planner/agent"
	"campus-day-planner/internal/planner/repository"
	"campus-day-planner/pkg/datemath"
	pkgLog "campus-day-planner/pkg/log"
)

// EventSource fetches a day's real calendar events. day is the start of the
// requested day in the planner's timezone.
type EventSource interface {
	ListEventsForDay(ctx context.Context, day time.Time) ([]model.Event, error)
}

// BlockProposer is the deterministic scheduler step.
type BlockProposer interface {
	Propose(ctx context.Context, now time.Time, events []model.Event, freeBlocks []model.FreeBlock, assignments []model.Assignment) []planner.ProposedBlock
}

// DecisionAdapter is the planning-agent step with its fallback policy baked
// in; it only errors on caller cancellation.
type DecisionAdapter interface {
	Decide(ctx context.Context, in agent.Input, now time.Time) (agent.Result, error)
}

// TransitEngine computes bus suggestions; nil means no commute today.
type TransitEngine interface {
	SuggestForDay(ctx context.Context, date time.Time, now time.Time, events []model.Event) *model.BusSuggestions
}

// PlanStore is the per-(user, date) plan cache.
type PlanStore interface {
	Get(userID, date string) (model.DayPlan, bool)
	Put(plan model.DayPlan)
	Invalidate(ctx context.Context, userID, date string)
	PurgeOlderThan(ctx context.Context, retention time.Duration) int
}

// Config carries the day-window and retention knobs.
type Config struct {
	DayStartHour        int
	DayEndHour          int
	MinFreeBlockMinutes int
	RetentionDays       int
}

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	events   EventSource
	sched    BlockProposer
	agent    DecisionAdapter
	transit  TransitEngine
	cache    PlanStore
	dateMath *datemath.Parser
	cfg      Config
	now      func() time.Time
}

// New creates a new planner UseCase instance. transit may be nil when no
// timetable is configured; the plan then simply carries no bus suggestions.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	events EventSource,
	sched BlockProposer,
	agentAdapter DecisionAdapter,
	transit TransitEngine,
	cache PlanStore,
	dateMath *datemath.Parser,
	cfg Config,
) *implUseCase {
	return &implUseCase{
		l:        l,
		repo:     repo,
		events:   events,
		sched:    sched,
		agent:    agentAdapter,
		transit:  transit,
		cache:    cache,
		dateMath: dateMath,
		cfg:      cfg,
		now:      time.Now,
	}
}
