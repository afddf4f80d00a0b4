package agent_test

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"campus-day-planner/internal/model"
	"campus-day-planner/internal/planner"
	"campus-day-planner/internal/planner/agent"
	pkgLog "campus-day-planner/pkg/log"
)

type noopLogger struct{}

func (noopLogger) Debug(ctx context.Context, args ...interface{})                 {}
func (noopLogger) Debugf(ctx context.Context, format string, args ...interface{}) {}
func (noopLogger) Info(ctx context.Context, args ...interface{})                  {}
func (noopLogger) Infof(ctx context.Context, format string, args ...interface{})  {}
func (noopLogger) Warn(ctx context.Context, args ...interface{})                  {}
func (noopLogger) Warnf(ctx context.Context, format string, args ...interface{})  {}
func (noopLogger) Error(ctx context.Context, args ...interface{})                 {}
func (noopLogger) Errorf(ctx context.Context, format string, args ...interface{}) {}
func (noopLogger) DPanic(ctx context.Context, args ...interface{})                {}
func (noopLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (noopLogger) Panic(ctx context.Context, args ...interface{})                 {}
func (noopLogger) Panicf(ctx context.Context, format string, args ...interface{}) {}
func (noopLogger) Fatal(ctx context.Context, args ...interface{})                 {}
func (noopLogger) Fatalf(ctx context.Context, format string, args ...interface{}) {}

var _ pkgLog.Logger = noopLogger{}

type stubDecider struct {
	res    agent.Result
	err    error
	called int
}

func (s *stubDecider) Decide(ctx context.Context, in agent.Input) (agent.Result, error) {
	s.called++
	return s.res, s.err
}

var loc = time.FixedZone("EST", -5*3600)

func at(hour, min int) time.Time {
	return time.Date(2026, 3, 2, hour, min, 0, 0, loc)
}

func block(id string, start, end time.Time) planner.ProposedBlock {
	return planner.ProposedBlock{
		ID:           id,
		AssignmentID: "a1",
		Title:        "Work on Essay",
		Start:        start,
		End:          end,
	}
}

func pendingAssignment(id string, dueIn time.Duration, prio int) model.Assignment {
	return model.Assignment{ID: id, Title: "hw", DueAt: at(7, 0).Add(dueIn), Priority: prio}
}

func TestAdapterDecide(t *testing.T) {
	now := at(7, 0)

	t.Run("empty proposal short-circuits to OFF", func(t *testing.T) {
		stub := &stubDecider{}
		a := agent.NewAdapter(noopLogger{}, stub, time.Second)

		res, err := a.Decide(context.Background(), agent.Input{Date: "2026-03-02"}, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Decision.Mode != model.ModeOff {
			t.Errorf("expected OFF, got %s", res.Decision.Mode)
		}
		if stub.called != 0 {
			t.Errorf("decider must not be called for an empty proposal, called %d times", stub.called)
		}
	})

	t.Run("decider failure falls back without surfacing an error", func(t *testing.T) {
		stub := &stubDecider{err: errors.New("upstream boom")}
		a := agent.NewAdapter(noopLogger{}, stub, time.Second)

		in := agent.Input{
			Proposed:    []planner.ProposedBlock{block("assignment-a1-0", at(9, 0), at(10, 0))},
			Assignments: []model.Assignment{pendingAssignment("a1", 24*time.Hour, model.PriorityHigh)},
		}
		res, err := a.Decide(context.Background(), in, now)
		if err != nil {
			t.Fatalf("agent failure must be recovered, got %v", err)
		}
		if !res.Decision.FromFallback {
			t.Error("expected a fallback decision")
		}
		if len(res.Blocks) != 1 {
			t.Errorf("expected the proposal kept, got %d blocks", len(res.Blocks))
		}
	})

	t.Run("nil decider always falls back", func(t *testing.T) {
		a := agent.NewAdapter(noopLogger{}, nil, time.Second)
		in := agent.Input{
			Proposed:    []planner.ProposedBlock{block("assignment-a1-0", at(9, 0), at(10, 0))},
			Assignments: []model.Assignment{pendingAssignment("a1", 5*24*time.Hour, model.PriorityLow)},
		}
		res, err := a.Decide(context.Background(), in, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Decision.FromFallback {
			t.Error("expected a fallback decision")
		}
	})

	t.Run("caller cancellation surfaces", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		stub := &stubDecider{err: context.Canceled}
		a := agent.NewAdapter(noopLogger{}, stub, time.Second)
		in := agent.Input{Proposed: []planner.ProposedBlock{block("assignment-a1-0", at(9, 0), at(10, 0))}}

		if _, err := a.Decide(ctx, in, now); !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	})
}

func TestFallback(t *testing.T) {
	now := at(7, 0)
	proposal := []planner.ProposedBlock{
		block("assignment-a1-0", at(9, 0), at(10, 0)),
		block("assignment-a1-1", at(10, 0), at(11, 0)),
		block("assignment-a2-0", at(13, 0), at(14, 0)),
		block("assignment-a3-0", at(14, 0), at(15, 0)),
	}

	cases := []struct {
		name        string
		assignments []model.Assignment
		wantMode    model.DecisionMode
		wantBlocks  int
	}{
		{
			name:        "no pending assignments is OFF",
			assignments: []model.Assignment{{ID: "z", Completed: true, DueAt: at(12, 0)}},
			wantMode:    model.ModeOff,
			wantBlocks:  0,
		},
		{
			name: "nothing pressing is LIGHT with one block",
			assignments: []model.Assignment{
				pendingAssignment("a1", 5*24*time.Hour, model.PriorityLow),
				pendingAssignment("a2", 6*24*time.Hour, model.PriorityMedium),
			},
			wantMode:   model.ModeLight,
			wantBlocks: 1,
		},
		{
			name: "one pressing assignment is NORMAL with up to three",
			assignments: []model.Assignment{
				pendingAssignment("a1", 24*time.Hour, model.PriorityLow),
				pendingAssignment("a2", 6*24*time.Hour, model.PriorityMedium),
			},
			wantMode:   model.ModeNormal,
			wantBlocks: 3,
		},
		{
			name: "three pressing assignments is HIGH with everything",
			assignments: []model.Assignment{
				pendingAssignment("a1", 12*time.Hour, model.PriorityLow),
				pendingAssignment("a2", 24*time.Hour, model.PriorityMedium),
				pendingAssignment("a3", 5*24*time.Hour, model.PriorityHigh),
			},
			wantMode:   model.ModeHigh,
			wantBlocks: 4,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := agent.Fallback(agent.Input{Proposed: proposal, Assignments: tc.assignments}, now)
			if res.Decision.Mode != tc.wantMode {
				t.Errorf("mode: got %s want %s", res.Decision.Mode, tc.wantMode)
			}
			if len(res.Blocks) != tc.wantBlocks {
				t.Errorf("blocks: got %d want %d", len(res.Blocks), tc.wantBlocks)
			}
			if !res.Decision.FromFallback {
				t.Error("fallback must mark itself")
			}
			for i, b := range res.Blocks {
				if b.ID != proposal[i].ID {
					t.Errorf("fallback must keep a prefix of the proposal, block %d is %s", i, b.ID)
				}
			}
		})
	}

	t.Run("empty proposal keeps nothing regardless of mode", func(t *testing.T) {
		in := agent.Input{
			Assignments: []model.Assignment{
				pendingAssignment("a1", 5*24*time.Hour, model.PriorityLow),
			},
		}
		res := agent.Fallback(in, now)
		if res.Decision.Mode != model.ModeLight {
			t.Errorf("mode: got %s want %s", res.Decision.Mode, model.ModeLight)
		}
		if len(res.Blocks) != 0 || len(res.Decision.KeptBlockIDs) != 0 {
			t.Errorf("nothing proposed means nothing kept, got %+v", res)
		}
	})

	t.Run("pure function of its inputs", func(t *testing.T) {
		in := agent.Input{
			Proposed: proposal,
			Assignments: []model.Assignment{
				pendingAssignment("a1", 24*time.Hour, model.PriorityHigh),
			},
		}
		first := agent.Fallback(in, now)
		second := agent.Fallback(in, now)
		if !reflect.DeepEqual(first, second) {
			t.Fatalf("fallback not deterministic:\n%+v\nvs\n%+v", first, second)
		}
	})
}
