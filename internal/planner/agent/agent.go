// Package agent decides how much of the scheduler's proposal survives into
// the final plan, via an external generative decision call with a
// deterministic fallback.
package agent

import (
	"context"
	"time"

	"campus-day-planner/internal/model"
	"campus-day-planner/internal/planner"
	pkgLog "campus-day-planner/pkg/log"
)

// Input is the compact context a Decider works from. Mood and Feeling may be
// empty, meaning neutral bias.
type Input struct {
	Date        string
	Mood        model.Mood
	Feeling     model.Feeling
	Events      []model.Event
	Proposed    []planner.ProposedBlock
	Assignments []model.Assignment
}

// Result pairs the decision with the surviving blocks. Blocks is always a
// subset of the proposal; ends may have been pulled earlier but never later,
// and starts never move.
type Result struct {
	Decision model.Decision
	Blocks   []planner.ProposedBlock
}

// Decider filters a study-block proposal down to what the day should hold.
// Implementations must return an error rather than a partially valid result;
// the caller recovers with the deterministic fallback.
type Decider interface {
	Decide(ctx context.Context, in Input) (Result, error)
}

// Adapter wraps a Decider with the failure policy: one attempt, bounded
// timeout, deterministic fallback. A nil Decider always falls back, which is
// how deployments without an API key run.
type Adapter struct {
	d       Decider
	timeout time.Duration
	l       pkgLog.Logger
}

func NewAdapter(l pkgLog.Logger, d Decider, timeout time.Duration) *Adapter {
	return &Adapter{d: d, timeout: timeout, l: l}
}

// Decide runs the decision step for one day plan. An empty proposal
// short-circuits to OFF without touching the external decider. A decider
// failure or invalid response is recovered by the fallback and never
// surfaces as an error; only caller cancellation does.
func (a *Adapter) Decide(ctx context.Context, in Input, now time.Time) (Result, error) {
	if len(in.Proposed) == 0 {
		return Result{
			Decision: model.Decision{
				Mode:         model.ModeOff,
				KeptBlockIDs: []string{},
				Reason:       "No pending study blocks to schedule",
			},
			Blocks: []planner.ProposedBlock{},
		}, nil
	}

	if a.d == nil {
		return Fallback(in, now), nil
	}

	callCtx := ctx
	if a.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	res, err := a.d.Decide(callCtx, in)
	if err == nil {
		return res, nil
	}
	if ctx.Err() != nil {
		return Result{}, ctx.Err()
	}

	a.l.Warnf(ctx, "agent: decider failed, using deterministic fallback: %v", err)
	return Fallback(in, now), nil
}
