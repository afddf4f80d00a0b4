package agent

import (
	"fmt"
	"time"

	"campus-day-planner/internal/model"
	"campus-day-planner/internal/planner"
)

// nearDueWindow is how close a due date must be to count as pressure.
const nearDueWindow = 48 * time.Hour

// ClassifyPressure maps the pending workload to a mode without any external
// call. Pressure counts assignments that are high priority or due within 48
// hours: none pending means OFF, no pressing ones LIGHT, one or two NORMAL,
// three or more HIGH. Pure function.
func ClassifyPressure(assignments []model.Assignment, now time.Time) (model.DecisionMode, int) {
	pending := 0
	pressing := 0
	for _, a := range assignments {
		if a.Completed {
			continue
		}
		pending++
		if a.Priority == model.PriorityHigh || a.DueAt.Sub(now) <= nearDueWindow {
			pressing++
		}
	}

	switch {
	case pending == 0:
		return model.ModeOff, 0
	case pressing == 0:
		return model.ModeLight, 0
	case pressing <= 2:
		return model.ModeNormal, pressing
	default:
		return model.ModeHigh, pressing
	}
}

// modeBudget is the number of proposed blocks a mode keeps. HIGH keeps
// everything.
func modeBudget(mode model.DecisionMode, proposed int) int {
	switch mode {
	case model.ModeOff:
		return 0
	case model.ModeLight:
		if proposed < 1 {
			return proposed
		}
		return 1
	case model.ModeNormal:
		if proposed < 3 {
			return proposed
		}
		return 3
	default:
		return proposed
	}
}

// Fallback produces a Decision from the pressure classification alone,
// keeping the first blocks of the unmodified proposal up to the mode's
// budget. The proposal is already in urgency order, so a prefix keeps the
// most urgent work.
func Fallback(in Input, now time.Time) Result {
	mode, pressing := ClassifyPressure(in.Assignments, now)
	budget := modeBudget(mode, len(in.Proposed))

	kept := make([]planner.ProposedBlock, 0, budget)
	ids := make([]string, 0, budget)
	for _, b := range in.Proposed[:budget] {
		kept = append(kept, b)
		ids = append(ids, b.ID)
	}

	return Result{
		Decision: model.Decision{
			Mode:         mode,
			KeptBlockIDs: ids,
			Reason:       fallbackReason(mode, pressing, len(in.Proposed), budget),
			FromFallback: true,
		},
		Blocks: kept,
	}
}

func fallbackReason(mode model.DecisionMode, pressing, proposed, kept int) string {
	switch mode {
	case model.ModeOff:
		return "No pending assignments, taking the day off"
	case model.ModeLight:
		return fmt.Sprintf("Nothing urgent, keeping %d of %d study blocks", kept, proposed)
	case model.ModeNormal:
		return fmt.Sprintf("%d pressing assignment(s), keeping %d of %d study blocks", pressing, kept, proposed)
	default:
		return fmt.Sprintf("%d pressing assignments, keeping all %d study blocks", pressing, proposed)
	}
}
