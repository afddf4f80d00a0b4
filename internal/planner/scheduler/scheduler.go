// Package scheduler deterministically packs study blocks for pending
// assignments into a day's free time.
package scheduler

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"campus-day-planner/internal/model"
	"campus-day-planner/internal/planner"
	pkgLog "campus-day-planner/pkg/log"
)

// Config bounds the greedy packer.
type Config struct {
	MaxStudyHoursPerDay float64 // global daily cap across all assignments
	MaxAssignmentHours  float64 // daily cap for a single assignment
	MaxBlockHours       float64 // upper length of one study block
	MinBlockMinutes     int     // never emit blocks shorter than this
}

// DefaultConfig returns the product defaults: 4h global, 2h per assignment,
// blocks up to 2h, 30m minimum. With the block length matching the
// per-assignment cap, an assignment's daily share lands in one contiguous
// block whenever a free block can hold it.
func DefaultConfig() Config {
	return Config{
		MaxStudyHoursPerDay: 4.0,
		MaxAssignmentHours:  2.0,
		MaxBlockHours:       2.0,
		MinBlockMinutes:     30,
	}
}

type Scheduler struct {
	cfg Config
	l   pkgLog.Logger
}

// New creates a Scheduler. Propose is pure; the logger is only used for
// observability and invariant-violation reporting.
func New(l pkgLog.Logger, cfg Config) *Scheduler {
	if cfg.MaxStudyHoursPerDay <= 0 {
		cfg = DefaultConfig()
	}
	if cfg.MaxBlockHours <= 0 {
		cfg.MaxBlockHours = cfg.MaxAssignmentHours
	}
	return &Scheduler{cfg: cfg, l: l}
}

// Propose turns pending assignments and free blocks into candidate study
// blocks. Identical inputs (including now) always yield identical output,
// block ids included: assignments are ordered by (dueAt asc, priority desc,
// id asc) and free time is consumed front to back.
//
// Hours already booked as assignment-kind events count against both caps so
// a re-run after a partial sync does not over-allocate.
func (s *Scheduler) Propose(
	ctx context.Context,
	now time.Time,
	events []model.Event,
	freeBlocks []model.FreeBlock,
	assignments []model.Assignment,
) []planner.ProposedBlock {
	eligible := make([]model.Assignment, 0, len(assignments))
	for _, a := range assignments {
		if !a.Completed && !a.DueAt.Before(now) {
			eligible = append(eligible, a)
		}
	}
	if len(eligible) == 0 {
		s.l.Infof(ctx, "scheduler: no eligible assignments to schedule")
		return []planner.ProposedBlock{}
	}

	sort.Slice(eligible, func(i, j int) bool {
		a, b := eligible[i], eligible[j]
		if !a.DueAt.Equal(b.DueAt) {
			return a.DueAt.Before(b.DueAt)
		}
		if a.Priority != b.Priority {
			return a.Priority > b.Priority
		}
		return a.ID < b.ID
	})

	scheduledGlobal, scheduledPer := existingAssignmentHours(events)

	// Remaining free time, consumed front to back and split as blocks are
	// carved out of it.
	segments := make([]model.FreeBlock, 0, len(freeBlocks))
	segments = append(segments, freeBlocks...)
	sort.Slice(segments, func(i, j int) bool { return segments[i].Start.Before(segments[j].Start) })

	minBlock := float64(s.cfg.MinBlockMinutes) / 60.0
	var blocks []planner.ProposedBlock

	for _, a := range eligible {
		globalLeft := s.cfg.MaxStudyHoursPerDay - scheduledGlobal
		if globalLeft < minBlock {
			s.l.Debugf(ctx, "scheduler: hit daily cap of %.1fh, stopping", s.cfg.MaxStudyHoursPerDay)
			break
		}

		need := minFloat(a.EstimatedHours, s.cfg.MaxAssignmentHours) - scheduledPer[a.ID]
		need = minFloat(need, globalLeft)
		if need < minBlock {
			continue
		}

		seq := 0
		for si := range segments {
			if need < minBlock {
				break
			}
			seg := &segments[si]

			for need >= minBlock {
				segHours := seg.End.Sub(seg.Start).Hours()
				if segHours < minBlock {
					break
				}

				blockHours := minFloat(s.cfg.MaxBlockHours, minFloat(need, segHours))
				start := seg.Start
				end := start.Add(time.Duration(blockHours * float64(time.Hour)))

				blocks = append(blocks, planner.ProposedBlock{
					ID:           planner.BlockID(a.ID, seq),
					AssignmentID: a.ID,
					Seq:          seq,
					Title:        fmt.Sprintf("Work on %s", a.Title),
					Description:  blockDescription(a, now),
					Start:        start,
					End:          end,
				})
				seq++

				seg.Start = end
				need -= blockHours
				scheduledGlobal += blockHours
			}
		}
	}

	blocks = s.verify(ctx, blocks, freeBlocks)

	total := 0.0
	for _, b := range blocks {
		total += b.Hours()
	}
	s.l.Infof(ctx, "scheduler: proposed %d blocks (%.1fh) for %d eligible assignments",
		len(blocks), total, len(eligible))

	return blocks
}

// existingAssignmentHours sums hours already present as assignment-kind
// events, globally and per assignment (matched by block-id prefix).
func existingAssignmentHours(events []model.Event) (float64, map[string]float64) {
	per := make(map[string]float64)
	total := 0.0
	for _, e := range events {
		if e.Kind != model.EventKindAssignment {
			continue
		}
		h := e.Duration().Hours()
		total += h
		if id, ok := assignmentIDFromBlockID(e.ID); ok {
			per[id] += h
		}
	}
	return total, per
}

// assignmentIDFromBlockID extracts the assignment id out of a synthetic
// "assignment-{id}-{seq}" event id.
func assignmentIDFromBlockID(blockID string) (string, bool) {
	rest, ok := strings.CutPrefix(blockID, "assignment-")
	if !ok {
		return "", false
	}
	i := strings.LastIndex(rest, "-")
	if i <= 0 {
		return "", false
	}
	return rest[:i], true
}

func blockDescription(a model.Assignment, now time.Time) string {
	daysUntilDue := int(a.DueAt.Sub(now).Hours() / 24)
	return fmt.Sprintf("Auto-scheduled study block for assignment due %s (in %d days)",
		a.DueAt.Format("2006-01-02"), daysUntilDue)
}

// verify enforces the packer invariants on its own output: blocks for one
// assignment must not overlap, every block must lie inside a free block, and
// neither cap may be exceeded. Violations indicate a defect; the offending
// block is dropped rather than failing the whole plan.
func (s *Scheduler) verify(ctx context.Context, blocks []planner.ProposedBlock, freeBlocks []model.FreeBlock) []planner.ProposedBlock {
	kept := blocks[:0]
	perHours := make(map[string]float64)
	lastEnd := make(map[string]time.Time)
	total := 0.0

	for _, b := range blocks {
		h := b.Hours()
		switch {
		case !b.End.After(b.Start):
			s.l.Errorf(ctx, "scheduler: dropping empty block %s", b.ID)
		case !insideAnyFreeBlock(b, freeBlocks):
			s.l.Errorf(ctx, "scheduler: dropping block %s outside free time", b.ID)
		case lastEnd[b.AssignmentID].After(b.Start):
			s.l.Errorf(ctx, "scheduler: dropping overlapping block %s", b.ID)
		case perHours[b.AssignmentID]+h > s.cfg.MaxAssignmentHours+1e-9:
			s.l.Errorf(ctx, "scheduler: dropping block %s over per-assignment cap", b.ID)
		case total+h > s.cfg.MaxStudyHoursPerDay+1e-9:
			s.l.Errorf(ctx, "scheduler: dropping block %s over daily cap", b.ID)
		default:
			kept = append(kept, b)
			perHours[b.AssignmentID] += h
			if b.End.After(lastEnd[b.AssignmentID]) {
				lastEnd[b.AssignmentID] = b.End
			}
			total += h
		}
	}
	return kept
}

func insideAnyFreeBlock(b planner.ProposedBlock, freeBlocks []model.FreeBlock) bool {
	for _, fb := range freeBlocks {
		if !b.Start.Before(fb.Start) && !b.End.After(fb.End) {
			return true
		}
	}
	return false
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
