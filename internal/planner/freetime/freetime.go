// Package freetime computes the free-time complement of a day's events.
package freetime

import (
	"sort"
	"time"

	"campus-day-planner/internal/model"
)

// Calculate returns the ordered gaps of [dayStart, dayEnd] not covered by any
// event. Events may arrive in any order; overlapping and adjacent events are
// merged before gap extraction, and events crossing a day bound are clipped
// to it. Pure function of its inputs.
func Calculate(events []model.Event, dayStart, dayEnd time.Time) []model.FreeBlock {
	if !dayEnd.After(dayStart) {
		return nil
	}

	busy := mergeBusy(events, dayStart, dayEnd)

	if len(busy) == 0 {
		return []model.FreeBlock{{Start: dayStart, End: dayEnd}}
	}

	free := make([]model.FreeBlock, 0, len(busy)+1)
	cursor := dayStart
	for _, iv := range busy {
		if iv.Start.After(cursor) {
			free = append(free, model.FreeBlock{Start: cursor, End: iv.Start})
		}
		if iv.End.After(cursor) {
			cursor = iv.End
		}
	}
	if dayEnd.After(cursor) {
		free = append(free, model.FreeBlock{Start: cursor, End: dayEnd})
	}

	return free
}

// FilterShort drops blocks shorter than min. Used for presentation; the
// scheduler works on the exact complement.
func FilterShort(blocks []model.FreeBlock, min time.Duration) []model.FreeBlock {
	out := make([]model.FreeBlock, 0, len(blocks))
	for _, b := range blocks {
		if b.Duration() >= min {
			out = append(out, b)
		}
	}
	return out
}

type interval struct {
	Start time.Time
	End   time.Time
}

// mergeBusy clips events to the day window, drops empty results, sorts by
// start and merges overlaps/adjacency into a minimal ordered cover.
func mergeBusy(events []model.Event, dayStart, dayEnd time.Time) []interval {
	clipped := make([]interval, 0, len(events))
	for _, e := range events {
		start, end := e.Start, e.End
		if start.Before(dayStart) {
			start = dayStart
		}
		if end.After(dayEnd) {
			end = dayEnd
		}
		if end.After(start) {
			clipped = append(clipped, interval{Start: start, End: end})
		}
	}

	sort.Slice(clipped, func(i, j int) bool {
		return clipped[i].Start.Before(clipped[j].Start)
	})

	var merged []interval
	for _, iv := range clipped {
		n := len(merged)
		if n > 0 && !iv.Start.After(merged[n-1].End) {
			if iv.End.After(merged[n-1].End) {
				merged[n-1].End = iv.End
			}
			continue
		}
		merged = append(merged, iv)
	}
	return merged
}
