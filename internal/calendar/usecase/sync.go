package usecase

import (
	"context"

	"campus-day-planner/internal/calendar"
	"campus-day-planner/internal/model"
	"campus-day-planner/pkg/gcalendar"
)

// SyncStudyBlocks pushes the plan's assignment-kind events to the real
// calendar so they show up on the user's phone. Partial failures stop the
// sync; blocks already pushed stay pushed and the invalidation still fires
// so the next plan reflects them.
func (uc *implUseCase) SyncStudyBlocks(ctx context.Context, sc model.Scope, input calendar.SyncStudyBlocksInput) (calendar.SyncStudyBlocksOutput, error) {
	synced := 0
	for _, ev := range input.Events {
		if ev.Kind != model.EventKindAssignment {
			continue
		}
		_, err := uc.gcal.CreateEvent(ctx, gcalendar.CreateEventRequest{
			CalendarID:  uc.calendarID,
			Summary:     ev.Title,
			Description: ev.Description,
			StartTime:   ev.Start,
			EndTime:     ev.End,
			Timezone:    uc.timezone,
		})
		if err != nil {
			uc.l.Errorf(ctx, "calendar: sync stopped after %d block(s): %v", synced, err)
			if synced > 0 {
				uc.cache.Invalidate(ctx, sc.UserID, input.Date)
			}
			return calendar.SyncStudyBlocksOutput{Synced: synced}, calendar.ErrProviderUnavailable
		}
		synced++
	}

	if synced > 0 {
		uc.cache.Invalidate(ctx, sc.UserID, input.Date)
	}
	uc.l.Infof(ctx, "calendar: synced %d study block(s) for %s", synced, input.Date)
	return calendar.SyncStudyBlocksOutput{Synced: synced}, nil
}
