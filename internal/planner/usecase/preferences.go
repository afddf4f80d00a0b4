package usecase

import (
	"context"

	"campus-day-planner/internal/model"
	"campus-day-planner/internal/planner"
	"campus-day-planner/internal/planner/repository"
)

// SetPreferences upserts the user's mood/feeling for a date and invalidates
// that date's cached plan so the next request reflects the new bias.
func (uc *implUseCase) SetPreferences(ctx context.Context, sc model.Scope, input planner.SetPreferencesInput) (planner.SetPreferencesOutput, error) {
	if !model.ValidMood(input.Mood) || !model.ValidFeeling(input.Feeling) {
		return planner.SetPreferencesOutput{}, planner.ErrInvalidPreferences
	}

	day, err := uc.dateMath.Parse(input.Date, uc.now())
	if err != nil {
		return planner.SetPreferencesOutput{}, planner.ErrInvalidDate
	}
	date := day.Format("2006-01-02")

	prefs, err := uc.repo.UpsertPreferences(ctx, repository.UpsertPreferencesOptions{
		UserID:  sc.UserID,
		Date:    date,
		Mood:    string(input.Mood),
		Feeling: string(input.Feeling),
	})
	if err != nil {
		uc.l.Errorf(ctx, "planner: preferences upsert failed: %v", err)
		return planner.SetPreferencesOutput{}, err
	}

	uc.cache.Invalidate(ctx, sc.UserID, date)
	uc.l.Infof(ctx, "planner: preferences set for user %s on %s (%s/%s)", sc.UserID, date, input.Mood, input.Feeling)

	return planner.SetPreferencesOutput{Preferences: prefs}, nil
}
