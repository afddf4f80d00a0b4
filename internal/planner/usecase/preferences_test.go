package usecase

import (
	"context"
	"errors"
	"testing"

	"campus-day-planner/internal/model"
	"campus-day-planner/internal/planner"
)

func TestSetPreferences(t *testing.T) {
	ctx := context.Background()

	t.Run("upserts and invalidates that date", func(t *testing.T) {
		f := newFixture(t)
		f.agent.res.Decision.Mode = model.ModeOff

		// Prime the cache so invalidation is observable.
		if _, err := f.uc.GetDayPlan(ctx, sc(), planner.GetDayPlanInput{Date: "2026-03-02"}); err != nil {
			t.Fatalf("priming plan: %v", err)
		}

		out, err := f.uc.SetPreferences(ctx, sc(), planner.SetPreferencesInput{
			Date:    "2026-03-02",
			Mood:    model.MoodChill,
			Feeling: model.FeelingOverwhelmed,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Preferences.Mood != model.MoodChill {
			t.Errorf("unexpected preferences: %+v", out.Preferences)
		}
		if f.repo.upserted == nil || f.repo.upserted.Date != "2026-03-02" {
			t.Errorf("upsert not recorded: %+v", f.repo.upserted)
		}
		if _, ok := f.cache.Get("u1", "2026-03-02"); ok {
			t.Error("cached plan must be invalidated after a preferences change")
		}
	})

	t.Run("empty date means today", func(t *testing.T) {
		f := newFixture(t)
		if _, err := f.uc.SetPreferences(ctx, sc(), planner.SetPreferencesInput{
			Mood:    model.MoodNormal,
			Feeling: model.FeelingOkay,
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f.repo.upserted.Date != "2026-03-02" {
			t.Errorf("expected the fixture's today, got %s", f.repo.upserted.Date)
		}
	})

	t.Run("unknown mood or feeling is rejected", func(t *testing.T) {
		f := newFixture(t)
		cases := []planner.SetPreferencesInput{
			{Mood: "hyped", Feeling: model.FeelingOkay},
			{Mood: model.MoodChill, Feeling: "fine"},
			{},
		}
		for _, in := range cases {
			if _, err := f.uc.SetPreferences(ctx, sc(), in); !errors.Is(err, planner.ErrInvalidPreferences) {
				t.Errorf("input %+v: expected ErrInvalidPreferences, got %v", in, err)
			}
		}
		if f.repo.upserted != nil {
			t.Error("invalid input must not reach the repository")
		}
	})

	t.Run("repository failure propagates", func(t *testing.T) {
		f := newFixture(t)
		f.repo.upsertErr = errors.New("db down")
		if _, err := f.uc.SetPreferences(ctx, sc(), planner.SetPreferencesInput{
			Mood:    model.MoodGrind,
			Feeling: model.FeelingOnTop,
		}); err == nil {
			t.Fatal("expected an error")
		}
	})
}
