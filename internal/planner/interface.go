package planner

import (
	"context"

	"campus-day-planner/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// GetDayPlan returns the cached plan for (user, date) or generates a new
	// one through the full pipeline. ForceRefresh always regenerates.
	GetDayPlan(ctx context.Context, sc model.Scope, input GetDayPlanInput) (GetDayPlanOutput, error)

	// SetPreferences upserts the user's mood/feeling bias for a date and
	// invalidates that date's cached plan.
	SetPreferences(ctx context.Context, sc model.Scope, input SetPreferencesInput) (SetPreferencesOutput, error)
}
