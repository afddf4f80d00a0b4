package repository

import (
	"context"

	"campus-day-planner/internal/model"
)

// Repository is the composed interface for the planner's data needs. The
// planner only ever reads assignments; writes belong to the assignment
// domain.
type Repository interface {
	AssignmentReader
	PreferencesRepository
}

// AssignmentReader exposes the assignment rows the scheduling pipeline
// consumes.
type AssignmentReader interface {
	ListPendingAssignments(ctx context.Context, opt ListPendingAssignmentsOptions) ([]model.Assignment, error)
}

// PreferencesRepository defines data access for per-day mood/feeling records.
type PreferencesRepository interface {
	GetPreferences(ctx context.Context, opt GetPreferencesOptions) (model.Preferences, error)
	UpsertPreferences(ctx context.Context, opt UpsertPreferencesOptions) (model.Preferences, error)
}
