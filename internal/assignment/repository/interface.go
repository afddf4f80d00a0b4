package repository

import (
	"context"

	"campus-day-planner/internal/model"
)

// Repository defines all data access methods for the Assignment entity.
type Repository interface {
	CreateAssignment(ctx context.Context, opt CreateAssignmentOptions) (model.Assignment, error)
	GetOneAssignment(ctx context.Context, opt GetOneAssignmentOptions) (model.Assignment, error)
	ListAssignments(ctx context.Context, opt ListAssignmentsOptions) ([]model.Assignment, int, error)
	UpdateAssignment(ctx context.Context, opt UpdateAssignmentOptions) (model.Assignment, error)
	DeleteAssignment(ctx context.Context, opt DeleteAssignmentOptions) error
}
