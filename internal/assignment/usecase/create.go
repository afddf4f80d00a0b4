package usecase

import (
	"context"

	"campus-day-planner/internal/assignment"
	repo "campus-day-planner/internal/assignment/repository"
	"campus-day-planner/internal/model"
)

// Create validates and persists a new assignment, then invalidates today's
// cached plan.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input assignment.CreateAssignmentInput) (assignment.CreateAssignmentOutput, error) {
	if input.Title == "" || input.DueAt.IsZero() || input.EstimatedHours <= 0 {
		return assignment.CreateAssignmentOutput{}, assignment.ErrInvalidPayload
	}
	priority := input.Priority
	if priority == 0 {
		priority = model.PriorityMedium
	}
	if priority < model.PriorityLow || priority > model.PriorityHigh {
		return assignment.CreateAssignmentOutput{}, assignment.ErrInvalidPayload
	}

	created, err := uc.repo.CreateAssignment(ctx, repo.CreateAssignmentOptions{
		ID:             uc.newID(),
		UserID:         sc.UserID,
		Title:          input.Title,
		DueAt:          input.DueAt,
		EstimatedHours: input.EstimatedHours,
		Priority:       priority,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateAssignment: %v", err)
		return assignment.CreateAssignmentOutput{}, err
	}

	uc.cache.InvalidateToday(ctx, sc.UserID, uc.location)
	return assignment.CreateAssignmentOutput{Assignment: created}, nil
}
