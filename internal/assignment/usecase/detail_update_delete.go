package usecase

import (
	"context"

	"campus-day-planner/internal/assignment"
	repo "campus-day-planner/internal/assignment/repository"
	"campus-day-planner/internal/model"
)

// Detail fetches one assignment scoped to its owner.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (assignment.DetailAssignmentOutput, error) {
	found, err := uc.repo.GetOneAssignment(ctx, repo.GetOneAssignmentOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneAssignment: %v", err)
		return assignment.DetailAssignmentOutput{}, err
	}
	if found.ID == "" {
		return assignment.DetailAssignmentOutput{}, assignment.ErrAssignmentNotFound
	}
	return assignment.DetailAssignmentOutput{Assignment: found}, nil
}

// Update applies a partial update: absent fields keep their stored values.
// Completing an assignment this way removes it from future proposals, which
// is why the mutation invalidates today's plan like every other.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input assignment.UpdateAssignmentInput) (assignment.UpdateAssignmentOutput, error) {
	existing, err := uc.repo.GetOneAssignment(ctx, repo.GetOneAssignmentOptions{ID: input.ID, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneAssignment: %v", err)
		return assignment.UpdateAssignmentOutput{}, err
	}
	if existing.ID == "" {
		return assignment.UpdateAssignmentOutput{}, assignment.ErrAssignmentNotFound
	}

	opt := repo.UpdateAssignmentOptions{
		ID:             existing.ID,
		UserID:         sc.UserID,
		Title:          uc.coalesce(input.Title, existing.Title),
		DueAt:          existing.DueAt,
		EstimatedHours: existing.EstimatedHours,
		Priority:       existing.Priority,
		Completed:      existing.Completed,
	}
	if input.DueAt != nil {
		opt.DueAt = *input.DueAt
	}
	if input.EstimatedHours != nil {
		if *input.EstimatedHours <= 0 {
			return assignment.UpdateAssignmentOutput{}, assignment.ErrInvalidPayload
		}
		opt.EstimatedHours = *input.EstimatedHours
	}
	if input.Priority != nil {
		if *input.Priority < model.PriorityLow || *input.Priority > model.PriorityHigh {
			return assignment.UpdateAssignmentOutput{}, assignment.ErrInvalidPayload
		}
		opt.Priority = *input.Priority
	}
	if input.Completed != nil {
		opt.Completed = *input.Completed
	}

	updated, err := uc.repo.UpdateAssignment(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateAssignment: %v", err)
		return assignment.UpdateAssignmentOutput{}, err
	}

	uc.cache.InvalidateToday(ctx, sc.UserID, uc.location)
	return assignment.UpdateAssignmentOutput{Assignment: updated}, nil
}

// Delete removes the user's assignment and invalidates today's plan.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	existing, err := uc.repo.GetOneAssignment(ctx, repo.GetOneAssignmentOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneAssignment: %v", err)
		return err
	}
	if existing.ID == "" {
		return assignment.ErrAssignmentNotFound
	}

	if err := uc.repo.DeleteAssignment(ctx, repo.DeleteAssignmentOptions{ID: id, UserID: sc.UserID}); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteAssignment: %v", err)
		return err
	}

	uc.cache.InvalidateToday(ctx, sc.UserID, uc.location)
	return nil
}
