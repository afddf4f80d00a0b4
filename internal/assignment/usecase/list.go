package usecase

import (
	"context"

	"campus-day-planner/internal/assignment"
	repo "campus-day-planner/internal/assignment/repository"
	"campus-day-planner/internal/model"
)

const defaultPageSize = 50

// List returns the user's assignments, newest due first page by page.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input assignment.ListAssignmentsInput) (assignment.ListAssignmentsOutput, error) {
	limit := input.Limit
	if limit <= 0 || limit > 200 {
		limit = defaultPageSize
	}
	offset := input.Offset
	if offset < 0 {
		offset = 0
	}

	items, total, err := uc.repo.ListAssignments(ctx, repo.ListAssignmentsOptions{
		UserID:    sc.UserID,
		Completed: input.Completed,
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListAssignments: %v", err)
		return assignment.ListAssignmentsOutput{}, err
	}

	return assignment.ListAssignmentsOutput{
		Assignments: items,
		Total:       total,
		Limit:       limit,
		Offset:      offset,
	}, nil
}
