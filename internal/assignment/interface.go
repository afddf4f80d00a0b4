package assignment

import (
	"context"

	"campus-day-planner/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Assignment CRUD. Every mutation invalidates the owner's cached day
	// plan for today, since any assignment change can affect it.
	Create(ctx context.Context, sc model.Scope, input CreateAssignmentInput) (CreateAssignmentOutput, error)
	List(ctx context.Context, sc model.Scope, input ListAssignmentsInput) (ListAssignmentsOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (DetailAssignmentOutput, error)
	Update(ctx context.Context, sc model.Scope, input UpdateAssignmentInput) (UpdateAssignmentOutput, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
}
