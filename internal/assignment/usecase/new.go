package usecase

import (
	"context"
	"time"

	"campus-day-planner/internal/assignment/repository"
	"campus-day-planner/pkg/log"
)

// planInvalidator is the day-plan cache hook fired on every mutation. Any
// assignment change can affect today's plan, so the target is always today.
type planInvalidator interface {
	InvalidateToday(ctx context.Context, userID string, loc *time.Location)
}

// implUseCase is the private implementation of assignment.UseCase.
type implUseCase struct {
	repo     repository.Repository
	cache    planInvalidator
	location *time.Location
	l        log.Logger
	newID    func() string
}

// New creates a new assignment UseCase implementation.
func New(repo repository.Repository, cache planInvalidator, location *time.Location, l log.Logger, newID func() string) *implUseCase {
	if location == nil {
		location = time.UTC
	}
	return &implUseCase{
		repo:     repo,
		cache:    cache,
		location: location,
		l:        l,
		newID:    newID,
	}
}
