package http

import (
	"campus-day-planner/internal/calendar"
	"campus-day-planner/internal/planner"
	"campus-day-planner/pkg/log"
)

type handler struct {
	l       log.Logger
	uc      calendar.UseCase
	planner planner.UseCase
}

// New creates the HTTP handler for the calendar domain. The planner use
// case backs the sync endpoint, which pushes a generated plan's study
// blocks to the provider.
func New(l log.Logger, uc calendar.UseCase, plannerUC planner.UseCase) *handler {
	return &handler{
		l:       l,
		uc:      uc,
		planner: plannerUC,
	}
}
