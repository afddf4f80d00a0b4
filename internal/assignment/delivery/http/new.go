package http

import (
	"campus-day-planner/internal/assignment"
	"campus-day-planner/pkg/log"
)

type handler struct {
	l  log.Logger
	uc assignment.UseCase
}

// New creates the HTTP handler for the assignment domain.
func New(l log.Logger, uc assignment.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
