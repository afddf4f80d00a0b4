package http

import (
	"campus-day-planner/internal/planner"
	"campus-day-planner/pkg/log"
)

type handler struct {
	l  log.Logger
	uc planner.UseCase
}

// New creates the HTTP handler for the planner domain.
func New(l log.Logger, uc planner.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
