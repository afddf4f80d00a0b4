package assignment

import (
	"time"

	"campus-day-planner/internal/model"
)

// --- UseCase Inputs ---

type CreateAssignmentInput struct {
	Title          string
	DueAt          time.Time
	EstimatedHours float64
	Priority       int
}

type ListAssignmentsInput struct {
	Completed *bool // nil means both
	Limit     int
	Offset    int
}

type UpdateAssignmentInput struct {
	ID             string
	Title          string
	DueAt          *time.Time
	EstimatedHours *float64
	Priority       *int
	Completed      *bool
}

// --- UseCase Outputs ---

type CreateAssignmentOutput struct {
	Assignment model.Assignment
}

type ListAssignmentsOutput struct {
	Assignments []model.Assignment
	Total       int
	Limit       int
	Offset      int
}

type DetailAssignmentOutput struct {
	Assignment model.Assignment
}

type UpdateAssignmentOutput struct {
	Assignment model.Assignment
}
