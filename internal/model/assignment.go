package model

import "time"

// Assignment priority levels. Higher is more urgent.
const (
	PriorityLow    = 1
	PriorityMedium = 2
	PriorityHigh   = 3
)

// Assignment is a piece of coursework owned by a user. The scheduler only
// reads assignments that are incomplete and not past due; CRUD lives in the
// assignment domain.
type Assignment struct {
	ID             string
	UserID         string
	Title          string
	DueAt          time.Time
	EstimatedHours float64
	Priority       int // 1..3
	Completed      bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
