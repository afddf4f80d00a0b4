package repository

import "time"

// CreateAssignmentOptions holds parameters for inserting a new Assignment.
// The caller supplies the id.
type CreateAssignmentOptions struct {
	ID             string
	UserID         string
	Title          string
	DueAt          time.Time
	EstimatedHours float64
	Priority       int
}

// GetOneAssignmentOptions holds filter parameters for fetching a single
// Assignment. UserID is always applied so rows never leak across users.
type GetOneAssignmentOptions struct {
	ID     string
	UserID string
}

// ListAssignmentsOptions holds filter and pagination parameters.
type ListAssignmentsOptions struct {
	UserID    string
	Completed *bool // nil means both
	Limit     int
	Offset    int
}

// UpdateAssignmentOptions holds the full replacement values for an update;
// the usecase resolves partial input against the existing row first.
type UpdateAssignmentOptions struct {
	ID             string
	UserID         string
	Title          string
	DueAt          time.Time
	EstimatedHours float64
	Priority       int
	Completed      bool
}

// DeleteAssignmentOptions identifies the row to remove.
type DeleteAssignmentOptions struct {
	ID     string
	UserID string
}
