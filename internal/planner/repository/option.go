package repository

// ListPendingAssignmentsOptions filters the assignment read. Pending means
// not completed; rows come back ordered by due date ascending.
type ListPendingAssignmentsOptions struct {
	UserID string
}

// GetPreferencesOptions identifies one preferences row.
type GetPreferencesOptions struct {
	UserID string
	Date   string // YYYY-MM-DD
}

// UpsertPreferencesOptions holds the full replacement values for a
// (user, date) preferences row.
type UpsertPreferencesOptions struct {
	UserID  string
	Date    string // YYYY-MM-DD
	Mood    string
	Feeling string
}
