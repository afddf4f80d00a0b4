package postgre

import (
	"context"

	"campus-day-planner/internal/model"
	repo "campus-day-planner/internal/planner/repository"
)

// ListPendingAssignments returns the user's incomplete assignments ordered
// by due date. The scheduler re-sorts with its full composite key; the ORDER
// BY only makes query output stable.
func (r *implRepository) ListPendingAssignments(ctx context.Context, opt repo.ListPendingAssignmentsOptions) ([]model.Assignment, error) {
	const query = `
		SELECT id, user_id, title, due_at, estimated_hours, priority, completed, created_at, updated_at
		FROM assignments
		WHERE user_id = $1 AND completed = FALSE
		ORDER BY due_at ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query, opt.UserID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListPendingAssignments"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var out []model.Assignment
	for rows.Next() {
		var a model.Assignment
		if err := rows.Scan(&a.ID, &a.UserID, &a.Title, &a.DueAt, &a.EstimatedHours, &a.Priority, &a.Completed, &a.CreatedAt, &a.UpdatedAt); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListPendingAssignments"), err)
			return nil, repo.ErrFailedToList
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListPendingAssignments"), err)
		return nil, repo.ErrFailedToList
	}
	return out, nil
}
