package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	repo "campus-day-planner/internal/assignment/repository"
	"campus-day-planner/internal/model"
)

const assignmentColumns = "id, user_id, title, due_at, estimated_hours, priority, completed, created_at, updated_at"

func scanAssignment(row interface{ Scan(dest ...any) error }) (model.Assignment, error) {
	var a model.Assignment
	err := row.Scan(&a.ID, &a.UserID, &a.Title, &a.DueAt, &a.EstimatedHours, &a.Priority, &a.Completed, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

// CreateAssignment inserts a new Assignment row and returns the created
// entity.
func (r *implRepository) CreateAssignment(ctx context.Context, opt repo.CreateAssignmentOptions) (model.Assignment, error) {
	query := fmt.Sprintf(`
		INSERT INTO assignments (id, user_id, title, due_at, estimated_hours, priority, completed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, FALSE, NOW(), NOW())
		RETURNING %s`, assignmentColumns)

	a, err := scanAssignment(r.db.QueryRowContext(ctx, query,
		opt.ID, opt.UserID, opt.Title, opt.DueAt, opt.EstimatedHours, opt.Priority))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateAssignment"), err)
		return model.Assignment{}, repo.ErrFailedToInsert
	}
	return a, nil
}

// GetOneAssignment retrieves a single Assignment scoped to its owner.
// Returns zero-value Assignment (ID == "") when not found — do NOT return
// error for not-found.
func (r *implRepository) GetOneAssignment(ctx context.Context, opt repo.GetOneAssignmentOptions) (model.Assignment, error) {
	query := fmt.Sprintf(`SELECT %s FROM assignments WHERE id = $1 AND user_id = $2 LIMIT 1`, assignmentColumns)

	a, err := scanAssignment(r.db.QueryRowContext(ctx, query, opt.ID, opt.UserID))
	if err == sql.ErrNoRows {
		return model.Assignment{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneAssignment"), err)
		return model.Assignment{}, repo.ErrFailedToGet
	}
	return a, nil
}

// ListAssignments returns a paginated list of the user's assignments and
// the total count.
func (r *implRepository) ListAssignments(ctx context.Context, opt repo.ListAssignmentsOptions) ([]model.Assignment, int, error) {
	where := "user_id = $1"
	args := []any{opt.UserID}
	if opt.Completed != nil {
		where += fmt.Sprintf(" AND completed = $%d", len(args)+1)
		args = append(args, *opt.Completed)
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM assignments WHERE %s", where)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListAssignments"), err)
		return nil, 0, repo.ErrFailedToList
	}

	limit := opt.Limit
	if limit <= 0 {
		limit = 50
	}
	query := fmt.Sprintf(`SELECT %s FROM assignments WHERE %s ORDER BY due_at ASC, id ASC LIMIT $%d OFFSET $%d`,
		assignmentColumns, where, len(args)+1, len(args)+2)
	args = append(args, limit, opt.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListAssignments"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var out []model.Assignment
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListAssignments"), err)
			return nil, 0, repo.ErrFailedToList
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListAssignments"), err)
		return nil, 0, repo.ErrFailedToList
	}
	return out, total, nil
}

// UpdateAssignment replaces the mutable columns and returns the updated
// entity. Zero-value Assignment when the row does not exist.
func (r *implRepository) UpdateAssignment(ctx context.Context, opt repo.UpdateAssignmentOptions) (model.Assignment, error) {
	query := fmt.Sprintf(`
		UPDATE assignments
		SET title = $1, due_at = $2, estimated_hours = $3, priority = $4, completed = $5, updated_at = $6
		WHERE id = $7 AND user_id = $8
		RETURNING %s`, assignmentColumns)

	a, err := scanAssignment(r.db.QueryRowContext(ctx, query,
		opt.Title, opt.DueAt, opt.EstimatedHours, opt.Priority, opt.Completed, time.Now(), opt.ID, opt.UserID))
	if err == sql.ErrNoRows {
		return model.Assignment{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateAssignment"), err)
		return model.Assignment{}, repo.ErrFailedToUpdate
	}
	return a, nil
}

// DeleteAssignment removes the user's assignment by id.
func (r *implRepository) DeleteAssignment(ctx context.Context, opt repo.DeleteAssignmentOptions) error {
	const query = `DELETE FROM assignments WHERE id = $1 AND user_id = $2`
	if _, err := r.db.ExecContext(ctx, query, opt.ID, opt.UserID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteAssignment"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
