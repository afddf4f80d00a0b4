package postgre

import (
	"context"
	"database/sql"

	"campus-day-planner/internal/model"
	repo "campus-day-planner/internal/planner/repository"
)

// GetPreferences retrieves the preferences row for (user, date).
// Returns zero-value Preferences (UserID == "") when not found — do NOT
// return error for not-found.
func (r *implRepository) GetPreferences(ctx context.Context, opt repo.GetPreferencesOptions) (model.Preferences, error) {
	const query = `
		SELECT user_id, date, mood, feeling
		FROM day_preferences
		WHERE user_id = $1 AND date = $2
		LIMIT 1`

	var p model.Preferences
	err := r.db.QueryRowContext(ctx, query, opt.UserID, opt.Date).Scan(&p.UserID, &p.Date, &p.Mood, &p.Feeling)
	if err == sql.ErrNoRows {
		return model.Preferences{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetPreferences"), err)
		return model.Preferences{}, repo.ErrFailedToGet
	}
	return p, nil
}

// UpsertPreferences inserts or fully replaces the (user, date) row.
func (r *implRepository) UpsertPreferences(ctx context.Context, opt repo.UpsertPreferencesOptions) (model.Preferences, error) {
	const query = `
		INSERT INTO day_preferences (user_id, date, mood, feeling, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (user_id, date)
		DO UPDATE SET mood = EXCLUDED.mood, feeling = EXCLUDED.feeling, updated_at = NOW()
		RETURNING user_id, date, mood, feeling`

	var p model.Preferences
	err := r.db.QueryRowContext(ctx, query, opt.UserID, opt.Date, opt.Mood, opt.Feeling).Scan(&p.UserID, &p.Date, &p.Mood, &p.Feeling)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertPreferences"), err)
		return model.Preferences{}, repo.ErrFailedToUpsert
	}
	return p, nil
}
