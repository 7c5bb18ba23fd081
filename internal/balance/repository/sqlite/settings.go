package sqlite

import (
	"context"
	"database/sql"
	"time"

	"mentalbank/internal/balance"
	repo "mentalbank/internal/balance/repository"
	"mentalbank/pkg/metrics"
)

// GetSettings retrieves the user's settings row.
// Returns zero-value Settings (UserID == "") when not found — not an error.
func (r *implRepository) GetSettings(ctx context.Context, userID string) (balance.Settings, error) {
	defer metrics.ObserveDBQuery("GetSettings", "balance_settings", time.Now())

	const query = `SELECT user_id, target_balance, started_at FROM balance_settings WHERE user_id = ? LIMIT 1`

	var s balance.Settings
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&s.UserID, &s.TargetBalance, &s.StartedAt)
	if err == sql.ErrNoRows {
		return balance.Settings{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetSettings"), err)
		return balance.Settings{}, repo.ErrFailedToGet
	}
	return s, nil
}

// UpsertSettings writes the settings row. started_at is stamped on first
// insert and preserved on later updates.
func (r *implRepository) UpsertSettings(ctx context.Context, opt repo.UpsertSettingsOptions) (balance.Settings, error) {
	defer metrics.ObserveDBQuery("UpsertSettings", "balance_settings", time.Now())

	const query = `
		INSERT INTO balance_settings (user_id, target_balance, started_at)
		VALUES (?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE SET target_balance = excluded.target_balance`
	_, err := r.db.ExecContext(ctx, query, opt.UserID, opt.TargetBalance, time.Now().UTC())
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertSettings"), err)
		return balance.Settings{}, repo.ErrFailedToUpsert
	}
	return r.GetSettings(ctx, opt.UserID)
}
