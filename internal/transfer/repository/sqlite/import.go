package sqlite

import (
	"context"
	"time"

	repo "mentalbank/internal/transfer/repository"
	"mentalbank/pkg/metrics"
)

// ImportAll replaces the user's data inside one transaction. Existing tasks
// and categories are dropped first; the balance target is upserted.
func (r *implRepository) ImportAll(ctx context.Context, opt repo.ImportAllOptions) error {
	defer metrics.ObserveDBQuery("ImportAll", "tasks", time.Now())

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("ImportAll"), err)
		return repo.ErrFailedToImport
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM tasks WHERE user_id = ?`, opt.UserID); err != nil {
		r.l.Errorf(ctx, "%s clear tasks: %v", r.dsn("ImportAll"), err)
		return repo.ErrFailedToImport
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM categories WHERE user_id = ?`, opt.UserID); err != nil {
		r.l.Errorf(ctx, "%s clear categories: %v", r.dsn("ImportAll"), err)
		return repo.ErrFailedToImport
	}

	now := time.Now().UTC()

	const categoryQuery = `
		INSERT INTO categories (id, user_id, name, default_hourly_rate, task_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	for _, c := range opt.Categories {
		if _, err := tx.ExecContext(ctx, categoryQuery,
			c.ID, opt.UserID, c.Name, c.DefaultHourlyRate, c.TaskCount, now,
		); err != nil {
			r.l.Errorf(ctx, "%s category: %v", r.dsn("ImportAll"), err)
			return repo.ErrFailedToImport
		}
	}

	const taskQuery = `
		INSERT INTO tasks (id, user_id, title, description, category_id, hourly_rate, estimated_hours, completed, priority, created_at, completed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	for _, t := range opt.Tasks {
		if _, err := tx.ExecContext(ctx, taskQuery,
			t.ID, opt.UserID, t.Title, t.Description, nullable(t.CategoryID),
			t.HourlyRate, t.EstimatedHours, t.Completed, t.Priority,
			t.CreatedAt, t.CompletedAt,
		); err != nil {
			r.l.Errorf(ctx, "%s task: %v", r.dsn("ImportAll"), err)
			return repo.ErrFailedToImport
		}
	}

	const balanceQuery = `
		INSERT INTO balance_settings (user_id, target_balance, started_at)
		VALUES (?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE SET target_balance = excluded.target_balance`
	if _, err := tx.ExecContext(ctx, balanceQuery, opt.UserID, opt.TargetBalance, now); err != nil {
		r.l.Errorf(ctx, "%s balance: %v", r.dsn("ImportAll"), err)
		return repo.ErrFailedToImport
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("ImportAll"), err)
		return repo.ErrFailedToImport
	}
	return nil
}

// nullable maps "" to NULL so the category foreign key stays clean.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
