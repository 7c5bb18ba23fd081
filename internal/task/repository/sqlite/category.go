package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"mentalbank/internal/task"
	repo "mentalbank/internal/task/repository"
	"mentalbank/pkg/metrics"
)

const categoryColumns = `id, user_id, name, default_hourly_rate, task_count, created_at`

// CreateCategory inserts a new Category row.
func (r *implRepository) CreateCategory(ctx context.Context, opt repo.CreateCategoryOptions) (task.Category, error) {
	defer metrics.ObserveDBQuery("CreateCategory", "categories", time.Now())

	c := task.Category{
		ID:                uuid.NewString(),
		UserID:            opt.UserID,
		Name:              opt.Name,
		DefaultHourlyRate: opt.DefaultHourlyRate,
		CreatedAt:         time.Now().UTC(),
	}

	const query = `
		INSERT INTO categories (id, user_id, name, default_hourly_rate, task_count, created_at)
		VALUES (?, ?, ?, ?, 0, ?)`
	_, err := r.db.ExecContext(ctx, query, c.ID, c.UserID, c.Name, c.DefaultHourlyRate, c.CreatedAt)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateCategory"), err)
		return task.Category{}, repo.ErrFailedToInsert
	}
	return c, nil
}

// GetOneCategory retrieves a single Category by the provided filters (AND
// condition). Returns zero-value Category (ID == "") when not found.
func (r *implRepository) GetOneCategory(ctx context.Context, opt repo.GetOneCategoryOptions) (task.Category, error) {
	defer metrics.ObserveDBQuery("GetOneCategory", "categories", time.Now())

	conditions := []string{"user_id = ?"}
	args := []any{opt.UserID}
	if opt.ID != "" {
		conditions = append(conditions, "id = ?")
		args = append(args, opt.ID)
	}
	if opt.Name != "" {
		conditions = append(conditions, "name = ?")
		args = append(args, opt.Name)
	}

	query := fmt.Sprintf(`SELECT %s FROM categories WHERE %s LIMIT 1`,
		categoryColumns, strings.Join(conditions, " AND "))

	var c task.Category
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&c.ID, &c.UserID, &c.Name, &c.DefaultHourlyRate, &c.TaskCount, &c.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return task.Category{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneCategory"), err)
		return task.Category{}, repo.ErrFailedToGet
	}
	return c, nil
}

// ListCategories returns all of the user's categories, oldest first.
func (r *implRepository) ListCategories(ctx context.Context, userID string) ([]task.Category, error) {
	defer metrics.ObserveDBQuery("ListCategories", "categories", time.Now())

	query := fmt.Sprintf(`SELECT %s FROM categories WHERE user_id = ? ORDER BY created_at ASC`, categoryColumns)

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListCategories"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var categories []task.Category
	for rows.Next() {
		var c task.Category
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.DefaultHourlyRate, &c.TaskCount, &c.CreatedAt); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListCategories"), err)
			return nil, repo.ErrFailedToList
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, repo.ErrFailedToList
	}
	return categories, nil
}

// UpdateCategory writes name and default rate, returning the updated row.
func (r *implRepository) UpdateCategory(ctx context.Context, opt repo.UpdateCategoryOptions) (task.Category, error) {
	defer metrics.ObserveDBQuery("UpdateCategory", "categories", time.Now())

	const query = `
		UPDATE categories SET name = ?, default_hourly_rate = ?
		WHERE user_id = ? AND id = ?`
	_, err := r.db.ExecContext(ctx, query, opt.Name, opt.DefaultHourlyRate, opt.UserID, opt.ID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateCategory"), err)
		return task.Category{}, repo.ErrFailedToUpdate
	}
	return r.GetOneCategory(ctx, repo.GetOneCategoryOptions{UserID: opt.UserID, ID: opt.ID})
}

// DeleteCategory removes the Category; tasks keep existing with their
// category cleared by the ON DELETE SET NULL constraint.
func (r *implRepository) DeleteCategory(ctx context.Context, userID, id string) error {
	defer metrics.ObserveDBQuery("DeleteCategory", "categories", time.Now())

	if _, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE user_id = ? AND id = ?`, userID, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteCategory"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// adjustTaskCount shifts the denormalized task_count, clamped at zero.
func (r *implRepository) adjustTaskCount(ctx context.Context, tx *sql.Tx, categoryID string, delta int) error {
	const query = `UPDATE categories SET task_count = MAX(0, task_count + ?) WHERE id = ?`
	_, err := tx.ExecContext(ctx, query, delta, categoryID)
	return err
}
