package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"mentalbank/internal/task"
	repo "mentalbank/internal/task/repository"
	"mentalbank/pkg/metrics"
)

const taskColumns = `id, user_id, title, description, COALESCE(category_id, ''), hourly_rate, estimated_hours, completed, priority, created_at, completed_at`

// CreateTask inserts a new Task row and bumps the owning category's task_count
// in the same transaction.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (task.Task, error) {
	defer metrics.ObserveDBQuery("CreateTask", "tasks", time.Now())

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("CreateTask"), err)
		return task.Task{}, repo.ErrFailedToInsert
	}
	defer tx.Rollback()

	t := task.Task{
		ID:             uuid.NewString(),
		UserID:         opt.UserID,
		Title:          opt.Title,
		Description:    opt.Description,
		CategoryID:     opt.CategoryID,
		HourlyRate:     opt.HourlyRate,
		EstimatedHours: opt.EstimatedHours,
		Priority:       opt.Priority,
		CreatedAt:      time.Now().UTC(),
	}

	const query = `
		INSERT INTO tasks (id, user_id, title, description, category_id, hourly_rate, estimated_hours, completed, priority, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, 0, ?, ?)`
	_, err = tx.ExecContext(ctx, query,
		t.ID, t.UserID, t.Title, t.Description, nullable(t.CategoryID),
		t.HourlyRate, t.EstimatedHours, t.Priority, t.CreatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return task.Task{}, repo.ErrFailedToInsert
	}

	if t.CategoryID != "" {
		if err := r.adjustTaskCount(ctx, tx, t.CategoryID, +1); err != nil {
			r.l.Errorf(ctx, "%s task_count: %v", r.dsn("CreateTask"), err)
			return task.Task{}, repo.ErrFailedToInsert
		}
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("CreateTask"), err)
		return task.Task{}, repo.ErrFailedToInsert
	}
	return t, nil
}

// GetOneTask retrieves a single Task by the provided filters (AND condition).
// Returns zero-value Task (ID == "") when not found — not an error.
func (r *implRepository) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (task.Task, error) {
	defer metrics.ObserveDBQuery("GetOneTask", "tasks", time.Now())

	query := fmt.Sprintf(`SELECT %s FROM tasks WHERE user_id = ? AND id = ? LIMIT 1`, taskColumns)

	t, err := scanTask(r.db.QueryRowContext(ctx, query, opt.UserID, opt.ID))
	if err == sql.ErrNoRows {
		return task.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTask"), err)
		return task.Task{}, repo.ErrFailedToGet
	}
	return t, nil
}

// ListTasks returns a filtered, paginated list of Tasks and the total count.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]task.Task, int, error) {
	defer metrics.ObserveDBQuery("ListTasks", "tasks", time.Now())

	where, args := buildTaskFilter(opt)

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM tasks WHERE %s", where)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}

	page, pageArgs := buildTaskPage(opt, where, args)
	rows, err := r.db.QueryContext(ctx, page, pageArgs...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var tasks []task.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTasks"), err)
			return nil, 0, repo.ErrFailedToList
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, repo.ErrFailedToList
	}
	return tasks, total, nil
}

// UpdateTask writes the full Task row. Category moves adjust both categories'
// task_count inside the transaction.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (task.Task, error) {
	defer metrics.ObserveDBQuery("UpdateTask", "tasks", time.Now())

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("UpdateTask"), err)
		return task.Task{}, repo.ErrFailedToUpdate
	}
	defer tx.Rollback()

	var prevCategory string
	err = tx.QueryRowContext(ctx,
		`SELECT COALESCE(category_id, '') FROM tasks WHERE user_id = ? AND id = ?`,
		opt.UserID, opt.ID,
	).Scan(&prevCategory)
	if err != nil {
		r.l.Errorf(ctx, "%s lookup: %v", r.dsn("UpdateTask"), err)
		return task.Task{}, repo.ErrFailedToUpdate
	}

	const query = `
		UPDATE tasks
		SET title = ?, description = ?, category_id = ?, hourly_rate = ?,
		    estimated_hours = ?, completed = ?, priority = ?, completed_at = ?
		WHERE user_id = ? AND id = ?`
	_, err = tx.ExecContext(ctx, query,
		opt.Title, opt.Description, nullable(opt.CategoryID), opt.HourlyRate,
		opt.EstimatedHours, opt.Completed, opt.Priority, opt.CompletedAt,
		opt.UserID, opt.ID,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return task.Task{}, repo.ErrFailedToUpdate
	}

	if prevCategory != opt.CategoryID {
		if prevCategory != "" {
			if err := r.adjustTaskCount(ctx, tx, prevCategory, -1); err != nil {
				return task.Task{}, repo.ErrFailedToUpdate
			}
		}
		if opt.CategoryID != "" {
			if err := r.adjustTaskCount(ctx, tx, opt.CategoryID, +1); err != nil {
				return task.Task{}, repo.ErrFailedToUpdate
			}
		}
	}

	query2 := fmt.Sprintf(`SELECT %s FROM tasks WHERE user_id = ? AND id = ?`, taskColumns)
	t, err := scanTask(tx.QueryRowContext(ctx, query2, opt.UserID, opt.ID))
	if err != nil {
		r.l.Errorf(ctx, "%s reread: %v", r.dsn("UpdateTask"), err)
		return task.Task{}, repo.ErrFailedToUpdate
	}

	if err := tx.Commit(); err != nil {
		return task.Task{}, repo.ErrFailedToUpdate
	}
	return t, nil
}

// DeleteTask removes a Task row and decrements its category's task_count.
func (r *implRepository) DeleteTask(ctx context.Context, userID, id string) error {
	defer metrics.ObserveDBQuery("DeleteTask", "tasks", time.Now())

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("DeleteTask"), err)
		return repo.ErrFailedToDelete
	}
	defer tx.Rollback()

	var categoryID string
	err = tx.QueryRowContext(ctx,
		`SELECT COALESCE(category_id, '') FROM tasks WHERE user_id = ? AND id = ?`,
		userID, id,
	).Scan(&categoryID)
	if err != nil {
		r.l.Errorf(ctx, "%s lookup: %v", r.dsn("DeleteTask"), err)
		return repo.ErrFailedToDelete
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM tasks WHERE user_id = ? AND id = ?`, userID, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return repo.ErrFailedToDelete
	}

	if categoryID != "" {
		if err := r.adjustTaskCount(ctx, tx, categoryID, -1); err != nil {
			return repo.ErrFailedToDelete
		}
	}

	if err := tx.Commit(); err != nil {
		return repo.ErrFailedToDelete
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (task.Task, error) {
	var t task.Task
	err := row.Scan(
		&t.ID, &t.UserID, &t.Title, &t.Description, &t.CategoryID,
		&t.HourlyRate, &t.EstimatedHours, &t.Completed, &t.Priority,
		&t.CreatedAt, &t.CompletedAt,
	)
	return t, err
}

// nullable maps "" to NULL so the category foreign key stays clean.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
