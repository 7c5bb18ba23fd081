package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"mentalbank/internal/goal"
	repo "mentalbank/internal/goal/repository"
	"mentalbank/pkg/metrics"
)

const goalColumns = `id, user_id, title, target_value, target_date, time_frame, progress_percentage, active, completed, created_at`

// CreateGoal inserts a new Goal row. New goals start active, not completed,
// at zero progress.
func (r *implRepository) CreateGoal(ctx context.Context, opt repo.CreateGoalOptions) (goal.Goal, error) {
	defer metrics.ObserveDBQuery("CreateGoal", "goals", time.Now())

	g := goal.Goal{
		ID:          uuid.NewString(),
		UserID:      opt.UserID,
		Title:       opt.Title,
		TargetValue: opt.TargetValue,
		TargetDate:  opt.TargetDate,
		TimeFrame:   opt.TimeFrame,
		Active:      true,
		CreatedAt:   time.Now().UTC(),
	}

	const query = `
		INSERT INTO goals (id, user_id, title, target_value, target_date, time_frame, progress_percentage, active, completed, created_at)
		VALUES (?, ?, ?, ?, ?, ?, 0, 1, 0, ?)`
	_, err := r.db.ExecContext(ctx, query,
		g.ID, g.UserID, g.Title, g.TargetValue, g.TargetDate, g.TimeFrame, g.CreatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateGoal"), err)
		return goal.Goal{}, repo.ErrFailedToInsert
	}
	return g, nil
}

// GetOneGoal retrieves a single Goal by user and id.
// Returns zero-value Goal (ID == "") when not found — not an error.
func (r *implRepository) GetOneGoal(ctx context.Context, opt repo.GetOneGoalOptions) (goal.Goal, error) {
	defer metrics.ObserveDBQuery("GetOneGoal", "goals", time.Now())

	query := fmt.Sprintf(`SELECT %s FROM goals WHERE user_id = ? AND id = ? LIMIT 1`, goalColumns)

	g, err := scanGoal(r.db.QueryRowContext(ctx, query, opt.UserID, opt.ID))
	if err == sql.ErrNoRows {
		return goal.Goal{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneGoal"), err)
		return goal.Goal{}, repo.ErrFailedToGet
	}
	return g, nil
}

// ListGoals returns a filtered, paginated list of Goals and the total count.
func (r *implRepository) ListGoals(ctx context.Context, opt repo.ListGoalsOptions) ([]goal.Goal, int, error) {
	defer metrics.ObserveDBQuery("ListGoals", "goals", time.Now())

	where, args := buildGoalFilter(opt)

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM goals WHERE %s", where)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListGoals"), err)
		return nil, 0, repo.ErrFailedToList
	}

	page, pageArgs := buildGoalPage(opt, where, args)
	rows, err := r.db.QueryContext(ctx, page, pageArgs...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListGoals"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var goals []goal.Goal
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListGoals"), err)
			return nil, 0, repo.ErrFailedToList
		}
		goals = append(goals, g)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, repo.ErrFailedToList
	}
	return goals, total, nil
}

// UpdateGoal writes the full Goal row and rereads it.
func (r *implRepository) UpdateGoal(ctx context.Context, opt repo.UpdateGoalOptions) (goal.Goal, error) {
	defer metrics.ObserveDBQuery("UpdateGoal", "goals", time.Now())

	const query = `
		UPDATE goals
		SET title = ?, target_value = ?, target_date = ?, time_frame = ?,
		    progress_percentage = ?, active = ?, completed = ?
		WHERE user_id = ? AND id = ?`
	_, err := r.db.ExecContext(ctx, query,
		opt.Title, opt.TargetValue, opt.TargetDate, opt.TimeFrame,
		opt.ProgressPercentage, opt.Active, opt.Completed,
		opt.UserID, opt.ID,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateGoal"), err)
		return goal.Goal{}, repo.ErrFailedToUpdate
	}

	query2 := fmt.Sprintf(`SELECT %s FROM goals WHERE user_id = ? AND id = ?`, goalColumns)
	g, err := scanGoal(r.db.QueryRowContext(ctx, query2, opt.UserID, opt.ID))
	if err != nil {
		r.l.Errorf(ctx, "%s reread: %v", r.dsn("UpdateGoal"), err)
		return goal.Goal{}, repo.ErrFailedToUpdate
	}
	return g, nil
}

// DeleteGoal removes a Goal row; milestones go with it via ON DELETE CASCADE.
func (r *implRepository) DeleteGoal(ctx context.Context, userID, id string) error {
	defer metrics.ObserveDBQuery("DeleteGoal", "goals", time.Now())

	if _, err := r.db.ExecContext(ctx, `DELETE FROM goals WHERE user_id = ? AND id = ?`, userID, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteGoal"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGoal(row rowScanner) (goal.Goal, error) {
	var g goal.Goal
	err := row.Scan(
		&g.ID, &g.UserID, &g.Title, &g.TargetValue, &g.TargetDate,
		&g.TimeFrame, &g.ProgressPercentage, &g.Active, &g.Completed,
		&g.CreatedAt,
	)
	return g, err
}
