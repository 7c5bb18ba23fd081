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

const milestoneColumns = `id, goal_id, title, description, due_date, status, created_at`

// CreateMilestone inserts a new Milestone row in pending status.
func (r *implRepository) CreateMilestone(ctx context.Context, opt repo.CreateMilestoneOptions) (goal.Milestone, error) {
	defer metrics.ObserveDBQuery("CreateMilestone", "milestones", time.Now())

	m := goal.Milestone{
		ID:          uuid.NewString(),
		GoalID:      opt.GoalID,
		Title:       opt.Title,
		Description: opt.Description,
		DueDate:     opt.DueDate,
		Status:      goal.MilestoneStatusPending,
		CreatedAt:   time.Now().UTC(),
	}

	const query = `
		INSERT INTO milestones (id, goal_id, title, description, due_date, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		m.ID, m.GoalID, m.Title, m.Description, m.DueDate, m.Status, m.CreatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateMilestone"), err)
		return goal.Milestone{}, repo.ErrFailedToInsert
	}
	return m, nil
}

// GetOneMilestone retrieves a single Milestone by goal and id.
// Returns zero-value Milestone (ID == "") when not found — not an error.
func (r *implRepository) GetOneMilestone(ctx context.Context, goalID, id string) (goal.Milestone, error) {
	defer metrics.ObserveDBQuery("GetOneMilestone", "milestones", time.Now())

	query := fmt.Sprintf(`SELECT %s FROM milestones WHERE goal_id = ? AND id = ? LIMIT 1`, milestoneColumns)

	m, err := scanMilestone(r.db.QueryRowContext(ctx, query, goalID, id))
	if err == sql.ErrNoRows {
		return goal.Milestone{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneMilestone"), err)
		return goal.Milestone{}, repo.ErrFailedToGet
	}
	return m, nil
}

// ListMilestones returns a goal's milestones ordered by due date.
func (r *implRepository) ListMilestones(ctx context.Context, goalID string) ([]goal.Milestone, error) {
	defer metrics.ObserveDBQuery("ListMilestones", "milestones", time.Now())

	query := fmt.Sprintf(
		`SELECT %s FROM milestones WHERE goal_id = ? ORDER BY due_date ASC, created_at ASC`,
		milestoneColumns,
	)
	rows, err := r.db.QueryContext(ctx, query, goalID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListMilestones"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var milestones []goal.Milestone
	for rows.Next() {
		m, err := scanMilestone(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListMilestones"), err)
			return nil, repo.ErrFailedToList
		}
		milestones = append(milestones, m)
	}
	if err := rows.Err(); err != nil {
		return nil, repo.ErrFailedToList
	}
	return milestones, nil
}

// UpdateMilestone writes the full Milestone row and rereads it.
func (r *implRepository) UpdateMilestone(ctx context.Context, opt repo.UpdateMilestoneOptions) (goal.Milestone, error) {
	defer metrics.ObserveDBQuery("UpdateMilestone", "milestones", time.Now())

	const query = `
		UPDATE milestones
		SET title = ?, description = ?, due_date = ?, status = ?
		WHERE goal_id = ? AND id = ?`
	_, err := r.db.ExecContext(ctx, query,
		opt.Title, opt.Description, opt.DueDate, opt.Status,
		opt.GoalID, opt.ID,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateMilestone"), err)
		return goal.Milestone{}, repo.ErrFailedToUpdate
	}

	query2 := fmt.Sprintf(`SELECT %s FROM milestones WHERE goal_id = ? AND id = ?`, milestoneColumns)
	m, err := scanMilestone(r.db.QueryRowContext(ctx, query2, opt.GoalID, opt.ID))
	if err != nil {
		r.l.Errorf(ctx, "%s reread: %v", r.dsn("UpdateMilestone"), err)
		return goal.Milestone{}, repo.ErrFailedToUpdate
	}
	return m, nil
}

// DeleteMilestone removes a Milestone row.
func (r *implRepository) DeleteMilestone(ctx context.Context, goalID, id string) error {
	defer metrics.ObserveDBQuery("DeleteMilestone", "milestones", time.Now())

	if _, err := r.db.ExecContext(ctx, `DELETE FROM milestones WHERE goal_id = ? AND id = ?`, goalID, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteMilestone"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

func scanMilestone(row rowScanner) (goal.Milestone, error) {
	var m goal.Milestone
	err := row.Scan(
		&m.ID, &m.GoalID, &m.Title, &m.Description, &m.DueDate,
		&m.Status, &m.CreatedAt,
	)
	return m, err
}
