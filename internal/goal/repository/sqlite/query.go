package sqlite

import (
	"fmt"
	"strings"

	repo "mentalbank/internal/goal/repository"
)

// buildGoalFilter assembles the WHERE clause for goal queries.
// user_id is always the first condition.
func buildGoalFilter(opt repo.ListGoalsOptions) (string, []any) {
	conds := []string{"user_id = ?"}
	args := []any{opt.UserID}

	if opt.TimeFrame != "" {
		conds = append(conds, "time_frame = ?")
		args = append(args, opt.TimeFrame)
	}
	if opt.Active != nil {
		conds = append(conds, "active = ?")
		args = append(args, *opt.Active)
	}
	if opt.Completed != nil {
		conds = append(conds, "completed = ?")
		args = append(args, *opt.Completed)
	}

	return strings.Join(conds, " AND "), args
}

// buildGoalPage appends ordering and pagination to the filtered query.
// Limit <= 0 returns all rows ordered by target date.
func buildGoalPage(opt repo.ListGoalsOptions, where string, args []any) (string, []any) {
	query := fmt.Sprintf(
		"SELECT %s FROM goals WHERE %s ORDER BY target_date ASC, created_at ASC",
		goalColumns, where,
	)
	if opt.Limit <= 0 {
		return query, args
	}
	query += " LIMIT ? OFFSET ?"
	return query, append(args, opt.Limit, opt.Offset)
}
