package sqlite

import (
	"fmt"
	"strings"

	repo "mentalbank/internal/task/repository"
)

// buildTaskFilter builds the WHERE clause + args shared by count and page
// queries. UserID is always applied.
func buildTaskFilter(opt repo.ListTasksOptions) (string, []any) {
	conditions := []string{"user_id = ?"}
	args := []any{opt.UserID}

	if opt.CategoryID != "" {
		conditions = append(conditions, "category_id = ?")
		args = append(args, opt.CategoryID)
	}
	if opt.Completed != nil {
		conditions = append(conditions, "completed = ?")
		args = append(args, *opt.Completed)
	}
	if opt.Priority != "" {
		conditions = append(conditions, "priority = ?")
		args = append(args, opt.Priority)
	}
	if !opt.CreatedFrom.IsZero() {
		conditions = append(conditions, "created_at >= ?")
		args = append(args, opt.CreatedFrom)
	}
	if !opt.CreatedTo.IsZero() {
		conditions = append(conditions, "created_at < ?")
		args = append(args, opt.CreatedTo)
	}

	return strings.Join(conditions, " AND "), args
}

// buildTaskPage appends ORDER BY / LIMIT / OFFSET to the filtered select.
func buildTaskPage(opt repo.ListTasksOptions, where string, args []any) (string, []any) {
	orderBy := opt.OrderBy
	if orderBy == "" {
		orderBy = "created_at DESC"
	}

	query := fmt.Sprintf("SELECT %s FROM tasks WHERE %s ORDER BY %s", taskColumns, where, orderBy)
	pageArgs := append([]any{}, args...)

	if opt.Limit > 0 {
		query += " LIMIT ?"
		pageArgs = append(pageArgs, opt.Limit)
		if opt.Offset > 0 {
			query += " OFFSET ?"
			pageArgs = append(pageArgs, opt.Offset)
		}
	}

	return query, pageArgs
}
