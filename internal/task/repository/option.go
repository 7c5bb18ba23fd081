package repository

import (
	"time"

	"mentalbank/internal/task"
)

// CreateTaskOptions holds parameters for inserting a new Task.
type CreateTaskOptions struct {
	UserID         string
	Title          string
	Description    string
	CategoryID     string
	HourlyRate     float64
	EstimatedHours float64
	Priority       task.Priority
}

// GetOneTaskOptions holds filter parameters for fetching a single Task.
// All non-empty fields are applied as AND conditions.
type GetOneTaskOptions struct {
	UserID string
	ID     string
}

// ListTasksOptions holds filter and pagination parameters for listing Tasks.
type ListTasksOptions struct {
	UserID     string
	CategoryID string
	Completed  *bool
	Priority   task.Priority
	// CreatedFrom/CreatedTo bound CreatedAt when non-zero.
	CreatedFrom time.Time
	CreatedTo   time.Time
	Limit       int
	Offset      int
	OrderBy     string
}

// UpdateTaskOptions holds parameters for updating an existing Task.
// The full row is written; callers resolve partial updates first.
type UpdateTaskOptions struct {
	UserID         string
	ID             string
	Title          string
	Description    string
	CategoryID     string
	HourlyRate     float64
	EstimatedHours float64
	Completed      bool
	Priority       task.Priority
	CompletedAt    *time.Time
}

// CreateCategoryOptions holds parameters for inserting a new Category.
type CreateCategoryOptions struct {
	UserID            string
	Name              string
	DefaultHourlyRate float64
}

// GetOneCategoryOptions holds filter parameters for fetching a single Category.
type GetOneCategoryOptions struct {
	UserID string
	ID     string
	Name   string
}

// UpdateCategoryOptions holds parameters for updating an existing Category.
type UpdateCategoryOptions struct {
	UserID            string
	ID                string
	Name              string
	DefaultHourlyRate float64
}
