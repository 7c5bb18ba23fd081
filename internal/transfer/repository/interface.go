package repository

import (
	"context"
	"time"
)

// Repository applies an imported document to the store.
type Repository interface {
	// ImportAll replaces the user's tasks, categories and balance target in
	// a single transaction. Either everything lands or nothing does.
	ImportAll(ctx context.Context, opt ImportAllOptions) error
}

// ImportAllOptions carries fully-resolved rows: IDs are already
// regenerated and task category references already remapped.
type ImportAllOptions struct {
	UserID        string
	Categories    []CategoryRow
	Tasks         []TaskRow
	TargetBalance float64
}

type CategoryRow struct {
	ID                string
	Name              string
	DefaultHourlyRate float64
	TaskCount         int
}

type TaskRow struct {
	ID             string
	Title          string
	Description    string
	CategoryID     string
	HourlyRate     float64
	EstimatedHours float64
	Completed      bool
	Priority       string
	CreatedAt      time.Time
	CompletedAt    *time.Time
}
