package repository

import (
	"time"

	"mentalbank/internal/goal"
)

// CreateGoalOptions holds parameters for inserting a new Goal.
type CreateGoalOptions struct {
	UserID      string
	Title       string
	TargetValue float64
	TargetDate  time.Time
	TimeFrame   goal.TimeFrame
}

// GetOneGoalOptions holds filter parameters for fetching a single Goal.
type GetOneGoalOptions struct {
	UserID string
	ID     string
}

// ListGoalsOptions holds filter and pagination parameters for listing Goals.
// Limit <= 0 disables pagination and returns all matching rows.
type ListGoalsOptions struct {
	UserID    string
	TimeFrame goal.TimeFrame
	Active    *bool
	Completed *bool
	Limit     int
	Offset    int
}

// UpdateGoalOptions holds parameters for updating an existing Goal.
// The full row is written; callers resolve partial updates first.
type UpdateGoalOptions struct {
	UserID             string
	ID                 string
	Title              string
	TargetValue        float64
	TargetDate         time.Time
	TimeFrame          goal.TimeFrame
	ProgressPercentage int
	Active             bool
	Completed          bool
}

// CreateMilestoneOptions holds parameters for inserting a new Milestone.
type CreateMilestoneOptions struct {
	GoalID      string
	Title       string
	Description string
	DueDate     time.Time
}

// UpdateMilestoneOptions holds parameters for updating an existing Milestone.
type UpdateMilestoneOptions struct {
	GoalID      string
	ID          string
	Title       string
	Description string
	DueDate     time.Time
	Status      goal.MilestoneStatus
}
