package repository

import (
	"context"

	"mentalbank/internal/goal"
)

// Repository is the composed interface for the goal domain data store.
type Repository interface {
	GoalRepository
	MilestoneRepository
}

// GoalRepository defines all data access methods for the Goal entity.
type GoalRepository interface {
	CreateGoal(ctx context.Context, opt CreateGoalOptions) (goal.Goal, error)
	GetOneGoal(ctx context.Context, opt GetOneGoalOptions) (goal.Goal, error)
	ListGoals(ctx context.Context, opt ListGoalsOptions) ([]goal.Goal, int, error)
	UpdateGoal(ctx context.Context, opt UpdateGoalOptions) (goal.Goal, error)
	DeleteGoal(ctx context.Context, userID, id string) error
}

// MilestoneRepository defines all data access methods for the Milestone entity.
// Ownership is enforced by callers resolving the goal first.
type MilestoneRepository interface {
	CreateMilestone(ctx context.Context, opt CreateMilestoneOptions) (goal.Milestone, error)
	GetOneMilestone(ctx context.Context, goalID, id string) (goal.Milestone, error)
	ListMilestones(ctx context.Context, goalID string) ([]goal.Milestone, error)
	UpdateMilestone(ctx context.Context, opt UpdateMilestoneOptions) (goal.Milestone, error)
	DeleteMilestone(ctx context.Context, goalID, id string) error
}
