package goal

import (
	"context"

	"mentalbank/internal/model"
)

// UseCase is the business surface of the goal domain.
type UseCase interface {
	// Goal CRUD
	CreateGoal(ctx context.Context, sc model.Scope, input CreateGoalInput) (GoalOutput, error)
	ListGoals(ctx context.Context, sc model.Scope, input ListGoalsInput) (ListGoalsOutput, error)
	DetailGoal(ctx context.Context, sc model.Scope, id string) (GoalDetailOutput, error)
	UpdateGoal(ctx context.Context, sc model.Scope, input UpdateGoalInput) (GoalOutput, error)
	DeleteGoal(ctx context.Context, sc model.Scope, id string) error

	// Milestones (scoped through their goal)
	CreateMilestone(ctx context.Context, sc model.Scope, input CreateMilestoneInput) (MilestoneOutput, error)
	ListMilestones(ctx context.Context, sc model.Scope, goalID string) (ListMilestonesOutput, error)
	UpdateMilestone(ctx context.Context, sc model.Scope, input UpdateMilestoneInput) (MilestoneOutput, error)
	CompleteMilestone(ctx context.Context, sc model.Scope, goalID, id string) (MilestoneOutput, error)
	DeleteMilestone(ctx context.Context, sc model.Scope, goalID, id string) error
}
