package report

import (
	"context"
	"time"

	"mentalbank/internal/goal"
	"mentalbank/internal/model"
)

// UseCase serves dashboard aggregates computed by the engine over the
// caller's stored tasks and goals.
type UseCase interface {
	UpcomingGoals(ctx context.Context, sc model.Scope, input UpcomingGoalsInput) (UpcomingGoalsOutput, error)
	GoalSummary(ctx context.Context, sc model.Scope, input GoalSummaryInput) (GoalSummaryOutput, error)
	Categories(ctx context.Context, sc model.Scope) (CategoriesOutput, error)
	Insights(ctx context.Context, sc model.Scope, input InsightsInput) (InsightsOutput, error)
}

type UpcomingGoalsInput struct {
	HorizonDays int
	Limit       int
}

type UpcomingGoalsOutput struct {
	Goals []goal.Goal
}

// GoalSummaryInput selects a single time frame, or all frames when empty.
type GoalSummaryInput struct {
	TimeFrame goal.TimeFrame
}

// TimeFrameSummary aggregates one planning horizon's goals.
type TimeFrameSummary struct {
	TimeFrame       goal.TimeFrame
	Count           int
	CompletionRate  int
	AverageProgress int
}

type GoalSummaryOutput struct {
	Frames []TimeFrameSummary
}

type CategoriesOutput struct {
	Rows []CategoryRollupRow
}

type InsightsInput struct {
	WindowDays int
}

type InsightsOutput struct {
	From    time.Time
	To      time.Time
	Summary InsightSummaryResult
}
