package usecase

import (
	"context"

	"mentalbank/internal/goal"
	repo "mentalbank/internal/goal/repository"
	syncPkg "mentalbank/internal/sync"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock repository with per-method override functions.
type mockRepository struct {
	createGoalFunc      func(opt repo.CreateGoalOptions) (goal.Goal, error)
	getOneGoalFunc      func(opt repo.GetOneGoalOptions) (goal.Goal, error)
	listGoalsFunc       func(opt repo.ListGoalsOptions) ([]goal.Goal, int, error)
	updateGoalFunc      func(opt repo.UpdateGoalOptions) (goal.Goal, error)
	deleteGoalFunc      func(userID, id string) error
	createMilestoneFunc func(opt repo.CreateMilestoneOptions) (goal.Milestone, error)
	getOneMilestoneFunc func(goalID, id string) (goal.Milestone, error)
	listMilestonesFunc  func(goalID string) ([]goal.Milestone, error)
	updateMilestoneFunc func(opt repo.UpdateMilestoneOptions) (goal.Milestone, error)
	deleteMilestoneFunc func(goalID, id string) error
}

func (m *mockRepository) CreateGoal(ctx context.Context, opt repo.CreateGoalOptions) (goal.Goal, error) {
	if m.createGoalFunc != nil {
		return m.createGoalFunc(opt)
	}
	return goal.Goal{}, nil
}

func (m *mockRepository) GetOneGoal(ctx context.Context, opt repo.GetOneGoalOptions) (goal.Goal, error) {
	if m.getOneGoalFunc != nil {
		return m.getOneGoalFunc(opt)
	}
	return goal.Goal{}, nil
}

func (m *mockRepository) ListGoals(ctx context.Context, opt repo.ListGoalsOptions) ([]goal.Goal, int, error) {
	if m.listGoalsFunc != nil {
		return m.listGoalsFunc(opt)
	}
	return nil, 0, nil
}

func (m *mockRepository) UpdateGoal(ctx context.Context, opt repo.UpdateGoalOptions) (goal.Goal, error) {
	if m.updateGoalFunc != nil {
		return m.updateGoalFunc(opt)
	}
	return goal.Goal{}, nil
}

func (m *mockRepository) DeleteGoal(ctx context.Context, userID, id string) error {
	if m.deleteGoalFunc != nil {
		return m.deleteGoalFunc(userID, id)
	}
	return nil
}

func (m *mockRepository) CreateMilestone(ctx context.Context, opt repo.CreateMilestoneOptions) (goal.Milestone, error) {
	if m.createMilestoneFunc != nil {
		return m.createMilestoneFunc(opt)
	}
	return goal.Milestone{}, nil
}

func (m *mockRepository) GetOneMilestone(ctx context.Context, goalID, id string) (goal.Milestone, error) {
	if m.getOneMilestoneFunc != nil {
		return m.getOneMilestoneFunc(goalID, id)
	}
	return goal.Milestone{}, nil
}

func (m *mockRepository) ListMilestones(ctx context.Context, goalID string) ([]goal.Milestone, error) {
	if m.listMilestonesFunc != nil {
		return m.listMilestonesFunc(goalID)
	}
	return nil, nil
}

func (m *mockRepository) UpdateMilestone(ctx context.Context, opt repo.UpdateMilestoneOptions) (goal.Milestone, error) {
	if m.updateMilestoneFunc != nil {
		return m.updateMilestoneFunc(opt)
	}
	return goal.Milestone{}, nil
}

func (m *mockRepository) DeleteMilestone(ctx context.Context, goalID, id string) error {
	if m.deleteMilestoneFunc != nil {
		return m.deleteMilestoneFunc(goalID, id)
	}
	return nil
}

// Mock publisher recording every message it sees.
type mockPublisher struct {
	published []syncPkg.Message
	err       error
}

func (m *mockPublisher) Publish(ctx context.Context, msg syncPkg.Message) error {
	if m.err != nil {
		return m.err
	}
	m.published = append(m.published, msg)
	return nil
}
