package usecase

import (
	"context"
	"time"

	"mentalbank/internal/goal"
	"mentalbank/internal/goal/repository"
	"mentalbank/internal/model"
	"mentalbank/internal/report"
	syncPkg "mentalbank/internal/sync"
)

func (uc *implUseCase) CreateGoal(ctx context.Context, sc model.Scope, input goal.CreateGoalInput) (goal.GoalOutput, error) {
	if !input.TimeFrame.Valid() {
		return goal.GoalOutput{}, goal.ErrInvalidTimeFrame
	}

	g, err := uc.repo.CreateGoal(ctx, repository.CreateGoalOptions{
		UserID:      sc.UserID,
		Title:       input.Title,
		TargetValue: input.TargetValue,
		TargetDate:  input.TargetDate,
		TimeFrame:   input.TimeFrame,
	})
	if err != nil {
		uc.l.Errorf(ctx, "goal/usecase.CreateGoal: %v", err)
		return goal.GoalOutput{}, err
	}

	uc.publishSync(ctx, syncPkg.Message{
		Action: syncPkg.ActionUpsert,
		GoalID: g.ID,
		UserID: sc.UserID,
	})
	return goal.GoalOutput{Goal: g}, nil
}

func (uc *implUseCase) ListGoals(ctx context.Context, sc model.Scope, input goal.ListGoalsInput) (goal.ListGoalsOutput, error) {
	if input.TimeFrame != "" && !input.TimeFrame.Valid() {
		return goal.ListGoalsOutput{}, goal.ErrInvalidTimeFrame
	}

	goals, total, err := uc.repo.ListGoals(ctx, repository.ListGoalsOptions{
		UserID:    sc.UserID,
		TimeFrame: input.TimeFrame,
		Active:    input.Active,
		Limit:     input.Limit,
		Offset:    input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "goal/usecase.ListGoals: %v", err)
		return goal.ListGoalsOutput{}, err
	}

	return goal.ListGoalsOutput{
		Goals:  goals,
		Total:  total,
		Limit:  input.Limit,
		Offset: input.Offset,
	}, nil
}

// DetailGoal returns the goal with its milestones, derived status applied.
func (uc *implUseCase) DetailGoal(ctx context.Context, sc model.Scope, id string) (goal.GoalDetailOutput, error) {
	g, err := uc.ownedGoal(ctx, sc, id)
	if err != nil {
		return goal.GoalDetailOutput{}, err
	}

	milestones, err := uc.repo.ListMilestones(ctx, g.ID)
	if err != nil {
		uc.l.Errorf(ctx, "goal/usecase.DetailGoal milestones: %v", err)
		return goal.GoalDetailOutput{}, err
	}

	now := time.Now().UTC()
	for i := range milestones {
		milestones[i].Status = report.DeriveMilestoneStatus(milestones[i], now)
	}

	return goal.GoalDetailOutput{Goal: g, Milestones: milestones}, nil
}

func (uc *implUseCase) UpdateGoal(ctx context.Context, sc model.Scope, input goal.UpdateGoalInput) (goal.GoalOutput, error) {
	existing, err := uc.ownedGoal(ctx, sc, input.ID)
	if err != nil {
		return goal.GoalOutput{}, err
	}

	if input.TimeFrame != "" && !input.TimeFrame.Valid() {
		return goal.GoalOutput{}, goal.ErrInvalidTimeFrame
	}

	opt := repository.UpdateGoalOptions{
		UserID:             sc.UserID,
		ID:                 existing.ID,
		Title:              coalesce(input.Title, existing.Title),
		TargetValue:        existing.TargetValue,
		TargetDate:         existing.TargetDate,
		TimeFrame:          existing.TimeFrame,
		ProgressPercentage: existing.ProgressPercentage,
		Active:             existing.Active,
		Completed:          existing.Completed,
	}
	if input.TargetValue != nil {
		opt.TargetValue = *input.TargetValue
	}
	if input.TargetDate != nil {
		opt.TargetDate = *input.TargetDate
	}
	if input.TimeFrame != "" {
		opt.TimeFrame = input.TimeFrame
	}
	if input.ProgressPercentage != nil {
		if *input.ProgressPercentage < 0 || *input.ProgressPercentage > 100 {
			return goal.GoalOutput{}, goal.ErrInvalidProgress
		}
		opt.ProgressPercentage = *input.ProgressPercentage
	}
	if input.Active != nil {
		opt.Active = *input.Active
	}
	if input.Completed != nil {
		opt.Completed = *input.Completed
	}

	g, err := uc.repo.UpdateGoal(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "goal/usecase.UpdateGoal: %v", err)
		return goal.GoalOutput{}, err
	}

	uc.publishSync(ctx, syncPkg.Message{
		Action: syncPkg.ActionUpsert,
		GoalID: g.ID,
		UserID: sc.UserID,
	})
	return goal.GoalOutput{Goal: g}, nil
}

func (uc *implUseCase) DeleteGoal(ctx context.Context, sc model.Scope, id string) error {
	g, err := uc.ownedGoal(ctx, sc, id)
	if err != nil {
		return err
	}

	if err := uc.repo.DeleteGoal(ctx, sc.UserID, g.ID); err != nil {
		uc.l.Errorf(ctx, "goal/usecase.DeleteGoal: %v", err)
		return err
	}

	uc.publishSync(ctx, syncPkg.Message{
		Action: syncPkg.ActionDelete,
		GoalID: g.ID,
		UserID: sc.UserID,
	})
	return nil
}

// ownedGoal resolves a goal within the caller's scope.
func (uc *implUseCase) ownedGoal(ctx context.Context, sc model.Scope, id string) (goal.Goal, error) {
	g, err := uc.repo.GetOneGoal(ctx, repository.GetOneGoalOptions{UserID: sc.UserID, ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "goal/usecase.ownedGoal: %v", err)
		return goal.Goal{}, err
	}
	if g.ID == "" {
		return goal.Goal{}, goal.ErrGoalNotFound
	}
	return g, nil
}
