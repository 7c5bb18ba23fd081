package usecase

import (
	"context"
	"time"

	"mentalbank/internal/goal"
	"mentalbank/internal/goal/repository"
	"mentalbank/internal/model"
	"mentalbank/internal/report"
)

func (uc *implUseCase) CreateMilestone(ctx context.Context, sc model.Scope, input goal.CreateMilestoneInput) (goal.MilestoneOutput, error) {
	g, err := uc.ownedGoal(ctx, sc, input.GoalID)
	if err != nil {
		return goal.MilestoneOutput{}, err
	}

	m, err := uc.repo.CreateMilestone(ctx, repository.CreateMilestoneOptions{
		GoalID:      g.ID,
		Title:       input.Title,
		Description: input.Description,
		DueDate:     input.DueDate,
	})
	if err != nil {
		uc.l.Errorf(ctx, "goal/usecase.CreateMilestone: %v", err)
		return goal.MilestoneOutput{}, err
	}
	return goal.MilestoneOutput{Milestone: m}, nil
}

func (uc *implUseCase) ListMilestones(ctx context.Context, sc model.Scope, goalID string) (goal.ListMilestonesOutput, error) {
	g, err := uc.ownedGoal(ctx, sc, goalID)
	if err != nil {
		return goal.ListMilestonesOutput{}, err
	}

	milestones, err := uc.repo.ListMilestones(ctx, g.ID)
	if err != nil {
		uc.l.Errorf(ctx, "goal/usecase.ListMilestones: %v", err)
		return goal.ListMilestonesOutput{}, err
	}

	now := time.Now().UTC()
	for i := range milestones {
		milestones[i].Status = report.DeriveMilestoneStatus(milestones[i], now)
	}
	return goal.ListMilestonesOutput{Milestones: milestones}, nil
}

func (uc *implUseCase) UpdateMilestone(ctx context.Context, sc model.Scope, input goal.UpdateMilestoneInput) (goal.MilestoneOutput, error) {
	g, err := uc.ownedGoal(ctx, sc, input.GoalID)
	if err != nil {
		return goal.MilestoneOutput{}, err
	}

	existing, err := uc.ownedMilestone(ctx, g.ID, input.ID)
	if err != nil {
		return goal.MilestoneOutput{}, err
	}

	opt := repository.UpdateMilestoneOptions{
		GoalID:      g.ID,
		ID:          existing.ID,
		Title:       coalesce(input.Title, existing.Title),
		Description: coalesce(input.Description, existing.Description),
		DueDate:     existing.DueDate,
		Status:      existing.Status,
	}
	if input.DueDate != nil {
		opt.DueDate = *input.DueDate
	}

	m, err := uc.repo.UpdateMilestone(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "goal/usecase.UpdateMilestone: %v", err)
		return goal.MilestoneOutput{}, err
	}
	return goal.MilestoneOutput{Milestone: m}, nil
}

// CompleteMilestone transitions a pending (or overdue) milestone to
// completed. Completed milestones stay completed; a repeat call is a no-op.
func (uc *implUseCase) CompleteMilestone(ctx context.Context, sc model.Scope, goalID, id string) (goal.MilestoneOutput, error) {
	g, err := uc.ownedGoal(ctx, sc, goalID)
	if err != nil {
		return goal.MilestoneOutput{}, err
	}

	existing, err := uc.ownedMilestone(ctx, g.ID, id)
	if err != nil {
		return goal.MilestoneOutput{}, err
	}
	if existing.Status == goal.MilestoneStatusCompleted {
		return goal.MilestoneOutput{Milestone: existing}, nil
	}

	m, err := uc.repo.UpdateMilestone(ctx, repository.UpdateMilestoneOptions{
		GoalID:      g.ID,
		ID:          existing.ID,
		Title:       existing.Title,
		Description: existing.Description,
		DueDate:     existing.DueDate,
		Status:      goal.MilestoneStatusCompleted,
	})
	if err != nil {
		uc.l.Errorf(ctx, "goal/usecase.CompleteMilestone: %v", err)
		return goal.MilestoneOutput{}, err
	}
	return goal.MilestoneOutput{Milestone: m}, nil
}

func (uc *implUseCase) DeleteMilestone(ctx context.Context, sc model.Scope, goalID, id string) error {
	g, err := uc.ownedGoal(ctx, sc, goalID)
	if err != nil {
		return err
	}

	existing, err := uc.ownedMilestone(ctx, g.ID, id)
	if err != nil {
		return err
	}

	if err := uc.repo.DeleteMilestone(ctx, g.ID, existing.ID); err != nil {
		uc.l.Errorf(ctx, "goal/usecase.DeleteMilestone: %v", err)
		return err
	}
	return nil
}

// ownedMilestone resolves a milestone under an already-verified goal.
func (uc *implUseCase) ownedMilestone(ctx context.Context, goalID, id string) (goal.Milestone, error) {
	m, err := uc.repo.GetOneMilestone(ctx, goalID, id)
	if err != nil {
		uc.l.Errorf(ctx, "goal/usecase.ownedMilestone: %v", err)
		return goal.Milestone{}, err
	}
	if m.ID == "" {
		return goal.Milestone{}, goal.ErrMilestoneNotFound
	}
	return m, nil
}
