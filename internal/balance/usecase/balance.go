package usecase

import (
	"context"

	"mentalbank/internal/balance"
	"mentalbank/internal/balance/repository"
	"mentalbank/internal/model"
	taskRepo "mentalbank/internal/task/repository"
)

func (uc *implUseCase) GetBalance(ctx context.Context, sc model.Scope) (balance.BalanceOutput, error) {
	return uc.snapshot(ctx, sc)
}

func (uc *implUseCase) UpdateTarget(ctx context.Context, sc model.Scope, input balance.UpdateTargetInput) (balance.BalanceOutput, error) {
	if input.TargetBalance < 0 {
		return balance.BalanceOutput{}, balance.ErrInvalidTarget
	}

	if _, err := uc.repo.UpsertSettings(ctx, repository.UpsertSettingsOptions{
		UserID:        sc.UserID,
		TargetBalance: input.TargetBalance,
	}); err != nil {
		uc.l.Errorf(ctx, "balance/usecase.UpdateTarget: %v", err)
		return balance.BalanceOutput{}, err
	}

	return uc.snapshot(ctx, sc)
}

// snapshot recomputes the derived balance view from the task ledger.
func (uc *implUseCase) snapshot(ctx context.Context, sc model.Scope) (balance.BalanceOutput, error) {
	settings, err := uc.repo.GetSettings(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "balance/usecase.snapshot settings: %v", err)
		return balance.BalanceOutput{}, err
	}

	tasks, _, err := uc.taskRepo.ListTasks(ctx, taskRepo.ListTasksOptions{UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "balance/usecase.snapshot tasks: %v", err)
		return balance.BalanceOutput{}, err
	}

	return balance.BalanceOutput{
		Snapshot: balance.ComputeSnapshot(tasks, settings, uc.now()),
	}, nil
}
