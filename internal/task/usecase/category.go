package usecase

import (
	"context"

	"mentalbank/internal/model"
	"mentalbank/internal/task"
	repo "mentalbank/internal/task/repository"
)

// CreateCategory creates a new Category after checking for name uniqueness.
func (uc *implUseCase) CreateCategory(ctx context.Context, sc model.Scope, input task.CreateCategoryInput) (task.CategoryOutput, error) {
	existing, err := uc.repo.GetOneCategory(ctx, repo.GetOneCategoryOptions{UserID: sc.UserID, Name: input.Name})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateCategory GetOneCategory: %v", err)
		return task.CategoryOutput{}, err
	}
	if existing.ID != "" {
		return task.CategoryOutput{}, task.ErrDuplicateName
	}

	created, err := uc.repo.CreateCategory(ctx, repo.CreateCategoryOptions{
		UserID:            sc.UserID,
		Name:              input.Name,
		DefaultHourlyRate: input.DefaultHourlyRate,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateCategory CreateCategory: %v", err)
		return task.CategoryOutput{}, err
	}
	return task.CategoryOutput{Category: created}, nil
}

// ListCategories returns all of the user's categories.
func (uc *implUseCase) ListCategories(ctx context.Context, sc model.Scope) (task.ListCategoriesOutput, error) {
	categories, err := uc.repo.ListCategories(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListCategories ListCategories: %v", err)
		return task.ListCategoriesOutput{}, err
	}
	return task.ListCategoriesOutput{Categories: categories}, nil
}

// UpdateCategory modifies an existing Category (partial update).
func (uc *implUseCase) UpdateCategory(ctx context.Context, sc model.Scope, input task.UpdateCategoryInput) (task.CategoryOutput, error) {
	existing, err := uc.repo.GetOneCategory(ctx, repo.GetOneCategoryOptions{UserID: sc.UserID, ID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateCategory GetOneCategory: %v", err)
		return task.CategoryOutput{}, err
	}
	if existing.ID == "" {
		return task.CategoryOutput{}, task.ErrCategoryNotFound
	}

	rate := existing.DefaultHourlyRate
	if input.DefaultHourlyRate != nil {
		rate = *input.DefaultHourlyRate
	}

	updated, err := uc.repo.UpdateCategory(ctx, repo.UpdateCategoryOptions{
		UserID:            sc.UserID,
		ID:                input.ID,
		Name:              coalesce(input.Name, existing.Name),
		DefaultHourlyRate: rate,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateCategory UpdateCategory: %v", err)
		return task.CategoryOutput{}, err
	}
	return task.CategoryOutput{Category: updated}, nil
}

// DeleteCategory removes a Category; its tasks become uncategorized.
func (uc *implUseCase) DeleteCategory(ctx context.Context, sc model.Scope, id string) error {
	existing, err := uc.repo.GetOneCategory(ctx, repo.GetOneCategoryOptions{UserID: sc.UserID, ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.DeleteCategory GetOneCategory: %v", err)
		return err
	}
	if existing.ID == "" {
		return task.ErrCategoryNotFound
	}
	if err := uc.repo.DeleteCategory(ctx, sc.UserID, id); err != nil {
		uc.l.Errorf(ctx, "uc.DeleteCategory DeleteCategory: %v", err)
		return err
	}
	return nil
}
