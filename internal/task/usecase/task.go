package usecase

import (
	"context"
	"time"

	"mentalbank/internal/model"
	"mentalbank/internal/task"
	repo "mentalbank/internal/task/repository"
)

// CreateTask creates a new Task. When the task names a category, the category
// must exist and its default hourly rate fills in a zero rate.
func (uc *implUseCase) CreateTask(ctx context.Context, sc model.Scope, input task.CreateTaskInput) (task.TaskOutput, error) {
	if input.Priority == "" {
		input.Priority = task.PriorityMedium
	}
	if !validPriority(input.Priority) {
		return task.TaskOutput{}, task.ErrInvalidPriority
	}

	if input.CategoryID != "" {
		category, err := uc.repo.GetOneCategory(ctx, repo.GetOneCategoryOptions{UserID: sc.UserID, ID: input.CategoryID})
		if err != nil {
			uc.l.Errorf(ctx, "uc.CreateTask GetOneCategory: %v", err)
			return task.TaskOutput{}, err
		}
		if category.ID == "" {
			return task.TaskOutput{}, task.ErrCategoryNotFound
		}
		if input.HourlyRate == 0 {
			input.HourlyRate = category.DefaultHourlyRate
		}
	}

	created, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		UserID:         sc.UserID,
		Title:          input.Title,
		Description:    input.Description,
		CategoryID:     input.CategoryID,
		HourlyRate:     input.HourlyRate,
		EstimatedHours: input.EstimatedHours,
		Priority:       input.Priority,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateTask CreateTask: %v", err)
		return task.TaskOutput{}, err
	}
	return task.TaskOutput{Task: created}, nil
}

// ListTasks returns a filtered, paginated list of the user's tasks.
func (uc *implUseCase) ListTasks(ctx context.Context, sc model.Scope, input task.ListTasksInput) (task.ListTasksOutput, error) {
	tasks, total, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{
		UserID:     sc.UserID,
		CategoryID: input.CategoryID,
		Completed:  input.Completed,
		Priority:   input.Priority,
		Limit:      input.Limit,
		Offset:     input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListTasks ListTasks: %v", err)
		return task.ListTasksOutput{}, err
	}
	return task.ListTasksOutput{
		Tasks:  tasks,
		Total:  total,
		Limit:  input.Limit,
		Offset: input.Offset,
	}, nil
}

// DetailTask retrieves a single Task by ID. Returns ErrTaskNotFound when missing.
func (uc *implUseCase) DetailTask(ctx context.Context, sc model.Scope, id string) (task.TaskOutput, error) {
	t, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{UserID: sc.UserID, ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.DetailTask GetOneTask: %v", err)
		return task.TaskOutput{}, err
	}
	if t.ID == "" {
		return task.TaskOutput{}, task.ErrTaskNotFound
	}
	return task.TaskOutput{Task: t}, nil
}

// UpdateTask modifies an existing Task (partial update).
func (uc *implUseCase) UpdateTask(ctx context.Context, sc model.Scope, input task.UpdateTaskInput) (task.TaskOutput, error) {
	existing, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{UserID: sc.UserID, ID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateTask GetOneTask: %v", err)
		return task.TaskOutput{}, err
	}
	if existing.ID == "" {
		return task.TaskOutput{}, task.ErrTaskNotFound
	}

	priority := existing.Priority
	if input.Priority != "" {
		if !validPriority(input.Priority) {
			return task.TaskOutput{}, task.ErrInvalidPriority
		}
		priority = input.Priority
	}

	categoryID := existing.CategoryID
	if input.CategoryID != nil {
		categoryID = *input.CategoryID
		if categoryID != "" {
			category, err := uc.repo.GetOneCategory(ctx, repo.GetOneCategoryOptions{UserID: sc.UserID, ID: categoryID})
			if err != nil {
				uc.l.Errorf(ctx, "uc.UpdateTask GetOneCategory: %v", err)
				return task.TaskOutput{}, err
			}
			if category.ID == "" {
				return task.TaskOutput{}, task.ErrCategoryNotFound
			}
		}
	}

	hourlyRate := existing.HourlyRate
	if input.HourlyRate != nil {
		hourlyRate = *input.HourlyRate
	}
	estimatedHours := existing.EstimatedHours
	if input.EstimatedHours != nil {
		estimatedHours = *input.EstimatedHours
	}

	updated, err := uc.repo.UpdateTask(ctx, repo.UpdateTaskOptions{
		UserID:         sc.UserID,
		ID:             input.ID,
		Title:          coalesce(input.Title, existing.Title),
		Description:    coalesce(input.Description, existing.Description),
		CategoryID:     categoryID,
		HourlyRate:     hourlyRate,
		EstimatedHours: estimatedHours,
		Completed:      existing.Completed,
		Priority:       priority,
		CompletedAt:    existing.CompletedAt,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateTask UpdateTask: %v", err)
		return task.TaskOutput{}, err
	}
	return task.TaskOutput{Task: updated}, nil
}

// CompleteTask marks a Task completed, stamping CompletedAt once.
// Completing an already-completed task is a no-op.
func (uc *implUseCase) CompleteTask(ctx context.Context, sc model.Scope, id string) (task.TaskOutput, error) {
	existing, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{UserID: sc.UserID, ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CompleteTask GetOneTask: %v", err)
		return task.TaskOutput{}, err
	}
	if existing.ID == "" {
		return task.TaskOutput{}, task.ErrTaskNotFound
	}
	if existing.Completed {
		return task.TaskOutput{Task: existing}, nil
	}

	now := time.Now().UTC()
	updated, err := uc.repo.UpdateTask(ctx, repo.UpdateTaskOptions{
		UserID:         sc.UserID,
		ID:             id,
		Title:          existing.Title,
		Description:    existing.Description,
		CategoryID:     existing.CategoryID,
		HourlyRate:     existing.HourlyRate,
		EstimatedHours: existing.EstimatedHours,
		Completed:      true,
		Priority:       existing.Priority,
		CompletedAt:    &now,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CompleteTask UpdateTask: %v", err)
		return task.TaskOutput{}, err
	}
	return task.TaskOutput{Task: updated}, nil
}

// DeleteTask removes a Task by ID. Returns ErrTaskNotFound when missing.
func (uc *implUseCase) DeleteTask(ctx context.Context, sc model.Scope, id string) error {
	existing, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{UserID: sc.UserID, ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.DeleteTask GetOneTask: %v", err)
		return err
	}
	if existing.ID == "" {
		return task.ErrTaskNotFound
	}
	if err := uc.repo.DeleteTask(ctx, sc.UserID, id); err != nil {
		uc.l.Errorf(ctx, "uc.DeleteTask DeleteTask: %v", err)
		return err
	}
	return nil
}

func validPriority(p task.Priority) bool {
	switch p {
	case task.PriorityLow, task.PriorityMedium, task.PriorityHigh:
		return true
	}
	return false
}
