package task

import (
	"context"

	"mentalbank/internal/model"
)

// UseCase is the business surface of the task domain.
type UseCase interface {
	// Task CRUD
	CreateTask(ctx context.Context, sc model.Scope, input CreateTaskInput) (TaskOutput, error)
	ListTasks(ctx context.Context, sc model.Scope, input ListTasksInput) (ListTasksOutput, error)
	DetailTask(ctx context.Context, sc model.Scope, id string) (TaskOutput, error)
	UpdateTask(ctx context.Context, sc model.Scope, input UpdateTaskInput) (TaskOutput, error)
	CompleteTask(ctx context.Context, sc model.Scope, id string) (TaskOutput, error)
	DeleteTask(ctx context.Context, sc model.Scope, id string) error

	// Category CRUD
	CreateCategory(ctx context.Context, sc model.Scope, input CreateCategoryInput) (CategoryOutput, error)
	ListCategories(ctx context.Context, sc model.Scope) (ListCategoriesOutput, error)
	UpdateCategory(ctx context.Context, sc model.Scope, input UpdateCategoryInput) (CategoryOutput, error)
	DeleteCategory(ctx context.Context, sc model.Scope, id string) error
}
