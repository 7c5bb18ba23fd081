package repository

import (
	"context"

	"mentalbank/internal/task"
)

// Repository is the composed interface for the task domain data store.
type Repository interface {
	TaskRepository
	CategoryRepository
}

// TaskRepository defines all data access methods for the Task entity.
type TaskRepository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (task.Task, error)
	GetOneTask(ctx context.Context, opt GetOneTaskOptions) (task.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]task.Task, int, error)
	UpdateTask(ctx context.Context, opt UpdateTaskOptions) (task.Task, error)
	DeleteTask(ctx context.Context, userID, id string) error
}

// CategoryRepository defines all data access methods for the Category entity.
type CategoryRepository interface {
	CreateCategory(ctx context.Context, opt CreateCategoryOptions) (task.Category, error)
	GetOneCategory(ctx context.Context, opt GetOneCategoryOptions) (task.Category, error)
	ListCategories(ctx context.Context, userID string) ([]task.Category, error)
	UpdateCategory(ctx context.Context, opt UpdateCategoryOptions) (task.Category, error)
	DeleteCategory(ctx context.Context, userID, id string) error
}
