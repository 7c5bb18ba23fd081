package usecase

import (
	"context"

	"mentalbank/internal/task"
	repo "mentalbank/internal/task/repository"
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
	createTaskFunc     func(opt repo.CreateTaskOptions) (task.Task, error)
	getOneTaskFunc     func(opt repo.GetOneTaskOptions) (task.Task, error)
	listTasksFunc      func(opt repo.ListTasksOptions) ([]task.Task, int, error)
	updateTaskFunc     func(opt repo.UpdateTaskOptions) (task.Task, error)
	deleteTaskFunc     func(userID, id string) error
	createCategoryFunc func(opt repo.CreateCategoryOptions) (task.Category, error)
	getOneCategoryFunc func(opt repo.GetOneCategoryOptions) (task.Category, error)
	listCategoriesFunc func(userID string) ([]task.Category, error)
	updateCategoryFunc func(opt repo.UpdateCategoryOptions) (task.Category, error)
	deleteCategoryFunc func(userID, id string) error
}

func (m *mockRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (task.Task, error) {
	if m.createTaskFunc != nil {
		return m.createTaskFunc(opt)
	}
	return task.Task{}, nil
}

func (m *mockRepository) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (task.Task, error) {
	if m.getOneTaskFunc != nil {
		return m.getOneTaskFunc(opt)
	}
	return task.Task{}, nil
}

func (m *mockRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]task.Task, int, error) {
	if m.listTasksFunc != nil {
		return m.listTasksFunc(opt)
	}
	return nil, 0, nil
}

func (m *mockRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (task.Task, error) {
	if m.updateTaskFunc != nil {
		return m.updateTaskFunc(opt)
	}
	return task.Task{}, nil
}

func (m *mockRepository) DeleteTask(ctx context.Context, userID, id string) error {
	if m.deleteTaskFunc != nil {
		return m.deleteTaskFunc(userID, id)
	}
	return nil
}

func (m *mockRepository) CreateCategory(ctx context.Context, opt repo.CreateCategoryOptions) (task.Category, error) {
	if m.createCategoryFunc != nil {
		return m.createCategoryFunc(opt)
	}
	return task.Category{}, nil
}

func (m *mockRepository) GetOneCategory(ctx context.Context, opt repo.GetOneCategoryOptions) (task.Category, error) {
	if m.getOneCategoryFunc != nil {
		return m.getOneCategoryFunc(opt)
	}
	return task.Category{}, nil
}

func (m *mockRepository) ListCategories(ctx context.Context, userID string) ([]task.Category, error) {
	if m.listCategoriesFunc != nil {
		return m.listCategoriesFunc(userID)
	}
	return nil, nil
}

func (m *mockRepository) UpdateCategory(ctx context.Context, opt repo.UpdateCategoryOptions) (task.Category, error) {
	if m.updateCategoryFunc != nil {
		return m.updateCategoryFunc(opt)
	}
	return task.Category{}, nil
}

func (m *mockRepository) DeleteCategory(ctx context.Context, userID, id string) error {
	if m.deleteCategoryFunc != nil {
		return m.deleteCategoryFunc(userID, id)
	}
	return nil
}
