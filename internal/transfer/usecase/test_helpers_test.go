package usecase

import (
	"context"

	"mentalbank/internal/balance"
	balanceRepo "mentalbank/internal/balance/repository"
	"mentalbank/internal/task"
	taskRepo "mentalbank/internal/task/repository"
	"mentalbank/internal/transfer/repository"
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

// Mock transfer repository capturing the applied import.
type mockRepository struct {
	applied *repository.ImportAllOptions
	err     error
}

func (m *mockRepository) ImportAll(ctx context.Context, opt repository.ImportAllOptions) error {
	if m.err != nil {
		return m.err
	}
	m.applied = &opt
	return nil
}

// Mock task repository; only the list methods matter for export.
type mockTaskRepository struct {
	tasks      []task.Task
	categories []task.Category
}

func (m *mockTaskRepository) CreateTask(ctx context.Context, opt taskRepo.CreateTaskOptions) (task.Task, error) {
	return task.Task{}, nil
}

func (m *mockTaskRepository) GetOneTask(ctx context.Context, opt taskRepo.GetOneTaskOptions) (task.Task, error) {
	return task.Task{}, nil
}

func (m *mockTaskRepository) ListTasks(ctx context.Context, opt taskRepo.ListTasksOptions) ([]task.Task, int, error) {
	return m.tasks, len(m.tasks), nil
}

func (m *mockTaskRepository) UpdateTask(ctx context.Context, opt taskRepo.UpdateTaskOptions) (task.Task, error) {
	return task.Task{}, nil
}

func (m *mockTaskRepository) DeleteTask(ctx context.Context, userID, id string) error {
	return nil
}

func (m *mockTaskRepository) CreateCategory(ctx context.Context, opt taskRepo.CreateCategoryOptions) (task.Category, error) {
	return task.Category{}, nil
}

func (m *mockTaskRepository) GetOneCategory(ctx context.Context, opt taskRepo.GetOneCategoryOptions) (task.Category, error) {
	return task.Category{}, nil
}

func (m *mockTaskRepository) ListCategories(ctx context.Context, userID string) ([]task.Category, error) {
	return m.categories, nil
}

func (m *mockTaskRepository) UpdateCategory(ctx context.Context, opt taskRepo.UpdateCategoryOptions) (task.Category, error) {
	return task.Category{}, nil
}

func (m *mockTaskRepository) DeleteCategory(ctx context.Context, userID, id string) error {
	return nil
}

// Mock balance repository with fixed settings.
type mockBalanceRepository struct {
	settings balance.Settings
}

func (m *mockBalanceRepository) GetSettings(ctx context.Context, userID string) (balance.Settings, error) {
	return m.settings, nil
}

func (m *mockBalanceRepository) UpsertSettings(ctx context.Context, opt balanceRepo.UpsertSettingsOptions) (balance.Settings, error) {
	return m.settings, nil
}
