package usecase

import (
	"context"
	"errors"
	"testing"

	"mentalbank/internal/model"
	"mentalbank/internal/task"
	repo "mentalbank/internal/task/repository"
)

var testScope = model.Scope{UserID: "user-1"}

func TestCreateTask(t *testing.T) {
	t.Run("Invalid Priority", func(t *testing.T) {
		uc := New(&mockRepository{}, &mockLogger{})
		_, err := uc.CreateTask(context.Background(), testScope, task.CreateTaskInput{
			Title:    "Write report",
			Priority: "urgent",
		})
		if !errors.Is(err, task.ErrInvalidPriority) {
			t.Errorf("expected ErrInvalidPriority, got %v", err)
		}
	})

	t.Run("Defaults To Medium Priority", func(t *testing.T) {
		var captured repo.CreateTaskOptions
		mRepo := &mockRepository{
			createTaskFunc: func(opt repo.CreateTaskOptions) (task.Task, error) {
				captured = opt
				return task.Task{ID: "t-1", Priority: opt.Priority}, nil
			},
		}
		uc := New(mRepo, &mockLogger{})
		_, err := uc.CreateTask(context.Background(), testScope, task.CreateTaskInput{Title: "Write report"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if captured.Priority != task.PriorityMedium {
			t.Errorf("expected medium priority, got %s", captured.Priority)
		}
		if captured.UserID != "user-1" {
			t.Errorf("expected scoped user ID, got %s", captured.UserID)
		}
	})

	t.Run("Missing Category", func(t *testing.T) {
		uc := New(&mockRepository{}, &mockLogger{})
		_, err := uc.CreateTask(context.Background(), testScope, task.CreateTaskInput{
			Title:      "Write report",
			CategoryID: "cat-missing",
		})
		if !errors.Is(err, task.ErrCategoryNotFound) {
			t.Errorf("expected ErrCategoryNotFound, got %v", err)
		}
	})

	t.Run("Category Default Rate Applied", func(t *testing.T) {
		var captured repo.CreateTaskOptions
		mRepo := &mockRepository{
			getOneCategoryFunc: func(opt repo.GetOneCategoryOptions) (task.Category, error) {
				return task.Category{ID: "cat-1", DefaultHourlyRate: 75}, nil
			},
			createTaskFunc: func(opt repo.CreateTaskOptions) (task.Task, error) {
				captured = opt
				return task.Task{ID: "t-1"}, nil
			},
		}
		uc := New(mRepo, &mockLogger{})
		_, err := uc.CreateTask(context.Background(), testScope, task.CreateTaskInput{
			Title:      "Write report",
			CategoryID: "cat-1",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if captured.HourlyRate != 75 {
			t.Errorf("expected category default rate 75, got %v", captured.HourlyRate)
		}
	})

	t.Run("Explicit Rate Wins Over Default", func(t *testing.T) {
		var captured repo.CreateTaskOptions
		mRepo := &mockRepository{
			getOneCategoryFunc: func(opt repo.GetOneCategoryOptions) (task.Category, error) {
				return task.Category{ID: "cat-1", DefaultHourlyRate: 75}, nil
			},
			createTaskFunc: func(opt repo.CreateTaskOptions) (task.Task, error) {
				captured = opt
				return task.Task{ID: "t-1"}, nil
			},
		}
		uc := New(mRepo, &mockLogger{})
		uc.CreateTask(context.Background(), testScope, task.CreateTaskInput{
			Title:      "Write report",
			CategoryID: "cat-1",
			HourlyRate: 120,
		})
		if captured.HourlyRate != 120 {
			t.Errorf("expected explicit rate 120, got %v", captured.HourlyRate)
		}
	})
}

func TestCompleteTask(t *testing.T) {
	t.Run("Not Found", func(t *testing.T) {
		uc := New(&mockRepository{}, &mockLogger{})
		_, err := uc.CompleteTask(context.Background(), testScope, "t-missing")
		if !errors.Is(err, task.ErrTaskNotFound) {
			t.Errorf("expected ErrTaskNotFound, got %v", err)
		}
	})

	t.Run("Stamps CompletedAt", func(t *testing.T) {
		var captured repo.UpdateTaskOptions
		mRepo := &mockRepository{
			getOneTaskFunc: func(opt repo.GetOneTaskOptions) (task.Task, error) {
				return task.Task{ID: "t-1", Title: "Write report"}, nil
			},
			updateTaskFunc: func(opt repo.UpdateTaskOptions) (task.Task, error) {
				captured = opt
				return task.Task{ID: "t-1", Completed: true, CompletedAt: opt.CompletedAt}, nil
			},
		}
		uc := New(mRepo, &mockLogger{})
		out, err := uc.CompleteTask(context.Background(), testScope, "t-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !captured.Completed || captured.CompletedAt == nil {
			t.Error("expected completed=true with CompletedAt set")
		}
		if !out.Task.Completed {
			t.Error("expected returned task to be completed")
		}
	})

	t.Run("Idempotent On Completed Task", func(t *testing.T) {
		updateCalled := false
		mRepo := &mockRepository{
			getOneTaskFunc: func(opt repo.GetOneTaskOptions) (task.Task, error) {
				return task.Task{ID: "t-1", Completed: true}, nil
			},
			updateTaskFunc: func(opt repo.UpdateTaskOptions) (task.Task, error) {
				updateCalled = true
				return task.Task{}, nil
			},
		}
		uc := New(mRepo, &mockLogger{})
		out, err := uc.CompleteTask(context.Background(), testScope, "t-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updateCalled {
			t.Error("expected no update for already-completed task")
		}
		if !out.Task.Completed {
			t.Error("expected completed task returned unchanged")
		}
	})
}

func TestUpdateTask(t *testing.T) {
	t.Run("Clear Category", func(t *testing.T) {
		var captured repo.UpdateTaskOptions
		mRepo := &mockRepository{
			getOneTaskFunc: func(opt repo.GetOneTaskOptions) (task.Task, error) {
				return task.Task{ID: "t-1", Title: "Write report", CategoryID: "cat-1"}, nil
			},
			updateTaskFunc: func(opt repo.UpdateTaskOptions) (task.Task, error) {
				captured = opt
				return task.Task{ID: "t-1"}, nil
			},
		}
		uc := New(mRepo, &mockLogger{})
		empty := ""
		_, err := uc.UpdateTask(context.Background(), testScope, task.UpdateTaskInput{ID: "t-1", CategoryID: &empty})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if captured.CategoryID != "" {
			t.Errorf("expected cleared category, got %q", captured.CategoryID)
		}
	})

	t.Run("Repository Error Propagates", func(t *testing.T) {
		mRepo := &mockRepository{
			getOneTaskFunc: func(opt repo.GetOneTaskOptions) (task.Task, error) {
				return task.Task{}, repo.ErrFailedToGet
			},
		}
		uc := New(mRepo, &mockLogger{})
		_, err := uc.UpdateTask(context.Background(), testScope, task.UpdateTaskInput{ID: "t-1"})
		if !errors.Is(err, repo.ErrFailedToGet) {
			t.Errorf("expected ErrFailedToGet, got %v", err)
		}
	})
}

func TestDeleteTask(t *testing.T) {
	t.Run("Not Found", func(t *testing.T) {
		uc := New(&mockRepository{}, &mockLogger{})
		err := uc.DeleteTask(context.Background(), testScope, "t-missing")
		if !errors.Is(err, task.ErrTaskNotFound) {
			t.Errorf("expected ErrTaskNotFound, got %v", err)
		}
	})
}
