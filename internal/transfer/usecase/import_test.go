package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"mentalbank/internal/model"
	"mentalbank/internal/task"
	"mentalbank/internal/transfer"
)

var testScope = model.Scope{UserID: "user-1"}

func newImportUseCase(repo *mockRepository) *implUseCase {
	return New(repo, &mockTaskRepository{}, &mockBalanceRepository{}, &mockLogger{})
}

func TestSniffFormat(t *testing.T) {
	cases := []struct {
		filename string
		want     transfer.Format
		wantErr  error
	}{
		{"backup.json", transfer.FormatJSON, nil},
		{"Backup.JSON", transfer.FormatJSON, nil},
		{"export.csv", transfer.FormatCSV, nil},
		{"data.2025.csv", transfer.FormatCSV, nil},
		{"notes.xlsx", "", transfer.ErrUnsupportedFormat},
		{"noextension", "", transfer.ErrUnsupportedFormat},
		{"", "", transfer.ErrUnsupportedFormat},
	}
	for _, tc := range cases {
		got, err := sniffFormat(tc.filename)
		if !errors.Is(err, tc.wantErr) {
			t.Errorf("%q: err %v, want %v", tc.filename, err, tc.wantErr)
		}
		if got != tc.want {
			t.Errorf("%q: format %q, want %q", tc.filename, got, tc.want)
		}
	}
}

func TestImport(t *testing.T) {
	t.Run("unsupported extension fails before parsing", func(t *testing.T) {
		repo := &mockRepository{}
		uc := newImportUseCase(repo)

		_, err := uc.Import(context.Background(), testScope, transfer.ImportInput{
			Filename: "backup.xml",
			Data:     []byte("<tasks/>"),
		})
		if !errors.Is(err, transfer.ErrUnsupportedFormat) {
			t.Fatalf("got %v, want ErrUnsupportedFormat", err)
		}
		if repo.applied != nil {
			t.Error("import reached the repository")
		}
	})

	t.Run("malformed json reports processing failure", func(t *testing.T) {
		repo := &mockRepository{}
		uc := newImportUseCase(repo)

		_, err := uc.Import(context.Background(), testScope, transfer.ImportInput{
			Filename: "backup.json",
			Data:     []byte("{not json"),
		})
		if !errors.Is(err, transfer.ErrProcessingFailed) {
			t.Fatalf("got %v, want ErrProcessingFailed", err)
		}
		if repo.applied != nil {
			t.Error("import reached the repository")
		}
	})

	t.Run("valid json replaces the user data", func(t *testing.T) {
		doc := transfer.Document{
			Tasks: []transfer.DocumentTask{
				{ID: "t1", Title: "Write report", CategoryID: "c1", HourlyRate: 50, EstimatedHours: 2, Priority: "high", CreatedAt: time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)},
				{ID: "t2", Title: "Call client", CreatedAt: time.Date(2025, 7, 2, 9, 0, 0, 0, time.UTC)},
			},
			Categories: []transfer.DocumentCategory{
				{ID: "c1", Name: "Work", DefaultHourlyRate: 50},
			},
			Balance: transfer.DocumentBalance{TargetBalance: 10000},
		}
		data, err := transfer.EncodeJSON(doc)
		if err != nil {
			t.Fatalf("encode: %v", err)
		}

		repo := &mockRepository{}
		uc := newImportUseCase(repo)

		out, err := uc.Import(context.Background(), testScope, transfer.ImportInput{
			Filename: "backup.json",
			Data:     data,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.TasksImported != 2 || out.CategoriesImported != 1 {
			t.Errorf("counts: got %+v", out)
		}
		if repo.applied == nil {
			t.Fatal("nothing applied")
		}
		if repo.applied.UserID != "user-1" {
			t.Errorf("user id: got %s", repo.applied.UserID)
		}
		if repo.applied.TargetBalance != 10000 {
			t.Errorf("target balance: got %v", repo.applied.TargetBalance)
		}
	})
}

func TestResolveImport(t *testing.T) {
	t.Run("regenerates ids and remaps category references", func(t *testing.T) {
		doc := transfer.Document{
			Tasks: []transfer.DocumentTask{
				{ID: "old-t1", Title: "A", CategoryID: "old-c1", Priority: "low"},
				{ID: "old-t2", Title: "B", CategoryID: "old-c1", Priority: "low"},
			},
			Categories: []transfer.DocumentCategory{
				{ID: "old-c1", Name: "Deep work"},
			},
		}

		opt, err := resolveImport("user-1", doc)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		cat := opt.Categories[0]
		if cat.ID == "old-c1" || cat.ID == "" {
			t.Errorf("category id not regenerated: %q", cat.ID)
		}
		for i, row := range opt.Tasks {
			if row.ID == doc.Tasks[i].ID || row.ID == "" {
				t.Errorf("task %d id not regenerated: %q", i, row.ID)
			}
			if row.CategoryID != cat.ID {
				t.Errorf("task %d category: got %q, want %q", i, row.CategoryID, cat.ID)
			}
		}
		if cat.TaskCount != 2 {
			t.Errorf("task count: got %d, want 2", cat.TaskCount)
		}
	})

	t.Run("unknown category reference is cleared", func(t *testing.T) {
		doc := transfer.Document{
			Tasks: []transfer.DocumentTask{
				{ID: "t1", Title: "Orphan", CategoryID: "no-such-category", Priority: "medium"},
			},
		}

		opt, err := resolveImport("user-1", doc)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if opt.Tasks[0].CategoryID != "" {
			t.Errorf("category not cleared: %q", opt.Tasks[0].CategoryID)
		}
	})

	t.Run("empty priority defaults to medium", func(t *testing.T) {
		doc := transfer.Document{
			Tasks: []transfer.DocumentTask{{ID: "t1", Title: "No priority"}},
		}

		opt, err := resolveImport("user-1", doc)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if opt.Tasks[0].Priority != string(task.PriorityMedium) {
			t.Errorf("priority: got %q, want medium", opt.Tasks[0].Priority)
		}
	})

	t.Run("invalid priority rejected", func(t *testing.T) {
		doc := transfer.Document{
			Tasks: []transfer.DocumentTask{{ID: "t1", Title: "Bad", Priority: "urgent"}},
		}

		_, err := resolveImport("user-1", doc)
		if !errors.Is(err, task.ErrInvalidPriority) {
			t.Fatalf("got %v, want ErrInvalidPriority", err)
		}
	})
}
