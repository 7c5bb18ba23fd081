package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"mentalbank/internal/balance"
	"mentalbank/internal/task"
	"mentalbank/internal/transfer"
)

func newExportUseCase(tr *mockTaskRepository, br *mockBalanceRepository) *implUseCase {
	uc := New(&mockRepository{}, tr, br, &mockLogger{})
	uc.now = func() time.Time {
		return time.Date(2025, 8, 15, 12, 0, 0, 0, time.UTC)
	}
	return uc
}

func TestExport(t *testing.T) {
	completedAt := time.Date(2025, 8, 10, 10, 0, 0, 0, time.UTC)
	tr := &mockTaskRepository{
		tasks: []task.Task{
			{
				ID: "t1", UserID: "user-1", Title: "Done task",
				CategoryID: "c1", HourlyRate: 100, EstimatedHours: 2,
				Completed: true, Priority: task.PriorityHigh,
				CreatedAt:   time.Date(2025, 8, 1, 9, 0, 0, 0, time.UTC),
				CompletedAt: &completedAt,
			},
			{
				ID: "t2", UserID: "user-1", Title: "Open task",
				HourlyRate: 50, EstimatedHours: 1, Priority: task.PriorityLow,
				CreatedAt: time.Date(2025, 8, 5, 9, 0, 0, 0, time.UTC),
			},
		},
		categories: []task.Category{
			{ID: "c1", UserID: "user-1", Name: "Work", DefaultHourlyRate: 100},
		},
	}
	br := &mockBalanceRepository{
		settings: balance.Settings{UserID: "user-1", TargetBalance: 1000},
	}

	t.Run("json carries the full document", func(t *testing.T) {
		uc := newExportUseCase(tr, br)
		out, err := uc.Export(context.Background(), testScope, transfer.ExportInput{Format: transfer.FormatJSON})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Filename != "mentalbank-export-2025-08-15.json" {
			t.Errorf("filename: got %s", out.Filename)
		}
		if out.ContentType != "application/json" {
			t.Errorf("content type: got %s", out.ContentType)
		}

		doc, err := transfer.DecodeJSON(out.Data)
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(doc.Tasks) != 2 || len(doc.Categories) != 1 {
			t.Errorf("doc sizes: %d tasks, %d categories", len(doc.Tasks), len(doc.Categories))
		}
		// only the completed task earns: 100 * 2
		if doc.Balance.CurrentBalance != 200 {
			t.Errorf("current balance: got %v, want 200", doc.Balance.CurrentBalance)
		}
		if doc.Balance.TargetBalance != 1000 {
			t.Errorf("target balance: got %v, want 1000", doc.Balance.TargetBalance)
		}
		if doc.Balance.ProgressPercentage != 20 {
			t.Errorf("progress: got %d, want 20", doc.Balance.ProgressPercentage)
		}
	})

	t.Run("csv round-trips through the decoder", func(t *testing.T) {
		uc := newExportUseCase(tr, br)
		out, err := uc.Export(context.Background(), testScope, transfer.ExportInput{Format: transfer.FormatCSV})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Filename != "mentalbank-export-2025-08-15.csv" {
			t.Errorf("filename: got %s", out.Filename)
		}
		if out.ContentType != "text/csv" {
			t.Errorf("content type: got %s", out.ContentType)
		}
		if !strings.Contains(string(out.Data), "TASKS") {
			t.Error("missing TASKS section marker")
		}

		doc, err := transfer.DecodeCSV(out.Data)
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(doc.Tasks) != 2 || len(doc.Categories) != 1 {
			t.Errorf("doc sizes: %d tasks, %d categories", len(doc.Tasks), len(doc.Categories))
		}
	})

	t.Run("unknown format rejected", func(t *testing.T) {
		uc := newExportUseCase(tr, br)
		_, err := uc.Export(context.Background(), testScope, transfer.ExportInput{Format: "xml"})
		if err != transfer.ErrUnsupportedFormat {
			t.Fatalf("got %v, want ErrUnsupportedFormat", err)
		}
	})
}
