package usecase

import (
	"context"
	"fmt"

	"mentalbank/internal/balance"
	"mentalbank/internal/model"
	"mentalbank/internal/task"
	taskRepo "mentalbank/internal/task/repository"
	"mentalbank/internal/transfer"
)

func (uc *implUseCase) Export(ctx context.Context, sc model.Scope, input transfer.ExportInput) (transfer.ExportOutput, error) {
	doc, err := uc.buildDocument(ctx, sc)
	if err != nil {
		return transfer.ExportOutput{}, err
	}

	stamp := uc.now().UTC().Format("2006-01-02")

	switch input.Format {
	case transfer.FormatJSON:
		data, err := transfer.EncodeJSON(doc)
		if err != nil {
			uc.l.Errorf(ctx, "transfer/usecase.Export json: %v", err)
			return transfer.ExportOutput{}, err
		}
		return transfer.ExportOutput{
			Filename:    fmt.Sprintf("mentalbank-export-%s.json", stamp),
			ContentType: "application/json",
			Data:        data,
		}, nil
	case transfer.FormatCSV:
		data, err := transfer.EncodeCSV(doc)
		if err != nil {
			uc.l.Errorf(ctx, "transfer/usecase.Export csv: %v", err)
			return transfer.ExportOutput{}, err
		}
		return transfer.ExportOutput{
			Filename:    fmt.Sprintf("mentalbank-export-%s.csv", stamp),
			ContentType: "text/csv",
			Data:        data,
		}, nil
	default:
		return transfer.ExportOutput{}, transfer.ErrUnsupportedFormat
	}
}

// buildDocument assembles the caller's full data set, balance included.
func (uc *implUseCase) buildDocument(ctx context.Context, sc model.Scope) (transfer.Document, error) {
	tasks, _, err := uc.taskRepo.ListTasks(ctx, taskRepo.ListTasksOptions{UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "transfer/usecase.buildDocument tasks: %v", err)
		return transfer.Document{}, err
	}

	categories, err := uc.taskRepo.ListCategories(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "transfer/usecase.buildDocument categories: %v", err)
		return transfer.Document{}, err
	}

	settings, err := uc.balanceRepo.GetSettings(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "transfer/usecase.buildDocument settings: %v", err)
		return transfer.Document{}, err
	}
	snapshot := balance.ComputeSnapshot(tasks, settings, uc.now())

	doc := transfer.Document{
		Tasks:      make([]transfer.DocumentTask, 0, len(tasks)),
		Categories: make([]transfer.DocumentCategory, 0, len(categories)),
		Balance: transfer.DocumentBalance{
			CurrentBalance:     snapshot.CurrentBalance,
			TargetBalance:      snapshot.TargetBalance,
			ProgressPercentage: snapshot.ProgressPercentage,
			DailyGrowth:        snapshot.DailyGrowth,
		},
	}
	for _, t := range tasks {
		doc.Tasks = append(doc.Tasks, documentTask(t))
	}
	for _, c := range categories {
		doc.Categories = append(doc.Categories, transfer.DocumentCategory{
			ID:                c.ID,
			Name:              c.Name,
			DefaultHourlyRate: c.DefaultHourlyRate,
		})
	}
	return doc, nil
}

func documentTask(t task.Task) transfer.DocumentTask {
	return transfer.DocumentTask{
		ID:             t.ID,
		Title:          t.Title,
		Description:    t.Description,
		CategoryID:     t.CategoryID,
		HourlyRate:     t.HourlyRate,
		EstimatedHours: t.EstimatedHours,
		Completed:      t.Completed,
		Priority:       string(t.Priority),
		CreatedAt:      t.CreatedAt,
		CompletedAt:    t.CompletedAt,
	}
}
