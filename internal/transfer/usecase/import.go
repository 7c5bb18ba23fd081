package usecase

import (
	"context"
	"path"
	"strings"

	"github.com/google/uuid"

	"mentalbank/internal/model"
	"mentalbank/internal/task"
	"mentalbank/internal/transfer"
	"mentalbank/internal/transfer/repository"
	"mentalbank/pkg/metrics"
)

// Import decodes the uploaded document and replaces the caller's data.
// Format errors surface before any parsing; parse and apply failures leave
// the store untouched.
func (uc *implUseCase) Import(ctx context.Context, sc model.Scope, input transfer.ImportInput) (transfer.ImportOutput, error) {
	format, err := sniffFormat(input.Filename)
	if err != nil {
		metrics.ImportCount.WithLabelValues("unknown", "failed").Inc()
		return transfer.ImportOutput{}, err
	}

	out, err := uc.applyImport(ctx, sc, format, input.Data)
	status := "success"
	if err != nil {
		status = "failed"
	}
	metrics.ImportCount.WithLabelValues(string(format), status).Inc()
	return out, err
}

func (uc *implUseCase) applyImport(ctx context.Context, sc model.Scope, format transfer.Format, data []byte) (transfer.ImportOutput, error) {
	var (
		doc transfer.Document
		err error
	)
	switch format {
	case transfer.FormatJSON:
		doc, err = transfer.DecodeJSON(data)
	case transfer.FormatCSV:
		doc, err = transfer.DecodeCSV(data)
	}
	if err != nil {
		uc.l.Warnf(ctx, "transfer/usecase.Import decode %s: %v", format, err)
		return transfer.ImportOutput{}, transfer.ErrProcessingFailed
	}

	opt, err := resolveImport(sc.UserID, doc)
	if err != nil {
		uc.l.Warnf(ctx, "transfer/usecase.Import resolve: %v", err)
		return transfer.ImportOutput{}, transfer.ErrProcessingFailed
	}

	if err := uc.repo.ImportAll(ctx, opt); err != nil {
		uc.l.Errorf(ctx, "transfer/usecase.Import apply: %v", err)
		return transfer.ImportOutput{}, err
	}

	return transfer.ImportOutput{
		TasksImported:      len(opt.Tasks),
		CategoriesImported: len(opt.Categories),
	}, nil
}

// sniffFormat decides the encoding from the file extension, before any
// parsing happens.
func sniffFormat(filename string) (transfer.Format, error) {
	switch strings.ToLower(path.Ext(filename)) {
	case ".json":
		return transfer.FormatJSON, nil
	case ".csv":
		return transfer.FormatCSV, nil
	default:
		return "", transfer.ErrUnsupportedFormat
	}
}

// resolveImport regenerates store IDs and remaps task category references
// through the exported category ids. Tasks pointing at a category the
// document does not carry become uncategorized.
func resolveImport(userID string, doc transfer.Document) (repository.ImportAllOptions, error) {
	opt := repository.ImportAllOptions{
		UserID:        userID,
		TargetBalance: doc.Balance.TargetBalance,
	}

	idMap := make(map[string]string, len(doc.Categories))
	taskCounts := make(map[string]int, len(doc.Categories))
	for _, c := range doc.Categories {
		newID := uuid.NewString()
		idMap[c.ID] = newID
		opt.Categories = append(opt.Categories, repository.CategoryRow{
			ID:                newID,
			Name:              c.Name,
			DefaultHourlyRate: c.DefaultHourlyRate,
		})
	}

	for _, t := range doc.Tasks {
		priority := task.Priority(t.Priority)
		if priority == "" {
			priority = task.PriorityMedium
		}
		if priority != task.PriorityLow && priority != task.PriorityMedium && priority != task.PriorityHigh {
			return repository.ImportAllOptions{}, task.ErrInvalidPriority
		}

		categoryID := ""
		if t.CategoryID != "" {
			if mapped, ok := idMap[t.CategoryID]; ok {
				categoryID = mapped
				taskCounts[mapped]++
			}
		}

		opt.Tasks = append(opt.Tasks, repository.TaskRow{
			ID:             uuid.NewString(),
			Title:          t.Title,
			Description:    t.Description,
			CategoryID:     categoryID,
			HourlyRate:     t.HourlyRate,
			EstimatedHours: t.EstimatedHours,
			Completed:      t.Completed,
			Priority:       string(priority),
			CreatedAt:      t.CreatedAt,
			CompletedAt:    t.CompletedAt,
		})
	}

	for i := range opt.Categories {
		opt.Categories[i].TaskCount = taskCounts[opt.Categories[i].ID]
	}
	return opt, nil
}
