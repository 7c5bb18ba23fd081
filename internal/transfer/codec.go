package transfer

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"
)

// CSV section markers. Each section is a marker row, a header row, then
// zero or more data rows.
const (
	sectionTasks      = "TASKS"
	sectionCategories = "CATEGORIES"
	sectionBalance    = "BALANCE"
)

var (
	taskHeader     = []string{"id", "title", "description", "category_id", "hourly_rate", "estimated_hours", "completed", "priority", "created_at", "completed_at"}
	categoryHeader = []string{"id", "name", "default_hourly_rate"}
	balanceHeader  = []string{"current_balance", "target_balance", "progress_percentage", "daily_growth"}
)

// EncodeJSON renders the document as indented JSON.
func EncodeJSON(doc Document) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}

// DecodeJSON parses a JSON document.
func DecodeJSON(data []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("decode json: %w", err)
	}
	return doc, nil
}

// EncodeCSV renders the document as sectioned CSV.
func EncodeCSV(doc Document) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	records := [][]string{{sectionTasks}, taskHeader}
	for _, t := range doc.Tasks {
		completedAt := ""
		if t.CompletedAt != nil {
			completedAt = t.CompletedAt.Format(time.RFC3339)
		}
		records = append(records, []string{
			t.ID, t.Title, t.Description, t.CategoryID,
			formatFloat(t.HourlyRate), formatFloat(t.EstimatedHours),
			strconv.FormatBool(t.Completed), t.Priority,
			t.CreatedAt.Format(time.RFC3339), completedAt,
		})
	}

	records = append(records, []string{sectionCategories}, categoryHeader)
	for _, c := range doc.Categories {
		records = append(records, []string{c.ID, c.Name, formatFloat(c.DefaultHourlyRate)})
	}

	records = append(records,
		[]string{sectionBalance},
		balanceHeader,
		[]string{
			formatFloat(doc.Balance.CurrentBalance),
			formatFloat(doc.Balance.TargetBalance),
			strconv.Itoa(doc.Balance.ProgressPercentage),
			formatFloat(doc.Balance.DailyGrowth),
		},
	)

	if err := w.WriteAll(records); err != nil {
		return nil, fmt.Errorf("encode csv: %w", err)
	}
	return buf.Bytes(), nil
}

// DecodeCSV parses a sectioned CSV document. All three sections must be
// present, in any order.
func DecodeCSV(data []byte) (Document, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1 // section markers are single-field rows

	var doc Document
	seen := map[string]bool{}
	section := ""
	expectHeader := false

	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Document{}, fmt.Errorf("decode csv: %w", err)
		}

		if len(record) == 1 && isSectionMarker(record[0]) {
			section = record[0]
			seen[section] = true
			expectHeader = true
			continue
		}
		if section == "" {
			return Document{}, fmt.Errorf("decode csv: data before first section marker")
		}
		if expectHeader {
			expectHeader = false
			continue
		}

		switch section {
		case sectionTasks:
			t, err := parseTaskRecord(record)
			if err != nil {
				return Document{}, err
			}
			doc.Tasks = append(doc.Tasks, t)
		case sectionCategories:
			c, err := parseCategoryRecord(record)
			if err != nil {
				return Document{}, err
			}
			doc.Categories = append(doc.Categories, c)
		case sectionBalance:
			b, err := parseBalanceRecord(record)
			if err != nil {
				return Document{}, err
			}
			doc.Balance = b
		}
	}

	for _, s := range []string{sectionTasks, sectionCategories, sectionBalance} {
		if !seen[s] {
			return Document{}, fmt.Errorf("decode csv: missing %s section", s)
		}
	}
	return doc, nil
}

func isSectionMarker(s string) bool {
	return s == sectionTasks || s == sectionCategories || s == sectionBalance
}

func parseTaskRecord(record []string) (DocumentTask, error) {
	if len(record) != len(taskHeader) {
		return DocumentTask{}, fmt.Errorf("decode csv: task row has %d fields, want %d", len(record), len(taskHeader))
	}

	hourlyRate, err := strconv.ParseFloat(record[4], 64)
	if err != nil {
		return DocumentTask{}, fmt.Errorf("decode csv: hourly_rate: %w", err)
	}
	estimatedHours, err := strconv.ParseFloat(record[5], 64)
	if err != nil {
		return DocumentTask{}, fmt.Errorf("decode csv: estimated_hours: %w", err)
	}
	completed, err := strconv.ParseBool(record[6])
	if err != nil {
		return DocumentTask{}, fmt.Errorf("decode csv: completed: %w", err)
	}
	createdAt, err := time.Parse(time.RFC3339, record[8])
	if err != nil {
		return DocumentTask{}, fmt.Errorf("decode csv: created_at: %w", err)
	}

	t := DocumentTask{
		ID:             record[0],
		Title:          record[1],
		Description:    record[2],
		CategoryID:     record[3],
		HourlyRate:     hourlyRate,
		EstimatedHours: estimatedHours,
		Completed:      completed,
		Priority:       record[7],
		CreatedAt:      createdAt,
	}
	if record[9] != "" {
		completedAt, err := time.Parse(time.RFC3339, record[9])
		if err != nil {
			return DocumentTask{}, fmt.Errorf("decode csv: completed_at: %w", err)
		}
		t.CompletedAt = &completedAt
	}
	return t, nil
}

func parseCategoryRecord(record []string) (DocumentCategory, error) {
	if len(record) != len(categoryHeader) {
		return DocumentCategory{}, fmt.Errorf("decode csv: category row has %d fields, want %d", len(record), len(categoryHeader))
	}
	rate, err := strconv.ParseFloat(record[2], 64)
	if err != nil {
		return DocumentCategory{}, fmt.Errorf("decode csv: default_hourly_rate: %w", err)
	}
	return DocumentCategory{ID: record[0], Name: record[1], DefaultHourlyRate: rate}, nil
}

func parseBalanceRecord(record []string) (DocumentBalance, error) {
	if len(record) != len(balanceHeader) {
		return DocumentBalance{}, fmt.Errorf("decode csv: balance row has %d fields, want %d", len(record), len(balanceHeader))
	}
	current, err := strconv.ParseFloat(record[0], 64)
	if err != nil {
		return DocumentBalance{}, fmt.Errorf("decode csv: current_balance: %w", err)
	}
	target, err := strconv.ParseFloat(record[1], 64)
	if err != nil {
		return DocumentBalance{}, fmt.Errorf("decode csv: target_balance: %w", err)
	}
	progress, err := strconv.Atoi(record[2])
	if err != nil {
		return DocumentBalance{}, fmt.Errorf("decode csv: progress_percentage: %w", err)
	}
	growth, err := strconv.ParseFloat(record[3], 64)
	if err != nil {
		return DocumentBalance{}, fmt.Errorf("decode csv: daily_growth: %w", err)
	}
	return DocumentBalance{
		CurrentBalance:     current,
		TargetBalance:      target,
		ProgressPercentage: progress,
		DailyGrowth:        growth,
	}, nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
