package transfer

import "time"

// Format identifies a supported transfer encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// Document is the portable shape of a user's data. The same document is
// produced by export and accepted by import, in either encoding.
type Document struct {
	Tasks      []DocumentTask     `json:"tasks"`
	Categories []DocumentCategory `json:"categories"`
	Balance    DocumentBalance    `json:"balance"`
}

type DocumentTask struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	CategoryID     string     `json:"categoryId,omitempty"`
	HourlyRate     float64    `json:"hourlyRate"`
	EstimatedHours float64    `json:"estimatedHours"`
	Completed      bool       `json:"completed"`
	Priority       string     `json:"priority"`
	CreatedAt      time.Time  `json:"createdAt"`
	CompletedAt    *time.Time `json:"completedAt,omitempty"`
}

type DocumentCategory struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	DefaultHourlyRate float64 `json:"defaultHourlyRate"`
}

type DocumentBalance struct {
	CurrentBalance     float64 `json:"currentBalance"`
	TargetBalance      float64 `json:"targetBalance"`
	ProgressPercentage int     `json:"progressPercentage"`
	DailyGrowth        float64 `json:"dailyGrowth"`
}

// --- UseCase IO ---

type ExportInput struct {
	Format Format
}

type ExportOutput struct {
	Filename    string
	ContentType string
	Data        []byte
}

type ImportInput struct {
	Filename string
	Data     []byte
}

type ImportOutput struct {
	TasksImported      int
	CategoriesImported int
}
