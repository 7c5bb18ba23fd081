package task

import "time"

// Priority is the fixed task priority set.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Task is a unit of work with an earning value of HourlyRate * EstimatedHours
// once completed.
type Task struct {
	ID             string
	UserID         string
	Title          string
	Description    string
	CategoryID     string // empty when uncategorized
	HourlyRate     float64
	EstimatedHours float64
	Completed      bool
	Priority       Priority
	CreatedAt      time.Time
	CompletedAt    *time.Time // set iff Completed
}

// Value returns the earned value of the task when completed, 0 otherwise.
func (t Task) Value() float64 {
	if !t.Completed {
		return 0
	}
	return t.HourlyRate * t.EstimatedHours
}

// Category groups tasks and provides a default hourly rate for new tasks.
// TaskCount is denormalized and maintained by the repository on task writes.
type Category struct {
	ID                string
	UserID            string
	Name              string
	DefaultHourlyRate float64
	TaskCount         int
	CreatedAt         time.Time
}

// --- UseCase Inputs ---

type CreateTaskInput struct {
	Title          string
	Description    string
	CategoryID     string
	HourlyRate     float64
	EstimatedHours float64
	Priority       Priority
}

type ListTasksInput struct {
	CategoryID string
	Completed  *bool
	Priority   Priority
	Limit      int
	Offset     int
}

type UpdateTaskInput struct {
	ID             string
	Title          string
	Description    string
	CategoryID     *string // nil: unchanged, pointer to "": clear category
	HourlyRate     *float64
	EstimatedHours *float64
	Priority       Priority
}

type CreateCategoryInput struct {
	Name              string
	DefaultHourlyRate float64
}

type UpdateCategoryInput struct {
	ID                string
	Name              string
	DefaultHourlyRate *float64
}

// --- UseCase Outputs ---

type TaskOutput struct {
	Task Task
}

type ListTasksOutput struct {
	Tasks  []Task
	Total  int
	Limit  int
	Offset int
}

type CategoryOutput struct {
	Category Category
}

type ListCategoriesOutput struct {
	Categories []Category
}
