package http

import (
	"time"

	"mentalbank/internal/task"
)

// --- Request DTOs ---

type createTaskReq struct {
	Title          string  `json:"title"           binding:"required,min=1,max=255"`
	Description    string  `json:"description"     binding:"max=2000"`
	CategoryID     string  `json:"category_id"`
	HourlyRate     float64 `json:"hourly_rate"     binding:"gte=0"`
	EstimatedHours float64 `json:"estimated_hours" binding:"gte=0"`
	Priority       string  `json:"priority"        binding:"omitempty,oneof=low medium high"`
}

func (r createTaskReq) toInput() task.CreateTaskInput {
	return task.CreateTaskInput{
		Title:          r.Title,
		Description:    r.Description,
		CategoryID:     r.CategoryID,
		HourlyRate:     r.HourlyRate,
		EstimatedHours: r.EstimatedHours,
		Priority:       task.Priority(r.Priority),
	}
}

type listTasksReq struct {
	CategoryID string `form:"category_id"`
	Completed  *bool  `form:"completed"`
	Priority   string `form:"priority" binding:"omitempty,oneof=low medium high"`
	Limit      int    `form:"limit"`
	Offset     int    `form:"offset"`
}

func (r listTasksReq) toInput() task.ListTasksInput {
	limit := r.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := r.Offset
	if offset < 0 {
		offset = 0
	}
	return task.ListTasksInput{
		CategoryID: r.CategoryID,
		Completed:  r.Completed,
		Priority:   task.Priority(r.Priority),
		Limit:      limit,
		Offset:     offset,
	}
}

type updateTaskReq struct {
	ID             string   `json:"-"` // populated from URI param
	Title          string   `json:"title"           binding:"omitempty,min=1,max=255"`
	Description    string   `json:"description"     binding:"omitempty,max=2000"`
	CategoryID     *string  `json:"category_id"`
	HourlyRate     *float64 `json:"hourly_rate"     binding:"omitempty,gte=0"`
	EstimatedHours *float64 `json:"estimated_hours" binding:"omitempty,gte=0"`
	Priority       string   `json:"priority"        binding:"omitempty,oneof=low medium high"`
}

func (r updateTaskReq) toInput() task.UpdateTaskInput {
	return task.UpdateTaskInput{
		ID:             r.ID,
		Title:          r.Title,
		Description:    r.Description,
		CategoryID:     r.CategoryID,
		HourlyRate:     r.HourlyRate,
		EstimatedHours: r.EstimatedHours,
		Priority:       task.Priority(r.Priority),
	}
}

type createCategoryReq struct {
	Name              string  `json:"name"                binding:"required,min=1,max=255"`
	DefaultHourlyRate float64 `json:"default_hourly_rate" binding:"gte=0"`
}

func (r createCategoryReq) toInput() task.CreateCategoryInput {
	return task.CreateCategoryInput{
		Name:              r.Name,
		DefaultHourlyRate: r.DefaultHourlyRate,
	}
}

type updateCategoryReq struct {
	ID                string   `json:"-"`
	Name              string   `json:"name"                binding:"omitempty,min=1,max=255"`
	DefaultHourlyRate *float64 `json:"default_hourly_rate" binding:"omitempty,gte=0"`
}

func (r updateCategoryReq) toInput() task.UpdateCategoryInput {
	return task.UpdateCategoryInput{
		ID:                r.ID,
		Name:              r.Name,
		DefaultHourlyRate: r.DefaultHourlyRate,
	}
}

// --- Response DTOs ---

type taskResp struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	CategoryID     string     `json:"category_id,omitempty"`
	HourlyRate     float64    `json:"hourly_rate"`
	EstimatedHours float64    `json:"estimated_hours"`
	Completed      bool       `json:"completed"`
	Priority       string     `json:"priority"`
	CreatedAt      time.Time  `json:"created_at"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
}

func newTaskResp(t task.Task) taskResp {
	return taskResp{
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

type taskDetailResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newTaskDetailResp(out task.TaskOutput) taskDetailResp {
	return taskDetailResp{Task: newTaskResp(out.Task)}
}

type listTasksResp struct {
	Tasks  []taskResp `json:"tasks"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func (h *handler) newListTasksResp(out task.ListTasksOutput) listTasksResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listTasksResp{
		Tasks:  tasks,
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}

type categoryResp struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	DefaultHourlyRate float64   `json:"default_hourly_rate"`
	TaskCount         int       `json:"task_count"`
	CreatedAt         time.Time `json:"created_at"`
}

func newCategoryResp(c task.Category) categoryResp {
	return categoryResp{
		ID:                c.ID,
		Name:              c.Name,
		DefaultHourlyRate: c.DefaultHourlyRate,
		TaskCount:         c.TaskCount,
		CreatedAt:         c.CreatedAt,
	}
}

type categoryDetailResp struct {
	Category categoryResp `json:"category"`
}

func (h *handler) newCategoryDetailResp(out task.CategoryOutput) categoryDetailResp {
	return categoryDetailResp{Category: newCategoryResp(out.Category)}
}

type listCategoriesResp struct {
	Categories []categoryResp `json:"categories"`
}

func (h *handler) newListCategoriesResp(out task.ListCategoriesOutput) listCategoriesResp {
	categories := make([]categoryResp, len(out.Categories))
	for i, c := range out.Categories {
		categories[i] = newCategoryResp(c)
	}
	return listCategoriesResp{Categories: categories}
}
