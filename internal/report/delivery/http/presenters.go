package http

import (
	"time"

	"mentalbank/internal/goal"
	"mentalbank/internal/report"
)

// --- Request DTOs ---

type upcomingGoalsReq struct {
	HorizonDays int `form:"horizon_days" binding:"omitempty,gte=1,lte=365"`
	Limit       int `form:"limit"        binding:"omitempty,gte=1,lte=100"`
}

func (r upcomingGoalsReq) toInput() report.UpcomingGoalsInput {
	return report.UpcomingGoalsInput{
		HorizonDays: r.HorizonDays,
		Limit:       r.Limit,
	}
}

type goalSummaryReq struct {
	TimeFrame string `form:"time_frame" binding:"omitempty,oneof=weekly monthly biannual annual"`
}

func (r goalSummaryReq) toInput() report.GoalSummaryInput {
	return report.GoalSummaryInput{TimeFrame: goal.TimeFrame(r.TimeFrame)}
}

type insightsReq struct {
	WindowDays int `form:"window_days" binding:"omitempty,gte=1,lte=365"`
}

func (r insightsReq) toInput() report.InsightsInput {
	return report.InsightsInput{WindowDays: r.WindowDays}
}

// --- Response DTOs ---

type upcomingGoalResp struct {
	ID                 string    `json:"id"`
	Title              string    `json:"title"`
	TargetValue        float64   `json:"target_value"`
	TargetDate         time.Time `json:"target_date"`
	TimeFrame          string    `json:"time_frame"`
	ProgressPercentage int       `json:"progress_percentage"`
}

type upcomingGoalsResp struct {
	Goals []upcomingGoalResp `json:"goals"`
}

func (h *handler) newUpcomingGoalsResp(out report.UpcomingGoalsOutput) upcomingGoalsResp {
	goals := make([]upcomingGoalResp, len(out.Goals))
	for i, g := range out.Goals {
		goals[i] = upcomingGoalResp{
			ID:                 g.ID,
			Title:              g.Title,
			TargetValue:        g.TargetValue,
			TargetDate:         g.TargetDate,
			TimeFrame:          string(g.TimeFrame),
			ProgressPercentage: g.ProgressPercentage,
		}
	}
	return upcomingGoalsResp{Goals: goals}
}

type timeFrameSummaryResp struct {
	TimeFrame       string `json:"time_frame"`
	Count           int    `json:"count"`
	CompletionRate  int    `json:"completion_rate"`
	AverageProgress int    `json:"average_progress"`
}

type goalSummaryResp struct {
	Frames []timeFrameSummaryResp `json:"frames"`
}

func (h *handler) newGoalSummaryResp(out report.GoalSummaryOutput) goalSummaryResp {
	frames := make([]timeFrameSummaryResp, len(out.Frames))
	for i, f := range out.Frames {
		frames[i] = timeFrameSummaryResp{
			TimeFrame:       string(f.TimeFrame),
			Count:           f.Count,
			CompletionRate:  f.CompletionRate,
			AverageProgress: f.AverageProgress,
		}
	}
	return goalSummaryResp{Frames: frames}
}

type categoryRollupResp struct {
	CategoryID     string  `json:"category_id"`
	CategoryName   string  `json:"category_name"`
	Count          int     `json:"count"`
	CompletedCount int     `json:"completed_count"`
	TotalHours     float64 `json:"total_hours"`
	TotalValue     float64 `json:"total_value"`
}

type categoriesResp struct {
	Categories []categoryRollupResp `json:"categories"`
}

func (h *handler) newCategoriesResp(out report.CategoriesOutput) categoriesResp {
	rows := make([]categoryRollupResp, len(out.Rows))
	for i, r := range out.Rows {
		rows[i] = categoryRollupResp{
			CategoryID:     r.CategoryID,
			CategoryName:   r.CategoryName,
			Count:          r.Count,
			CompletedCount: r.CompletedCount,
			TotalHours:     r.TotalHours,
			TotalValue:     r.TotalValue,
		}
	}
	return categoriesResp{Categories: rows}
}

type priorityBreakdownResp struct {
	Low    int `json:"low"`
	Medium int `json:"medium"`
	High   int `json:"high"`
}

type insightsResp struct {
	From            time.Time             `json:"from"`
	To              time.Time             `json:"to"`
	TotalTasks      int                   `json:"total_tasks"`
	CompletedTasks  int                   `json:"completed_tasks"`
	PendingTasks    int                   `json:"pending_tasks"`
	CompletionRatio int                   `json:"completion_ratio"`
	ByPriority      priorityBreakdownResp `json:"by_priority"`
	ByCategory      map[string]int        `json:"by_category"`
}

func (h *handler) newInsightsResp(out report.InsightsOutput) insightsResp {
	return insightsResp{
		From:            out.From,
		To:              out.To,
		TotalTasks:      out.Summary.TotalTasks,
		CompletedTasks:  out.Summary.CompletedTasks,
		PendingTasks:    out.Summary.PendingTasks,
		CompletionRatio: out.Summary.CompletionRatio,
		ByPriority: priorityBreakdownResp{
			Low:    out.Summary.ByPriority.Low,
			Medium: out.Summary.ByPriority.Medium,
			High:   out.Summary.ByPriority.High,
		},
		ByCategory: out.Summary.ByCategory,
	}
}
