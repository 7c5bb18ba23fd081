package http

import (
	"time"

	"mentalbank/internal/goal"
	"mentalbank/pkg/response"
)

// --- Request DTOs ---

type createGoalReq struct {
	Title       string    `json:"title"        binding:"required,min=1,max=255"`
	TargetValue float64   `json:"target_value" binding:"gte=0"`
	TargetDate  time.Time `json:"target_date"  binding:"required"`
	TimeFrame   string    `json:"time_frame"   binding:"required,oneof=weekly monthly biannual annual"`
}

func (r createGoalReq) toInput() goal.CreateGoalInput {
	return goal.CreateGoalInput{
		Title:       r.Title,
		TargetValue: r.TargetValue,
		TargetDate:  r.TargetDate,
		TimeFrame:   goal.TimeFrame(r.TimeFrame),
	}
}

type listGoalsReq struct {
	TimeFrame string `form:"time_frame" binding:"omitempty,oneof=weekly monthly biannual annual"`
	Active    *bool  `form:"active"`
	Limit     int    `form:"limit"`
	Offset    int    `form:"offset"`
}

func (r listGoalsReq) toInput() goal.ListGoalsInput {
	limit := r.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := r.Offset
	if offset < 0 {
		offset = 0
	}
	return goal.ListGoalsInput{
		TimeFrame: goal.TimeFrame(r.TimeFrame),
		Active:    r.Active,
		Limit:     limit,
		Offset:    offset,
	}
}

type updateGoalReq struct {
	ID                 string     `json:"-"` // populated from URI param
	Title              string     `json:"title"               binding:"omitempty,min=1,max=255"`
	TargetValue        *float64   `json:"target_value"        binding:"omitempty,gte=0"`
	TargetDate         *time.Time `json:"target_date"`
	TimeFrame          string     `json:"time_frame"          binding:"omitempty,oneof=weekly monthly biannual annual"`
	ProgressPercentage *int       `json:"progress_percentage" binding:"omitempty,gte=0,lte=100"`
	Active             *bool      `json:"active"`
	Completed          *bool      `json:"completed"`
}

func (r updateGoalReq) toInput() goal.UpdateGoalInput {
	return goal.UpdateGoalInput{
		ID:                 r.ID,
		Title:              r.Title,
		TargetValue:        r.TargetValue,
		TargetDate:         r.TargetDate,
		TimeFrame:          goal.TimeFrame(r.TimeFrame),
		ProgressPercentage: r.ProgressPercentage,
		Active:             r.Active,
		Completed:          r.Completed,
	}
}

type createMilestoneReq struct {
	GoalID      string    `json:"-"`
	Title       string    `json:"title"       binding:"required,min=1,max=255"`
	Description string    `json:"description" binding:"max=2000"`
	DueDate     time.Time `json:"due_date"    binding:"required"`
}

func (r createMilestoneReq) toInput() goal.CreateMilestoneInput {
	return goal.CreateMilestoneInput{
		GoalID:      r.GoalID,
		Title:       r.Title,
		Description: r.Description,
		DueDate:     r.DueDate,
	}
}

type updateMilestoneReq struct {
	GoalID      string     `json:"-"`
	ID          string     `json:"-"`
	Title       string     `json:"title"       binding:"omitempty,min=1,max=255"`
	Description string     `json:"description" binding:"omitempty,max=2000"`
	DueDate     *time.Time `json:"due_date"`
}

func (r updateMilestoneReq) toInput() goal.UpdateMilestoneInput {
	return goal.UpdateMilestoneInput{
		GoalID:      r.GoalID,
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		DueDate:     r.DueDate,
	}
}

// --- Response DTOs ---

type goalResp struct {
	ID                 string        `json:"id"`
	Title              string        `json:"title"`
	TargetValue        float64       `json:"target_value"`
	TargetDate         response.Date `json:"target_date"`
	TimeFrame          string        `json:"time_frame"`
	ProgressPercentage int           `json:"progress_percentage"`
	Active             bool          `json:"active"`
	Completed          bool          `json:"completed"`
	CreatedAt          time.Time     `json:"created_at"`
}

func newGoalResp(g goal.Goal) goalResp {
	return goalResp{
		ID:                 g.ID,
		Title:              g.Title,
		TargetValue:        g.TargetValue,
		TargetDate:         response.Date(g.TargetDate),
		TimeFrame:          string(g.TimeFrame),
		ProgressPercentage: g.ProgressPercentage,
		Active:             g.Active,
		Completed:          g.Completed,
		CreatedAt:          g.CreatedAt,
	}
}

type milestoneResp struct {
	ID          string        `json:"id"`
	GoalID      string        `json:"goal_id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	DueDate     response.Date `json:"due_date"`
	Status      string        `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
}

func newMilestoneResp(m goal.Milestone) milestoneResp {
	return milestoneResp{
		ID:          m.ID,
		GoalID:      m.GoalID,
		Title:       m.Title,
		Description: m.Description,
		DueDate:     response.Date(m.DueDate),
		Status:      string(m.Status),
		CreatedAt:   m.CreatedAt,
	}
}

type goalDetailResp struct {
	Goal goalResp `json:"goal"`
}

func (h *handler) newGoalDetailResp(out goal.GoalOutput) goalDetailResp {
	return goalDetailResp{Goal: newGoalResp(out.Goal)}
}

type goalWithMilestonesResp struct {
	Goal       goalResp        `json:"goal"`
	Milestones []milestoneResp `json:"milestones"`
}

func (h *handler) newGoalWithMilestonesResp(out goal.GoalDetailOutput) goalWithMilestonesResp {
	milestones := make([]milestoneResp, len(out.Milestones))
	for i, m := range out.Milestones {
		milestones[i] = newMilestoneResp(m)
	}
	return goalWithMilestonesResp{
		Goal:       newGoalResp(out.Goal),
		Milestones: milestones,
	}
}

type listGoalsResp struct {
	Goals  []goalResp `json:"goals"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func (h *handler) newListGoalsResp(out goal.ListGoalsOutput) listGoalsResp {
	goals := make([]goalResp, len(out.Goals))
	for i, g := range out.Goals {
		goals[i] = newGoalResp(g)
	}
	return listGoalsResp{
		Goals:  goals,
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}

type milestoneDetailResp struct {
	Milestone milestoneResp `json:"milestone"`
}

func (h *handler) newMilestoneDetailResp(out goal.MilestoneOutput) milestoneDetailResp {
	return milestoneDetailResp{Milestone: newMilestoneResp(out.Milestone)}
}

type listMilestonesResp struct {
	Milestones []milestoneResp `json:"milestones"`
}

func (h *handler) newListMilestonesResp(out goal.ListMilestonesOutput) listMilestonesResp {
	milestones := make([]milestoneResp, len(out.Milestones))
	for i, m := range out.Milestones {
		milestones[i] = newMilestoneResp(m)
	}
	return listMilestonesResp{Milestones: milestones}
}
