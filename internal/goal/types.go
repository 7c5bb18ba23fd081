package goal

import "time"

// TimeFrame buckets a goal by planning horizon.
type TimeFrame string

const (
	TimeFrameWeekly   TimeFrame = "weekly"
	TimeFrameMonthly  TimeFrame = "monthly"
	TimeFrameBiannual TimeFrame = "biannual"
	TimeFrameAnnual   TimeFrame = "annual"
)

// Valid reports whether the time frame is one of the known buckets.
func (tf TimeFrame) Valid() bool {
	switch tf {
	case TimeFrameWeekly, TimeFrameMonthly, TimeFrameBiannual, TimeFrameAnnual:
		return true
	}
	return false
}

// MilestoneStatus is the lifecycle state of a milestone. Only pending and
// completed are ever stored; overdue is derived from the due date at read time.
type MilestoneStatus string

const (
	MilestoneStatusPending   MilestoneStatus = "pending"
	MilestoneStatusCompleted MilestoneStatus = "completed"
	MilestoneStatusOverdue   MilestoneStatus = "overdue"
)

// Goal is a target the user works toward. ProgressPercentage and Completed
// are independent: a goal can sit at 100% without being marked completed,
// and can be completed early at any progress value.
type Goal struct {
	ID                 string
	UserID             string
	Title              string
	TargetValue        float64
	TargetDate         time.Time
	TimeFrame          TimeFrame
	ProgressPercentage int
	Active             bool
	Completed          bool
	CreatedAt          time.Time
}

// Milestone is a checkpoint under a goal.
type Milestone struct {
	ID          string
	GoalID      string
	Title       string
	Description string
	DueDate     time.Time
	Status      MilestoneStatus
	CreatedAt   time.Time
}

// --- UseCase IO ---

type CreateGoalInput struct {
	Title       string
	TargetValue float64
	TargetDate  time.Time
	TimeFrame   TimeFrame
}

type ListGoalsInput struct {
	TimeFrame TimeFrame
	Active    *bool
	Limit     int
	Offset    int
}

// UpdateGoalInput carries a partial update; nil/zero fields are unchanged.
type UpdateGoalInput struct {
	ID                 string
	Title              string
	TargetValue        *float64
	TargetDate         *time.Time
	TimeFrame          TimeFrame
	ProgressPercentage *int
	Active             *bool
	Completed          *bool
}

type CreateMilestoneInput struct {
	GoalID      string
	Title       string
	Description string
	DueDate     time.Time
}

type UpdateMilestoneInput struct {
	GoalID      string
	ID          string
	Title       string
	Description string
	DueDate     *time.Time
}

type GoalOutput struct {
	Goal Goal
}

// GoalDetailOutput includes milestones with derived status applied.
type GoalDetailOutput struct {
	Goal       Goal
	Milestones []Milestone
}

type ListGoalsOutput struct {
	Goals  []Goal
	Total  int
	Limit  int
	Offset int
}

type MilestoneOutput struct {
	Milestone Milestone
}

type ListMilestonesOutput struct {
	Milestones []Milestone
}
