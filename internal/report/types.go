package report

import "mentalbank/internal/task"

// CategoryRollupRow aggregates a single category's tasks.
// TotalValue counts completed tasks only; TotalHours spans all tasks.
type CategoryRollupRow struct {
	CategoryID     string
	CategoryName   string
	Count          int
	CompletedCount int
	TotalHours     float64
	TotalValue     float64
}

// PriorityBreakdown counts tasks per priority level.
type PriorityBreakdown struct {
	Low    int
	Medium int
	High   int
}

// InsightSummaryResult summarizes task activity within a creation window.
type InsightSummaryResult struct {
	TotalTasks     int
	CompletedTasks int
	PendingTasks   int
	// CompletionRatio is a rounded percentage, 0 on an empty window.
	CompletionRatio int
	ByPriority      PriorityBreakdown
	// ByCategory maps category id ("" for uncategorized) to task count.
	ByCategory map[string]int
}

// add buckets one task into the breakdown.
func (b *PriorityBreakdown) add(p task.Priority) {
	switch p {
	case task.PriorityLow:
		b.Low++
	case task.PriorityHigh:
		b.High++
	default:
		b.Medium++
	}
}
