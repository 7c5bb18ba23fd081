package report

import (
	"math"
	"sort"
	"time"

	"mentalbank/internal/goal"
	"mentalbank/internal/task"
)

// The aggregation engine. Every function here is pure: inputs are never
// mutated, time enters only through an explicit reference instant, and
// the same inputs always produce the same outputs.

// UpcomingGoals returns active, non-completed goals whose target date lies
// strictly between ref and ref plus horizonDays, sorted ascending by target
// date. Goals sharing a target date keep their input order.
func UpcomingGoals(goals []goal.Goal, ref time.Time, horizonDays int) []goal.Goal {
	horizon := ref.AddDate(0, 0, horizonDays)

	var upcoming []goal.Goal
	for _, g := range goals {
		if !g.Active || g.Completed {
			continue
		}
		if !g.TargetDate.After(ref) || !g.TargetDate.Before(horizon) {
			continue
		}
		upcoming = append(upcoming, g)
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].TargetDate.Before(upcoming[j].TargetDate)
	})
	return upcoming
}

// ByTimeFrame returns active goals matching the given time frame,
// preserving input order.
func ByTimeFrame(goals []goal.Goal, tf goal.TimeFrame) []goal.Goal {
	var matched []goal.Goal
	for _, g := range goals {
		if g.Active && g.TimeFrame == tf {
			matched = append(matched, g)
		}
	}
	return matched
}

// CompletionRate returns the rounded percentage of completed goals.
// An empty slice yields 0.
func CompletionRate(goals []goal.Goal) int {
	if len(goals) == 0 {
		return 0
	}
	completed := 0
	for _, g := range goals {
		if g.Completed {
			completed++
		}
	}
	return int(math.Round(100 * float64(completed) / float64(len(goals))))
}

// AverageProgress returns the rounded mean progress over goals not yet
// completed. When every goal is completed (or none exist) it returns 0.
func AverageProgress(goals []goal.Goal) int {
	sum, count := 0, 0
	for _, g := range goals {
		if g.Completed {
			continue
		}
		sum += g.ProgressPercentage
		count++
	}
	if count == 0 {
		return 0
	}
	return int(math.Round(float64(sum) / float64(count)))
}

// DeriveMilestoneStatus resolves the effective status of a milestone at the
// reference instant. Completed is terminal; a pending milestone past its due
// date reads as overdue. The stored status is never modified, so applying
// the derivation twice gives the same answer.
func DeriveMilestoneStatus(m goal.Milestone, ref time.Time) goal.MilestoneStatus {
	if m.Status == goal.MilestoneStatusCompleted {
		return goal.MilestoneStatusCompleted
	}
	if m.DueDate.Before(ref) {
		return goal.MilestoneStatusOverdue
	}
	return m.Status
}

// CategoryRollup aggregates tasks per category. Every category in the input
// gets a row, zero-valued when empty, in input order. Tasks without a
// category are collected under a trailing row with an empty CategoryID.
func CategoryRollup(tasks []task.Task, categories []task.Category) []CategoryRollupRow {
	index := make(map[string]int, len(categories))
	rows := make([]CategoryRollupRow, 0, len(categories)+1)
	for _, c := range categories {
		index[c.ID] = len(rows)
		rows = append(rows, CategoryRollupRow{CategoryID: c.ID, CategoryName: c.Name})
	}

	uncategorized := CategoryRollupRow{CategoryName: "Uncategorized"}
	hasUncategorized := false

	for _, t := range tasks {
		row := &uncategorized
		if i, ok := index[t.CategoryID]; ok {
			row = &rows[i]
		} else if t.CategoryID != "" {
			// category row not supplied; skip rather than invent one
			continue
		} else {
			hasUncategorized = true
		}
		row.Count++
		row.TotalHours += t.EstimatedHours
		if t.Completed {
			row.CompletedCount++
			row.TotalValue += t.HourlyRate * t.EstimatedHours
		}
	}

	if hasUncategorized {
		rows = append(rows, uncategorized)
	}
	return rows
}

// InsightSummary summarizes tasks created within [from, to). The completion
// ratio is a rounded percentage of the windowed tasks; an empty window
// yields an all-zero summary.
func InsightSummary(tasks []task.Task, from, to time.Time) InsightSummaryResult {
	res := InsightSummaryResult{ByCategory: make(map[string]int)}

	for _, t := range tasks {
		if t.CreatedAt.Before(from) || !t.CreatedAt.Before(to) {
			continue
		}
		res.TotalTasks++
		if t.Completed {
			res.CompletedTasks++
		} else {
			res.PendingTasks++
		}
		res.ByPriority.add(t.Priority)
		res.ByCategory[t.CategoryID]++
	}

	if res.TotalTasks > 0 {
		res.CompletionRatio = int(math.Round(100 * float64(res.CompletedTasks) / float64(res.TotalTasks)))
	}
	return res
}

// EarnedValue sums hourlyRate times estimatedHours over completed tasks.
// This is the balance metric's numerator.
func EarnedValue(tasks []task.Task) float64 {
	var total float64
	for _, t := range tasks {
		total += t.Value()
	}
	return total
}
