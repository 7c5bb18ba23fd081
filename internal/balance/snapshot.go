package balance

import (
	"math"
	"time"

	"mentalbank/internal/report"
	"mentalbank/internal/task"
)

// ComputeSnapshot derives the balance view from the task ledger at the
// reference instant. CurrentBalance is the earned value of all completed
// tasks; DailyGrowth counts only tasks completed within ref's local day.
// Progress is capped at 100 and reads 0 while no target is set.
func ComputeSnapshot(tasks []task.Task, settings Settings, ref time.Time) Snapshot {
	s := Snapshot{
		CurrentBalance: report.EarnedValue(tasks),
		TargetBalance:  settings.TargetBalance,
		StartedAt:      settings.StartedAt,
	}

	if s.TargetBalance > 0 {
		pct := int(math.Round(100 * s.CurrentBalance / s.TargetBalance))
		if pct > 100 {
			pct = 100
		}
		s.ProgressPercentage = pct
	}

	dayStart := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)
	for _, t := range tasks {
		if t.CompletedAt == nil {
			continue
		}
		done := t.CompletedAt.In(ref.Location())
		if !done.Before(dayStart) && done.Before(dayEnd) {
			s.DailyGrowth += t.Value()
		}
	}

	return s
}
