package balance

import "time"

// Settings is the stored per-user balance configuration.
type Settings struct {
	UserID        string
	TargetBalance float64
	StartedAt     time.Time
}

// Snapshot is the derived balance view. Nothing here is stored: it is
// recomputed from the task ledger on every read.
type Snapshot struct {
	CurrentBalance     float64
	TargetBalance      float64
	ProgressPercentage int
	DailyGrowth        float64
	StartedAt          time.Time
}

// --- UseCase IO ---

type UpdateTargetInput struct {
	TargetBalance float64
}

type BalanceOutput struct {
	Snapshot Snapshot
}
