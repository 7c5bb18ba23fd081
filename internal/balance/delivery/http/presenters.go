package http

import (
	"time"

	"mentalbank/internal/balance"
)

type updateTargetReq struct {
	TargetBalance float64 `json:"target_balance" binding:"gte=0"`
}

func (r updateTargetReq) toInput() balance.UpdateTargetInput {
	return balance.UpdateTargetInput{TargetBalance: r.TargetBalance}
}

type balanceResp struct {
	CurrentBalance     float64    `json:"current_balance"`
	TargetBalance      float64    `json:"target_balance"`
	ProgressPercentage int        `json:"progress_percentage"`
	DailyGrowth        float64    `json:"daily_growth"`
	StartedAt          *time.Time `json:"started_at,omitempty"`
}

func (h *handler) newBalanceResp(out balance.BalanceOutput) balanceResp {
	resp := balanceResp{
		CurrentBalance:     out.Snapshot.CurrentBalance,
		TargetBalance:      out.Snapshot.TargetBalance,
		ProgressPercentage: out.Snapshot.ProgressPercentage,
		DailyGrowth:        out.Snapshot.DailyGrowth,
	}
	if !out.Snapshot.StartedAt.IsZero() {
		startedAt := out.Snapshot.StartedAt
		resp.StartedAt = &startedAt
	}
	return resp
}
