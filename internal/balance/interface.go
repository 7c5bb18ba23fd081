package balance

import (
	"context"

	"mentalbank/internal/model"
)

// UseCase is the business surface of the balance domain.
type UseCase interface {
	GetBalance(ctx context.Context, sc model.Scope) (BalanceOutput, error)
	UpdateTarget(ctx context.Context, sc model.Scope, input UpdateTargetInput) (BalanceOutput, error)
}
