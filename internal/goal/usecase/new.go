package usecase

import (
	"context"

	"mentalbank/internal/goal/repository"
	syncPkg "mentalbank/internal/sync"
	"mentalbank/pkg/log"
)

// implUseCase is the private implementation of goal.UseCase.
type implUseCase struct {
	repo      repository.Repository
	publisher syncPkg.Publisher
	l         log.Logger
}

// New creates a new goal UseCase implementation. publisher may be nil when
// calendar sync is not configured; goal mutations then skip event publishing.
func New(repo repository.Repository, publisher syncPkg.Publisher, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:      repo,
		publisher: publisher,
		l:         l,
	}
}

// publishSync pushes a sync event for a goal mutation. Publishing is
// best-effort: the mutation has already committed, so a queue failure is
// logged and swallowed rather than surfaced to the caller.
func (uc *implUseCase) publishSync(ctx context.Context, msg syncPkg.Message) {
	if uc.publisher == nil {
		return
	}
	if err := uc.publisher.Publish(ctx, msg); err != nil {
		uc.l.Warnf(ctx, "goal/usecase.publishSync %s %s: %v", msg.Action, msg.GoalID, err)
	}
}

// coalesce returns the first non-empty string — used for partial updates.
func coalesce(newVal, existing string) string {
	if newVal != "" {
		return newVal
	}
	return existing
}
