package usecase

import (
	"context"

	"mentalbank/internal/model"
	syncPkg "mentalbank/internal/sync"
	"mentalbank/pkg/log"
)

// implUseCase is the private implementation of sync.UseCase.
type implUseCase struct {
	publisher syncPkg.Publisher
	l         log.Logger
}

// New creates a new sync UseCase implementation. publisher may be nil when
// the queue is not configured; Resync then reports the publisher as
// unavailable.
func New(publisher syncPkg.Publisher, l log.Logger) *implUseCase {
	return &implUseCase{
		publisher: publisher,
		l:         l,
	}
}

func (uc *implUseCase) Resync(ctx context.Context, sc model.Scope) error {
	if uc.publisher == nil {
		return syncPkg.ErrPublisherUnavailable
	}

	if err := uc.publisher.Publish(ctx, syncPkg.Message{
		Action: syncPkg.ActionResync,
		UserID: sc.UserID,
	}); err != nil {
		uc.l.Errorf(ctx, "sync/usecase.Resync: %v", err)
		return err
	}
	return nil
}
