package sync

import (
	"context"

	"mentalbank/internal/model"
)

// Publisher pushes sync messages onto the goal.sync queue.
type Publisher interface {
	Publish(ctx context.Context, msg Message) error
}

// UseCase is the business surface of the calendar-sync domain.
type UseCase interface {
	// Resync enqueues a full re-push of the user's upcoming goals.
	// The worker expands the request against the goal store.
	Resync(ctx context.Context, sc model.Scope) error
}
