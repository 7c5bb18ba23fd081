package sync

import (
	"context"

	"mentalbank/pkg/queue"
)

// queuePublisher adapts the AMQP client to the Publisher interface.
type queuePublisher struct {
	q *queue.Client
}

// NewQueuePublisher wraps an AMQP client as a sync Publisher.
func NewQueuePublisher(q *queue.Client) Publisher {
	return &queuePublisher{q: q}
}

func (p *queuePublisher) Publish(ctx context.Context, msg Message) error {
	return p.q.Publish(ctx, msg)
}
