// Package eventlog delivers committed order status changes as structured log
// records. It is the notification sink of the service: the confirmation
// message attached to each record is the one returned to the acting user.
package eventlog

import (
	"context"
	"log/slog"

	"workorders/internal/core/domain/model/order"
)

// Publisher writes one info record per status change.
type Publisher struct {
	logger *slog.Logger
}

func NewPublisher(logger *slog.Logger) *Publisher {
	return &Publisher{logger: logger.With("component", "order_events")}
}

// Publish implements ports.EventPublisher.
func (p *Publisher) Publish(ctx context.Context, event order.StatusChanged) {
	p.logger.InfoContext(ctx, event.Message(),
		"order_id", event.OrderID.String(),
		"from", event.Previous.String(),
		"to", event.Current.String(),
		"actor_id", event.ActorID.String(),
		"actor_role", event.ActorRole.String(),
		"occurred_at", event.OccurredAt,
	)
}
