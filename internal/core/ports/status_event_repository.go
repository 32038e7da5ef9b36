package ports

import (
	"context"

	"workorders/internal/core/domain/model/order"
)

// StatusEventRepository appends status changes to the order audit trail.
// Entries are written in the same transaction as the order update.
type StatusEventRepository interface {
	Add(ctx context.Context, event order.StatusChanged) error
}

// EventPublisher delivers committed status changes to notification consumers.
// Publishing happens after commit and cannot fail the business operation.
type EventPublisher interface {
	Publish(ctx context.Context, event order.StatusChanged)
}
