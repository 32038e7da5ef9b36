// Package ports defines the contracts between the work-order domain and its
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists a status change as a compare-and-set keyed on the order id
	// and the status the caller read. Only status, updatedAt and the assignee are
	// written. It returns an errs.ConflictError when the stored status no longer
	// equals expected, and errs.ObjectNotFoundError when the order does not exist.
	Update(ctx context.Context, aggregate *order.Order, expected order.Status) error

	// UpdateProgress writes only the progress column, guarded the same way as
	// Update.
	UpdateProgress(ctx context.Context, aggregate *order.Order, expected order.Status) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
