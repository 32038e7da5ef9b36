package commands

import (
	"context"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/order"
	"workorders/internal/core/domain/model/session"
	"workorders/internal/core/ports"
	"workorders/internal/pkg/errs"
)

// getVisibleOrder loads the order and hides it behind ObjectNotFound when the
// actor is not allowed to see it, so writes follow the same rule as reads.
func getVisibleOrder(
	ctx context.Context,
	repo ports.OrderRepository,
	id kernel.UUID,
	actor session.Session,
) (*order.Order, error) {
	o, err := repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if !o.IsVisibleTo(actor) {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}

	return o, nil
}
