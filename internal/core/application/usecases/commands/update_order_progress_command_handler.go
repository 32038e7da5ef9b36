package commands

import (
	"context"

	"workorders/internal/core/domain/model/order"
)

// UpdateOrderProgressCommandHandler stores a new completion percentage.
// Progress is independent of status: no transition happens and updatedAt is
// left alone.
type UpdateOrderProgressCommandHandler struct {
	uowFactory OrderUoWFactory
	maxRetries uint64
}

// NewUpdateOrderProgressCommandHandler creates the handler. A zero maxRetries
// falls back to DefaultConflictRetries.
func NewUpdateOrderProgressCommandHandler(uowFactory OrderUoWFactory, maxRetries uint64) UpdateOrderProgressCommandHandler {
	if maxRetries == 0 {
		maxRetries = DefaultConflictRetries
	}
	return UpdateOrderProgressCommandHandler{
		uowFactory: uowFactory,
		maxRetries: maxRetries,
	}
}

// Handle loads the order, records the progress and writes it back guarded by
// the status it read, retrying when a concurrent status change wins. Orders
// the actor cannot see are reported as errs.ErrObjectNotFound.
func (h UpdateOrderProgressCommandHandler) Handle(ctx context.Context, cmd UpdateOrderProgressCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var updated *order.Order
	err := retryOnConflict(ctx, h.maxRetries, func() error {
		var attemptErr error
		updated, attemptErr = h.attempt(ctx, cmd)
		return attemptErr
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (h UpdateOrderProgressCommandHandler) attempt(ctx context.Context, cmd UpdateOrderProgressCommand) (*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := getVisibleOrder(ctx, orderRepo, cmd.OrderID(), cmd.Actor())
	if err != nil {
		return nil, err
	}

	if err = o.UpdateProgress(cmd.Progress()); err != nil {
		return nil, err
	}

	if err = orderRepo.UpdateProgress(ctx, o, o.Status()); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
