package commands

import (
	"errors"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/order"
	"workorders/internal/core/domain/model/session"
	"workorders/internal/pkg/errs"
	"workorders/internal/pkg/guard"
)

var ErrUpdateOrderProgressCommandIsNotConstructed = errors.New(
	"UpdateOrderProgressCommand must be created via NewUpdateOrderProgressCommand constructor",
)

// UpdateOrderProgressCommand reports the completion percentage of an order on
// behalf of actor.
type UpdateOrderProgressCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	actor    session.Session
	progress int

	guard guard.ConstructorGuard
}

func NewUpdateOrderProgressCommand(
	orderID kernel.UUID,
	actor session.Session,
	progress int,
) (UpdateOrderProgressCommand, error) {
	cmd := UpdateOrderProgressCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
		cmd.setProgress(progress),
	); err != nil {
		return UpdateOrderProgressCommand{}, err
	}

	return cmd, nil
}

func (c UpdateOrderProgressCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderProgressCommandIsNotConstructed)
}

func (c UpdateOrderProgressCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c UpdateOrderProgressCommand) Actor() session.Session {
	return c.actor
}

func (c UpdateOrderProgressCommand) Progress() int {
	return c.progress
}

func (c *UpdateOrderProgressCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderProgressCommand) setActor(actor session.Session) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *UpdateOrderProgressCommand) setProgress(progress int) error {
	if progress < order.MinProgress || progress > order.MaxProgress {
		return errs.NewValueIsOutOfRangeError("progress", progress, order.MinProgress, order.MaxProgress)
	}

	c.progress = progress
	return nil
}
