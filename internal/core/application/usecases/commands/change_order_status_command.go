package commands

import (
	"errors"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/order"
	"workorders/internal/core/domain/model/session"
	"workorders/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand asks to move an order to a target status on behalf
// of the session's actor. The target is only checked for membership in the
// status enumeration here; permission is decided by the workflow.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	actor    session.Session
	target   order.Status
	assignee *kernel.UUID

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand builds the command. assignee is optional and is
// only honoured when an admin assigns a pending order.
func NewChangeOrderStatusCommand(
	orderID kernel.UUID,
	actor session.Session,
	target order.Status,
	assignee *kernel.UUID,
) (ChangeOrderStatusCommand, error) {
	cmd := ChangeOrderStatusCommand{
		orderID: orderID,
		actor:   actor,
		target:  target,
		guard:   guard.NewConstructorGuard(),
	}

	var assigneeErr error
	if assignee != nil {
		assigneeErr = assignee.Validate()
		id := *assignee
		cmd.assignee = &id
	}

	if err := errors.Join(
		orderID.Validate(),
		actor.Validate(),
		target.Validate(),
		assigneeErr,
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

func (c ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c ChangeOrderStatusCommand) Actor() session.Session {
	return c.actor
}

func (c ChangeOrderStatusCommand) Target() order.Status {
	return c.target
}

// Assignee returns the consultant to record on the order, or nil.
func (c ChangeOrderStatusCommand) Assignee() *kernel.UUID {
	return c.assignee
}
