package commands

import (
	"errors"
	"time"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/order"
	"workorders/internal/pkg/errs"
	"workorders/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a client request for consulting work.
// Only presence is checked here; the order aggregate re-validates the brief.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), order.Brief{
//	    Title:       "Financial Analysis for Retail Chain",
//	    ClientName:  "Sarah Williams",
//	    ClientEmail: "sarah@retailchain.com",
//	}, order.Medium, nil)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	brief    order.Brief
	priority order.Priority
	dueDate  *time.Time

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new pending order.
// dueDate is optional.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	brief order.Brief,
	priority order.Priority,
	dueDate *time.Time,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setBrief(brief),
		cmd.setPriority(priority),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	if dueDate != nil {
		due := *dueDate
		cmd.dueDate = &due
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) Brief() order.Brief {
	return c.brief
}

func (c CreateOrderCommand) Priority() order.Priority {
	return c.priority
}

// DueDate returns the requested deadline, or nil when none was given.
func (c CreateOrderCommand) DueDate() *time.Time {
	return c.dueDate
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setBrief(brief order.Brief) error {
	var problems []error
	if brief.Title == "" {
		problems = append(problems, errs.NewValueIsRequiredError("title"))
	}
	if brief.ClientName == "" {
		problems = append(problems, errs.NewValueIsRequiredError("clientName"))
	}
	if brief.ClientEmail == "" {
		problems = append(problems, errs.NewValueIsRequiredError("clientEmail"))
	}
	if err := errors.Join(problems...); err != nil {
		return err
	}

	c.brief = brief
	return nil
}

func (c *CreateOrderCommand) setPriority(priority order.Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}

	c.priority = priority
	return nil
}
