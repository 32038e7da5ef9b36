package commands

import (
	"context"
	"errors"

	"workorders/internal/core/domain/model/order"
	"workorders/internal/core/domain/model/session"
	"workorders/internal/core/domain/services"
	"workorders/internal/pkg/errs"
)

var ErrAssigneeNotAllowed = errors.New("an assignee can only be given when an admin assigns a pending order")

// ChangeOrderStatusResult carries the stored order and the status change that
// produced it.
type ChangeOrderStatusResult struct {
	Order *order.Order
	Event order.StatusChanged
}

// Message is the confirmation shown to the actor.
func (r ChangeOrderStatusResult) Message() string {
	return r.Event.Message()
}

// ChangeOrderStatusCommandHandler runs a status change through the workflow and
// persists it with a compare-and-set on the status it read. When another writer
// got there first the whole read-decide-write cycle is retried, so a retried
// request sees the newer status and may legitimately end in ErrNoOp or
// ErrIllegalTransition instead. An order the actor cannot see is reported as
// errs.ErrObjectNotFound.
//
// Example:
//
//	handler := NewChangeOrderStatusCommandHandler(uowFactory, services.NewOrderWorkflow(time.Now), 3)
//	result, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, services.ErrIllegalTransition):
//	    // 403
//	case errors.Is(err, errs.ErrConflict):
//	    // retries exhausted
//	case err != nil:
//	    return err
//	}
//	fmt.Println(result.Message()) // Order status updated to in progress
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	workflow   services.OrderWorkflow
	maxRetries uint64
}

// NewChangeOrderStatusCommandHandler creates the handler. A zero maxRetries
// falls back to DefaultConflictRetries.
func NewChangeOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	workflow services.OrderWorkflow,
	maxRetries uint64,
) ChangeOrderStatusCommandHandler {
	if maxRetries == 0 {
		maxRetries = DefaultConflictRetries
	}
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		workflow:   workflow,
		maxRetries: maxRetries,
	}
}

// Handle applies the command and returns the committed result.
func (h ChangeOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeOrderStatusCommand,
) (ChangeOrderStatusResult, error) {
	if err := cmd.Validate(); err != nil {
		return ChangeOrderStatusResult{}, err
	}

	var result ChangeOrderStatusResult
	err := retryOnConflict(ctx, h.maxRetries, func() error {
		var attemptErr error
		result, attemptErr = h.attempt(ctx, cmd)
		return attemptErr
	})
	if err != nil {
		return ChangeOrderStatusResult{}, err
	}

	return result, nil
}

func (h ChangeOrderStatusCommandHandler) attempt(
	ctx context.Context,
	cmd ChangeOrderStatusCommand,
) (ChangeOrderStatusResult, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ChangeOrderStatusResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	current, err := getVisibleOrder(ctx, orderRepo, cmd.OrderID(), cmd.Actor())
	if err != nil {
		return ChangeOrderStatusResult{}, err
	}

	next, event, err := h.workflow.RequestTransition(current, cmd.Actor(), cmd.Target())
	if err != nil {
		return ChangeOrderStatusResult{}, err
	}

	if err = applyAssignee(current, next, cmd); err != nil {
		return ChangeOrderStatusResult{}, err
	}

	if err = orderRepo.Update(ctx, next, current.Status()); err != nil {
		return ChangeOrderStatusResult{}, err
	}

	if err = uow.StatusEventRepository().Add(ctx, event); err != nil {
		return ChangeOrderStatusResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ChangeOrderStatusResult{}, err
	}

	return ChangeOrderStatusResult{Order: next, Event: event}, nil
}

// applyAssignee records who works on the order. An admin may name a consultant
// while assigning a pending order; a consultant accepting an unassigned pending
// order claims it.
func applyAssignee(current, next *order.Order, cmd ChangeOrderStatusCommand) error {
	actor := cmd.Actor()
	from, to := current.Status(), next.Status()

	if assignee := cmd.Assignee(); assignee != nil {
		if actor.Role() != session.Admin || from != order.Pending || to != order.Assigned {
			return errs.NewValueIsInvalidErrorWithCause("assignee", ErrAssigneeNotAllowed)
		}
		return next.AssignTo(*assignee)
	}

	if actor.Role() == session.Consultant && from == order.Pending && to == order.InProgress &&
		current.Assignee() == nil {
		return next.AssignTo(actor.ActorID())
	}

	return nil
}
