package services

import (
	"slices"
	"time"

	"workorders/internal/core/domain/model/order"
	"workorders/internal/core/domain/model/session"
)

// transitions is the single source of truth for who may move an order where.
// Targets are listed in display order: the first entry is the primary action.
// Roles without an entry (including the reserved Manager) have no actions.
var transitions = map[order.Status]map[session.Role][]order.Status{
	order.Pending: {
		session.Admin:      {order.Assigned, order.Cancelled},
		session.Consultant: {order.InProgress},
	},
	order.Assigned: {
		session.Admin:      {order.Review},
		session.Consultant: {order.InProgress},
	},
	order.InProgress: {
		session.Admin:      {order.Review},
		session.Consultant: {order.Review},
	},
	order.Review: {
		session.Admin: {order.Completed},
	},
	order.Completed: {},
	order.Cancelled: {},
}

// Clock supplies the transition time.
type Clock func() time.Time

// OrderWorkflow is the order status state machine. Admins drive intake,
// assignment, cancellation and sign-off; consultants drive execution and
// submission for review. Nobody can leave Completed or Cancelled.
//
// Example usage:
//
//	workflow := services.NewOrderWorkflow(time.Now)
//	updated, event, err := workflow.RequestTransition(current, actor, order.Assigned)
//	switch {
//	case errors.Is(err, services.ErrIllegalTransition):
//	    // explain to the user why the action is unavailable
//	case errors.Is(err, services.ErrNoOp):
//	    // nothing to do
//	case err != nil:
//	    return err
//	}
//	// persist updated, deliver event
type OrderWorkflow struct {
	now Clock
}

// NewOrderWorkflow creates a workflow using now for transition timestamps.
// A nil clock falls back to time.Now.
func NewOrderWorkflow(now Clock) OrderWorkflow {
	if now == nil {
		now = time.Now
	}
	return OrderWorkflow{now: now}
}

// AllowedTargets returns the ordered targets reachable from status for role.
// Unknown statuses and roles yield an empty list.
func (w OrderWorkflow) AllowedTargets(status order.Status, role session.Role) []order.Status {
	targets := transitions[status][role]
	if len(targets) == 0 {
		return []order.Status{}
	}
	return slices.Clone(targets)
}

// AvailableActions returns the ordered list of statuses the acting role may
// move the order to. It drives which action controls a client offers.
func (w OrderWorkflow) AvailableActions(o *order.Order, role session.Role) []order.Status {
	if o.Validate() != nil {
		return []order.Status{}
	}
	return w.AllowedTargets(o.Status(), role)
}

// RequestTransition validates and applies a status change.
//
// The checks run in order:
//   - the order, session, current status and target must be well formed (ErrInvalidState)
//   - the target must differ from the current status (ErrNoOp)
//   - the table must allow the move for the acting role (ErrIllegalTransition)
//
// On success it returns a new order value with the target status and an
// updatedAt of now, together with the StatusChanged event. The input order is
// never modified, on success or on failure.
func (w OrderWorkflow) RequestTransition(
	o *order.Order,
	actor session.Session,
	target order.Status,
) (*order.Order, order.StatusChanged, error) {
	if err := w.validateInput(o, actor, target); err != nil {
		return nil, order.StatusChanged{}, err
	}

	current := o.Status()
	if target == current {
		return nil, order.StatusChanged{}, &NoOpError{OrderID: o.ID(), Status: current}
	}

	if !slices.Contains(transitions[current][actor.Role()], target) {
		return nil, order.StatusChanged{}, &IllegalTransitionError{From: current, To: target, Role: actor.Role()}
	}

	at := w.now()
	next, err := o.WithStatus(target, at)
	if err != nil {
		return nil, order.StatusChanged{}, &InvalidStateError{ParamName: "updatedAt", Value: at.Format(time.RFC3339), Cause: err}
	}

	return next, order.StatusChanged{
		OrderID:    o.ID(),
		Previous:   current,
		Current:    target,
		ActorID:    actor.ActorID(),
		ActorRole:  actor.Role(),
		OccurredAt: at,
	}, nil
}

func (w OrderWorkflow) validateInput(o *order.Order, actor session.Session, target order.Status) error {
	if err := o.Validate(); err != nil {
		return &InvalidStateError{ParamName: "order", Value: "not constructed", Cause: err}
	}
	if err := actor.Validate(); err != nil {
		return &InvalidStateError{ParamName: "session", Value: "not constructed", Cause: err}
	}
	if err := o.Status().Validate(); err != nil {
		return &InvalidStateError{ParamName: "status", Value: o.Status().String(), Cause: err}
	}
	if err := target.Validate(); err != nil {
		return &InvalidStateError{ParamName: "target", Value: target.String(), Cause: err}
	}
	return nil
}
