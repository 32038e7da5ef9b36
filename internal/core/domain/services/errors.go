package services

import (
	"errors"
	"fmt"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/order"
	"workorders/internal/core/domain/model/session"
)

var (
	// ErrInvalidState classifies malformed input: a status or role outside its enumeration.
	ErrInvalidState = errors.New("order state is invalid")

	// ErrIllegalTransition classifies a policy violation: the acting role may not
	// move the order from its current status to the requested one.
	ErrIllegalTransition = errors.New("transition is not permitted")

	// ErrNoOp classifies a request for the status the order already has.
	ErrNoOp = errors.New("order already has the requested status")
)

// InvalidStateError names the offending input.
type InvalidStateError struct {
	ParamName string
	Value     string
	Cause     error
}

func (e *InvalidStateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s is %s (cause: %v)", ErrInvalidState, e.ParamName, e.Value, e.Cause)
	}
	return fmt.Sprintf("%s: %s is %s", ErrInvalidState, e.ParamName, e.Value)
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}

// IllegalTransitionError names the disallowed (from, to) pair and the role,
// so a UI can explain why an action is unavailable.
type IllegalTransitionError struct {
	From order.Status
	To   order.Status
	Role session.Role
}

func (e *IllegalTransitionError) Error() string {
	if e.From.IsTerminal() {
		return fmt.Sprintf("%s: %s is final, %s cannot move it to %s", ErrIllegalTransition, e.From, e.Role, e.To)
	}
	return fmt.Sprintf("%s: %s cannot move an order from %s to %s", ErrIllegalTransition, e.Role, e.From, e.To)
}

func (e *IllegalTransitionError) Unwrap() error {
	return ErrIllegalTransition
}

// NoOpError reports a redundant request; callers may safely ignore it.
type NoOpError struct {
	OrderID kernel.UUID
	Status  order.Status
}

func (e *NoOpError) Error() string {
	return fmt.Sprintf("%s: order %s is already %s", ErrNoOp, e.OrderID, e.Status)
}

func (e *NoOpError) Unwrap() error {
	return ErrNoOp
}
