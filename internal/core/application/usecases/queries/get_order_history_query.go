package queries

import (
	"errors"
	"time"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/order"
	"workorders/internal/core/domain/model/session"
	"workorders/internal/pkg/guard"
)

var ErrGetOrderHistoryQueryIsNotConstructed = errors.New(
	"GetOrderHistoryQuery must be created via NewGetOrderHistoryQuery constructor",
)

// GetOrderHistoryQuery lists the recorded status changes of one order.
type GetOrderHistoryQuery struct {
	orderID kernel.UUID
	actor   session.Session

	guard guard.ConstructorGuard
}

func NewGetOrderHistoryQuery(orderID kernel.UUID, actor session.Session) (GetOrderHistoryQuery, error) {
	if err := errors.Join(orderID.Validate(), actor.Validate()); err != nil {
		return GetOrderHistoryQuery{}, err
	}

	return GetOrderHistoryQuery{
		orderID: orderID,
		actor:   actor,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderHistoryQueryIsNotConstructed)
}

func (q GetOrderHistoryQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q GetOrderHistoryQuery) Actor() session.Session {
	return q.actor
}

// StatusHistoryEntry is one audited status change.
type StatusHistoryEntry struct {
	From       order.Status
	To         order.Status
	ActorID    kernel.UUID
	ActorRole  session.Role
	OccurredAt time.Time
}
