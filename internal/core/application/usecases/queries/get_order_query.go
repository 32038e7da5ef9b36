package queries

import (
	"errors"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/order"
	"workorders/internal/core/domain/model/session"
	"workorders/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery fetches one order together with the actions the actor may
// take on it.
type GetOrderQuery struct {
	orderID kernel.UUID
	actor   session.Session

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID kernel.UUID, actor session.Session) (GetOrderQuery, error) {
	if err := errors.Join(orderID.Validate(), actor.Validate()); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		actor:   actor,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q GetOrderQuery) Actor() session.Session {
	return q.actor
}

// GetOrderQueryResponse is the order detail. AvailableActions is ordered with
// the primary action first and is empty for terminal orders.
type GetOrderQueryResponse struct {
	Order            OrderView
	AvailableActions []order.Status
}
