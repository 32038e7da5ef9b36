package queries

import (
	"errors"
	"time"

	"workorders/internal/pkg/errs"
	"workorders/internal/pkg/guard"
)

var ErrGetOverdueOrdersQueryIsNotConstructed = errors.New(
	"GetOverdueOrdersQuery must be created via NewGetOverdueOrdersQuery constructor",
)

// GetOverdueOrdersQuery finds open orders whose due date is before asOf.
// It is a system query and is not scoped to an actor.
type GetOverdueOrdersQuery struct {
	asOf time.Time

	guard guard.ConstructorGuard
}

func NewGetOverdueOrdersQuery(asOf time.Time) (GetOverdueOrdersQuery, error) {
	if asOf.IsZero() {
		return GetOverdueOrdersQuery{}, errs.NewValueIsRequiredError("asOf")
	}
	return GetOverdueOrdersQuery{asOf: asOf, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOverdueOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOverdueOrdersQueryIsNotConstructed)
}

func (q GetOverdueOrdersQuery) AsOf() time.Time {
	return q.asOf
}
