package queries

import (
	"errors"

	"workorders/internal/core/domain/model/session"
	"workorders/internal/pkg/guard"
)

var ErrGetDashboardStatsQueryIsNotConstructed = errors.New(
	"GetDashboardStatsQuery must be created via NewGetDashboardStatsQuery constructor",
)

// GetDashboardStatsQuery summarizes the orders visible to the actor.
type GetDashboardStatsQuery struct {
	actor session.Session

	guard guard.ConstructorGuard
}

func NewGetDashboardStatsQuery(actor session.Session) (GetDashboardStatsQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetDashboardStatsQuery{}, err
	}
	return GetDashboardStatsQuery{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (q GetDashboardStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardStatsQueryIsNotConstructed)
}

func (q GetDashboardStatsQuery) Actor() session.Session {
	return q.actor
}

// GetDashboardStatsQueryResponse holds the dashboard counters.
// InProgressOrders counts both in_progress and review. AverageCompletionHours
// is nil until at least one visible order is completed.
type GetDashboardStatsQueryResponse struct {
	TotalOrders            int64
	PendingOrders          int64
	InProgressOrders       int64
	CompletedOrders        int64
	AverageCompletionHours *float64
}
