package queries

import (
	"context"
	"database/sql"

	"workorders/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetDashboardStatsQueryHandler aggregates order counters in a single pass.
// Completion time is measured from createdAt to the updatedAt of a completed
// order, which is the moment it was completed since terminal orders never
// change again.
type GetDashboardStatsQueryHandler struct {
	db *gorm.DB
}

func NewGetDashboardStatsQueryHandler(db *gorm.DB) GetDashboardStatsQueryHandler {
	return GetDashboardStatsQueryHandler{db: db}
}

func (h GetDashboardStatsQueryHandler) Handle(
	ctx context.Context,
	query GetDashboardStatsQuery,
) (GetDashboardStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	visibility, visibilityArgs := visibleTo(query.Actor())
	args := []any{
		order.Pending.String(),
		order.InProgress.String(), order.Review.String(),
		order.Completed.String(),
		order.Completed.String(),
	}
	args = append(args, visibilityArgs...)

	var (
		stats    GetDashboardStatsQueryResponse
		avgHours sql.NullFloat64
	)
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = ?),
			COUNT(*) FILTER (WHERE status IN (?, ?)),
			COUNT(*) FILTER (WHERE status = ?),
			AVG(EXTRACT(EPOCH FROM (updated_at - created_at)) / 3600.0) FILTER (WHERE status = ?)
		FROM orders
		WHERE `+visibility,
		args...,
	).Row().Scan(
		&stats.TotalOrders,
		&stats.PendingOrders,
		&stats.InProgressOrders,
		&stats.CompletedOrders,
		&avgHours,
	)
	if err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	if avgHours.Valid {
		hours := avgHours.Float64
		stats.AverageCompletionHours = &hours
	}

	return stats, nil
}
