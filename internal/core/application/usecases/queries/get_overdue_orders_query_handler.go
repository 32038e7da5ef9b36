package queries

import (
	"context"

	"workorders/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetOverdueOrdersQueryHandler lists overdue orders, most overdue first.
// Completed and cancelled orders are never overdue.
type GetOverdueOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetOverdueOrdersQueryHandler(db *gorm.DB) GetOverdueOrdersQueryHandler {
	return GetOverdueOrdersQueryHandler{db: db}
}

func (h GetOverdueOrdersQueryHandler) Handle(ctx context.Context, query GetOverdueOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderViewColumns+`
		FROM orders
		WHERE due_date IS NOT NULL
			AND due_date < ?
			AND status NOT IN ?
		ORDER BY due_date, id
	`, query.AsOf(), []string{order.Completed.String(), order.Cancelled.String()}).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderViews(rows)
}
