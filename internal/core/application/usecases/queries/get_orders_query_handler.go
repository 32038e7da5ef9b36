package queries

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

// GetOrdersQueryHandler serves the order list with its tab, search and
// priority filters.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle returns the matching orders sorted by creation time, newest first.
// An empty result is an empty slice, never nil.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	visibility, args := visibleTo(query.Actor())
	conditions := []string{visibility}

	statuses, err := query.Tab().statuses()
	if err != nil {
		return nil, err
	}
	if len(statuses) > 0 {
		conditions = append(conditions, "status IN ?")
		args = append(args, statuses)
	}

	if search := query.Search(); search != "" {
		pattern := containsPattern(search)
		conditions = append(conditions, "(title ILIKE ? OR client_name ILIKE ? OR description ILIKE ?)")
		args = append(args, pattern, pattern, pattern)
	}

	if p := query.Priority(); p.Validate() == nil {
		conditions = append(conditions, "priority = ?")
		args = append(args, p.String())
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderViewColumns+`
		FROM orders
		WHERE `+strings.Join(conditions, " AND ")+`
		ORDER BY created_at DESC, id
	`, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderViews(rows)
}
