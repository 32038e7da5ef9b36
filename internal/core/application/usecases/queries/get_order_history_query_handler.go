package queries

import (
	"context"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/order"
	"workorders/internal/core/domain/model/session"
	"workorders/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderHistoryQueryHandler reads the audit trail, oldest change first.
// The order itself must be visible to the actor.
type GetOrderHistoryQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderHistoryQueryHandler(db *gorm.DB) GetOrderHistoryQueryHandler {
	return GetOrderHistoryQueryHandler{db: db}
}

func (h GetOrderHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderHistoryQuery,
) ([]StatusHistoryEntry, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx)

	visibility, args := visibleTo(query.Actor())
	args = append([]any{query.OrderID().Raw()}, args...)
	var visible int64
	if err := db.Raw(`SELECT COUNT(*) FROM orders WHERE id = ? AND `+visibility, args...).
		Row().Scan(&visible); err != nil {
		return nil, err
	}
	if visible == 0 {
		return nil, errs.NewObjectNotFoundError("order", query.OrderID())
	}

	rows, err := db.Raw(`
		SELECT
			from_status,
			to_status,
			actor_id,
			actor_role,
			occurred_at
		FROM order_status_events
		WHERE order_id = ?
		ORDER BY occurred_at, id
	`, query.OrderID().Raw()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]StatusHistoryEntry, 0)
	for rows.Next() {
		var (
			entry          StatusHistoryEntry
			from, to, role string
			actorID        uuid.UUID
		)
		if err = rows.Scan(&from, &to, &actorID, &role, &entry.OccurredAt); err != nil {
			return nil, err
		}

		if entry.From, err = order.ParseStatus(from); err != nil {
			return nil, err
		}
		if entry.To, err = order.ParseStatus(to); err != nil {
			return nil, err
		}
		if entry.ActorRole, err = session.ParseRole(role); err != nil {
			return nil, err
		}
		if entry.ActorID, err = kernel.UUIDFromRaw(actorID); err != nil {
			return nil, err
		}

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
