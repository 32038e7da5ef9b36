// Package eventrepo persists the order status audit trail with GORM.
package eventrepo

import (
	"time"

	"workorders/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// StatusEventDTO is one row of the append-only audit trail.
type StatusEventDTO struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement"`
	OrderID    uuid.UUID `gorm:"type:uuid;not null;index"`
	FromStatus string    `gorm:"type:varchar(16);not null"`
	ToStatus   string    `gorm:"type:varchar(16);not null"`
	ActorID    uuid.UUID `gorm:"type:uuid;not null"`
	ActorRole  string    `gorm:"type:varchar(16);not null"`
	OccurredAt time.Time `gorm:"not null;index"`
}

func (StatusEventDTO) TableName() string {
	return "order_status_events"
}

func fromDomain(e order.StatusChanged) StatusEventDTO {
	return StatusEventDTO{
		OrderID:    e.OrderID.Raw(),
		FromStatus: e.Previous.String(),
		ToStatus:   e.Current.String(),
		ActorID:    e.ActorID.Raw(),
		ActorRole:  e.ActorRole.String(),
		OccurredAt: e.OccurredAt,
	}
}
