// Package orderrepo maps the order aggregate to the "orders" table with GORM.
package orderrepo

import (
	"time"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// OrderDTO is the row layout of an order. Timestamps are owned by the domain,
// so GORM's automatic created/updated tracking is switched off.
type OrderDTO struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Title       string         `gorm:"not null"`
	ClientName  string         `gorm:"not null"`
	ClientEmail string         `gorm:"not null"`
	Description string         `gorm:"type:text"`
	Expertise   pq.StringArray `gorm:"type:text[]"`
	Status      string         `gorm:"type:varchar(16);not null;index"`
	Priority    string         `gorm:"type:varchar(8);not null;index"`
	AssigneeID  *uuid.UUID     `gorm:"type:uuid;index"`
	DueDate     *time.Time
	Progress    *int
	CreatedAt   time.Time `gorm:"not null;autoCreateTime:false"`
	UpdatedAt   time.Time `gorm:"not null;autoUpdateTime:false"`
}

// TableName overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(o *order.Order) OrderDTO {
	s := o.Snapshot()

	var assigneeID *uuid.UUID
	if s.AssigneeID != nil {
		raw := s.AssigneeID.Raw()
		assigneeID = &raw
	}

	return OrderDTO{
		ID:          s.ID.Raw(),
		Title:       s.Brief.Title,
		ClientName:  s.Brief.ClientName,
		ClientEmail: s.Brief.ClientEmail,
		Description: s.Brief.Description,
		Expertise:   pq.StringArray(s.Brief.Expertise),
		Status:      s.Status.String(),
		Priority:    s.Priority.String(),
		AssigneeID:  assigneeID,
		DueDate:     s.DueDate,
		Progress:    s.Progress,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

// ToDomain rebuilds the aggregate, re-validating every stored value.
func ToDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromRaw(dto.ID)
	if err != nil {
		return nil, err
	}

	var assigneeID *kernel.UUID
	if dto.AssigneeID != nil {
		aID, assigneeErr := kernel.UUIDFromRaw(*dto.AssigneeID)
		if assigneeErr != nil {
			return nil, assigneeErr
		}
		assigneeID = &aID
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	priority, err := order.ParsePriority(dto.Priority)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(order.Snapshot{
		ID: id,
		Brief: order.Brief{
			Title:       dto.Title,
			ClientName:  dto.ClientName,
			ClientEmail: dto.ClientEmail,
			Description: dto.Description,
			Expertise:   []string(dto.Expertise),
		},
		Status:     status,
		Priority:   priority,
		CreatedAt:  dto.CreatedAt,
		UpdatedAt:  dto.UpdatedAt,
		AssigneeID: assigneeID,
		DueDate:    dto.DueDate,
		Progress:   dto.Progress,
	})
}
