package eventrepo

import (
	"context"

	"workorders/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// eventRecorder collects events for delivery once the transaction commits.
type eventRecorder interface {
	RecordEvent(event order.StatusChanged)
}

// GormStatusEventRepository implements ports.StatusEventRepository using GORM.
type GormStatusEventRepository struct {
	db       *gorm.DB
	recorder eventRecorder
}

func NewGormStatusEventRepository(db *gorm.DB, recorder eventRecorder) *GormStatusEventRepository {
	return &GormStatusEventRepository{db: db, recorder: recorder}
}

// Add appends the event to the audit table and hands it to the recorder.
func (r *GormStatusEventRepository) Add(ctx context.Context, event order.StatusChanged) error {
	dto := fromDomain(event)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.recorder.RecordEvent(event)
	return nil
}
