package postgres

import (
	"workorders/internal/adapters/out/postgres/eventrepo"
	"workorders/internal/adapters/out/postgres/orderrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates every table owned by the service.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&orderrepo.OrderDTO{}, &eventrepo.StatusEventDTO{})
}
