// Package postgres provides the GORM-based implementation of the Unit of Work
// pattern for the work-order service.
//
// A unit of work spans one business transaction: the order update and its
// audit entry are written in the same database transaction, and the status
// changes recorded during it are published only after a successful commit.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db, publisher)
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.OrderRepository().Update(ctx, updated, previous); err != nil {
//	    return err
//	}
//	if err := uow.StatusEventRepository().Add(ctx, event); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx) // publishes event
//
// Each UnitOfWork instance is single-goroutine; concurrent operations use
// separate instances and rely on the repository's compare-and-set writes.
package postgres

import (
	"context"

	"workorders/internal/adapters/out/postgres/eventrepo"
	"workorders/internal/adapters/out/postgres/orderrepo"
	"workorders/internal/core/domain/model/order"
	"workorders/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool
// and one event publisher.
type GormUnitOfWorkFactory struct {
	db        *gorm.DB
	publisher ports.EventPublisher
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
func NewGormUnitOfWorkFactory(db *gorm.DB, publisher ports.EventPublisher) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db, publisher: publisher}
}

// Create produces a fresh UnitOfWork with its own transaction and event buffer.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:        f.db,
		publisher: f.publisher,
		recorded:  make([]order.StatusChanged, 0),
	}
}

// GormUnitOfWork coordinates a database transaction and buffers the status
// changes written through it until commit.
type GormUnitOfWork struct {
	db        *gorm.DB
	tx        *gorm.DB
	publisher ports.EventPublisher
	recorded  []order.StatusChanged
}

// Begin initiates a new database transaction for the unit of work.
// Calling Begin again while a transaction is open is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit finalizes the transaction, then publishes the recorded events in order.
// Returns gorm.ErrInvalidTransaction if no transaction is open.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	events := uow.recorded
	uow.recorded = make([]order.StatusChanged, 0)
	if err != nil {
		return err
	}

	if uow.publisher != nil {
		for _, e := range events {
			uow.publisher.Publish(ctx, e)
		}
	}
	return nil
}

// Rollback discards the transaction and every recorded event.
// Returns gorm.ErrInvalidTransaction if no transaction is open, which makes a
// deferred Rollback after a successful Commit harmless.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	uow.recorded = make([]order.StatusChanged, 0)
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// OrderRepository returns an order repository bound to the open transaction,
// or to the main connection when none is open.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn())
}

// StatusEventRepository returns an audit repository bound to the open
// transaction; events it stores are published on Commit.
func (uow *GormUnitOfWork) StatusEventRepository() ports.StatusEventRepository {
	return eventrepo.NewGormStatusEventRepository(uow.conn(), uow)
}

// RecordEvent buffers an event for publication after commit.
func (uow *GormUnitOfWork) RecordEvent(event order.StatusChanged) {
	uow.recorded = append(uow.recorded, event)
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
