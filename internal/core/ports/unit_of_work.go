package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction and then hands the status changes
	// recorded through StatusEventRepository to the event publisher.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction and drops recorded events.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository

	// StatusEventRepository returns a StatusEventRepository bound to the current transaction.
	StatusEventRepository() StatusEventRepository
}
