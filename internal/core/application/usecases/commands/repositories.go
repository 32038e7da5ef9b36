// Package commands contains the business operations that change order state.
// Every handler follows the same shape: validate the command, open a unit of
// work, load and mutate aggregates, persist, commit.
package commands

import (
	"context"

	"workorders/internal/core/ports"
)

// Unit of Work interfaces give command handlers transactional access to the
// repositories they need.
type (
	// TxManager handles the database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// StatusEventRepoFactory provides the audit trail within a transaction.
	StatusEventRepoFactory interface {
		StatusEventRepository() ports.StatusEventRepository
	}

	// OrderUoW manages transactions for order operations. Status changes
	// appended to StatusEventRepository are published once Commit succeeds.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   err = uow.OrderRepository().Update(ctx, updated, previous)
	//   err = uow.StatusEventRepository().Add(ctx, event)
	//
	//   err = uow.Commit(ctx)
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		StatusEventRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}
)
