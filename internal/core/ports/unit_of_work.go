package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per request/command,
// isolating transactions between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the business transaction boundary. Repositories obtained from
// it run inside the transaction started by Begin, so coupled cross-entity
// mutations (route insert + carrier state change, order delete + event
// cascade) commit or roll back as one.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction. Safe to defer after a
	// commit; rolling back a finished transaction is a no-op error.
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	CarrierRepository() CarrierRepository
	RouteRepository() RouteRepository
	CustomerRepository() CustomerRepository
	UserRepository() UserRepository
	SheetRepository() SheetRepository
}
