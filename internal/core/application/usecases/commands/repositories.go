// Package commands contains business operations that modify system state.
// All commands follow the same pattern: a validated command object, a handler
// holding a unit-of-work factory, and a Handle method that runs every
// existence and role check before any mutation, then commits the mutation(s)
// inside a single transaction.
package commands

import (
	"context"

	"logistics/internal/core/ports"
)

// Unit of Work interfaces scoped to what each handler actually touches.
// Handlers declare the narrowest combination they need; the concrete
// postgres unit of work satisfies all of them.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides the order repository bound to the transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CarrierRepoFactory provides the carrier repository bound to the transaction.
	CarrierRepoFactory interface {
		CarrierRepository() ports.CarrierRepository
	}

	// RouteRepoFactory provides the route repository bound to the transaction.
	RouteRepoFactory interface {
		RouteRepository() ports.RouteRepository
	}

	// CustomerRepoFactory provides the customer repository bound to the transaction.
	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	// UserRepoFactory provides the staff user repository bound to the transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// SheetRepoFactory provides the sheet repository bound to the transaction.
	SheetRepoFactory interface {
		SheetRepository() ports.SheetRepository
	}

	// OrderUoW manages order lifecycle operations. Order creation also reads
	// the customer to enforce the active-customer invariant.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		CustomerRepoFactory
	}

	// OrderUoWFactory creates order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// RouteUoW manages route assignment. Route creation validates the order
	// and carrier and flips the carrier state in the same transaction as the
	// route insert.
	RouteUoW interface {
		TxManager
		RouteRepoFactory
		CarrierRepoFactory
		OrderRepoFactory
	}

	// RouteUoWFactory creates route unit of work instances.
	RouteUoWFactory interface {
		Create() RouteUoW
	}

	// CarrierUoW manages carrier-only operations.
	CarrierUoW interface {
		TxManager
		CarrierRepoFactory
	}

	// CarrierUoWFactory creates carrier unit of work instances.
	CarrierUoWFactory interface {
		Create() CarrierUoW
	}

	// CustomerUoW manages customer directory operations.
	CustomerUoW interface {
		TxManager
		CustomerRepoFactory
	}

	// CustomerUoWFactory creates customer unit of work instances.
	CustomerUoWFactory interface {
		Create() CustomerUoW
	}

	// StaffUoW manages staff user directory operations.
	StaffUoW interface {
		TxManager
		UserRepoFactory
	}

	// StaffUoWFactory creates staff unit of work instances.
	StaffUoWFactory interface {
		Create() StaffUoW
	}

	// SheetUoW manages technical sheet operations. Assignment also reads the
	// customer to validate the reference.
	SheetUoW interface {
		TxManager
		SheetRepoFactory
		CustomerRepoFactory
	}

	// SheetUoWFactory creates sheet unit of work instances.
	SheetUoWFactory interface {
		Create() SheetUoW
	}
)
