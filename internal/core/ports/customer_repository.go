package ports

import (
	"context"

	"logistics/internal/core/domain/model/customer"
	"logistics/internal/core/domain/model/kernel"
)

// CustomerRepository is the write-side persistence contract for customers.
type CustomerRepository interface {
	// Add persists a new customer. Returns a ConflictError when the email
	// already exists.
	Add(ctx context.Context, aggregate *customer.Customer) error

	Update(ctx context.Context, aggregate *customer.Customer) error
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)
	GetByEmail(ctx context.Context, email string) (*customer.Customer, error)
	Delete(ctx context.Context, id kernel.UUID) error

	// CountOrders reports how many orders reference the customer. Deletion is
	// blocked while dependent orders exist.
	CountOrders(ctx context.Context, id kernel.UUID) (int64, error)
}
