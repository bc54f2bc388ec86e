// Package ports defines the contracts between the application core and
// infrastructure: per-aggregate repositories, the unit of work, and the
// external collaborators (authentication, mail).
package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
)

// OrderRepository is the write-side persistence contract for the order
// aggregate and its event log. Read views with joins live in the query
// handlers, not here.
type OrderRepository interface {
	// Add persists a new order. Returns a ConflictError when the tracking
	// code already exists.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete removes the order row. Events must be deleted first; the
	// relationship has no automatic cascade at the storage layer.
	Delete(ctx context.Context, id kernel.UUID) error

	// AddEvent appends an event to the order's log. Events are append-only;
	// there is no update or single-event delete.
	AddEvent(ctx context.Context, event *order.Event) error

	// DeleteEvents removes all events for an order, used only by the manual
	// cascade when the order itself is deleted.
	DeleteEvents(ctx context.Context, orderID kernel.UUID) error
}
