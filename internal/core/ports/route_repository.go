package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
)

// RouteRepository is the write-side persistence contract for routes.
type RouteRepository interface {
	// Add persists a new route. The routes table carries a uniqueness
	// constraint on the order reference, so a concurrent duplicate that slips
	// past the application-level check still surfaces as a ConflictError.
	Add(ctx context.Context, aggregate *route.Route) error

	Update(ctx context.Context, aggregate *route.Route) error
	Get(ctx context.Context, id kernel.UUID) (*route.Route, error)

	// GetByOrder retrieves the route assigned to an order, or an
	// ObjectNotFoundError when the order has none.
	GetByOrder(ctx context.Context, orderID kernel.UUID) (*route.Route, error)
}
