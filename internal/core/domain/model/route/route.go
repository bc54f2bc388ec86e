// Package route contains the route aggregate: the assignment of exactly one
// carrier to one order, with logistics metadata and an internal-only cost.
package route

import (
	"errors"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// ErrRouteIsNotConstructed is returned when a Route instance was not created
// through the NewRoute or RestoreRoute factory methods.
var ErrRouteIsNotConstructed = errors.New("Route must be created via NewRoute or RestoreRoute")

// Route assigns a carrier to an order.
//
// Invariants:
//   - at most one route exists per order (the storage layer carries a
//     uniqueness constraint on the order reference; the application layer
//     additionally checks before inserting)
//   - order and carrier references are immutable after creation; there is no
//     reassignment operation
//   - cost is optional and internal-only: the customer-facing view of a route
//     never exposes it
type Route struct {
	id                    kernel.UUID
	orderID               kernel.UUID
	carrierID             kernel.UUID
	sourceAddress         string
	destinationAddress    string
	departureDate         time.Time
	estimatedDeliveryDate time.Time
	comment               string
	cost                  *float64
	createdAt             time.Time

	isConstructed bool
}

// NewRoute creates a route for an order/carrier pair.
func NewRoute(
	id, orderID, carrierID kernel.UUID,
	sourceAddress, destinationAddress string,
	departureDate, estimatedDeliveryDate time.Time,
	comment string,
	cost *float64,
	createdAt time.Time,
) (*Route, error) {
	r := &Route{
		departureDate:         departureDate,
		estimatedDeliveryDate: estimatedDeliveryDate,
		comment:               comment,
		cost:                  cost,
		createdAt:             createdAt,
		isConstructed:         true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setOrderID(orderID),
		r.setCarrierID(carrierID),
		r.setSourceAddress(sourceAddress),
		r.setDestinationAddress(destinationAddress),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRoute reconstructs a route from persistence.
func RestoreRoute(
	id, orderID, carrierID kernel.UUID,
	sourceAddress, destinationAddress string,
	departureDate, estimatedDeliveryDate time.Time,
	comment string,
	cost *float64,
	createdAt time.Time,
) (*Route, error) {
	return NewRoute(id, orderID, carrierID, sourceAddress, destinationAddress,
		departureDate, estimatedDeliveryDate, comment, cost, createdAt)
}

// Validate ensures the Route was created through a factory method.
func (r *Route) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRouteIsNotConstructed
	}
	return nil
}

// ID returns the route's unique identifier.
func (r *Route) ID() kernel.UUID {
	return r.id
}

// OrderID returns the identifier of the routed order.
func (r *Route) OrderID() kernel.UUID {
	return r.orderID
}

// CarrierID returns the identifier of the assigned carrier.
func (r *Route) CarrierID() kernel.UUID {
	return r.carrierID
}

// SourceAddress returns the pickup address.
func (r *Route) SourceAddress() string {
	return r.sourceAddress
}

// DestinationAddress returns the delivery address.
func (r *Route) DestinationAddress() string {
	return r.destinationAddress
}

// DepartureDate returns the planned departure date.
func (r *Route) DepartureDate() time.Time {
	return r.departureDate
}

// EstimatedDeliveryDate returns the estimated delivery date.
func (r *Route) EstimatedDeliveryDate() time.Time {
	return r.estimatedDeliveryDate
}

// Comment returns the free-form comment.
func (r *Route) Comment() string {
	return r.comment
}

// Cost returns the internal-only cost figure, or nil when not set.
func (r *Route) Cost() *float64 {
	return r.cost
}

// CreatedAt returns the creation timestamp.
func (r *Route) CreatedAt() time.Time {
	return r.createdAt
}

// ApplyUpdate performs a partial update with coalesce semantics: nil fields
// keep their prior value. The order and carrier references cannot change.
func (r *Route) ApplyUpdate(destinationAddress *string, estimatedDeliveryDate *time.Time, comment *string, cost *float64) error {
	if destinationAddress != nil {
		if err := r.setDestinationAddress(*destinationAddress); err != nil {
			return err
		}
	}
	if estimatedDeliveryDate != nil {
		r.estimatedDeliveryDate = *estimatedDeliveryDate
	}
	if comment != nil {
		r.comment = *comment
	}
	if cost != nil {
		r.cost = cost
	}
	return nil
}

func (r *Route) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Route) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}
	r.orderID = id
	return nil
}

func (r *Route) setCarrierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("carrierID", err)
	}
	r.carrierID = id
	return nil
}

func (r *Route) setSourceAddress(addr string) error {
	if strings.TrimSpace(addr) == "" {
		return errs.NewValueIsRequiredError("sourceAddress")
	}
	r.sourceAddress = addr
	return nil
}

func (r *Route) setDestinationAddress(addr string) error {
	if strings.TrimSpace(addr) == "" {
		return errs.NewValueIsRequiredError("destinationAddress")
	}
	r.destinationAddress = addr
	return nil
}
