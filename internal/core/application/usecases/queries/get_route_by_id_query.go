package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/principal"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrGetRouteByIDQueryIsNotConstructed = errors.New(
	"GetRouteByIDQuery must be created via NewGetRouteByIDQuery constructor",
)

// GetRouteByIDQuery retrieves a single route with its carrier and the routed
// order's tracking code. Staff only.
type GetRouteByIDQuery struct {
	routeID kernel.UUID
	actor   principal.Principal

	guard guard.ConstructorGuard
}

// NewGetRouteByIDQuery creates a query to retrieve one route.
func NewGetRouteByIDQuery(routeID kernel.UUID, actor principal.Principal) (GetRouteByIDQuery, error) {
	if err := routeID.Validate(); err != nil {
		return GetRouteByIDQuery{}, errs.NewValueIsRequiredErrorWithCause("routeID", err)
	}
	if err := actor.Validate(); err != nil {
		return GetRouteByIDQuery{}, err
	}
	return GetRouteByIDQuery{routeID: routeID, actor: actor, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRouteByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetRouteByIDQueryIsNotConstructed)
}

// RouteID returns the requested route's identifier.
func (q GetRouteByIDQuery) RouteID() kernel.UUID {
	return q.routeID
}

// Actor returns the authenticated principal issuing the query.
func (q GetRouteByIDQuery) Actor() principal.Principal {
	return q.actor
}

// GetRouteByIDQueryResponse is the staff-facing single-route read model.
type GetRouteByIDQueryResponse struct {
	ID                    string    `json:"id"`
	OrderID               string    `json:"order_id"`
	OrderTrackingCode     string    `json:"order_tracking_code"`
	CarrierID             string    `json:"carrier_id"`
	CarrierName           string    `json:"carrier_name"`
	CarrierContact        string    `json:"carrier_contact"`
	CarrierState          string    `json:"carrier_state"`
	SourceAddress         string    `json:"source_address"`
	DestinationAddress    string    `json:"destination_address"`
	DepartureDate         time.Time `json:"departure_date"`
	EstimatedDeliveryDate time.Time `json:"estimated_delivery_date"`
	Comment               string    `json:"comment"`
	Cost                  *float64  `json:"cost"`
	CreatedAt             time.Time `json:"created_at"`
}
