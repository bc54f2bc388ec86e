package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/principal"
	"logistics/internal/pkg/guard"
)

var ErrGetAllRoutesQueryIsNotConstructed = errors.New(
	"GetAllRoutesQuery must be created via NewGetAllRoutesQuery constructor",
)

// GetAllRoutesQuery retrieves every route joined with its carrier. Staff
// only; this is the internal view and includes the cost figure.
type GetAllRoutesQuery struct {
	actor principal.Principal

	guard guard.ConstructorGuard
}

// NewGetAllRoutesQuery creates a query to retrieve all routes.
func NewGetAllRoutesQuery(actor principal.Principal) (GetAllRoutesQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetAllRoutesQuery{}, err
	}
	return GetAllRoutesQuery{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAllRoutesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllRoutesQueryIsNotConstructed)
}

// Actor returns the authenticated principal issuing the query.
func (q GetAllRoutesQuery) Actor() principal.Principal {
	return q.actor
}

// GetAllRoutesQueryResponse is the staff-facing route read model, cost
// included.
type GetAllRoutesQueryResponse struct {
	ID                    string    `json:"id"`
	OrderID               string    `json:"order_id"`
	CarrierID             string    `json:"carrier_id"`
	CarrierName           string    `json:"carrier_name"`
	CarrierState          string    `json:"carrier_state"`
	SourceAddress         string    `json:"source_address"`
	DestinationAddress    string    `json:"destination_address"`
	DepartureDate         time.Time `json:"departure_date"`
	EstimatedDeliveryDate time.Time `json:"estimated_delivery_date"`
	Comment               string    `json:"comment"`
	Cost                  *float64  `json:"cost"`
	CreatedAt             time.Time `json:"created_at"`
}
