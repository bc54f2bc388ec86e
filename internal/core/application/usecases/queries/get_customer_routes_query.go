package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/principal"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrGetCustomerRoutesQueryIsNotConstructed = errors.New(
	"GetCustomerRoutesQuery must be created via NewGetCustomerRoutesQuery constructor",
)

// GetCustomerRoutesQuery retrieves the routes for one customer's orders.
// Accessible to staff and to the customer themselves.
type GetCustomerRoutesQuery struct {
	customerID kernel.UUID
	actor      principal.Principal

	guard guard.ConstructorGuard
}

// NewGetCustomerRoutesQuery creates a query to retrieve a customer's routes.
func NewGetCustomerRoutesQuery(customerID kernel.UUID, actor principal.Principal) (GetCustomerRoutesQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCustomerRoutesQuery{}, errs.NewValueIsRequiredErrorWithCause("customerID", err)
	}
	if err := actor.Validate(); err != nil {
		return GetCustomerRoutesQuery{}, err
	}
	return GetCustomerRoutesQuery{customerID: customerID, actor: actor, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerRoutesQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerRoutesQueryIsNotConstructed)
}

// CustomerID returns the owning customer's identifier.
func (q GetCustomerRoutesQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// Actor returns the authenticated principal issuing the query.
func (q GetCustomerRoutesQuery) Actor() principal.Principal {
	return q.actor
}

// GetCustomerRoutesQueryResponse is the customer-facing route read model.
// It deliberately has no cost field; the trip cost is internal and must never
// reach customers, so the redaction is structural rather than a serializer
// option.
type GetCustomerRoutesQueryResponse struct {
	ID                    string    `json:"id"`
	OrderID               string    `json:"order_id"`
	OrderTrackingCode     string    `json:"order_tracking_code"`
	CarrierName           string    `json:"carrier_name"`
	SourceAddress         string    `json:"source_address"`
	DestinationAddress    string    `json:"destination_address"`
	DepartureDate         time.Time `json:"departure_date"`
	EstimatedDeliveryDate time.Time `json:"estimated_delivery_date"`
	Comment               string    `json:"comment"`
	CreatedAt             time.Time `json:"created_at"`
}
