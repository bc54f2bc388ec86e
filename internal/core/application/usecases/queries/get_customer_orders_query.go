package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/principal"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrGetCustomerOrdersQueryIsNotConstructed = errors.New(
	"GetCustomerOrdersQuery must be created via NewGetCustomerOrdersQuery constructor",
)

// GetCustomerOrdersQuery retrieves every order belonging to one customer,
// each with its nested event timeline. Accessible to staff and to the
// customer themselves.
type GetCustomerOrdersQuery struct {
	customerID kernel.UUID
	actor      principal.Principal

	guard guard.ConstructorGuard
}

// NewGetCustomerOrdersQuery creates a query to retrieve a customer's orders.
func NewGetCustomerOrdersQuery(customerID kernel.UUID, actor principal.Principal) (GetCustomerOrdersQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCustomerOrdersQuery{}, errs.NewValueIsRequiredErrorWithCause("customerID", err)
	}
	if err := actor.Validate(); err != nil {
		return GetCustomerOrdersQuery{}, err
	}
	return GetCustomerOrdersQuery{customerID: customerID, actor: actor, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrdersQueryIsNotConstructed)
}

// CustomerID returns the owning customer's identifier.
func (q GetCustomerOrdersQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// Actor returns the authenticated principal issuing the query.
func (q GetCustomerOrdersQuery) Actor() principal.Principal {
	return q.actor
}

// GetCustomerOrdersQueryResponse is one customer order with its timeline.
type GetCustomerOrdersQueryResponse struct {
	GetAllOrdersQueryResponse
	Events []OrderEventResponse `json:"events"`
}
