package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/principal"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrGetCustomerByIDQueryIsNotConstructed = errors.New(
	"GetCustomerByIDQuery must be created via NewGetCustomerByIDQuery constructor",
)

// GetCustomerByIDQuery retrieves a single customer record. Staff may read any
// customer; a customer may only read their own record.
type GetCustomerByIDQuery struct {
	customerID kernel.UUID
	actor      principal.Principal

	guard guard.ConstructorGuard
}

// NewGetCustomerByIDQuery creates a query for one customer.
func NewGetCustomerByIDQuery(customerID kernel.UUID, actor principal.Principal) (GetCustomerByIDQuery, error) {
	if customerID.IsEmpty() {
		return GetCustomerByIDQuery{}, errs.NewValueIsRequiredError("customerID")
	}
	if err := actor.Validate(); err != nil {
		return GetCustomerByIDQuery{}, err
	}
	return GetCustomerByIDQuery{
		customerID: customerID,
		actor:      actor,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerByIDQueryIsNotConstructed)
}

// CustomerID returns the identifier of the requested customer.
func (q GetCustomerByIDQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// Actor returns the authenticated principal issuing the query.
func (q GetCustomerByIDQuery) Actor() principal.Principal {
	return q.actor
}
