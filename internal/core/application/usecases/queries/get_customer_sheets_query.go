package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/principal"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrGetCustomerSheetsQueryIsNotConstructed = errors.New(
	"GetCustomerSheetsQuery must be created via NewGetCustomerSheetsQuery constructor",
)

// GetCustomerSheetsQuery retrieves the technical sheets assigned to one
// customer. Customers may only read their own assignments.
type GetCustomerSheetsQuery struct {
	customerID kernel.UUID
	actor      principal.Principal

	guard guard.ConstructorGuard
}

// NewGetCustomerSheetsQuery creates a query for one customer's sheets.
func NewGetCustomerSheetsQuery(
	customerID kernel.UUID, actor principal.Principal,
) (GetCustomerSheetsQuery, error) {
	if customerID.IsEmpty() {
		return GetCustomerSheetsQuery{}, errs.NewValueIsRequiredError("customerID")
	}
	if err := actor.Validate(); err != nil {
		return GetCustomerSheetsQuery{}, err
	}
	return GetCustomerSheetsQuery{
		customerID: customerID,
		actor:      actor,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerSheetsQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerSheetsQueryIsNotConstructed)
}

// CustomerID returns the customer whose sheets are requested.
func (q GetCustomerSheetsQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// Actor returns the authenticated principal issuing the query.
func (q GetCustomerSheetsQuery) Actor() principal.Principal {
	return q.actor
}
