package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/principal"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrGetOrderByIDQueryIsNotConstructed = errors.New(
	"GetOrderByIDQuery must be created via NewGetOrderByIDQuery constructor",
)

// GetOrderByIDQuery retrieves a single order in the staff read model. Staff only.
type GetOrderByIDQuery struct {
	orderID kernel.UUID
	actor   principal.Principal

	guard guard.ConstructorGuard
}

// NewGetOrderByIDQuery creates a query to retrieve one order.
func NewGetOrderByIDQuery(orderID kernel.UUID, actor principal.Principal) (GetOrderByIDQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderByIDQuery{}, errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}
	if err := actor.Validate(); err != nil {
		return GetOrderByIDQuery{}, err
	}
	return GetOrderByIDQuery{orderID: orderID, actor: actor, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByIDQueryIsNotConstructed)
}

// OrderID returns the requested order's identifier.
func (q GetOrderByIDQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Actor returns the authenticated principal issuing the query.
func (q GetOrderByIDQuery) Actor() principal.Principal {
	return q.actor
}
