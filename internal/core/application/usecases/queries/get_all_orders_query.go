// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries bypass the domain model and read optimized response shapes straight
// from the database; role checks happen here because no command handler is
// involved.
package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/principal"
	"logistics/internal/pkg/guard"
)

var ErrGetAllOrdersQueryIsNotConstructed = errors.New(
	"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
)

// GetAllOrdersQuery retrieves every order annotated with the customer's name
// and the creating staff user's name. Staff only.
type GetAllOrdersQuery struct {
	actor principal.Principal

	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates a query to retrieve all orders.
func NewGetAllOrdersQuery(actor principal.Principal) (GetAllOrdersQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetAllOrdersQuery{}, err
	}
	return GetAllOrdersQuery{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// Actor returns the authenticated principal issuing the query.
func (q GetAllOrdersQuery) Actor() principal.Principal {
	return q.actor
}

// GetAllOrdersQueryResponse is the staff-facing order read model. UserName is
// empty when the creating staff user has since been deleted.
type GetAllOrdersQueryResponse struct {
	ID           string    `json:"id"`
	CustomerID   string    `json:"customer_id"`
	CustomerName string    `json:"customer_name"`
	UserID       string    `json:"user_id"`
	UserName     string    `json:"user_name"`
	TrackingCode string    `json:"tracking_code"`
	Description  string    `json:"description"`
	State        string    `json:"state"`
	CreatedAt    time.Time `json:"created_at"`
}
