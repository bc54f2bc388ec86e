package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/principal"
	"logistics/internal/pkg/guard"
)

var ErrGetAllCustomersQueryIsNotConstructed = errors.New(
	"GetAllCustomersQuery must be created via NewGetAllCustomersQuery constructor",
)

// GetAllCustomersQuery retrieves every customer with their orders and
// assigned technical sheets. Staff only.
type GetAllCustomersQuery struct {
	actor principal.Principal

	guard guard.ConstructorGuard
}

// NewGetAllCustomersQuery creates a query to retrieve all customers.
func NewGetAllCustomersQuery(actor principal.Principal) (GetAllCustomersQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetAllCustomersQuery{}, err
	}
	return GetAllCustomersQuery{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAllCustomersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllCustomersQueryIsNotConstructed)
}

// Actor returns the authenticated principal issuing the query.
func (q GetAllCustomersQuery) Actor() principal.Principal {
	return q.actor
}

// CustomerOrderResponse is the compact order view nested under a customer.
type CustomerOrderResponse struct {
	ID           string    `json:"id"`
	TrackingCode string    `json:"tracking_code"`
	Description  string    `json:"description"`
	State        string    `json:"state"`
	CreatedAt    time.Time `json:"created_at"`
}

// CustomerSheetResponse is a technical sheet assigned to a customer.
type CustomerSheetResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	URL        string    `json:"url"`
	AssignedAt time.Time `json:"assigned_at"`
}

// GetAllCustomersQueryResponse is the customer read model. Password hashes
// never leave the storage layer.
type GetAllCustomersQueryResponse struct {
	ID        string                  `json:"id"`
	Name      string                  `json:"name"`
	Email     string                  `json:"email"`
	Phone     string                  `json:"phone"`
	Status    string                  `json:"status"`
	CreatedAt time.Time               `json:"created_at"`
	Orders    []CustomerOrderResponse `json:"orders"`
	Sheets    []CustomerSheetResponse `json:"sheets"`
}
