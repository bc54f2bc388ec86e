package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/principal"
	"logistics/internal/pkg/guard"
)

var ErrGetAllCarriersQueryIsNotConstructed = errors.New(
	"GetAllCarriersQuery must be created via NewGetAllCarriersQuery constructor",
)

// GetAllCarriersQuery retrieves every carrier in the registry. Staff only.
type GetAllCarriersQuery struct {
	actor principal.Principal

	guard guard.ConstructorGuard
}

// NewGetAllCarriersQuery creates a query to retrieve all carriers.
func NewGetAllCarriersQuery(actor principal.Principal) (GetAllCarriersQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetAllCarriersQuery{}, err
	}
	return GetAllCarriersQuery{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAllCarriersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllCarriersQueryIsNotConstructed)
}

// Actor returns the authenticated principal issuing the query.
func (q GetAllCarriersQuery) Actor() principal.Principal {
	return q.actor
}

// GetAllCarriersQueryResponse is the carrier read model.
type GetAllCarriersQueryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Contact   string    `json:"contact"`
	State     string    `json:"state"`
	CreatedAt time.Time `json:"created_at"`
}
