package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/principal"
	"logistics/internal/pkg/guard"
)

var ErrGetAllUsersQueryIsNotConstructed = errors.New(
	"GetAllUsersQuery must be created via NewGetAllUsersQuery constructor",
)

// GetAllUsersQuery retrieves every staff user. Admin only.
type GetAllUsersQuery struct {
	actor principal.Principal

	guard guard.ConstructorGuard
}

// NewGetAllUsersQuery creates a query to retrieve all staff users.
func NewGetAllUsersQuery(actor principal.Principal) (GetAllUsersQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetAllUsersQuery{}, err
	}
	return GetAllUsersQuery{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAllUsersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllUsersQueryIsNotConstructed)
}

// Actor returns the authenticated principal issuing the query.
func (q GetAllUsersQuery) Actor() principal.Principal {
	return q.actor
}

// GetAllUsersQueryResponse is the staff user read model. Password hashes
// are never selected.
type GetAllUsersQueryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
