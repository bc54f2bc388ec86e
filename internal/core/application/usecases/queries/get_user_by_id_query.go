package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/principal"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrGetUserByIDQueryIsNotConstructed = errors.New(
	"GetUserByIDQuery must be created via NewGetUserByIDQuery constructor",
)

// GetUserByIDQuery retrieves a single staff user. Admin only.
type GetUserByIDQuery struct {
	userID kernel.UUID
	actor  principal.Principal

	guard guard.ConstructorGuard
}

// NewGetUserByIDQuery creates a query for one staff user.
func NewGetUserByIDQuery(userID kernel.UUID, actor principal.Principal) (GetUserByIDQuery, error) {
	if userID.IsEmpty() {
		return GetUserByIDQuery{}, errs.NewValueIsRequiredError("userID")
	}
	if err := actor.Validate(); err != nil {
		return GetUserByIDQuery{}, err
	}
	return GetUserByIDQuery{
		userID: userID,
		actor:  actor,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUserByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetUserByIDQueryIsNotConstructed)
}

// UserID returns the identifier of the requested staff user.
func (q GetUserByIDQuery) UserID() kernel.UUID {
	return q.userID
}

// Actor returns the authenticated principal issuing the query.
func (q GetUserByIDQuery) Actor() principal.Principal {
	return q.actor
}
