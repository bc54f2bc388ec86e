package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/principal"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrGetCarrierByIDQueryIsNotConstructed = errors.New(
	"GetCarrierByIDQuery must be created via NewGetCarrierByIDQuery constructor",
)

// GetCarrierByIDQuery retrieves a single carrier. Staff only.
type GetCarrierByIDQuery struct {
	carrierID kernel.UUID
	actor     principal.Principal

	guard guard.ConstructorGuard
}

// NewGetCarrierByIDQuery creates a query for one carrier.
func NewGetCarrierByIDQuery(carrierID kernel.UUID, actor principal.Principal) (GetCarrierByIDQuery, error) {
	if carrierID.IsEmpty() {
		return GetCarrierByIDQuery{}, errs.NewValueIsRequiredError("carrierID")
	}
	if err := actor.Validate(); err != nil {
		return GetCarrierByIDQuery{}, err
	}
	return GetCarrierByIDQuery{
		carrierID: carrierID,
		actor:     actor,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCarrierByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetCarrierByIDQueryIsNotConstructed)
}

// CarrierID returns the identifier of the requested carrier.
func (q GetCarrierByIDQuery) CarrierID() kernel.UUID {
	return q.carrierID
}

// Actor returns the authenticated principal issuing the query.
func (q GetCarrierByIDQuery) Actor() principal.Principal {
	return q.actor
}
