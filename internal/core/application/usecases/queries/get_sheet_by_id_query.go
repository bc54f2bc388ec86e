package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/principal"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrGetSheetByIDQueryIsNotConstructed = errors.New(
	"GetSheetByIDQuery must be created via NewGetSheetByIDQuery constructor",
)

// GetSheetByIDQuery retrieves a single technical sheet. Staff only.
type GetSheetByIDQuery struct {
	sheetID kernel.UUID
	actor   principal.Principal

	guard guard.ConstructorGuard
}

// NewGetSheetByIDQuery creates a query for one technical sheet.
func NewGetSheetByIDQuery(sheetID kernel.UUID, actor principal.Principal) (GetSheetByIDQuery, error) {
	if sheetID.IsEmpty() {
		return GetSheetByIDQuery{}, errs.NewValueIsRequiredError("sheetID")
	}
	if err := actor.Validate(); err != nil {
		return GetSheetByIDQuery{}, err
	}
	return GetSheetByIDQuery{
		sheetID: sheetID,
		actor:   actor,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetSheetByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetSheetByIDQueryIsNotConstructed)
}

// SheetID returns the identifier of the requested technical sheet.
func (q GetSheetByIDQuery) SheetID() kernel.UUID {
	return q.sheetID
}

// Actor returns the authenticated principal issuing the query.
func (q GetSheetByIDQuery) Actor() principal.Principal {
	return q.actor
}
