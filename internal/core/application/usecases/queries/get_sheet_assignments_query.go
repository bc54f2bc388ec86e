package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/principal"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrGetSheetAssignmentsQueryIsNotConstructed = errors.New(
	"GetSheetAssignmentsQuery must be created via NewGetSheetAssignmentsQuery constructor",
)

// GetSheetAssignmentsQuery lists the customers a technical sheet is assigned
// to. Staff only.
type GetSheetAssignmentsQuery struct {
	sheetID kernel.UUID
	actor   principal.Principal

	guard guard.ConstructorGuard
}

// NewGetSheetAssignmentsQuery creates a query for one sheet's assignments.
func NewGetSheetAssignmentsQuery(sheetID kernel.UUID, actor principal.Principal) (GetSheetAssignmentsQuery, error) {
	if sheetID.IsEmpty() {
		return GetSheetAssignmentsQuery{}, errs.NewValueIsRequiredError("sheetID")
	}
	if err := actor.Validate(); err != nil {
		return GetSheetAssignmentsQuery{}, err
	}
	return GetSheetAssignmentsQuery{
		sheetID: sheetID,
		actor:   actor,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetSheetAssignmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetSheetAssignmentsQueryIsNotConstructed)
}

// SheetID returns the identifier of the sheet whose assignments are requested.
func (q GetSheetAssignmentsQuery) SheetID() kernel.UUID {
	return q.sheetID
}

// Actor returns the authenticated principal issuing the query.
func (q GetSheetAssignmentsQuery) Actor() principal.Principal {
	return q.actor
}
