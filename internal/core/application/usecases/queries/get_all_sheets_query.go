package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/principal"
	"logistics/internal/pkg/guard"
)

var ErrGetAllSheetsQueryIsNotConstructed = errors.New(
	"GetAllSheetsQuery must be created via NewGetAllSheetsQuery constructor",
)

// GetAllSheetsQuery retrieves every technical sheet in the library. Staff only.
type GetAllSheetsQuery struct {
	actor principal.Principal

	guard guard.ConstructorGuard
}

// NewGetAllSheetsQuery creates a query to retrieve all technical sheets.
func NewGetAllSheetsQuery(actor principal.Principal) (GetAllSheetsQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetAllSheetsQuery{}, err
	}
	return GetAllSheetsQuery{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAllSheetsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllSheetsQueryIsNotConstructed)
}

// Actor returns the authenticated principal issuing the query.
func (q GetAllSheetsQuery) Actor() principal.Principal {
	return q.actor
}

// GetAllSheetsQueryResponse is the technical sheet read model. UploadedByName
// is empty when the uploading user has since been deleted.
type GetAllSheetsQueryResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	URL            string    `json:"url"`
	UploadedBy     string    `json:"uploaded_by"`
	UploadedByName string    `json:"uploaded_by_name"`
	CreatedAt      time.Time `json:"created_at"`
}
