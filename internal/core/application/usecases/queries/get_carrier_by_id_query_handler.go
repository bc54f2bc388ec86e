package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"logistics/internal/pkg/errs"
)

// GetCarrierByIDQueryHandler reads one carrier from the database.
type GetCarrierByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetCarrierByIDQueryHandler creates a handler over the read connection.
func NewGetCarrierByIDQueryHandler(db *gorm.DB) GetCarrierByIDQueryHandler {
	return GetCarrierByIDQueryHandler{db: db}
}

// Handle returns the carrier with the requested identifier.
func (h GetCarrierByIDQueryHandler) Handle(
	ctx context.Context, query GetCarrierByIDQuery,
) (GetAllCarriersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAllCarriersQueryResponse{}, err
	}
	if !query.Actor().CanViewCarriers() {
		return GetAllCarriersQueryResponse{}, errs.NewForbiddenError("get carrier")
	}

	row := h.db.WithContext(ctx).Raw(
		`SELECT id, name, contact, state, created_at
		   FROM carriers
		  WHERE id = ?`,
		query.CarrierID().Bytes(),
	).Row()

	var (
		id        uuid.UUID
		name      string
		contact   string
		state     string
		createdAt time.Time
	)
	if err := row.Scan(&id, &name, &contact, &state, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetAllCarriersQueryResponse{}, errs.NewObjectNotFoundError("carrierID", query.CarrierID())
		}
		return GetAllCarriersQueryResponse{}, err
	}

	return GetAllCarriersQueryResponse{
		ID:        id.String(),
		Name:      name,
		Contact:   contact,
		State:     state,
		CreatedAt: createdAt,
	}, nil
}
