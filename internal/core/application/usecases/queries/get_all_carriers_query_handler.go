package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"logistics/internal/pkg/errs"
)

// GetAllCarriersQueryHandler reads carriers straight from the database.
type GetAllCarriersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllCarriersQueryHandler creates a handler over the read connection.
func NewGetAllCarriersQueryHandler(db *gorm.DB) GetAllCarriersQueryHandler {
	return GetAllCarriersQueryHandler{db: db}
}

// Handle returns all carriers ordered by name.
func (h GetAllCarriersQueryHandler) Handle(
	ctx context.Context, query GetAllCarriersQuery,
) ([]GetAllCarriersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if !query.Actor().CanViewCarriers() {
		return nil, errs.NewForbiddenError("list carriers")
	}

	rows, err := h.db.WithContext(ctx).Raw(
		`SELECT id, name, contact, state, created_at
		   FROM carriers
		  ORDER BY name ASC`,
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	carriers := make([]GetAllCarriersQueryResponse, 0)
	for rows.Next() {
		var (
			id        uuid.UUID
			name      string
			contact   string
			state     string
			createdAt time.Time
		)
		if err := rows.Scan(&id, &name, &contact, &state, &createdAt); err != nil {
			return nil, err
		}
		carriers = append(carriers, GetAllCarriersQueryResponse{
			ID:        id.String(),
			Name:      name,
			Contact:   contact,
			State:     state,
			CreatedAt: createdAt,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return carriers, nil
}
