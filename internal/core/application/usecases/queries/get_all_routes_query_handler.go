package queries

import (
	"context"

	"logistics/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllRoutesQueryHandler retrieves the full route list with carrier
// identity joined in.
type GetAllRoutesQueryHandler struct {
	db *gorm.DB
}

// NewGetAllRoutesQueryHandler creates a handler for the route list query.
func NewGetAllRoutesQueryHandler(db *gorm.DB) GetAllRoutesQueryHandler {
	return GetAllRoutesQueryHandler{db: db}
}

// Handle executes the query. Routes come back most recent first.
func (h GetAllRoutesQueryHandler) Handle(
	ctx context.Context,
	query GetAllRoutesQuery,
) ([]GetAllRoutesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if !query.Actor().CanViewRoutes() {
		return nil, errs.NewForbiddenError("list routes")
	}

	routes := make([]GetAllRoutesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			r.id,
			r.order_id,
			r.carrier_id,
			cr.name,
			cr.state,
			r.source_address,
			r.destination_address,
			r.departure_date,
			r.estimated_delivery_date,
			r.comment,
			r.cost,
			r.created_at
		FROM routes r
		JOIN carriers cr ON cr.id = r.carrier_id
		ORDER BY r.created_at DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var r GetAllRoutesQueryResponse
		var id, orderID, carrierID uuid.UUID

		err = rows.Scan(
			&id,
			&orderID,
			&carrierID,
			&r.CarrierName,
			&r.CarrierState,
			&r.SourceAddress,
			&r.DestinationAddress,
			&r.DepartureDate,
			&r.EstimatedDeliveryDate,
			&r.Comment,
			&r.Cost,
			&r.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		r.ID = id.String()
		r.OrderID = orderID.String()
		r.CarrierID = carrierID.String()
		routes = append(routes, r)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return routes, nil
}
