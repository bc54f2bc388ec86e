package queries

import (
	"context"

	"logistics/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCustomerRoutesQueryHandler retrieves the customer-facing route view.
// Note the SELECT list: cost is not read at all, so it cannot leak through
// this handler.
type GetCustomerRoutesQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerRoutesQueryHandler creates a handler for the customer routes query.
func NewGetCustomerRoutesQueryHandler(db *gorm.DB) GetCustomerRoutesQueryHandler {
	return GetCustomerRoutesQueryHandler{db: db}
}

// Handle executes the query. Routes come back most recent first.
func (h GetCustomerRoutesQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerRoutesQuery,
) ([]GetCustomerRoutesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if !query.Actor().CanActForCustomer(query.CustomerID()) {
		return nil, errs.NewForbiddenError("list customer routes")
	}

	routes := make([]GetCustomerRoutesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			r.id,
			r.order_id,
			o.tracking_code,
			cr.name,
			r.source_address,
			r.destination_address,
			r.departure_date,
			r.estimated_delivery_date,
			r.comment,
			r.created_at
		FROM routes r
		JOIN orders o ON o.id = r.order_id
		JOIN carriers cr ON cr.id = r.carrier_id
		WHERE o.customer_id = ?
		ORDER BY r.created_at DESC
	`, query.CustomerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var r GetCustomerRoutesQueryResponse
		var id, orderID uuid.UUID

		err = rows.Scan(
			&id,
			&orderID,
			&r.OrderTrackingCode,
			&r.CarrierName,
			&r.SourceAddress,
			&r.DestinationAddress,
			&r.DepartureDate,
			&r.EstimatedDeliveryDate,
			&r.Comment,
			&r.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		r.ID = id.String()
		r.OrderID = orderID.String()
		routes = append(routes, r)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return routes, nil
}
