package queries

import (
	"context"

	"logistics/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler retrieves the full order list with customer and
// creator names joined in. Uses direct SQL for read performance.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for the order list query.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the query. Orders come back most recent first.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]GetAllOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if !query.Actor().CanViewOrders() {
		return nil, errs.NewForbiddenError("list orders")
	}

	orders := make([]GetAllOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.customer_id,
			c.name,
			o.user_id,
			COALESCE(u.name, ''),
			o.tracking_code,
			o.description,
			o.state,
			o.created_at
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		LEFT JOIN users u ON u.id = o.user_id
		ORDER BY o.created_at DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var o GetAllOrdersQueryResponse
		var id, customerID, userID uuid.UUID

		err = rows.Scan(
			&id,
			&customerID,
			&o.CustomerName,
			&userID,
			&o.UserName,
			&o.TrackingCode,
			&o.Description,
			&o.State,
			&o.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		o.ID = id.String()
		o.CustomerID = customerID.String()
		o.UserID = userID.String()
		orders = append(orders, o)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
