package queries

import (
	"context"
	"database/sql"
	"errors"

	"logistics/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderByIDQueryHandler retrieves one order in the staff read model.
type GetOrderByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderByIDQueryHandler creates a handler for the single-order query.
func NewGetOrderByIDQueryHandler(db *gorm.DB) GetOrderByIDQueryHandler {
	return GetOrderByIDQueryHandler{db: db}
}

// Handle executes the query. Returns an ObjectNotFoundError when no order
// has the requested identifier.
func (h GetOrderByIDQueryHandler) Handle(
	ctx context.Context,
	query GetOrderByIDQuery,
) (GetAllOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAllOrdersQueryResponse{}, err
	}

	if !query.Actor().CanViewOrders() {
		return GetAllOrdersQueryResponse{}, errs.NewForbiddenError("get order")
	}

	var o GetAllOrdersQueryResponse
	var id, customerID, userID uuid.UUID

	row := h.db.WithContext(ctx).Raw(`
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
		WHERE o.id = ?
	`, query.OrderID().Bytes()).Row()

	err := row.Scan(
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
		if errors.Is(err, sql.ErrNoRows) {
			return GetAllOrdersQueryResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
		}
		return GetAllOrdersQueryResponse{}, err
	}

	o.ID = id.String()
	o.CustomerID = customerID.String()
	o.UserID = userID.String()

	return o, nil
}
