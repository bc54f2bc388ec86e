package queries

import (
	"context"

	"logistics/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCustomerOrdersQueryHandler retrieves a customer's orders with nested
// event timelines. Two statements: one for the orders, one for all their
// events, assembled in memory.
type GetCustomerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerOrdersQueryHandler creates a handler for the customer orders query.
func NewGetCustomerOrdersQueryHandler(db *gorm.DB) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{db: db}
}

// Handle executes the query. Orders come back most recent first; events
// within each order oldest first.
func (h GetCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrdersQuery,
) ([]GetCustomerOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if !query.Actor().CanActForCustomer(query.CustomerID()) {
		return nil, errs.NewForbiddenError("list customer orders")
	}

	orders := make([]GetCustomerOrdersQueryResponse, 0)
	index := make(map[string]int)

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
		WHERE o.customer_id = ?
		ORDER BY o.created_at DESC
	`, query.CustomerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var o GetCustomerOrdersQueryResponse
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
		o.Events = make([]OrderEventResponse, 0)

		index[o.ID] = len(orders)
		orders = append(orders, o)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	eventRows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			e.id,
			e.order_id,
			e.user_id,
			e.event_type,
			e.note,
			e.date
		FROM order_events e
		JOIN orders o ON o.id = e.order_id
		WHERE o.customer_id = ?
		ORDER BY e.date ASC, e.seq ASC
	`, query.CustomerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer eventRows.Close()

	for eventRows.Next() {
		var e OrderEventResponse
		var id, orderID, userID uuid.UUID

		err = eventRows.Scan(
			&id,
			&orderID,
			&userID,
			&e.EventType,
			&e.Note,
			&e.Date,
		)
		if err != nil {
			return nil, err
		}

		e.ID = id.String()
		e.OrderID = orderID.String()
		e.UserID = userID.String()

		if i, ok := index[e.OrderID]; ok {
			orders[i].Events = append(orders[i].Events, e)
		}
	}

	if err = eventRows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
