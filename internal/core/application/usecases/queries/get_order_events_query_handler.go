package queries

import (
	"context"

	"logistics/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderEventsQueryHandler retrieves an order and its event timeline in
// ascending event-time order, insertion order breaking ties.
type GetOrderEventsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderEventsQueryHandler creates a handler for the order timeline query.
func NewGetOrderEventsQueryHandler(db *gorm.DB) GetOrderEventsQueryHandler {
	return GetOrderEventsQueryHandler{db: db}
}

// Handle executes the query.
func (h GetOrderEventsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderEventsQuery,
) (GetOrderEventsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderEventsQueryResponse{}, err
	}

	if !query.Actor().CanViewOrders() {
		return GetOrderEventsQueryResponse{}, errs.NewForbiddenError("get order events")
	}

	orderQuery, err := NewGetOrderByIDQuery(query.OrderID(), query.Actor())
	if err != nil {
		return GetOrderEventsQueryResponse{}, err
	}

	o, err := NewGetOrderByIDQueryHandler(h.db).Handle(ctx, orderQuery)
	if err != nil {
		return GetOrderEventsQueryResponse{}, err
	}

	events := make([]OrderEventResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			user_id,
			event_type,
			note,
			date
		FROM order_events
		WHERE order_id = ?
		ORDER BY date ASC, seq ASC
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return GetOrderEventsQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var e OrderEventResponse
		var id, orderID, userID uuid.UUID

		err = rows.Scan(
			&id,
			&orderID,
			&userID,
			&e.EventType,
			&e.Note,
			&e.Date,
		)
		if err != nil {
			return GetOrderEventsQueryResponse{}, err
		}

		e.ID = id.String()
		e.OrderID = orderID.String()
		e.UserID = userID.String()
		events = append(events, e)
	}

	if err = rows.Err(); err != nil {
		return GetOrderEventsQueryResponse{}, err
	}

	return GetOrderEventsQueryResponse{Order: o, Events: events}, nil
}
