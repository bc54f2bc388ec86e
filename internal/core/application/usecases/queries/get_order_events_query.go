package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/principal"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrGetOrderEventsQueryIsNotConstructed = errors.New(
	"GetOrderEventsQuery must be created via NewGetOrderEventsQuery constructor",
)

// GetOrderEventsQuery retrieves an order together with its event timeline.
// Staff only.
type GetOrderEventsQuery struct {
	orderID kernel.UUID
	actor   principal.Principal

	guard guard.ConstructorGuard
}

// NewGetOrderEventsQuery creates a query to retrieve an order's timeline.
func NewGetOrderEventsQuery(orderID kernel.UUID, actor principal.Principal) (GetOrderEventsQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderEventsQuery{}, errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}
	if err := actor.Validate(); err != nil {
		return GetOrderEventsQuery{}, err
	}
	return GetOrderEventsQuery{orderID: orderID, actor: actor, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderEventsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderEventsQueryIsNotConstructed)
}

// OrderID returns the requested order's identifier.
func (q GetOrderEventsQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Actor returns the authenticated principal issuing the query.
func (q GetOrderEventsQuery) Actor() principal.Principal {
	return q.actor
}

// OrderEventResponse is one entry of an order's timeline.
type OrderEventResponse struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"order_id"`
	UserID    string    `json:"user_id"`
	EventType string    `json:"event_type"`
	Note      *string   `json:"note"`
	Date      time.Time `json:"date"`
}

// GetOrderEventsQueryResponse is the order plus its events, oldest first.
type GetOrderEventsQueryResponse struct {
	Order  GetAllOrdersQueryResponse `json:"order"`
	Events []OrderEventResponse      `json:"events"`
}
