package queries

import (
	"context"
	"database/sql"
	"errors"

	"logistics/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetRouteByIDQueryHandler retrieves one route with carrier and order context.
type GetRouteByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetRouteByIDQueryHandler creates a handler for the single-route query.
func NewGetRouteByIDQueryHandler(db *gorm.DB) GetRouteByIDQueryHandler {
	return GetRouteByIDQueryHandler{db: db}
}

// Handle executes the query. Returns an ObjectNotFoundError when no route has
// the requested identifier.
func (h GetRouteByIDQueryHandler) Handle(
	ctx context.Context,
	query GetRouteByIDQuery,
) (GetRouteByIDQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetRouteByIDQueryResponse{}, err
	}

	if !query.Actor().CanViewRoutes() {
		return GetRouteByIDQueryResponse{}, errs.NewForbiddenError("get route")
	}

	var r GetRouteByIDQueryResponse
	var id, orderID, carrierID uuid.UUID

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			r.id,
			r.order_id,
			o.tracking_code,
			r.carrier_id,
			cr.name,
			cr.contact,
			cr.state,
			r.source_address,
			r.destination_address,
			r.departure_date,
			r.estimated_delivery_date,
			r.comment,
			r.cost,
			r.created_at
		FROM routes r
		JOIN orders o ON o.id = r.order_id
		JOIN carriers cr ON cr.id = r.carrier_id
		WHERE r.id = ?
	`, query.RouteID().Bytes()).Row()

	err := row.Scan(
		&id,
		&orderID,
		&r.OrderTrackingCode,
		&carrierID,
		&r.CarrierName,
		&r.CarrierContact,
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
		if errors.Is(err, sql.ErrNoRows) {
			return GetRouteByIDQueryResponse{}, errs.NewObjectNotFoundError("routeID", query.RouteID())
		}
		return GetRouteByIDQueryResponse{}, err
	}

	r.ID = id.String()
	r.OrderID = orderID.String()
	r.CarrierID = carrierID.String()

	return r, nil
}
