package commands

import (
	"context"
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/pkg/errs"
)

// CreateRouteCommandHandler handles route assignment. Any authenticated
// principal may assign; there is no role gate on this operation.
type CreateRouteCommandHandler struct {
	uowFactory RouteUoWFactory
}

// NewCreateRouteCommandHandler creates a handler for route assignment.
func NewCreateRouteCommandHandler(uowFactory RouteUoWFactory) CreateRouteCommandHandler {
	return CreateRouteCommandHandler{uowFactory: uowFactory}
}

// Handle processes the command and returns the created route. The route
// insert and the carrier's switch to "on trip" happen in one transaction, so
// a route never exists with its carrier still marked available.
//
// Duplicate assignment is rejected twice: by the pre-check against the
// existing route and, for concurrent requests, by the storage-layer
// uniqueness constraint on the order reference. Both surface as a
// ConflictError.
func (h CreateRouteCommandHandler) Handle(ctx context.Context, cmd CreateRouteCommand) (*route.Route, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.OrderRepository().Get(ctx, cmd.OrderID()); err != nil {
		return nil, err
	}

	crr, err := uow.CarrierRepository().Get(ctx, cmd.CarrierID())
	if err != nil {
		return nil, err
	}

	_, err = uow.RouteRepository().GetByOrder(ctx, cmd.OrderID())
	switch {
	case err == nil:
		return nil, errs.NewConflictError("orderID", cmd.OrderID())
	case !errors.Is(err, errs.ErrObjectNotFound):
		return nil, err
	}

	r, err := route.NewRoute(
		kernel.NewUUID(),
		cmd.OrderID(),
		cmd.CarrierID(),
		cmd.SourceAddress(),
		cmd.DestinationAddress(),
		cmd.DepartureDate(),
		cmd.EstimatedDeliveryDate(),
		cmd.Comment(),
		cmd.Cost(),
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.RouteRepository().Add(ctx, r); err != nil {
		return nil, err
	}

	crr.MarkOnTrip()
	if err = uow.CarrierRepository().Update(ctx, crr); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return r, nil
}
