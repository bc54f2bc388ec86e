package commands

import (
	"context"

	"logistics/internal/core/domain/model/route"
	"logistics/internal/pkg/errs"
)

// UpdateRouteCommandHandler handles route patching. Admin only.
type UpdateRouteCommandHandler struct {
	uowFactory RouteUoWFactory
}

// NewUpdateRouteCommandHandler creates a handler for route patching.
func NewUpdateRouteCommandHandler(uowFactory RouteUoWFactory) UpdateRouteCommandHandler {
	return UpdateRouteCommandHandler{uowFactory: uowFactory}
}

// Handle processes the command and returns the updated route.
func (h UpdateRouteCommandHandler) Handle(ctx context.Context, cmd UpdateRouteCommand) (*route.Route, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if !cmd.Actor().CanUpdateRoutes() {
		return nil, errs.NewForbiddenError("update route")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	r, err := uow.RouteRepository().Get(ctx, cmd.RouteID())
	if err != nil {
		return nil, err
	}

	if err = r.ApplyUpdate(cmd.DestinationAddress(), cmd.EstimatedDeliveryDate(), cmd.Comment(), cmd.Cost()); err != nil {
		return nil, err
	}

	if err = uow.RouteRepository().Update(ctx, r); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return r, nil
}
