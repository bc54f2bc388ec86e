package commands

import (
	"context"

	"logistics/internal/core/domain/model/carrier"
	"logistics/internal/pkg/errs"
)

// UpdateCarrierCommandHandler handles carrier patching. Admin only.
type UpdateCarrierCommandHandler struct {
	uowFactory CarrierUoWFactory
}

// NewUpdateCarrierCommandHandler creates a handler for carrier patching.
func NewUpdateCarrierCommandHandler(uowFactory CarrierUoWFactory) UpdateCarrierCommandHandler {
	return UpdateCarrierCommandHandler{uowFactory: uowFactory}
}

// Handle processes the command and returns the updated carrier.
func (h UpdateCarrierCommandHandler) Handle(ctx context.Context, cmd UpdateCarrierCommand) (*carrier.Carrier, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if !cmd.Actor().CanManageCarriers() {
		return nil, errs.NewForbiddenError("update carrier")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	crr, err := uow.CarrierRepository().Get(ctx, cmd.CarrierID())
	if err != nil {
		return nil, err
	}

	if err = crr.ApplyUpdate(cmd.Name(), cmd.Contact(), cmd.State()); err != nil {
		return nil, err
	}

	if err = uow.CarrierRepository().Update(ctx, crr); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return crr, nil
}
