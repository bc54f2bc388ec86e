package commands

import (
	"context"

	"logistics/internal/pkg/errs"
)

// DeleteCarrierCommandHandler handles carrier removal. Admin only.
type DeleteCarrierCommandHandler struct {
	uowFactory CarrierUoWFactory
}

// NewDeleteCarrierCommandHandler creates a handler for carrier removal.
func NewDeleteCarrierCommandHandler(uowFactory CarrierUoWFactory) DeleteCarrierCommandHandler {
	return DeleteCarrierCommandHandler{uowFactory: uowFactory}
}

// Handle processes the command. Existing routes keep their carrier reference;
// removal does not cascade.
func (h DeleteCarrierCommandHandler) Handle(ctx context.Context, cmd DeleteCarrierCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Actor().CanManageCarriers() {
		return errs.NewForbiddenError("delete carrier")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.CarrierRepository().Get(ctx, cmd.CarrierID()); err != nil {
		return err
	}

	if err := uow.CarrierRepository().Delete(ctx, cmd.CarrierID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
