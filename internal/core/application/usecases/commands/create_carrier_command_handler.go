package commands

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/carrier"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// CreateCarrierCommandHandler handles carrier registration. Admin only.
type CreateCarrierCommandHandler struct {
	uowFactory CarrierUoWFactory
}

// NewCreateCarrierCommandHandler creates a handler for carrier registration.
func NewCreateCarrierCommandHandler(uowFactory CarrierUoWFactory) CreateCarrierCommandHandler {
	return CreateCarrierCommandHandler{uowFactory: uowFactory}
}

// Handle processes the command and returns the created carrier.
func (h CreateCarrierCommandHandler) Handle(ctx context.Context, cmd CreateCarrierCommand) (*carrier.Carrier, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if !cmd.Actor().CanManageCarriers() {
		return nil, errs.NewForbiddenError("create carrier")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	crr, err := carrier.NewCarrier(kernel.NewUUID(), cmd.Name(), cmd.Contact(), time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err = uow.CarrierRepository().Add(ctx, crr); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return crr, nil
}
