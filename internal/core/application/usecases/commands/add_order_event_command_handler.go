package commands

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"
)

// AddOrderEventCommandHandler handles event registration.
type AddOrderEventCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAddOrderEventCommandHandler creates a handler for event registration.
func NewAddOrderEventCommandHandler(uowFactory OrderUoWFactory) AddOrderEventCommandHandler {
	return AddOrderEventCommandHandler{uowFactory: uowFactory}
}

// Handle processes the command and returns the created event. The order must
// exist; the event date is assigned by the server.
func (h AddOrderEventCommandHandler) Handle(ctx context.Context, cmd AddOrderEventCommand) (*order.Event, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if !cmd.Actor().CanManageOrders() {
		return nil, errs.NewForbiddenError("add order event")
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

	event, err := order.NewEvent(
		kernel.NewUUID(),
		cmd.OrderID(),
		cmd.Actor().ID(),
		cmd.EventType(),
		cmd.Note(),
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().AddEvent(ctx, event); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return event, nil
}
