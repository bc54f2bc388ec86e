package commands

import (
	"context"
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"
)

// ErrCustomerInactive is returned when the referenced customer exists but
// its status is not "active". The check applies at creation time only.
var ErrCustomerInactive = errors.New("customer is inactive")

// CreateOrderCommandHandler handles order creation. It verifies the actor's
// role, the customer's existence and active status, and relies on the storage
// layer's uniqueness constraint for duplicate tracking codes.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{uowFactory: uowFactory}
}

// Handle processes the command and returns the created order.
//
// Failure modes, checked in this sequence before any mutation:
//   - Forbidden when the actor is not admin or logistics staff
//   - ObjectNotFound when the customer does not exist
//   - ErrCustomerInactive when the customer's status is not "active"
//   - Conflict when the tracking code already exists
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if !cmd.Actor().CanManageOrders() {
		return nil, errs.NewForbiddenError("create order")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cust, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID())
	if err != nil {
		return nil, err
	}
	if !cust.IsActive() {
		return nil, ErrCustomerInactive
	}

	o, err := order.NewOrder(
		kernel.NewUUID(),
		cmd.CustomerID(),
		cmd.Actor().ID(),
		cmd.TrackingCode(),
		cmd.Description(),
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
