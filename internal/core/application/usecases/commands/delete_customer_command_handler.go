package commands

import (
	"context"
	"errors"

	"logistics/internal/pkg/errs"
)

// ErrCustomerHasOrders is returned when deletion is attempted while orders
// still reference the customer. Orders must be deleted or reassigned first.
var ErrCustomerHasOrders = errors.New("customer has dependent orders")

// DeleteCustomerCommandHandler handles customer removal. Admin only.
type DeleteCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewDeleteCustomerCommandHandler creates a handler for customer removal.
func NewDeleteCustomerCommandHandler(uowFactory CustomerUoWFactory) DeleteCustomerCommandHandler {
	return DeleteCustomerCommandHandler{uowFactory: uowFactory}
}

// Handle processes the command. Deletion is blocked while orders still
// reference the customer; callers get ErrCustomerHasOrders and must clear the
// orders first.
func (h DeleteCustomerCommandHandler) Handle(ctx context.Context, cmd DeleteCustomerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Actor().CanDeleteCustomers() {
		return errs.NewForbiddenError("delete customer")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID()); err != nil {
		return err
	}

	count, err := uow.CustomerRepository().CountOrders(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrCustomerHasOrders
	}

	if err = uow.CustomerRepository().Delete(ctx, cmd.CustomerID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
