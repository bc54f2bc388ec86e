package commands

import (
	"context"

	"logistics/internal/core/domain/model/customer"
	"logistics/internal/pkg/errs"
)

// UpdateCustomerCommandHandler handles customer patching by staff.
type UpdateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewUpdateCustomerCommandHandler creates a handler for customer patching.
func NewUpdateCustomerCommandHandler(uowFactory CustomerUoWFactory) UpdateCustomerCommandHandler {
	return UpdateCustomerCommandHandler{uowFactory: uowFactory}
}

// Handle processes the command and returns the updated customer. Changing the
// email may collide with another account and surfaces as a ConflictError.
func (h UpdateCustomerCommandHandler) Handle(ctx context.Context, cmd UpdateCustomerCommand) (*customer.Customer, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if !cmd.Actor().CanManageCustomers() {
		return nil, errs.NewForbiddenError("update customer")
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

	if err = cust.ApplyUpdate(cmd.Name(), cmd.Email(), cmd.Phone(), cmd.Status()); err != nil {
		return nil, err
	}

	if err = uow.CustomerRepository().Update(ctx, cust); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return cust, nil
}
