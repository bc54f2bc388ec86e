package commands

import (
	"context"

	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// ChangeCustomerPasswordCommandHandler handles password replacement for a
// customer account. Staff may do it for any customer; a customer only for
// their own account.
type ChangeCustomerPasswordCommandHandler struct {
	uowFactory CustomerUoWFactory
	hasher     ports.PasswordHasher
}

// NewChangeCustomerPasswordCommandHandler creates a handler for customer password changes.
func NewChangeCustomerPasswordCommandHandler(uowFactory CustomerUoWFactory, hasher ports.PasswordHasher) ChangeCustomerPasswordCommandHandler {
	return ChangeCustomerPasswordCommandHandler{uowFactory: uowFactory, hasher: hasher}
}

// Handle processes the command.
func (h ChangeCustomerPasswordCommandHandler) Handle(ctx context.Context, cmd ChangeCustomerPasswordCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Actor().CanActForCustomer(cmd.CustomerID()) {
		return errs.NewForbiddenError("change customer password")
	}

	hash, err := h.hasher.Hash(cmd.NewPassword())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cust, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	if err = cust.ChangePassword(hash); err != nil {
		return err
	}

	if err = uow.CustomerRepository().Update(ctx, cust); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
