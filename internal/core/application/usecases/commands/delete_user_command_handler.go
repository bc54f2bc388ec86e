package commands

import (
	"context"

	"logistics/internal/pkg/errs"
)

// DeleteUserCommandHandler handles staff user removal. Admin only.
type DeleteUserCommandHandler struct {
	uowFactory StaffUoWFactory
}

// NewDeleteUserCommandHandler creates a handler for staff user removal.
func NewDeleteUserCommandHandler(uowFactory StaffUoWFactory) DeleteUserCommandHandler {
	return DeleteUserCommandHandler{uowFactory: uowFactory}
}

// Handle processes the command. Orders keep their creator reference after the
// user is gone; listings fall back to an empty creator name.
func (h DeleteUserCommandHandler) Handle(ctx context.Context, cmd DeleteUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Actor().CanManageStaff() {
		return errs.NewForbiddenError("delete user")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.UserRepository().Get(ctx, cmd.UserID()); err != nil {
		return err
	}

	if err := uow.UserRepository().Delete(ctx, cmd.UserID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
