package commands

import (
	"context"

	"logistics/internal/core/domain/model/staff"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// UpdateUserCommandHandler handles staff user patching. Admin only.
type UpdateUserCommandHandler struct {
	uowFactory StaffUoWFactory
	hasher     ports.PasswordHasher
}

// NewUpdateUserCommandHandler creates a handler for staff user patching.
func NewUpdateUserCommandHandler(uowFactory StaffUoWFactory, hasher ports.PasswordHasher) UpdateUserCommandHandler {
	return UpdateUserCommandHandler{uowFactory: uowFactory, hasher: hasher}
}

// Handle processes the command and returns the updated user.
func (h UpdateUserCommandHandler) Handle(ctx context.Context, cmd UpdateUserCommand) (*staff.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if !cmd.Actor().CanManageStaff() {
		return nil, errs.NewForbiddenError("update user")
	}

	var hash *string
	if cmd.Password() != nil {
		hashed, err := h.hasher.Hash(*cmd.Password())
		if err != nil {
			return nil, err
		}
		hash = &hashed
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	u, err := uow.UserRepository().Get(ctx, cmd.UserID())
	if err != nil {
		return nil, err
	}

	if err = u.ApplyUpdate(cmd.Name(), cmd.Email(), cmd.Phone(), cmd.Role(), hash); err != nil {
		return nil, err
	}

	if err = uow.UserRepository().Update(ctx, u); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return u, nil
}
