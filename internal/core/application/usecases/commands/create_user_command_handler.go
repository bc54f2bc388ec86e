package commands

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/staff"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// CreateUserCommandHandler handles staff user registration. Admin only.
type CreateUserCommandHandler struct {
	uowFactory StaffUoWFactory
	hasher     ports.PasswordHasher
}

// NewCreateUserCommandHandler creates a handler for staff user registration.
func NewCreateUserCommandHandler(uowFactory StaffUoWFactory, hasher ports.PasswordHasher) CreateUserCommandHandler {
	return CreateUserCommandHandler{uowFactory: uowFactory, hasher: hasher}
}

// Handle processes the command and returns the created user. A duplicate
// email surfaces as a ConflictError.
func (h CreateUserCommandHandler) Handle(ctx context.Context, cmd CreateUserCommand) (*staff.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if !cmd.Actor().CanManageStaff() {
		return nil, errs.NewForbiddenError("create user")
	}

	hash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	u, err := staff.NewUser(kernel.NewUUID(), cmd.Name(), cmd.Email(), cmd.Phone(), hash, cmd.Role(), time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err = uow.UserRepository().Add(ctx, u); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return u, nil
}
