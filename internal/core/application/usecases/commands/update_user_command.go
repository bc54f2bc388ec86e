package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/principal"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrUpdateUserCommandIsNotConstructed = errors.New(
	"UpdateUserCommand must be created via NewUpdateUserCommand constructor",
)

// UpdateUserCommand patches a staff user. A non-nil password is re-hashed;
// all other nil fields keep their current values.
type UpdateUserCommand struct { //nolint:recvcheck //using for validation
	userID   kernel.UUID
	name     *string
	email    *string
	phone    *string
	password *string
	role     *principal.Role
	actor    principal.Principal

	guard guard.ConstructorGuard
}

// NewUpdateUserCommand creates a command to patch a staff user.
func NewUpdateUserCommand(
	userID kernel.UUID,
	name, email, phone, password *string,
	role *principal.Role,
	actor principal.Principal,
) (UpdateUserCommand, error) {
	cmd := UpdateUserCommand{
		name:     name,
		email:    email,
		phone:    phone,
		password: password,
		role:     role,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setActor(actor),
	); err != nil {
		return UpdateUserCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateUserCommand) Validate() error {
	return c.guard.Validate(ErrUpdateUserCommandIsNotConstructed)
}

// UserID returns the staff user's identifier.
func (c UpdateUserCommand) UserID() kernel.UUID {
	return c.userID
}

// Name returns the replacement name, or nil when unchanged.
func (c UpdateUserCommand) Name() *string {
	return c.name
}

// Email returns the replacement email, or nil when unchanged.
func (c UpdateUserCommand) Email() *string {
	return c.email
}

// Phone returns the replacement phone, or nil when unchanged.
func (c UpdateUserCommand) Phone() *string {
	return c.phone
}

// Password returns the replacement clear-text password, or nil when unchanged.
func (c UpdateUserCommand) Password() *string {
	return c.password
}

// Role returns the replacement role, or nil when unchanged.
func (c UpdateUserCommand) Role() *principal.Role {
	return c.role
}

// Actor returns the authenticated principal issuing the command.
func (c UpdateUserCommand) Actor() principal.Principal {
	return c.actor
}

func (c *UpdateUserCommand) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userID", err)
	}
	c.userID = id
	return nil
}

func (c *UpdateUserCommand) setActor(actor principal.Principal) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
