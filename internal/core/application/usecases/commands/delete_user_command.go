package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/principal"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrDeleteUserCommandIsNotConstructed = errors.New(
	"DeleteUserCommand must be created via NewDeleteUserCommand constructor",
)

// DeleteUserCommand removes a staff user account.
type DeleteUserCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID
	actor  principal.Principal

	guard guard.ConstructorGuard
}

// NewDeleteUserCommand creates a command to delete a staff user.
func NewDeleteUserCommand(userID kernel.UUID, actor principal.Principal) (DeleteUserCommand, error) {
	cmd := DeleteUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setActor(actor),
	); err != nil {
		return DeleteUserCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteUserCommand) Validate() error {
	return c.guard.Validate(ErrDeleteUserCommandIsNotConstructed)
}

// UserID returns the staff user's identifier.
func (c DeleteUserCommand) UserID() kernel.UUID {
	return c.userID
}

// Actor returns the authenticated principal issuing the command.
func (c DeleteUserCommand) Actor() principal.Principal {
	return c.actor
}

func (c *DeleteUserCommand) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userID", err)
	}
	c.userID = id
	return nil
}

func (c *DeleteUserCommand) setActor(actor principal.Principal) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
