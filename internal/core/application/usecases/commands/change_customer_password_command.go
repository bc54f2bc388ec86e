package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/principal"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrChangeCustomerPasswordCommandIsNotConstructed = errors.New(
	"ChangeCustomerPasswordCommand must be created via NewChangeCustomerPasswordCommand constructor",
)

// ChangeCustomerPasswordCommand replaces a customer's password. Completing it
// clears the first-login flag, so clients stop prompting for a change.
type ChangeCustomerPasswordCommand struct { //nolint:recvcheck //using for validation
	customerID  kernel.UUID
	newPassword string
	actor       principal.Principal

	guard guard.ConstructorGuard
}

// NewChangeCustomerPasswordCommand creates a command to change a customer's password.
func NewChangeCustomerPasswordCommand(customerID kernel.UUID, newPassword string, actor principal.Principal) (ChangeCustomerPasswordCommand, error) {
	cmd := ChangeCustomerPasswordCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setNewPassword(newPassword),
		cmd.setActor(actor),
	); err != nil {
		return ChangeCustomerPasswordCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeCustomerPasswordCommand) Validate() error {
	return c.guard.Validate(ErrChangeCustomerPasswordCommandIsNotConstructed)
}

// CustomerID returns the customer's identifier.
func (c ChangeCustomerPasswordCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// NewPassword returns the replacement clear-text password.
func (c ChangeCustomerPasswordCommand) NewPassword() string {
	return c.newPassword
}

// Actor returns the authenticated principal issuing the command.
func (c ChangeCustomerPasswordCommand) Actor() principal.Principal {
	return c.actor
}

func (c *ChangeCustomerPasswordCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerID", err)
	}
	c.customerID = id
	return nil
}

func (c *ChangeCustomerPasswordCommand) setNewPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("newPassword")
	}
	c.newPassword = password
	return nil
}

func (c *ChangeCustomerPasswordCommand) setActor(actor principal.Principal) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
