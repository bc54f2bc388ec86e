package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/principal"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrUpdateCustomerCommandIsNotConstructed = errors.New(
	"UpdateCustomerCommand must be created via NewUpdateCustomerCommand constructor",
)

// UpdateCustomerCommand patches a customer's profile fields. The password is
// never touched here; that goes through the password change operation.
type UpdateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	name       *string
	email      *string
	phone      *string
	status     *string
	actor      principal.Principal

	guard guard.ConstructorGuard
}

// NewUpdateCustomerCommand creates a command to patch a customer.
func NewUpdateCustomerCommand(customerID kernel.UUID, name, email, phone, status *string, actor principal.Principal) (UpdateCustomerCommand, error) {
	cmd := UpdateCustomerCommand{
		name:   name,
		email:  email,
		phone:  phone,
		status: status,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setActor(actor),
	); err != nil {
		return UpdateCustomerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCustomerCommandIsNotConstructed)
}

// CustomerID returns the customer's identifier.
func (c UpdateCustomerCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Name returns the replacement name, or nil when unchanged.
func (c UpdateCustomerCommand) Name() *string {
	return c.name
}

// Email returns the replacement email, or nil when unchanged.
func (c UpdateCustomerCommand) Email() *string {
	return c.email
}

// Phone returns the replacement phone, or nil when unchanged.
func (c UpdateCustomerCommand) Phone() *string {
	return c.phone
}

// Status returns the replacement status, or nil when unchanged.
func (c UpdateCustomerCommand) Status() *string {
	return c.status
}

// Actor returns the authenticated principal issuing the command.
func (c UpdateCustomerCommand) Actor() principal.Principal {
	return c.actor
}

func (c *UpdateCustomerCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerID", err)
	}
	c.customerID = id
	return nil
}

func (c *UpdateCustomerCommand) setActor(actor principal.Principal) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
