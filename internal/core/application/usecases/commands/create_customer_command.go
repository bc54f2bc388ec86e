package commands

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/principal"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrCreateCustomerCommandIsNotConstructed = errors.New(
	"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
)

// CreateCustomerCommand registers a customer account. The initial password
// travels in clear inside the command and is hashed by the handler; it is
// also mailed to the customer once the account is committed.
type CreateCustomerCommand struct { //nolint:recvcheck //using for validation
	name     string
	email    string
	phone    string
	password string
	actor    principal.Principal

	guard guard.ConstructorGuard
}

// NewCreateCustomerCommand creates a command to register a customer.
func NewCreateCustomerCommand(name, email, phone, password string, actor principal.Principal) (CreateCustomerCommand, error) {
	cmd := CreateCustomerCommand{
		phone: phone,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setEmail(email),
		cmd.setPassword(password),
		cmd.setActor(actor),
	); err != nil {
		return CreateCustomerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

// Name returns the customer's display name.
func (c CreateCustomerCommand) Name() string {
	return c.name
}

// Email returns the customer's login email.
func (c CreateCustomerCommand) Email() string {
	return c.email
}

// Phone returns the customer's phone number.
func (c CreateCustomerCommand) Phone() string {
	return c.phone
}

// Password returns the initial clear-text password.
func (c CreateCustomerCommand) Password() string {
	return c.password
}

// Actor returns the authenticated principal issuing the command.
func (c CreateCustomerCommand) Actor() principal.Principal {
	return c.actor
}

func (c *CreateCustomerCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *CreateCustomerCommand) setEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = email
	return nil
}

func (c *CreateCustomerCommand) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	c.password = password
	return nil
}

func (c *CreateCustomerCommand) setActor(actor principal.Principal) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
