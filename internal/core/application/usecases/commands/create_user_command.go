package commands

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/principal"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrCreateUserCommandIsNotConstructed = errors.New(
	"CreateUserCommand must be created via NewCreateUserCommand constructor",
)

// CreateUserCommand registers a staff user with an admin or logistics role.
type CreateUserCommand struct { //nolint:recvcheck //using for validation
	name     string
	email    string
	phone    string
	password string
	role     principal.Role
	actor    principal.Principal

	guard guard.ConstructorGuard
}

// NewCreateUserCommand creates a command to register a staff user.
func NewCreateUserCommand(name, email, phone, password string, role principal.Role, actor principal.Principal) (CreateUserCommand, error) {
	cmd := CreateUserCommand{
		phone: phone,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setEmail(email),
		cmd.setPassword(password),
		cmd.setRole(role),
		cmd.setActor(actor),
	); err != nil {
		return CreateUserCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateUserCommand) Validate() error {
	return c.guard.Validate(ErrCreateUserCommandIsNotConstructed)
}

// Name returns the user's display name.
func (c CreateUserCommand) Name() string {
	return c.name
}

// Email returns the user's login email.
func (c CreateUserCommand) Email() string {
	return c.email
}

// Phone returns the user's phone number.
func (c CreateUserCommand) Phone() string {
	return c.phone
}

// Password returns the initial clear-text password.
func (c CreateUserCommand) Password() string {
	return c.password
}

// Role returns the staff role.
func (c CreateUserCommand) Role() principal.Role {
	return c.role
}

// Actor returns the authenticated principal issuing the command.
func (c CreateUserCommand) Actor() principal.Principal {
	return c.actor
}

func (c *CreateUserCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *CreateUserCommand) setEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = email
	return nil
}

func (c *CreateUserCommand) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	c.password = password
	return nil
}

func (c *CreateUserCommand) setRole(role principal.Role) error {
	if !role.IsStaff() {
		return errs.NewValueIsInvalidError("role")
	}
	c.role = role
	return nil
}

func (c *CreateUserCommand) setActor(actor principal.Principal) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
