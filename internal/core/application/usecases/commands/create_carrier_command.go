package commands

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/principal"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrCreateCarrierCommandIsNotConstructed = errors.New(
	"CreateCarrierCommand must be created via NewCreateCarrierCommand constructor",
)

// CreateCarrierCommand registers a new carrier. New carriers start available.
type CreateCarrierCommand struct { //nolint:recvcheck //using for validation
	name    string
	contact string
	actor   principal.Principal

	guard guard.ConstructorGuard
}

// NewCreateCarrierCommand creates a command to register a carrier.
func NewCreateCarrierCommand(name, contact string, actor principal.Principal) (CreateCarrierCommand, error) {
	cmd := CreateCarrierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setContact(contact),
		cmd.setActor(actor),
	); err != nil {
		return CreateCarrierCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCarrierCommand) Validate() error {
	return c.guard.Validate(ErrCreateCarrierCommandIsNotConstructed)
}

// Name returns the carrier's display name.
func (c CreateCarrierCommand) Name() string {
	return c.name
}

// Contact returns the carrier's contact details.
func (c CreateCarrierCommand) Contact() string {
	return c.contact
}

// Actor returns the authenticated principal issuing the command.
func (c CreateCarrierCommand) Actor() principal.Principal {
	return c.actor
}

func (c *CreateCarrierCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *CreateCarrierCommand) setContact(contact string) error {
	if strings.TrimSpace(contact) == "" {
		return errs.NewValueIsRequiredError("contact")
	}
	c.contact = contact
	return nil
}

func (c *CreateCarrierCommand) setActor(actor principal.Principal) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
