package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/principal"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrDeleteCarrierCommandIsNotConstructed = errors.New(
	"DeleteCarrierCommand must be created via NewDeleteCarrierCommand constructor",
)

// DeleteCarrierCommand removes a carrier from the registry.
type DeleteCarrierCommand struct { //nolint:recvcheck //using for validation
	carrierID kernel.UUID
	actor     principal.Principal

	guard guard.ConstructorGuard
}

// NewDeleteCarrierCommand creates a command to delete a carrier.
func NewDeleteCarrierCommand(carrierID kernel.UUID, actor principal.Principal) (DeleteCarrierCommand, error) {
	cmd := DeleteCarrierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCarrierID(carrierID),
		cmd.setActor(actor),
	); err != nil {
		return DeleteCarrierCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteCarrierCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCarrierCommandIsNotConstructed)
}

// CarrierID returns the carrier's identifier.
func (c DeleteCarrierCommand) CarrierID() kernel.UUID {
	return c.carrierID
}

// Actor returns the authenticated principal issuing the command.
func (c DeleteCarrierCommand) Actor() principal.Principal {
	return c.actor
}

func (c *DeleteCarrierCommand) setCarrierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("carrierID", err)
	}
	c.carrierID = id
	return nil
}

func (c *DeleteCarrierCommand) setActor(actor principal.Principal) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
