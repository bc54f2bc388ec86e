package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/principal"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrUpdateCarrierCommandIsNotConstructed = errors.New(
	"UpdateCarrierCommand must be created via NewUpdateCarrierCommand constructor",
)

// UpdateCarrierCommand patches a carrier's name, contact and/or state.
// Setting the state here is the manual path back to "available" after a trip;
// no operation flips it back automatically.
type UpdateCarrierCommand struct { //nolint:recvcheck //using for validation
	carrierID kernel.UUID
	name      *string
	contact   *string
	state     *string
	actor     principal.Principal

	guard guard.ConstructorGuard
}

// NewUpdateCarrierCommand creates a command to patch a carrier.
func NewUpdateCarrierCommand(carrierID kernel.UUID, name, contact, state *string, actor principal.Principal) (UpdateCarrierCommand, error) {
	cmd := UpdateCarrierCommand{
		name:    name,
		contact: contact,
		state:   state,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCarrierID(carrierID),
		cmd.setActor(actor),
	); err != nil {
		return UpdateCarrierCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCarrierCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCarrierCommandIsNotConstructed)
}

// CarrierID returns the carrier's identifier.
func (c UpdateCarrierCommand) CarrierID() kernel.UUID {
	return c.carrierID
}

// Name returns the replacement name, or nil when unchanged.
func (c UpdateCarrierCommand) Name() *string {
	return c.name
}

// Contact returns the replacement contact, or nil when unchanged.
func (c UpdateCarrierCommand) Contact() *string {
	return c.contact
}

// State returns the replacement state, or nil when unchanged.
func (c UpdateCarrierCommand) State() *string {
	return c.state
}

// Actor returns the authenticated principal issuing the command.
func (c UpdateCarrierCommand) Actor() principal.Principal {
	return c.actor
}

func (c *UpdateCarrierCommand) setCarrierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("carrierID", err)
	}
	c.carrierID = id
	return nil
}

func (c *UpdateCarrierCommand) setActor(actor principal.Principal) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
