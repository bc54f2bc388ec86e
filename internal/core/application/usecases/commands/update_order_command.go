package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/principal"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand patches an order's state and/or description. Nil fields
// keep their current values; sending neither returns the order unchanged.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	state       *string
	description *string
	actor       principal.Principal

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to patch an order.
func NewUpdateOrderCommand(orderID kernel.UUID, state, description *string, actor principal.Principal) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		state:       state,
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the order's identifier.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// State returns the replacement state, or nil when unchanged.
func (c UpdateOrderCommand) State() *string {
	return c.state
}

// Description returns the replacement description, or nil when unchanged.
func (c UpdateOrderCommand) Description() *string {
	return c.description
}

// Actor returns the authenticated principal issuing the command.
func (c UpdateOrderCommand) Actor() principal.Principal {
	return c.actor
}

func (c *UpdateOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}
	c.orderID = id
	return nil
}

func (c *UpdateOrderCommand) setActor(actor principal.Principal) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
