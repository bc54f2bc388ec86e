package commands

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/principal"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand registers a new order for a customer.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID   kernel.UUID
	trackingCode string
	description  string
	actor        principal.Principal

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// The tracking code is required; the description may be empty.
func NewCreateOrderCommand(customerID kernel.UUID, trackingCode, description string, actor principal.Principal) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setTrackingCode(trackingCode),
		cmd.setActor(actor),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerID returns the owning customer's identifier.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// TrackingCode returns the unique business key for the new order.
func (c CreateOrderCommand) TrackingCode() string {
	return c.trackingCode
}

// Description returns the free-form description.
func (c CreateOrderCommand) Description() string {
	return c.description
}

// Actor returns the authenticated principal issuing the command.
func (c CreateOrderCommand) Actor() principal.Principal {
	return c.actor
}

func (c *CreateOrderCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerID", err)
	}
	c.customerID = id
	return nil
}

func (c *CreateOrderCommand) setTrackingCode(code string) error {
	if strings.TrimSpace(code) == "" {
		return errs.NewValueIsRequiredError("trackingCode")
	}
	c.trackingCode = code
	return nil
}

func (c *CreateOrderCommand) setActor(actor principal.Principal) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
