package commands

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/principal"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrAddOrderEventCommandIsNotConstructed = errors.New(
	"AddOrderEventCommand must be created via NewAddOrderEventCommand constructor",
)

// AddOrderEventCommand appends a timeline entry to an order's event log.
// Events do not modify the order's own state field.
type AddOrderEventCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	eventType string
	note      *string
	actor     principal.Principal

	guard guard.ConstructorGuard
}

// NewAddOrderEventCommand creates a command to append an order event.
func NewAddOrderEventCommand(orderID kernel.UUID, eventType string, note *string, actor principal.Principal) (AddOrderEventCommand, error) {
	cmd := AddOrderEventCommand{
		note:  note,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setEventType(eventType),
		cmd.setActor(actor),
	); err != nil {
		return AddOrderEventCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddOrderEventCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderEventCommandIsNotConstructed)
}

// OrderID returns the order's identifier.
func (c AddOrderEventCommand) OrderID() kernel.UUID {
	return c.orderID
}

// EventType returns the event's kind label.
func (c AddOrderEventCommand) EventType() string {
	return c.eventType
}

// Note returns the optional free-form note.
func (c AddOrderEventCommand) Note() *string {
	return c.note
}

// Actor returns the authenticated principal issuing the command.
func (c AddOrderEventCommand) Actor() principal.Principal {
	return c.actor
}

func (c *AddOrderEventCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}
	c.orderID = id
	return nil
}

func (c *AddOrderEventCommand) setEventType(eventType string) error {
	if strings.TrimSpace(eventType) == "" {
		return errs.NewValueIsRequiredError("eventType")
	}
	c.eventType = eventType
	return nil
}

func (c *AddOrderEventCommand) setActor(actor principal.Principal) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
