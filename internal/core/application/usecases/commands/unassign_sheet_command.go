package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/principal"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrUnassignSheetCommandIsNotConstructed = errors.New(
	"UnassignSheetCommand must be created via NewUnassignSheetCommand constructor",
)

// UnassignSheetCommand removes the link between a technical sheet and a
// customer. The sheet itself stays untouched.
type UnassignSheetCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	sheetID    kernel.UUID
	actor      principal.Principal

	guard guard.ConstructorGuard
}

// NewUnassignSheetCommand creates a command to remove a sheet assignment.
func NewUnassignSheetCommand(customerID, sheetID kernel.UUID, actor principal.Principal) (UnassignSheetCommand, error) {
	cmd := UnassignSheetCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setSheetID(sheetID),
		cmd.setActor(actor),
	); err != nil {
		return UnassignSheetCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UnassignSheetCommand) Validate() error {
	return c.guard.Validate(ErrUnassignSheetCommandIsNotConstructed)
}

// CustomerID returns the customer losing access to the sheet.
func (c UnassignSheetCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// SheetID returns the sheet's identifier.
func (c UnassignSheetCommand) SheetID() kernel.UUID {
	return c.sheetID
}

// Actor returns the authenticated principal issuing the command.
func (c UnassignSheetCommand) Actor() principal.Principal {
	return c.actor
}

func (c *UnassignSheetCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerID", err)
	}
	c.customerID = id
	return nil
}

func (c *UnassignSheetCommand) setSheetID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("sheetID", err)
	}
	c.sheetID = id
	return nil
}

func (c *UnassignSheetCommand) setActor(actor principal.Principal) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
