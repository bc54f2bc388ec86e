package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/principal"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrAssignSheetCommandIsNotConstructed = errors.New(
	"AssignSheetCommand must be created via NewAssignSheetCommand constructor",
)

// AssignSheetCommand links a technical sheet to a customer so the customer
// can see it. The same sheet can be assigned to many customers, but only once
// to each.
type AssignSheetCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	sheetID    kernel.UUID
	actor      principal.Principal

	guard guard.ConstructorGuard
}

// NewAssignSheetCommand creates a command to assign a sheet to a customer.
func NewAssignSheetCommand(customerID, sheetID kernel.UUID, actor principal.Principal) (AssignSheetCommand, error) {
	cmd := AssignSheetCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setSheetID(sheetID),
		cmd.setActor(actor),
	); err != nil {
		return AssignSheetCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignSheetCommand) Validate() error {
	return c.guard.Validate(ErrAssignSheetCommandIsNotConstructed)
}

// CustomerID returns the receiving customer's identifier.
func (c AssignSheetCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// SheetID returns the sheet's identifier.
func (c AssignSheetCommand) SheetID() kernel.UUID {
	return c.sheetID
}

// Actor returns the authenticated principal issuing the command.
func (c AssignSheetCommand) Actor() principal.Principal {
	return c.actor
}

func (c *AssignSheetCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerID", err)
	}
	c.customerID = id
	return nil
}

func (c *AssignSheetCommand) setSheetID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("sheetID", err)
	}
	c.sheetID = id
	return nil
}

func (c *AssignSheetCommand) setActor(actor principal.Principal) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
