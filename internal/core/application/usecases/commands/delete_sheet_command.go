package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/principal"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrDeleteSheetCommandIsNotConstructed = errors.New(
	"DeleteSheetCommand must be created via NewDeleteSheetCommand constructor",
)

// DeleteSheetCommand removes a technical sheet and its customer assignments.
type DeleteSheetCommand struct { //nolint:recvcheck //using for validation
	sheetID kernel.UUID
	actor   principal.Principal

	guard guard.ConstructorGuard
}

// NewDeleteSheetCommand creates a command to delete a technical sheet.
func NewDeleteSheetCommand(sheetID kernel.UUID, actor principal.Principal) (DeleteSheetCommand, error) {
	cmd := DeleteSheetCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSheetID(sheetID),
		cmd.setActor(actor),
	); err != nil {
		return DeleteSheetCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteSheetCommand) Validate() error {
	return c.guard.Validate(ErrDeleteSheetCommandIsNotConstructed)
}

// SheetID returns the sheet's identifier.
func (c DeleteSheetCommand) SheetID() kernel.UUID {
	return c.sheetID
}

// Actor returns the authenticated principal issuing the command.
func (c DeleteSheetCommand) Actor() principal.Principal {
	return c.actor
}

func (c *DeleteSheetCommand) setSheetID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("sheetID", err)
	}
	c.sheetID = id
	return nil
}

func (c *DeleteSheetCommand) setActor(actor principal.Principal) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
