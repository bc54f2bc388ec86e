package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/principal"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrUpdateSheetCommandIsNotConstructed = errors.New(
	"UpdateSheetCommand must be created via NewUpdateSheetCommand constructor",
)

// UpdateSheetCommand patches a technical sheet's name and/or document URL.
type UpdateSheetCommand struct { //nolint:recvcheck //using for validation
	sheetID kernel.UUID
	name    *string
	url     *string
	actor   principal.Principal

	guard guard.ConstructorGuard
}

// NewUpdateSheetCommand creates a command to patch a technical sheet.
func NewUpdateSheetCommand(sheetID kernel.UUID, name, url *string, actor principal.Principal) (UpdateSheetCommand, error) {
	cmd := UpdateSheetCommand{
		name:  name,
		url:   url,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSheetID(sheetID),
		cmd.setActor(actor),
	); err != nil {
		return UpdateSheetCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateSheetCommand) Validate() error {
	return c.guard.Validate(ErrUpdateSheetCommandIsNotConstructed)
}

// SheetID returns the sheet's identifier.
func (c UpdateSheetCommand) SheetID() kernel.UUID {
	return c.sheetID
}

// Name returns the replacement name, or nil when unchanged.
func (c UpdateSheetCommand) Name() *string {
	return c.name
}

// URL returns the replacement document URL, or nil when unchanged.
func (c UpdateSheetCommand) URL() *string {
	return c.url
}

// Actor returns the authenticated principal issuing the command.
func (c UpdateSheetCommand) Actor() principal.Principal {
	return c.actor
}

func (c *UpdateSheetCommand) setSheetID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("sheetID", err)
	}
	c.sheetID = id
	return nil
}

func (c *UpdateSheetCommand) setActor(actor principal.Principal) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
