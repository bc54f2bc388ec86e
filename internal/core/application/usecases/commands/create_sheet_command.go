package commands

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/principal"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrCreateSheetCommandIsNotConstructed = errors.New(
	"CreateSheetCommand must be created via NewCreateSheetCommand constructor",
)

// CreateSheetCommand registers a technical sheet. The sheet itself is stored
// elsewhere; only the name and document URL are kept here.
type CreateSheetCommand struct { //nolint:recvcheck //using for validation
	name  string
	url   string
	actor principal.Principal

	guard guard.ConstructorGuard
}

// NewCreateSheetCommand creates a command to register a technical sheet.
func NewCreateSheetCommand(name, url string, actor principal.Principal) (CreateSheetCommand, error) {
	cmd := CreateSheetCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setURL(url),
		cmd.setActor(actor),
	); err != nil {
		return CreateSheetCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateSheetCommand) Validate() error {
	return c.guard.Validate(ErrCreateSheetCommandIsNotConstructed)
}

// Name returns the sheet's display name.
func (c CreateSheetCommand) Name() string {
	return c.name
}

// URL returns the document location.
func (c CreateSheetCommand) URL() string {
	return c.url
}

// Actor returns the authenticated principal issuing the command.
func (c CreateSheetCommand) Actor() principal.Principal {
	return c.actor
}

func (c *CreateSheetCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *CreateSheetCommand) setURL(url string) error {
	if strings.TrimSpace(url) == "" {
		return errs.NewValueIsRequiredError("url")
	}
	c.url = url
	return nil
}

func (c *CreateSheetCommand) setActor(actor principal.Principal) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
