package commands

import (
	"context"

	"logistics/internal/pkg/errs"
)

// UnassignSheetCommandHandler handles assignment removal by staff.
type UnassignSheetCommandHandler struct {
	uowFactory SheetUoWFactory
}

// NewUnassignSheetCommandHandler creates a handler for assignment removal.
func NewUnassignSheetCommandHandler(uowFactory SheetUoWFactory) UnassignSheetCommandHandler {
	return UnassignSheetCommandHandler{uowFactory: uowFactory}
}

// Handle processes the command. A missing assignment surfaces as an
// ObjectNotFoundError from the repository.
func (h UnassignSheetCommandHandler) Handle(ctx context.Context, cmd UnassignSheetCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Actor().CanUploadSheets() {
		return errs.NewForbiddenError("unassign sheet")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.SheetRepository().Unassign(ctx, cmd.CustomerID(), cmd.SheetID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
