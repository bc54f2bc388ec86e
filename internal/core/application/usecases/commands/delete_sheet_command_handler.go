package commands

import (
	"context"

	"logistics/internal/pkg/errs"
)

// DeleteSheetCommandHandler handles sheet removal. Admin only.
type DeleteSheetCommandHandler struct {
	uowFactory SheetUoWFactory
}

// NewDeleteSheetCommandHandler creates a handler for sheet removal.
func NewDeleteSheetCommandHandler(uowFactory SheetUoWFactory) DeleteSheetCommandHandler {
	return DeleteSheetCommandHandler{uowFactory: uowFactory}
}

// Handle processes the command. Assignments referencing the sheet go with it;
// the storage layer cascades the link rows.
func (h DeleteSheetCommandHandler) Handle(ctx context.Context, cmd DeleteSheetCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Actor().CanManageSheets() {
		return errs.NewForbiddenError("delete sheet")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.SheetRepository().Get(ctx, cmd.SheetID()); err != nil {
		return err
	}

	if err := uow.SheetRepository().Delete(ctx, cmd.SheetID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
