package commands

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/sheet"
	"logistics/internal/pkg/errs"
)

// AssignSheetCommandHandler handles sheet assignment by staff.
type AssignSheetCommandHandler struct {
	uowFactory SheetUoWFactory
}

// NewAssignSheetCommandHandler creates a handler for sheet assignment.
func NewAssignSheetCommandHandler(uowFactory SheetUoWFactory) AssignSheetCommandHandler {
	return AssignSheetCommandHandler{uowFactory: uowFactory}
}

// Handle processes the command. Both the customer and the sheet must exist;
// a repeated pair surfaces as a ConflictError from the link table's composite
// uniqueness constraint.
func (h AssignSheetCommandHandler) Handle(ctx context.Context, cmd AssignSheetCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Actor().CanUploadSheets() {
		return errs.NewForbiddenError("assign sheet")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID()); err != nil {
		return err
	}

	if _, err := uow.SheetRepository().Get(ctx, cmd.SheetID()); err != nil {
		return err
	}

	assignment := sheet.Assignment{
		CustomerID: cmd.CustomerID(),
		SheetID:    cmd.SheetID(),
		AssignedAt: time.Now().UTC(),
	}

	if err := uow.SheetRepository().Assign(ctx, assignment); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
