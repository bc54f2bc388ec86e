package commands

import (
	"context"

	"logistics/internal/core/domain/model/sheet"
	"logistics/internal/pkg/errs"
)

// UpdateSheetCommandHandler handles sheet patching. Admin only.
type UpdateSheetCommandHandler struct {
	uowFactory SheetUoWFactory
}

// NewUpdateSheetCommandHandler creates a handler for sheet patching.
func NewUpdateSheetCommandHandler(uowFactory SheetUoWFactory) UpdateSheetCommandHandler {
	return UpdateSheetCommandHandler{uowFactory: uowFactory}
}

// Handle processes the command and returns the updated sheet.
func (h UpdateSheetCommandHandler) Handle(ctx context.Context, cmd UpdateSheetCommand) (*sheet.Sheet, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if !cmd.Actor().CanManageSheets() {
		return nil, errs.NewForbiddenError("update sheet")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	s, err := uow.SheetRepository().Get(ctx, cmd.SheetID())
	if err != nil {
		return nil, err
	}

	if err = s.ApplyUpdate(cmd.Name(), cmd.URL()); err != nil {
		return nil, err
	}

	if err = uow.SheetRepository().Update(ctx, s); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return s, nil
}
