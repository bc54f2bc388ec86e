package commands

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/sheet"
	"logistics/internal/pkg/errs"
)

// CreateSheetCommandHandler handles sheet registration by staff. The actor is
// recorded as the uploader.
type CreateSheetCommandHandler struct {
	uowFactory SheetUoWFactory
}

// NewCreateSheetCommandHandler creates a handler for sheet registration.
func NewCreateSheetCommandHandler(uowFactory SheetUoWFactory) CreateSheetCommandHandler {
	return CreateSheetCommandHandler{uowFactory: uowFactory}
}

// Handle processes the command and returns the created sheet.
func (h CreateSheetCommandHandler) Handle(ctx context.Context, cmd CreateSheetCommand) (*sheet.Sheet, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if !cmd.Actor().CanUploadSheets() {
		return nil, errs.NewForbiddenError("create sheet")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	s, err := sheet.NewSheet(kernel.NewUUID(), cmd.Name(), cmd.URL(), cmd.Actor().ID(), time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err = uow.SheetRepository().Add(ctx, s); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return s, nil
}
