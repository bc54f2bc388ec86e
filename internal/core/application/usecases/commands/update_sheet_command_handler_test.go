package commands_test

import (
	"testing"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/sheet"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateSheetCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	sheetID := kernel.NewUUID()
	name := "Hazmat handling"

	cmd, err := commands.NewUpdateSheetCommand(sheetID, &name, nil, adminPrincipal(t))
	require.NoError(t, err)

	testSheet, err := sheet.NewSheet(sheetID, "Cold chain handling", "https://docs.example.com/x.pdf", kernel.NewUUID(), time.Now())
	require.NoError(t, err)

	sheetRepo := new(MockSheetRepository)
	uow := new(MockSheetUoW)

	uow.On("SheetRepository").Return(sheetRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		sheetRepo.On("Get", ctx, sheetID).Return(testSheet, nil).Once(),
		sheetRepo.On("Update", ctx, mock.AnythingOfType("*sheet.Sheet")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSheetUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateSheetCommandHandler(factory)
	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, "Hazmat handling", updated.Name())
	require.Equal(t, "https://docs.example.com/x.pdf", updated.URL())
	sheetRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateSheetCommandHandler_Handle_ForbiddenForLogistics(t *testing.T) {
	ctx := t.Context()
	name := "Hazmat handling"

	cmd, err := commands.NewUpdateSheetCommand(kernel.NewUUID(), &name, nil, logisticsPrincipal(t))
	require.NoError(t, err)

	factory := new(MockSheetUoWFactory)
	handler := commands.NewUpdateSheetCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrForbidden)
	factory.AssertNotCalled(t, "Create")
}
