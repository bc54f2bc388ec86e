package commands_test

import (
	"testing"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/carrier"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteCarrierCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	carrierID := kernel.NewUUID()

	cmd, err := commands.NewDeleteCarrierCommand(carrierID, adminPrincipal(t))
	require.NoError(t, err)

	testCarrier, err := carrier.NewCarrier(carrierID, "Andes Freight", "", time.Now())
	require.NoError(t, err)

	carrierRepo := new(MockCarrierRepository)
	uow := new(MockCarrierUoW)

	uow.On("CarrierRepository").Return(carrierRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		carrierRepo.On("Get", ctx, carrierID).Return(testCarrier, nil).Once(),
		carrierRepo.On("Delete", ctx, carrierID).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCarrierUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeleteCarrierCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	carrierRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDeleteCarrierCommandHandler_Handle_ForbiddenForLogistics(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewDeleteCarrierCommand(kernel.NewUUID(), logisticsPrincipal(t))
	require.NoError(t, err)

	factory := new(MockCarrierUoWFactory)
	handler := commands.NewDeleteCarrierCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrForbidden)
	factory.AssertNotCalled(t, "Create")
}
