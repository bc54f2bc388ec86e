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

func TestUpdateCarrierCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	carrierID := kernel.NewUUID()
	contact := "ops@andesfreight.co"

	cmd, err := commands.NewUpdateCarrierCommand(carrierID, nil, &contact, nil, adminPrincipal(t))
	require.NoError(t, err)

	testCarrier, err := carrier.NewCarrier(carrierID, "Andes Freight", "", time.Now())
	require.NoError(t, err)

	carrierRepo := new(MockCarrierRepository)
	uow := new(MockCarrierUoW)

	uow.On("CarrierRepository").Return(carrierRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		carrierRepo.On("Get", ctx, carrierID).Return(testCarrier, nil).Once(),
		carrierRepo.On("Update", ctx, mock.AnythingOfType("*carrier.Carrier")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCarrierUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateCarrierCommandHandler(factory)
	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, "ops@andesfreight.co", updated.Contact())
	require.Equal(t, "Andes Freight", updated.Name())
	carrierRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateCarrierCommandHandler_Handle_ForbiddenForLogistics(t *testing.T) {
	ctx := t.Context()
	name := "Andes Freight"

	cmd, err := commands.NewUpdateCarrierCommand(kernel.NewUUID(), &name, nil, nil, logisticsPrincipal(t))
	require.NoError(t, err)

	factory := new(MockCarrierUoWFactory)
	handler := commands.NewUpdateCarrierCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrForbidden)
	factory.AssertNotCalled(t, "Create")
}
