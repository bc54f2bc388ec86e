package commands_test

import (
	"context"
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/carrier"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateCarrierCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewCreateCarrierCommand("Andes Freight", "+57 300 000 0000", adminPrincipal(t))
	require.NoError(t, err)

	carrierRepo := new(MockCarrierRepository)
	uow := new(MockCarrierUoW)

	uow.On("CarrierRepository").Return(carrierRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		carrierRepo.On("Add", ctx, mock.AnythingOfType("*carrier.Carrier")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCarrierUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateCarrierCommandHandler(factory)
	created, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, "Andes Freight", created.Name())
	require.Equal(t, carrier.StateAvailable, created.State())
	carrierRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateCarrierCommandHandler_Handle_ForbiddenForLogistics(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewCreateCarrierCommand("Andes Freight", "", logisticsPrincipal(t))
	require.NoError(t, err)

	factory := new(MockCarrierUoWFactory)
	handler := commands.NewCreateCarrierCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrForbidden)
	factory.AssertNotCalled(t, "Create")
}

// MockCarrierUoW mocks commands.CarrierUoW.
type MockCarrierUoW struct{ mock.Mock }

func (m *MockCarrierUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCarrierUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCarrierUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCarrierUoW) CarrierRepository() ports.CarrierRepository {
	args := m.Called()
	return args.Get(0).(ports.CarrierRepository)
}

// MockCarrierUoWFactory mocks commands.CarrierUoWFactory.
type MockCarrierUoWFactory struct{ mock.Mock }

func (m *MockCarrierUoWFactory) Create() commands.CarrierUoW {
	args := m.Called()
	return args.Get(0).(commands.CarrierUoW)
}
