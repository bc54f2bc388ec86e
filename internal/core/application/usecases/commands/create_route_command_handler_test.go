package commands_test

import (
	"context"
	"testing"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/carrier"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testRouteCommand(t *testing.T, orderID, carrierID kernel.UUID) commands.CreateRouteCommand {
	t.Helper()
	cost := 1250.50
	cmd, err := commands.NewCreateRouteCommand(
		orderID, carrierID,
		"Warehouse 4, Valencia", "Calle Mayor 1, Madrid",
		time.Now(), time.Now().Add(48*time.Hour),
		"night delivery",
		&cost,
		logisticsPrincipal(t),
	)
	require.NoError(t, err)
	return cmd
}

func TestCreateRouteCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	carrierID := kernel.NewUUID()
	cmd := testRouteCommand(t, orderID, carrierID)

	testOrder, err := order.NewOrder(orderID, kernel.NewUUID(), kernel.NewUUID(), "TRK-200", "", time.Now())
	require.NoError(t, err)
	testCarrier, err := carrier.NewCarrier(carrierID, "TransIberia", "ops@transiberia.example", time.Now())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	carrierRepo := new(MockCarrierRepository)
	routeRepo := new(MockRouteRepository)
	uow := new(MockRouteUoW)

	uow.On("OrderRepository").Return(orderRepo)
	uow.On("CarrierRepository").Return(carrierRepo)
	uow.On("RouteRepository").Return(routeRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		orderRepo.On("Get", ctx, orderID).Return(testOrder, nil).Once(),
		carrierRepo.On("Get", ctx, carrierID).Return(testCarrier, nil).Once(),
		routeRepo.On("GetByOrder", ctx, orderID).
			Return(nil, errs.NewObjectNotFoundError("orderID", orderID)).Once(),
		routeRepo.On("Add", ctx, mock.AnythingOfType("*route.Route")).Return(nil).Once(),
		carrierRepo.On("Update", ctx, mock.AnythingOfType("*carrier.Carrier")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRouteUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateRouteCommandHandler(factory)
	created, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, orderID, created.OrderID())
	assert.Equal(t, carrierID, created.CarrierID())

	// Carrier switches to "on trip" inside the same transaction.
	assert.Equal(t, carrier.StateOnTrip, testCarrier.State())

	orderRepo.AssertExpectations(t)
	carrierRepo.AssertExpectations(t)
	routeRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateRouteCommandHandler_Handle_DuplicateRoute(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	carrierID := kernel.NewUUID()
	cmd := testRouteCommand(t, orderID, carrierID)

	testOrder, err := order.NewOrder(orderID, kernel.NewUUID(), kernel.NewUUID(), "TRK-201", "", time.Now())
	require.NoError(t, err)
	testCarrier, err := carrier.NewCarrier(carrierID, "TransIberia", "ops@transiberia.example", time.Now())
	require.NoError(t, err)
	existing, err := route.NewRoute(
		kernel.NewUUID(), orderID, kernel.NewUUID(),
		"A", "B", time.Now(), time.Now().Add(time.Hour), "", nil, time.Now(),
	)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	carrierRepo := new(MockCarrierRepository)
	routeRepo := new(MockRouteRepository)
	uow := new(MockRouteUoW)

	uow.On("OrderRepository").Return(orderRepo)
	uow.On("CarrierRepository").Return(carrierRepo)
	uow.On("RouteRepository").Return(routeRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		orderRepo.On("Get", ctx, orderID).Return(testOrder, nil).Once(),
		carrierRepo.On("Get", ctx, carrierID).Return(testCarrier, nil).Once(),
		routeRepo.On("GetByOrder", ctx, orderID).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRouteUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateRouteCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrConflict)

	// No insert, no carrier state change.
	routeRepo.AssertNotCalled(t, "Add", ctx, mock.Anything)
	carrierRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
	assert.Equal(t, carrier.StateAvailable, testCarrier.State())
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestCreateRouteCommandHandler_Handle_CarrierNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	carrierID := kernel.NewUUID()
	cmd := testRouteCommand(t, orderID, carrierID)

	testOrder, err := order.NewOrder(orderID, kernel.NewUUID(), kernel.NewUUID(), "TRK-202", "", time.Now())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	carrierRepo := new(MockCarrierRepository)
	uow := new(MockRouteUoW)

	uow.On("OrderRepository").Return(orderRepo)
	uow.On("CarrierRepository").Return(carrierRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		orderRepo.On("Get", ctx, orderID).Return(testOrder, nil).Once(),
		carrierRepo.On("Get", ctx, carrierID).
			Return(nil, errs.NewObjectNotFoundError("carrierID", carrierID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRouteUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateRouteCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

// MockRouteRepository mocks ports.RouteRepository.
type MockRouteRepository struct{ mock.Mock }

func (m *MockRouteRepository) Add(ctx context.Context, aggregate *route.Route) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockRouteRepository) Update(ctx context.Context, aggregate *route.Route) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockRouteRepository) Get(ctx context.Context, id kernel.UUID) (*route.Route, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*route.Route), args.Error(1)
}

func (m *MockRouteRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) (*route.Route, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*route.Route), args.Error(1)
}

// MockCarrierRepository mocks ports.CarrierRepository.
type MockCarrierRepository struct{ mock.Mock }

func (m *MockCarrierRepository) Add(ctx context.Context, aggregate *carrier.Carrier) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCarrierRepository) Update(ctx context.Context, aggregate *carrier.Carrier) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCarrierRepository) Get(ctx context.Context, id kernel.UUID) (*carrier.Carrier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*carrier.Carrier), args.Error(1)
}

func (m *MockCarrierRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockRouteUoW mocks commands.RouteUoW.
type MockRouteUoW struct{ mock.Mock }

func (m *MockRouteUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRouteUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRouteUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRouteUoW) RouteRepository() ports.RouteRepository {
	args := m.Called()
	return args.Get(0).(ports.RouteRepository)
}

func (m *MockRouteUoW) CarrierRepository() ports.CarrierRepository {
	args := m.Called()
	return args.Get(0).(ports.CarrierRepository)
}

func (m *MockRouteUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

// MockRouteUoWFactory mocks commands.RouteUoWFactory.
type MockRouteUoWFactory struct{ mock.Mock }

func (m *MockRouteUoWFactory) Create() commands.RouteUoW {
	args := m.Called()
	return args.Get(0).(commands.RouteUoW)
}
