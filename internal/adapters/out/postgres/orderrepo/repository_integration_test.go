package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"logistics/internal/adapters/out/postgres/orderrepo"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"
)

// OrderRepositoryIntegrationTestSuite runs the order repository against a
// real PostgreSQL container.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.EventDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_events").Error)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("TRK-1001")

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DuplicateTrackingCode_ReturnsConflictError() {
	ctx := context.Background()

	first := suite.createTestOrder("TRK-2001")
	suite.Require().NoError(suite.repository.Add(ctx, first))

	second := suite.createTestOrder("TRK-2001")
	err := suite.repository.Add(ctx, second)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrConflict)
	suite.assertOrderCount(1)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_RoundTrips() {
	ctx := context.Background()

	original := suite.createTestOrder("TRK-3001")
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal(original.CustomerID(), retrieved.CustomerID())
	suite.Equal(original.UserID(), retrieved.UserID())
	suite.Equal("TRK-3001", retrieved.TrackingCode())
	suite.Equal(order.DefaultState, retrieved.State())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PatchesStateAndDescription() {
	ctx := context.Background()

	original := suite.createTestOrder("TRK-4001")
	suite.Require().NoError(suite.repository.Add(ctx, original))

	state := "in transit"
	description := "fragile cargo"
	suite.Require().NoError(original.ApplyUpdate(&state, &description))
	suite.Require().NoError(suite.repository.Update(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)
	suite.Equal("in transit", retrieved.State())
	suite.Equal("fragile cargo", retrieved.Description())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	err := suite.repository.Update(ctx, suite.createTestOrder("TRK-5001"))

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddEvent_SameDate_KeepsInsertionOrder() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("TRK-6001")
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	// Three events sharing one timestamp; seq must break the tie.
	date := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	types := []string{"picked up", "customs", "out for delivery"}
	for _, eventType := range types {
		event, err := order.NewEvent(
			kernel.NewUUID(), testOrder.ID(), testOrder.UserID(), eventType, nil, date,
		)
		suite.Require().NoError(err)
		suite.Require().NoError(suite.repository.AddEvent(ctx, event))
	}

	var got []string
	err := suite.db.
		Table("order_events").
		Where("order_id = ?", testOrder.ID().Bytes()).
		Order("date ASC, seq ASC").
		Pluck("event_type", &got).Error
	suite.Require().NoError(err)
	suite.Equal(types, got)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_RemovesOrderAfterEvents() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("TRK-7001")
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	note := "left warehouse"
	event, err := order.NewEvent(
		kernel.NewUUID(), testOrder.ID(), testOrder.UserID(), "departed", &note, time.Now().UTC(),
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.AddEvent(ctx, event))

	suite.Require().NoError(suite.repository.DeleteEvents(ctx, testOrder.ID()))
	suite.Require().NoError(suite.repository.Delete(ctx, testOrder.ID()))

	suite.assertOrderCount(0)
	var eventCount int64
	suite.Require().NoError(suite.db.Model(&orderrepo.EventDTO{}).Count(&eventCount).Error)
	suite.Zero(eventCount)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	err := suite.repository.Delete(ctx, kernel.NewUUID())

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(trackingCode string) *order.Order {
	testOrder, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		trackingCode,
		"pallet of machine parts",
		time.Now().UTC(),
	)
	suite.Require().NoError(err)
	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
