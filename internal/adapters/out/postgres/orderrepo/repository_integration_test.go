package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"ecofleet/internal/adapters/out/postgres/orderrepo"
	"ecofleet/internal/core/domain/model/kernel"
	"ecofleet/internal/core/domain/model/order"
	"ecofleet/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE delivery_orders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) newOrder() *order.DeliveryOrder {
	pickup, err := kernel.NewGeoPoint(-23.55052, -46.63331)
	suite.Require().NoError(err)
	dropoff, err := kernel.NewGeoPoint(-23.56168, -46.65598)
	suite.Require().NoError(err)

	deadline := time.Now().UTC().Add(2 * time.Hour).Truncate(time.Microsecond)
	o, err := order.NewDeliveryOrder(kernel.NewUUID(), "Farmacia Sao Joao", pickup, dropoff, deadline)
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_RoundTrip() {
	ctx := context.Background()
	o := suite.newOrder()
	driverID := kernel.NewUUID()
	suite.Require().NoError(o.AssignDriver(&driverID))
	suite.Require().NoError(o.ChangeStatus(order.InTransit))
	suite.tracker.On("TrackAggregate", o.ID(), o).Once()

	suite.Require().NoError(suite.repository.Add(ctx, o))

	stored, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal("Farmacia Sao Joao", stored.ClientName())
	suite.Equal(order.InTransit, stored.Status())
	suite.True(stored.Pickup().IsEqual(o.Pickup()))
	suite.True(stored.Dropoff().IsEqual(o.Dropoff()))
	suite.WithinDuration(o.Deadline(), stored.Deadline(), time.Millisecond)
	suite.Require().NotNil(stored.DriverID())
	suite.True(stored.DriverID().IsEqual(driverID))
	suite.Nil(stored.VehicleID())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_ClearsDriver() {
	ctx := context.Background()
	o := suite.newOrder()
	driverID := kernel.NewUUID()
	suite.Require().NoError(o.AssignDriver(&driverID))
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, o))

	suite.Require().NoError(o.AssignDriver(nil))
	suite.Require().NoError(o.ChangeStatus(order.Cancelled))
	suite.Require().NoError(suite.repository.Update(ctx, o))

	stored, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Nil(stored.DriverID(), "driver must be written as NULL")
	suite.Equal(order.Cancelled, stored.Status())
	suite.tracker.AssertNumberOfCalls(suite.T(), "TrackAggregate", 2)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_MissingOrder() {
	o := suite.newOrder()

	err := suite.repository.Update(context.Background(), o)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.tracker.AssertNotCalled(suite.T(), "TrackAggregate", mock.Anything, mock.Anything)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_RejectsUnconstructedOrder() {
	err := suite.repository.Add(context.Background(), &order.DeliveryOrder{})

	suite.Require().ErrorIs(err, order.ErrOrderIsNotConstructed)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
