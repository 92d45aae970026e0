package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite verifies order persistence against a
// real PostgreSQL instance.
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.LineDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_lines").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(code string) *order.Order {
	lineA, err := order.NewProductLine("SKU-1", "Widget", 2)
	suite.Require().NoError(err)
	lineB, err := order.NewProductLine("SKU-2", "Gadget", 1)
	suite.Require().NoError(err)

	o, err := order.NewOrder(kernel.NewUUID(), code, []order.ProductLine{lineA, lineB})
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()
	testOrder := suite.createTestOrder("ORD-100")

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)

	suite.Require().NoError(suite.db.Model(&orderrepo.LineDTO{}).Count(&count).Error)
	suite.Equal(int64(2), count)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_RoundTripsFullState() {
	ctx := context.Background()
	testOrder := suite.createTestOrder("ORD-101")
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	suite.Require().NoError(testOrder.AssignCarrier("DHL", "TRK-42"))
	suite.Require().NoError(testOrder.PrintLabel())
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.True(loaded.IsEqual(testOrder))
	suite.Equal("ORD-101", loaded.Code())
	suite.Require().NotNil(loaded.Carrier())
	suite.Equal("DHL", *loaded.Carrier())
	suite.Equal("TRK-42", loaded.TrackingCode())
	suite.Equal(order.Preparing, loaded.Status())
	suite.True(loaded.LabelPrinted())
	suite.NotNil(loaded.PrintedAt())
	suite.Len(loaded.Lines(), 2)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	var notFound *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByCode_Success() {
	ctx := context.Background()
	testOrder := suite.createTestOrder("ORD-102")
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	loaded, err := suite.repository.GetByCode(ctx, "ORD-102")
	suite.Require().NoError(err)
	suite.True(loaded.IsEqual(testOrder))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByCode_NotFound() {
	_, err := suite.repository.GetByCode(context.Background(), "ORD-MISSING")

	var notFound *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_ReplacesLineProgress() {
	ctx := context.Background()
	testOrder := suite.createTestOrder("ORD-103")
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	suite.Require().NoError(testOrder.AssignCarrier("UPS", "TRK-7"))
	suite.Require().NoError(testOrder.PrintLabel())
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	scanned := make([]order.ProductLine, 0, len(testOrder.Lines()))
	for _, line := range testOrder.Lines() {
		for !line.Completed() {
			var err error
			line, err = line.Scan()
			suite.Require().NoError(err)
		}
		scanned = append(scanned, line)
	}
	suite.Require().NoError(testOrder.CompletePreparation(scanned))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Prepared, loaded.Status())
	for _, line := range loaded.Lines() {
		suite.Equal(line.RequestedQty(), line.ScannedQty())
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_UnknownOrder_NotFound() {
	testOrder := suite.createTestOrder("ORD-104")

	err := suite.repository.Update(context.Background(), testOrder)
	suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
