package operationrepo_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/operationrepo"
	"fulfillment/internal/core/domain/model/operation"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/session"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OperationLogRepositoryIntegrationTestSuite verifies the append-only log
// against a real PostgreSQL instance.
type OperationLogRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *tcpostgres.PostgresContainer
	db         *gorm.DB
	repository *operationrepo.GormOperationLogRepository
}

func (suite *OperationLogRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
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

	suite.Require().NoError(db.AutoMigrate(&operationrepo.EntryDTO{}))
}

func (suite *OperationLogRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE operation_log").Error)
	suite.repository = operationrepo.NewGormOperationLogRepository(suite.db)
}

func (suite *OperationLogRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OperationLogRepositoryIntegrationTestSuite) pushEntry(
	opType operation.Type, orderCode string,
) {
	entry, err := operation.NewEntry(operation.NewEntryParams{
		Type:      opType,
		OrderCode: orderCode,
		Employee:  "alice",
		Details:   "test entry",
		Result:    operation.ResultSuccess,
	})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Push(context.Background(), entry))
}

func (suite *OperationLogRepositoryIntegrationTestSuite) TestPush_AssignsIdentifier() {
	ctx := context.Background()

	entry, err := operation.NewEntry(operation.NewEntryParams{
		Type:      operation.PrintLabel,
		OrderCode: "ORD-1",
		Employee:  "alice",
		Details:   "label printed",
		Result:    operation.ResultSuccess,
	})
	suite.Require().NoError(err)
	suite.Require().Error(entry.ID().Validate())

	suite.Require().NoError(suite.repository.Push(ctx, entry))
	suite.Require().NoError(entry.ID().Validate())
}

func (suite *OperationLogRepositoryIntegrationTestSuite) TestList_NewestFirst() {
	suite.pushEntry(operation.AssignCarrier, "ORD-1")
	suite.pushEntry(operation.PrintLabel, "ORD-1")
	suite.pushEntry(operation.ShipOrder, "ORD-2")

	entries, err := suite.repository.List(context.Background(), 10)
	suite.Require().NoError(err)
	suite.Require().Len(entries, 3)
	suite.Equal(operation.ShipOrder, entries[0].OperationType())
	suite.Equal(operation.PrintLabel, entries[1].OperationType())
	suite.Equal(operation.AssignCarrier, entries[2].OperationType())
}

func (suite *OperationLogRepositoryIntegrationTestSuite) TestList_RespectsLimit() {
	suite.pushEntry(operation.AssignCarrier, "ORD-1")
	suite.pushEntry(operation.PrintLabel, "ORD-1")

	entries, err := suite.repository.List(context.Background(), 1)
	suite.Require().NoError(err)
	suite.Len(entries, 1)
}

func (suite *OperationLogRepositoryIntegrationTestSuite) TestListByOrder_Filters() {
	suite.pushEntry(operation.AssignCarrier, "ORD-1")
	suite.pushEntry(operation.AssignCarrier, "ORD-2")

	entries, err := suite.repository.ListByOrder(context.Background(), "ORD-2", 10)
	suite.Require().NoError(err)
	suite.Require().Len(entries, 1)
	suite.Equal("ORD-2", entries[0].OrderCode())
}

func (suite *OperationLogRepositoryIntegrationTestSuite) TestPush_RoundTripsPreparedSnapshots() {
	ctx := context.Background()

	line, err := order.RestoreProductLine("SKU-1", "Widget", 2, 2)
	suite.Require().NoError(err)

	entry, err := operation.NewEntry(operation.NewEntryParams{
		Type:      operation.OrderPrepared,
		OrderCode: "ORD-1",
		Carrier:   "DHL",
		Employee:  "alice",
		Details:   "batch committed",
		Result:    operation.ResultSuccess,
		ScanLogs: []session.ScanLogEntry{
			{Success: true, Message: "SKU-1 scanned 1/2", At: time.Now().UTC()},
			{Success: false, Message: "unknown code", Reason: "code not part of this order's products", At: time.Now().UTC()},
		},
		Lines: []order.ProductLine{line},
	})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Push(ctx, entry))

	entries, err := suite.repository.ListByOrder(ctx, "ORD-1", 10)
	suite.Require().NoError(err)
	suite.Require().Len(entries, 1)

	loaded := entries[0]
	suite.Require().Len(loaded.ScanLogs(), 2)
	suite.True(loaded.ScanLogs()[0].Success)
	suite.Equal("code not part of this order's products", loaded.ScanLogs()[1].Reason)

	suite.Require().Len(loaded.Lines(), 1)
	suite.Equal("SKU-1", loaded.Lines()[0].SKU())
	suite.Equal(2, loaded.Lines()[0].ScannedQty())
}

func TestOperationLogRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OperationLogRepositoryIntegrationTestSuite))
}
