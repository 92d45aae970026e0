package sessionstore_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/sessionstore"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/session"
	"fulfillment/internal/core/domain/services"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// SessionStoreIntegrationTestSuite verifies the durable session slot
// against a real PostgreSQL instance.
type SessionStoreIntegrationTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
	store     *sessionstore.GormSessionStore
}

func (suite *SessionStoreIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&sessionstore.SessionDTO{}))
}

func (suite *SessionStoreIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE preparation_sessions").Error)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	suite.store = sessionstore.NewGormSessionStore(suite.db, logger)
}

func (suite *SessionStoreIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *SessionStoreIntegrationTestSuite) createTestSession() *session.PreparationSession {
	line, err := order.NewProductLine("SKU-1", "Widget", 2)
	suite.Require().NoError(err)

	o, err := order.NewOrder(kernel.NewUUID(), "ORD-1", []order.ProductLine{line})
	suite.Require().NoError(err)

	sess, err := session.NewPreparationSession([]*order.Order{o}, "alice")
	suite.Require().NoError(err)
	return sess
}

func (suite *SessionStoreIntegrationTestSuite) TestLoad_EmptySlot_ReturnsNil() {
	sess, err := suite.store.Load(context.Background())
	suite.Require().NoError(err)
	suite.Nil(sess)
}

func (suite *SessionStoreIntegrationTestSuite) TestSaveLoad_RoundTripsScanProgress() {
	ctx := context.Background()
	sess := suite.createTestSession()
	matcher := services.NewScanMatcher()

	// One order scan, one product scan, one failure.
	_, err := sess.RecordScan("ORD-1", matcher)
	suite.Require().NoError(err)
	_, err = sess.RecordScan("SKU-1", matcher)
	suite.Require().NoError(err)
	_, err = sess.RecordScan("SKU-MISSING", matcher)
	suite.Require().NoError(err)
	sess.SetNotes("first wave")

	suite.Require().NoError(suite.store.Save(ctx, sess))

	loaded, err := suite.store.Load(ctx)
	suite.Require().NoError(err)
	suite.Require().NotNil(loaded)

	suite.Equal([]string{"ORD-1"}, loaded.OrderCodes())
	suite.Equal("alice", loaded.Operator())
	suite.Equal("first wave", loaded.Notes())

	state, ok := loaded.State("ORD-1")
	suite.Require().True(ok)
	suite.True(state.OrderScanned())
	suite.Len(state.ScanLogs(), 3)

	line, ok := state.Line("SKU-1")
	suite.Require().True(ok)
	suite.Equal(1, line.ScannedQty())
}

func (suite *SessionStoreIntegrationTestSuite) TestSave_ReplacesPriorSlot() {
	ctx := context.Background()
	sess := suite.createTestSession()

	suite.Require().NoError(suite.store.Save(ctx, sess))
	sess.SetOperator("bob")
	suite.Require().NoError(suite.store.Save(ctx, sess))

	var count int64
	suite.Require().NoError(suite.db.Model(&sessionstore.SessionDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)

	loaded, err := suite.store.Load(ctx)
	suite.Require().NoError(err)
	suite.Equal("bob", loaded.Operator())
}

func (suite *SessionStoreIntegrationTestSuite) TestLoad_CorruptPayload_ReturnsNil() {
	ctx := context.Background()
	// Well-formed jsonb that no longer matches the session shape.
	suite.Require().NoError(
		suite.db.Exec(`INSERT INTO preparation_sessions (id, payload, saved_at) VALUES (1, '{}'::jsonb, now())`).Error)

	sess, err := suite.store.Load(ctx)
	suite.Require().NoError(err)
	suite.Nil(sess)
}

func (suite *SessionStoreIntegrationTestSuite) TestClear_EmptiesSlot() {
	ctx := context.Background()
	suite.Require().NoError(suite.store.Save(ctx, suite.createTestSession()))

	suite.Require().NoError(suite.store.Clear(ctx))
	suite.Require().NoError(suite.store.Clear(ctx))

	sess, err := suite.store.Load(ctx)
	suite.Require().NoError(err)
	suite.Nil(sess)
}

func TestSessionStoreIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(SessionStoreIntegrationTestSuite))
}
