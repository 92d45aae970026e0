package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"fulfillment/cmd"
	httpin "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/in/ws"
	"fulfillment/internal/adapters/out/postgres/inventoryrepo"
	"fulfillment/internal/adapters/out/postgres/operationrepo"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/adapters/out/postgres/sessionstore"
	"fulfillment/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const defaultStaleMinutes = 30

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB, err := openDB(configs)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err = migrate(gormDB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	root := cmd.NewCompositionRoot(configs, gormDB, logger)

	jobManager := jobs.NewJobManager(root.SessionRegistry(), configs.SessionStaleThreshold, logger)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&root, logger, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file loaded: %v", err)
	}

	staleMinutes := defaultStaleMinutes
	if raw := os.Getenv("SESSION_STALE_MINUTES"); raw != "" {
		if _, err := fmt.Sscanf(raw, "%d", &staleMinutes); err != nil {
			log.Fatalf("SESSION_STALE_MINUTES must be a number: %v", err)
		}
	}

	return cmd.Config{
		HTTPPort:              os.Getenv("HTTP_PORT"),
		DBHost:                os.Getenv("DB_HOST"),
		DBPort:                os.Getenv("DB_PORT"),
		DBUser:                os.Getenv("DB_USER"),
		DBPassword:            os.Getenv("DB_PASSWORD"),
		DBName:                os.Getenv("DB_NAME"),
		DBSslMode:             os.Getenv("DB_SSLMODE"),
		SessionStaleThreshold: time.Duration(staleMinutes) * time.Minute,
	}
}

func openDB(configs cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	return gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.LineDTO{},
		&operationrepo.EntryDTO{},
		&sessionstore.SessionDTO{},
		&inventoryrepo.MovementDTO{},
	)
}

func startWebServer(root *cmd.CompositionRoot, logger *slog.Logger, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	hub := ws.NewHub(logger)
	e.GET("/ws/scans", func(c echo.Context) error {
		hub.Handle(c.Response(), c.Request())
		return nil
	})

	server := httpin.NewServer(httpin.ServerParams{
		AssignCarrier:     root.CreateAssignCarrierCommandHandler(),
		PrintLabel:        root.CreatePrintLabelCommandHandler(),
		StartPreparation:  root.CreateStartPreparationCommandHandler(),
		RecordScan:        root.CreateRecordScanCommandHandler(),
		UpdateSessionInfo: root.CreateUpdateSessionInfoCommandHandler(),
		SavePreparation:   root.CreateSavePreparationCommandHandler(),
		Discard:           root.CreateDiscardPreparationCommandHandler(),
		ShipOrder:         root.CreateShipOrderCommandHandler(),
		ReturnOrder:       root.CreateReturnOrderCommandHandler(),
		RejectOrder:       root.CreateRejectOrderCommandHandler(),
		RetryOrder:        root.CreateRetryOrderCommandHandler(),
		OrdersByStatus:    root.CreateGetOrdersByStatusQueryHandler(),
		OperationLog:      root.CreateGetOperationLogQueryHandler(),
		ActiveSession:     root.CreateGetActiveSessionQueryHandler(),
		ScanFailureStats:  root.CreateGetScanFailureStatsQueryHandler(),
		Feed:              hub,
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
