package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/concily/reconciliation/internal/pkg/config"
	"github.com/concily/reconciliation/internal/pkg/constants"
	"github.com/concily/reconciliation/internal/pkg/database"
	"github.com/concily/reconciliation/internal/pkg/health"
	"github.com/concily/reconciliation/internal/pkg/logger"
	"github.com/concily/reconciliation/internal/pkg/middleware"
	nsqpkg "github.com/concily/reconciliation/internal/pkg/nsq"
	"github.com/concily/reconciliation/internal/pkg/server"
	"github.com/concily/reconciliation/services/reconciliation/gateway"
	"github.com/concily/reconciliation/services/reconciliation/handler"
	nsqHandler "github.com/concily/reconciliation/services/reconciliation/handler/nsq"
	"github.com/concily/reconciliation/services/reconciliation/repository"
	"github.com/concily/reconciliation/services/reconciliation/usecase"
)

func main() {
	appName := "reconciliation-service"
	configs := config.InitConfig(appName)

	appLogger, err := logger.NewAppLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer appLogger.Close()

	appLogger.WithField("app", appName).
		WithField("version", configs.App.Version).
		WithField("environment", configs.App.Environment).
		Info("starting application")

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		appLogger.WithError(err).Fatal("failed to connect to PostgreSQL")
	}

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		appLogger.WithError(err).Fatal("failed to connect to Redis")
	}

	// Initialize NSQ producer
	producer, err := nsqpkg.NewProducer(configs.NSQ.Address, appLogger.Logger)
	if err != nil {
		appLogger.WithError(err).Fatal("failed to connect to NSQ")
	}

	// Initialize repositories
	transactionRepo := repository.NewTransactionRepo(configs, postgresClient.GetDB(), redisClient)
	reportRepo := repository.NewReportRepo(configs, postgresClient.GetDB(), redisClient)

	// Initialize gateway and use case
	reconciliationGW := gateway.NewReconciliationGW(producer)
	reconciliationUC := usecase.NewReconciliationUC(configs, transactionRepo, reportRepo, reconciliationGW, appLogger)

	// Start the local/ERP feed consumer
	localHandler := nsqHandler.NewLocalTransactionHandler(reconciliationUC, appLogger)
	consumer, err := nsqpkg.NewConsumer(
		constants.TopicLocalTransactions,
		configs.NSQ.LocalChannel,
		configs.NSQ.Address,
		appLogger.Logger,
		localHandler.HandleMessage,
	)
	if err != nil {
		appLogger.WithError(err).Fatal("failed to start local transaction consumer")
	}
	if len(configs.NSQ.LookupAddresses) > 0 {
		if err := consumer.ConnectToLookupd(configs.NSQ.LookupAddresses); err != nil {
			appLogger.WithError(err).Fatal("failed to connect to NSQ lookupd")
		}
	}

	// Register component shutdown
	shutdownManager := server.NewShutdownManager(appLogger)
	shutdownManager.Register(func(ctx context.Context) error {
		consumer.Stop()
		return nil
	})
	shutdownManager.Register(func(ctx context.Context) error {
		producer.Stop()
		return nil
	})
	shutdownManager.Register(func(ctx context.Context) error {
		return redisClient.Close()
	})
	shutdownManager.Register(func(ctx context.Context) error {
		return postgresClient.Close()
	})

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware(appLogger))
	e.Use(logger.RequestLoggerMiddleware(appLogger))

	health.RegisterHealthEndpoints(e, appName, configs.App.Version)

	reconciliationHandler := handler.NewReconciliationHandler(configs, reconciliationUC)
	reconciliationHandler.RegisterRoutes(e)

	// Start server and block until shutdown
	shutdownTimeout := time.Duration(configs.Server.ShutdownTimeout) * time.Second
	srv := server.NewGracefulServer(e, appLogger, configs.Server.Port, shutdownTimeout)
	if err := srv.Start(); err != nil {
		appLogger.WithError(err).Error("server stopped with error")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	shutdownManager.Shutdown(ctx)
}
