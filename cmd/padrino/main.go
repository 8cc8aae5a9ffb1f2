package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"padrino-pay/internal/config"
	"padrino-pay/internal/database"
	"padrino-pay/internal/infrastructure/backend"
	"padrino-pay/internal/infrastructure/events"
	"padrino-pay/internal/repo"
	"padrino-pay/internal/server"
	"padrino-pay/internal/service"
	"padrino-pay/internal/session"
	"padrino-pay/internal/worker"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	zapConfig := zap.NewProductionConfig()
	zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zapConfig.EncoderConfig.TimeKey = "timestamp"

	logger, err := zapConfig.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create zap logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	logger.Info("Padrino payment service starting...")

	connStr := cfg.GetDBConnectionString()

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := database.NewPostgres(startupCtx, connStr, logger.With(zap.String("component", "Database")))
	cancelStartup()
	if err != nil {
		logger.Fatal("Could not connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Error closing database connection", zap.Error(err))
		} else {
			logger.Info("Database connection closed.")
		}
	}()

	logger.Info("Running database migrations...")
	if err := database.Migrate(connStr, logger); err != nil {
		logger.Fatal("Failed to run database migrations", zap.Error(err))
	}

	publisher := events.NewPublisher(
		cfg.GetKafkaBrokers(),
		cfg.KafkaPaymentEventsTopic,
		logger.With(zap.String("component", "EventPublisher")),
	)
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Error("Error closing event publisher", zap.Error(err))
		}
	}()

	notifier := worker.NewNotifier(cfg.NotifyQueueSize, cfg.NotifyTimeout, logger.With(zap.String("component", "Notifier")))

	paymentService := service.NewPaymentService(
		backend.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout, logger.With(zap.String("component", "BackendClient"))),
		repo.NewAccessoryRepo(db.DB()),
		notifier,
		publisher,
		logger.With(zap.String("component", "PaymentService")),
	)

	gin.SetMode(gin.ReleaseMode)
	handler := server.NewHandler(
		paymentService,
		session.NewResolver(cfg.AllowSimulatedUser, logger.With(zap.String("component", "Session"))),
		db,
		logger.With(zap.String("component", "HTTPHandler")),
	)
	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      server.NewRouter(handler, cfg.CORSOrigins, logger.With(zap.String("component", "HTTP"))),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.HTTPTimeout * 3,
	}

	ctxMain, cancelMain := context.WithCancel(context.Background())
	notifierDone := make(chan struct{})
	go func() {
		defer close(notifierDone)
		notifier.Run(ctxMain)
	}()

	go func() {
		logger.Info("Starting HTTP server", zap.String("address", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	logger.Info("Shutting down application...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server graceful shutdown failed", zap.Error(err))
	} else {
		logger.Info("HTTP server gracefully shut down.")
	}

	// In-flight submissions are done, so the notifier can drain what they queued.
	cancelMain()
	select {
	case <-notifierDone:
	case <-shutdownCtx.Done():
		logger.Warn("Notifier did not drain before the shutdown deadline")
	}

	logger.Info("Application gracefully shut down.")
}
