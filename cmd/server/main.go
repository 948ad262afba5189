package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/atarek872/Clean-Architecture/internal/app"
	"github.com/atarek872/Clean-Architecture/internal/config"
	"github.com/atarek872/Clean-Architecture/internal/delivery"
	"github.com/atarek872/Clean-Architecture/internal/domain"
	"github.com/atarek872/Clean-Architecture/internal/middleware"
	"github.com/atarek872/Clean-Architecture/internal/repository"
	"github.com/atarek872/Clean-Architecture/pkg/db"
)

func main() {
	logger := setupLogger("info")

	cfg := config.LoadConfig(logger)

	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Warnf("Invalid log level '%s' in config, using default 'info'. Error: %v", cfg.LogLevel, err)
	} else {
		logger.SetLevel(logLevel)
	}
	logger.Info("Starting Catalog Service...")

	// --- Database Connection ---
	sqlDB, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			logger.Errorf("Error closing database connection: %v", err)
		} else {
			logger.Info("Database connection closed.")
		}
	}()
	logger.Info("Database connection established.")

	gormDB, err := db.OpenGORM(sqlDB)
	if err != nil {
		logger.Fatalf("Failed to initialize ORM: %v", err)
	}
	if err := gormDB.AutoMigrate(&domain.Product{}); err != nil {
		logger.Fatalf("Failed to run schema migration: %v", err)
	}
	logger.Info("Schema migration completed.")

	// --- Dependency Injection ---
	productRepo := repository.NewPostgresProductRepository(gormDB, logger)
	application := app.New(productRepo, logger)
	productHandler := delivery.NewProductHandler(application, logger)
	logger.Info("Application layers initialized.")

	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(logger))

	router.GET("/healthz", delivery.HealthCheck)
	productHandler.RegisterRoutes(router)
	logger.Info("API routes registered.")

	srv := &http.Server{
		Addr:    cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		logger.Infof("HTTP server listening on %s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("Failed to serve HTTP: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	logger.Warn("Shutdown signal received...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("HTTP server shutdown error: %v", err)
	} else {
		logger.Info("HTTP server gracefully stopped.")
	}
	logger.Info("Catalog Service shut down gracefully.")
}

func setupLogger(level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	logger.SetOutput(os.Stdout)

	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logger.Warnf("Invalid log level '%s', using default 'info'. Error: %v", level, err)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)
	return logger
}
