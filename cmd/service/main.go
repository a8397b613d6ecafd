package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/codefly-dev/base-service/internal/api"
	"github.com/codefly-dev/base-service/internal/api/router"
	"github.com/codefly-dev/base-service/internal/config"
	"github.com/codefly-dev/base-service/internal/database"
	"github.com/codefly-dev/base-service/internal/identity"
	"github.com/codefly-dev/base-service/internal/logging"
	"github.com/codefly-dev/base-service/internal/service"
	"github.com/codefly-dev/base-service/internal/telemetry"
)

func main() {
	showVersion := flag.Bool("version", false, "Display version information")
	flag.Parse()

	if *showVersion {
		fmt.Printf("base-service %s (commit: %s, built: %s)\n", Version, GitCommit, BuildTime)
		return
	}

	cfg := config.NewConfig()

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Error("Service failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx := context.Background()

	id, err := identity.Chain{
		identity.NewEnvProvider(),
		identity.NewManifestProvider(cfg.Manifest),
	}.Identity(ctx)
	if err != nil {
		return fmt.Errorf("failed to resolve service identity: %w", err)
	}

	logger.Info("Starting service",
		zap.String("service", id.Name),
		zap.String("version", id.Version),
		zap.String("binary_version", Version),
		zap.String("commit", GitCommit),
	)

	var db database.Database
	switch cfg.DatabaseType {
	case config.DatabaseTypeMemory:
		db = database.NewMemoryDB()
	case config.DatabaseTypeMongoDB:
		cctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		db, err = database.NewMongoDB(cctx, cfg.DatabaseURL, cfg.DatabaseName, cfg.CollectionName, logger)
		if err != nil {
			return fmt.Errorf("failed to connect to MongoDB: %w", err)
		}
	default:
		return fmt.Errorf("invalid database type: %s; supported types: %s, %s",
			cfg.DatabaseType, config.DatabaseTypeMemory, config.DatabaseTypeMongoDB)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("Error closing database connection", zap.Error(err))
		}
	}()

	shutdownTelemetry, metrics, err := telemetry.InitMetrics(id.Name, id.Version)
	if err != nil {
		return fmt.Errorf("failed to initialize metrics: %w", err)
	}
	defer func() {
		if err := shutdownTelemetry(context.Background()); err != nil {
			logger.Warn("Failed to shutdown telemetry", zap.Error(err))
		}
	}()

	server := api.NewServer(cfg, router.Deps{
		Identity: id,
		Items:    service.NewItemService(db),
		Metrics:  metrics,
	}, logger)

	errCh := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-quit:
	}
	logger.Info("Shutting down server")

	sctx, scancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer scancel()

	if err := server.Shutdown(sctx); err != nil {
		logger.Warn("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exiting")
	return nil
}
