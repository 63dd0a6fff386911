package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mossvale/WildkeeperBot_Go/internal/adventure"
	"github.com/mossvale/WildkeeperBot_Go/internal/catalog"
	"github.com/mossvale/WildkeeperBot_Go/internal/config"
	"github.com/mossvale/WildkeeperBot_Go/internal/database"
	"github.com/mossvale/WildkeeperBot_Go/internal/database/postgres"
	"github.com/mossvale/WildkeeperBot_Go/internal/logger"
	"github.com/mossvale/WildkeeperBot_Go/internal/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	logger.InitLogger(logger.Config{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		ServiceName: logger.DefaultServiceName,
		Version:     cfg.Version,
		Environment: cfg.Environment,
	})

	dbPool, err := database.NewPool(cfg.GetDBConnString(), config.DefaultMaxConnections,
		database.DefaultMaxIdleTime, database.DefaultMaxLifetime)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	characterRepo := postgres.NewCharacterRepository(dbPool)
	catalogRepo := postgres.NewCatalogRepository(dbPool)

	catalogService, err := catalog.NewService(catalogRepo)
	if err != nil {
		slog.Error("Catalog service initialization failed", "error", err)
		os.Exit(1)
	}

	engineCfg, err := adventure.LoadEngineConfig(cfg.EngineConfig)
	if err != nil {
		slog.Error("Engine config load failed", "error", err, "path", cfg.EngineConfig)
		os.Exit(1)
	}
	slog.Info("Engine config loaded", "version", engineCfg.Version, "path", cfg.EngineConfig)

	adventureService := adventure.NewService(characterRepo, catalogService, engineCfg)

	srv := server.NewServer(cfg.Port, cfg.APIKey, nil, dbPool, adventureService, catalogService)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	case sig := <-stop:
		slog.Info("Shutdown signal received", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Stop(ctx); err != nil {
		slog.Error("Server forced to shut down", "error", err)
	}
	slog.Info("Server stopped")
}
