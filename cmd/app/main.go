package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hearthbound/armory/internal/bootstrap"
	"github.com/hearthbound/armory/internal/catalog"
	"github.com/hearthbound/armory/internal/character"
	"github.com/hearthbound/armory/internal/config"
	"github.com/hearthbound/armory/internal/database"
	"github.com/hearthbound/armory/internal/handler"
	"github.com/hearthbound/armory/internal/inventory"
	"github.com/hearthbound/armory/internal/server"
)

// @title Armory API
// @version 1.0
// @description Inventory and equipment management engine for the Hearthbound hub
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)
	handler.InitValidator()

	dbPool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxIdle, cfg.DBMaxLife)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}

	repos := bootstrap.InitializeRepositories(dbPool)

	// Sync the authored catalog before serving traffic so every lookup
	// resolves against the current definitions
	if err := bootstrap.SyncCatalog(context.Background(), repos.Item, cfg.ItemsConfigPath); err != nil {
		slog.Error("Catalog sync failed", "error", err)
		dbPool.Close()
		os.Exit(1)
	}

	sessionResolver, err := bootstrap.LoadSessionResolver(cfg.SessionsConfigPath)
	if err != nil {
		slog.Error("Session table load failed", "error", err)
		dbPool.Close()
		os.Exit(1)
	}

	itemCatalog := catalog.New(repos.Item)
	inventoryService := inventory.NewService(repos.Inventory, itemCatalog, character.NewGateChecker())

	srv := server.NewServer(cfg.Port, cfg.TrustedProxies, dbPool, inventoryService, sessionResolver)

	// Run the server in a goroutine so shutdown signals can be handled
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		slog.Error("Server failed", "error", err)
		dbPool.Close()
		os.Exit(1)
	case sig := <-quit:
		slog.Info("Shutdown signal received", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(ctx, bootstrap.ShutdownComponents{
		Server: srv,
		DBPool: dbPool,
	})
}
