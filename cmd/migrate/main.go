package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/hearthbound/armory/internal/config"
)

const migrationsDir = "migrations"

// Applies database migrations. Usage: migrate [up|down|status]
func main() {
	command := "up"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	db, err := sql.Open("pgx", cfg.GetDBConnString())
	if err != nil {
		slog.Error("Failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		slog.Error("Failed to set dialect", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	if err := goose.RunContext(ctx, command, db, migrationsDir); err != nil {
		slog.Error("Migration failed", "command", command, "error", err)
		os.Exit(1)
	}

	slog.Info("Migrations applied", "command", command)
}
