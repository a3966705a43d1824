package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/hearthbound/armory/internal/catalog"
	"github.com/hearthbound/armory/internal/character"
	"github.com/hearthbound/armory/internal/repository"
)

// SyncCatalog loads, validates, and syncs the item catalog configuration to
// the database. It handles the complete lifecycle: load JSON → validate →
// sync to DB → log results. Entries that already match the stored definition
// are skipped.
func SyncCatalog(ctx context.Context, itemRepo repository.Item, path string) error {
	slog.Info(LogMsgSyncingCatalog)
	loader := catalog.NewLoader()

	catalogConfig, err := loader.Load(path)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}

	if err := loader.Validate(catalogConfig); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgInvalidCatalog, err)
	}

	syncResult, err := loader.SyncToDatabase(ctx, catalogConfig, itemRepo)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedSyncCatalog, err)
	}

	if syncResult.ItemsInserted > 0 || syncResult.ItemsUpdated > 0 {
		slog.Info(LogMsgCatalogSynced,
			"inserted", syncResult.ItemsInserted,
			"updated", syncResult.ItemsUpdated,
			"skipped", syncResult.ItemsSkipped)
	}

	return nil
}

// LoadSessionResolver builds the session resolver from the configured token
// table. A missing file is not fatal: the hub's identity service owns session
// issuance in production, so the static table is a development convenience.
func LoadSessionResolver(path string) (*character.StaticResolver, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		slog.Warn(LogMsgSessionTableMissing, "path", path)
		return character.NewStaticResolver(), nil
	}

	resolver, err := character.NewStaticResolverFromFile(path)
	if err != nil {
		return nil, err
	}

	slog.Info(LogMsgSessionTableLoaded, "path", path)
	return resolver, nil
}
