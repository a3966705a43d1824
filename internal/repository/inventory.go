package repository

import (
	"context"

	"github.com/hearthbound/armory/internal/domain"
)

// Inventory defines the interface for inventory persistence.
// One inventory record per character, with its slot collection embedded.
type Inventory interface {
	// GetByCharacterID returns nil when the character has no inventory yet
	GetByCharacterID(ctx context.Context, characterID string) (*domain.Inventory, error)
	Create(ctx context.Context, inv *domain.Inventory) error

	BeginTx(ctx context.Context) (InventoryTx, error)
}

// InventoryTx scopes an atomic snapshot commit. The coordinator writes the
// whole post-mutation snapshot inside one transaction so no partial state is
// ever observable.
type InventoryTx interface {
	GetByCharacterID(ctx context.Context, characterID string) (*domain.Inventory, error)
	Save(ctx context.Context, inv domain.Inventory) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
