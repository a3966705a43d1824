package repository

import (
	"context"

	"github.com/hearthbound/armory/internal/domain"
)

// Item defines the interface for item catalog persistence
type Item interface {
	// GetItemByID returns nil when no item with the id exists
	GetItemByID(ctx context.Context, itemID string) (*domain.ItemDefinition, error)
	GetAllItems(ctx context.Context) ([]domain.ItemDefinition, error)
	UpsertItem(ctx context.Context, item domain.ItemDefinition) error
}
