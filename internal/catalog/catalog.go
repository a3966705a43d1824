package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/hearthbound/armory/internal/domain"
	"github.com/hearthbound/armory/internal/logger"
	"github.com/hearthbound/armory/internal/repository"
)

const (
	defaultCacheSize = 1024
	defaultCacheTTL  = 10 * time.Minute
)

// Catalog is the read-only item definition lookup. The engine resolves every
// item through it before any allocator or equipment operation; caller-supplied
// weights or stackability are never trusted.
type Catalog interface {
	Lookup(ctx context.Context, itemID string) (*domain.ItemDefinition, error)
}

type catalog struct {
	repo  repository.Item
	cache *expirable.LRU[string, *domain.ItemDefinition]
}

// New creates a catalog backed by the item repository with an in-memory LRU
// in front of it. Definitions are immutable, so cached entries only expire,
// never invalidate.
func New(repo repository.Item) Catalog {
	return &catalog{
		repo:  repo,
		cache: expirable.NewLRU[string, *domain.ItemDefinition](defaultCacheSize, nil, defaultCacheTTL),
	}
}

// Lookup resolves an item definition by id
func (c *catalog) Lookup(ctx context.Context, itemID string) (*domain.ItemDefinition, error) {
	if def, ok := c.cache.Get(itemID); ok {
		return def, nil
	}

	def, err := c.repo.GetItemByID(ctx, itemID)
	if err != nil {
		logger.FromContext(ctx).Error("Failed to look up item", "error", err, "itemID", itemID)
		return nil, fmt.Errorf("%w: lookup %q: %v", domain.ErrDatabaseError, itemID, err)
	}
	if def == nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrItemNotFound, itemID)
	}

	c.cache.Add(itemID, def)
	return def, nil
}
