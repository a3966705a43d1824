package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hearthbound/armory/internal/database/postgres"
	"github.com/hearthbound/armory/internal/repository"
)

// Repositories holds all repository implementations used by the application.
// This provides a centralized location for repository initialization and
// makes dependency injection clearer.
type Repositories struct {
	Inventory repository.Inventory
	Item      repository.Item
}

// InitializeRepositories creates all repository implementations.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Inventory: postgres.NewInventoryRepository(dbPool),
		Item:      postgres.NewItemRepository(dbPool),
	}
}
