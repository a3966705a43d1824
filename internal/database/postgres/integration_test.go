package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/hearthbound/armory/internal/database"
	"github.com/hearthbound/armory/internal/domain"
)

// startPostgres spins up a throwaway Postgres container with the schema
// applied, skipping the test when Docker is unavailable.
func startPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	var pgContainer *postgres.PostgresContainer
	var err error
	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Skipf("Skipping integration test due to panic (likely Docker issue): %v", r)
			}
		}()
		pgContainer, err = postgres.Run(ctx,
			"postgres:15-alpine",
			postgres.WithDatabase("testdb"),
			postgres.WithUsername("testuser"),
			postgres.WithPassword("testpass"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(5*time.Second)),
		)
	}()
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}
	if pgContainer == nil {
		return nil
	}
	t.Cleanup(func() {
		if err := pgContainer.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	connString, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := database.NewPool(connString, 5, time.Minute, 5*time.Minute)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, applyMigrations(ctx, t, pool, "../../../migrations"))
	return pool
}

func TestInventoryRepository_Integration(t *testing.T) {
	pool := startPostgres(t)
	ctx := context.Background()
	repo := NewInventoryRepository(pool)

	t.Run("get missing inventory returns nil", func(t *testing.T) {
		inv, err := repo.GetByCharacterID(ctx, "nobody")
		require.NoError(t, err)
		assert.Nil(t, inv)
	})

	now := time.Now().UTC().Truncate(time.Microsecond)
	inv := &domain.Inventory{
		ID:          uuid.NewString(),
		CharacterID: "char-integration",
		MaxWeight:   80,
		MaxSlots:    30,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	t.Run("create and read back", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, inv))

		got, err := repo.GetByCharacterID(ctx, inv.CharacterID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, inv.ID, got.ID)
		assert.InDelta(t, 80.0, got.MaxWeight, 1e-9)
		assert.Equal(t, 30, got.MaxSlots)
		assert.Empty(t, got.Slots)
	})

	t.Run("save snapshot in transaction", func(t *testing.T) {
		tx, err := repo.BeginTx(ctx)
		require.NoError(t, err)

		updated := inv.Clone()
		updated.Slots = []domain.InventorySlot{
			{Position: 1, ItemID: "iron_sword", Quantity: 1, Equipped: true, EquipmentSlot: domain.EquipPrimaryHand},
			{Position: 2, ItemID: "healing_herb", Quantity: 12},
		}
		updated.CurrentWeight = 4.7
		updated.UsedSlots = 2
		updated.UpdatedAt = time.Now().UTC().Truncate(time.Microsecond)

		require.NoError(t, tx.Save(ctx, *updated))
		require.NoError(t, tx.Commit(ctx))

		got, err := repo.GetByCharacterID(ctx, inv.CharacterID)
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Len(t, got.Slots, 2)
		assert.True(t, got.Slots[0].Equipped)
		assert.Equal(t, domain.EquipPrimaryHand, got.Slots[0].EquipmentSlot)
		assert.Equal(t, 12, got.Slots[1].Quantity)
		assert.InDelta(t, 4.7, got.CurrentWeight, 1e-9)
	})

	t.Run("rollback leaves row untouched", func(t *testing.T) {
		tx, err := repo.BeginTx(ctx)
		require.NoError(t, err)

		wiped := inv.Clone()
		wiped.Slots = nil
		wiped.CurrentWeight = 0
		wiped.UsedSlots = 0
		require.NoError(t, tx.Save(ctx, *wiped))
		require.NoError(t, tx.Rollback(ctx))

		got, err := repo.GetByCharacterID(ctx, inv.CharacterID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Len(t, got.Slots, 2)
	})

	t.Run("save unknown inventory", func(t *testing.T) {
		tx, err := repo.BeginTx(ctx)
		require.NoError(t, err)
		defer func() { _ = tx.Rollback(ctx) }()

		ghost := inv.Clone()
		ghost.ID = uuid.NewString()
		err = tx.Save(ctx, *ghost)
		require.ErrorIs(t, err, domain.ErrInventoryNotFound)
	})
}

func TestItemRepository_Integration(t *testing.T) {
	pool := startPostgres(t)
	ctx := context.Background()
	repo := NewItemRepository(pool)

	def := domain.ItemDefinition{
		ID:          "rusty_dagger",
		DisplayName: "Rusty Dagger",
		Category:    domain.CategoryWeapon,
		Weight:      0.8,
		Size:        domain.SizeSmall,
		Rarity:      domain.RarityCommon,
		Requirements: []domain.Requirement{
			{Kind: domain.RequirementMinLevel, Minimum: 2},
		},
	}

	t.Run("missing item returns nil", func(t *testing.T) {
		got, err := repo.GetItemByID(ctx, "rusty_dagger")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("upsert and read back", func(t *testing.T) {
		require.NoError(t, repo.UpsertItem(ctx, def))

		got, err := repo.GetItemByID(ctx, def.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, def.DisplayName, got.DisplayName)
		assert.Equal(t, def.Category, got.Category)
		require.Len(t, got.Requirements, 1)
		assert.Equal(t, domain.RequirementMinLevel, got.Requirements[0].Kind)
	})

	t.Run("upsert overwrites", func(t *testing.T) {
		def.Rarity = domain.RarityUncommon
		def.Weight = 0.9
		require.NoError(t, repo.UpsertItem(ctx, def))

		got, err := repo.GetItemByID(ctx, def.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, domain.RarityUncommon, got.Rarity)
		assert.InDelta(t, 0.9, got.Weight, 1e-9)
	})

	t.Run("get all items is ordered", func(t *testing.T) {
		require.NoError(t, repo.UpsertItem(ctx, domain.ItemDefinition{
			ID: "apple", DisplayName: "Apple", Category: domain.CategoryConsumable,
			Weight: 0.2, Size: domain.SizeSmall, Rarity: domain.RarityCommon,
			Stackable: true, MaxStack: 10,
		}))

		items, err := repo.GetAllItems(ctx)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "apple", items[0].ID)
		assert.Equal(t, "rusty_dagger", items[1].ID)
	})
}
