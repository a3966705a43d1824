package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hearthbound/armory/internal/domain"
	"github.com/hearthbound/armory/internal/repository"
)

// InventoryRepository implements repository.Inventory for PostgreSQL.
// Each inventory is one row; the slot collection is a JSONB document so the
// whole snapshot commits atomically in a single statement.
type InventoryRepository struct {
	db *pgxpool.Pool
}

// NewInventoryRepository creates a new InventoryRepository
func NewInventoryRepository(db *pgxpool.Pool) repository.Inventory {
	return &InventoryRepository{db: db}
}

const inventoryColumns = `inventory_id, character_id, max_weight, max_slots,
	current_weight, used_slots, slots, created_at, updated_at`

// GetByCharacterID returns nil when the character has no inventory yet
func (r *InventoryRepository) GetByCharacterID(ctx context.Context, characterID string) (*domain.Inventory, error) {
	query := `
		SELECT ` + inventoryColumns + `
		FROM inventories
		WHERE character_id = $1
	`
	return scanInventory(r.db.QueryRow(ctx, query, characterID))
}

// Create inserts a fresh inventory row
func (r *InventoryRepository) Create(ctx context.Context, inv *domain.Inventory) error {
	slots, err := json.Marshal(slotsOrEmpty(inv.Slots))
	if err != nil {
		return fmt.Errorf("failed to marshal slots: %w", err)
	}

	query := `
		INSERT INTO inventories (` + inventoryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err = r.db.Exec(ctx, query,
		inv.ID, inv.CharacterID, inv.MaxWeight, inv.MaxSlots,
		inv.CurrentWeight, inv.UsedSlots, slots, inv.CreatedAt, inv.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert inventory: %w", err)
	}
	return nil
}

// BeginTx starts a transaction for an atomic snapshot commit
func (r *InventoryRepository) BeginTx(ctx context.Context) (repository.InventoryTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &inventoryTx{tx: tx}, nil
}

type inventoryTx struct {
	tx pgx.Tx
}

func (t *inventoryTx) GetByCharacterID(ctx context.Context, characterID string) (*domain.Inventory, error) {
	query := `
		SELECT ` + inventoryColumns + `
		FROM inventories
		WHERE character_id = $1
		FOR UPDATE
	`
	return scanInventory(t.tx.QueryRow(ctx, query, characterID))
}

// Save writes the whole post-mutation snapshot over the stored row
func (t *inventoryTx) Save(ctx context.Context, inv domain.Inventory) error {
	slots, err := json.Marshal(slotsOrEmpty(inv.Slots))
	if err != nil {
		return fmt.Errorf("failed to marshal slots: %w", err)
	}

	query := `
		UPDATE inventories
		SET current_weight = $1, used_slots = $2, slots = $3, updated_at = $4
		WHERE inventory_id = $5
	`
	tag, err := t.tx.Exec(ctx, query,
		inv.CurrentWeight, inv.UsedSlots, slots, inv.UpdatedAt, inv.ID)
	if err != nil {
		return fmt.Errorf("failed to save inventory: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: inventory %s", domain.ErrInventoryNotFound, inv.ID)
	}
	return nil
}

func (t *inventoryTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *inventoryTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

// scanInventory maps one inventories row, returning (nil, nil) on no rows
func scanInventory(row pgx.Row) (*domain.Inventory, error) {
	var (
		inv       domain.Inventory
		slots     []byte
		createdAt time.Time
		updatedAt time.Time
	)
	err := row.Scan(&inv.ID, &inv.CharacterID, &inv.MaxWeight, &inv.MaxSlots,
		&inv.CurrentWeight, &inv.UsedSlots, &slots, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get inventory: %w", err)
	}

	if err := json.Unmarshal(slots, &inv.Slots); err != nil {
		return nil, fmt.Errorf("failed to unmarshal slots: %w", err)
	}
	inv.CreatedAt = createdAt.UTC()
	inv.UpdatedAt = updatedAt.UTC()
	return &inv, nil
}

// slotsOrEmpty keeps the stored document a JSON array, never null
func slotsOrEmpty(slots []domain.InventorySlot) []domain.InventorySlot {
	if slots == nil {
		return []domain.InventorySlot{}
	}
	return slots
}
