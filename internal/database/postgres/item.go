package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hearthbound/armory/internal/domain"
	"github.com/hearthbound/armory/internal/repository"
)

// ItemRepository implements repository.Item for PostgreSQL
type ItemRepository struct {
	db *pgxpool.Pool
}

// NewItemRepository creates a new ItemRepository
func NewItemRepository(db *pgxpool.Pool) repository.Item {
	return &ItemRepository{db: db}
}

const itemColumns = `item_id, display_name, category, weight, size_class,
	rarity, stackable, max_stack, requirements`

// GetItemByID returns nil when no item with the id exists
func (r *ItemRepository) GetItemByID(ctx context.Context, itemID string) (*domain.ItemDefinition, error) {
	query := `
		SELECT ` + itemColumns + `
		FROM items
		WHERE item_id = $1
	`
	def, err := scanItem(r.db.QueryRow(ctx, query, itemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	return def, nil
}

// GetAllItems retrieves the whole catalog
func (r *ItemRepository) GetAllItems(ctx context.Context) ([]domain.ItemDefinition, error) {
	query := `
		SELECT ` + itemColumns + `
		FROM items
		ORDER BY item_id
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get all items: %w", err)
	}
	defer rows.Close()

	var items []domain.ItemDefinition
	for rows.Next() {
		def, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, *def)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read items: %w", err)
	}
	return items, nil
}

// UpsertItem inserts a new catalog entry or overwrites an existing one
func (r *ItemRepository) UpsertItem(ctx context.Context, item domain.ItemDefinition) error {
	reqs, err := json.Marshal(item.Requirements)
	if err != nil {
		return fmt.Errorf("failed to marshal requirements: %w", err)
	}

	query := `
		INSERT INTO items (` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (item_id) DO UPDATE
		SET display_name = EXCLUDED.display_name,
			category = EXCLUDED.category,
			weight = EXCLUDED.weight,
			size_class = EXCLUDED.size_class,
			rarity = EXCLUDED.rarity,
			stackable = EXCLUDED.stackable,
			max_stack = EXCLUDED.max_stack,
			requirements = EXCLUDED.requirements,
			updated_at = NOW()
	`
	_, err = r.db.Exec(ctx, query,
		item.ID, item.DisplayName, item.Category, item.Weight, item.Size,
		item.Rarity, item.Stackable, item.MaxStack, reqs)
	if err != nil {
		return fmt.Errorf("failed to upsert item: %w", err)
	}
	return nil
}

func scanItem(row pgx.Row) (*domain.ItemDefinition, error) {
	var (
		def  domain.ItemDefinition
		reqs []byte
	)
	err := row.Scan(&def.ID, &def.DisplayName, &def.Category, &def.Weight,
		&def.Size, &def.Rarity, &def.Stackable, &def.MaxStack, &reqs)
	if err != nil {
		return nil, err
	}
	if len(reqs) > 0 {
		if err := json.Unmarshal(reqs, &def.Requirements); err != nil {
			return nil, fmt.Errorf("failed to unmarshal requirements: %w", err)
		}
	}
	return &def, nil
}
