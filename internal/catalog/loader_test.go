package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hearthbound/armory/internal/domain"
)

func validConfig() *Config {
	return &Config{
		Version: "1.0",
		Items: []Def{
			{
				ID:          "weapon_iron_sword",
				DisplayName: "Iron Sword",
				Category:    "weapon",
				Weight:      3.5,
				Size:        "medium",
				Rarity:      "COMMON",
			},
			{
				ID:          "consumable_healing_draught",
				DisplayName: "Healing Draught",
				Category:    "consumable",
				Weight:      0.5,
				Size:        "small",
				Rarity:      "COMMON",
				Stackable:   true,
				MaxStack:    10,
			},
		},
	}
}

func TestLoaderLoad(t *testing.T) {
	loader := NewLoader()

	t.Run("Valid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "items.json")
		content := `{
			"version": "1.0",
			"items": [
				{"item_id": "weapon_iron_sword", "display_name": "Iron Sword",
				 "category": "weapon", "weight": 3.5, "size": "medium", "rarity": "COMMON"}
			]
		}`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		config, err := loader.Load(path)
		require.NoError(t, err)
		require.Len(t, config.Items, 1)
		assert.Equal(t, "weapon_iron_sword", config.Items[0].ID)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := loader.Load(filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
	})

	t.Run("Unknown field rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "items.json")
		content := `{"version": "1.0", "items": [{"item_id": "x", "wieght": 3}]}`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		_, err := loader.Load(path)
		assert.Error(t, err)
	})
}

func TestLoaderValidate(t *testing.T) {
	loader := NewLoader()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:   "Valid config",
			mutate: func(c *Config) {},
		},
		{
			name:    "Duplicate item id",
			mutate:  func(c *Config) { c.Items[1].ID = c.Items[0].ID },
			wantErr: ErrDuplicateItemID,
		},
		{
			name:    "Empty id",
			mutate:  func(c *Config) { c.Items[0].ID = "" },
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "Unknown category",
			mutate:  func(c *Config) { c.Items[0].Category = "gadget" },
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "Negative weight",
			mutate:  func(c *Config) { c.Items[0].Weight = -1 },
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "Unknown size class",
			mutate:  func(c *Config) { c.Items[0].Size = "colossal" },
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "Unknown rarity",
			mutate:  func(c *Config) { c.Items[0].Rarity = "MYTHIC" },
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "Stackable without max stack",
			mutate:  func(c *Config) { c.Items[1].MaxStack = 0 },
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "Non-stackable with max stack",
			mutate:  func(c *Config) { c.Items[0].MaxStack = 5 },
			wantErr: ErrInvalidConfig,
		},
		{
			name: "Unknown requirement kind",
			mutate: func(c *Config) {
				c.Items[0].Requirements = []domain.Requirement{{Kind: "alignment"}}
			},
			wantErr: ErrInvalidConfig,
		},
		{
			name: "Valid requirements",
			mutate: func(c *Config) {
				c.Items[0].Requirements = []domain.Requirement{
					{Kind: domain.RequirementProfession, Profession: domain.ProfessionWarrior},
					{Kind: domain.RequirementMinAttribute, Attribute: "strength", Minimum: 12},
					{Kind: domain.RequirementMinLevel, Minimum: 5},
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := validConfig()
			tt.mutate(config)

			err := loader.Validate(config)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}

	t.Run("Nil config", func(t *testing.T) {
		assert.ErrorIs(t, loader.Validate(nil), ErrInvalidConfig)
	})

	t.Run("Empty items", func(t *testing.T) {
		assert.ErrorIs(t, loader.Validate(&Config{Version: "1.0"}), ErrInvalidConfig)
	})
}

func TestLoaderSyncToDatabase(t *testing.T) {
	ctx := context.Background()
	loader := NewLoader()

	t.Run("Fresh database inserts everything", func(t *testing.T) {
		repo := newFakeItemRepo()
		result, err := loader.SyncToDatabase(ctx, validConfig(), repo)
		require.NoError(t, err)
		assert.Equal(t, 2, result.ItemsInserted)
		assert.Equal(t, 0, result.ItemsUpdated)
		assert.Equal(t, 0, result.ItemsSkipped)
	})

	t.Run("Unchanged items are skipped", func(t *testing.T) {
		repo := newFakeItemRepo()
		_, err := loader.SyncToDatabase(ctx, validConfig(), repo)
		require.NoError(t, err)

		result, err := loader.SyncToDatabase(ctx, validConfig(), repo)
		require.NoError(t, err)
		assert.Equal(t, 0, result.ItemsInserted)
		assert.Equal(t, 2, result.ItemsSkipped)
	})

	t.Run("Changed item is updated", func(t *testing.T) {
		repo := newFakeItemRepo()
		_, err := loader.SyncToDatabase(ctx, validConfig(), repo)
		require.NoError(t, err)

		changed := validConfig()
		changed.Items[0].Weight = 4.0
		result, err := loader.SyncToDatabase(ctx, changed, repo)
		require.NoError(t, err)
		assert.Equal(t, 1, result.ItemsUpdated)
		assert.Equal(t, 1, result.ItemsSkipped)
	})
}
