package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"reflect"

	"github.com/hearthbound/armory/internal/domain"
	"github.com/hearthbound/armory/internal/logger"
	"github.com/hearthbound/armory/internal/repository"
)

// Sentinel errors for the catalog loader
var (
	ErrDuplicateItemID = errors.New("duplicate item id")
	ErrInvalidConfig   = errors.New("invalid configuration")
)

// Config represents the JSON configuration for the item catalog
type Config struct {
	Version     string `json:"version"`
	Description string `json:"description"`

	Items []Def `json:"items"`
}

// Def represents a single item definition in the JSON
type Def struct {
	ID           string               `json:"item_id"`
	DisplayName  string               `json:"display_name"`
	Category     string               `json:"category"`
	Weight       float64              `json:"weight"`
	Size         string               `json:"size"`
	Rarity       string               `json:"rarity"`
	Stackable    bool                 `json:"stackable"`
	MaxStack     int                  `json:"max_stack,omitempty"`
	Requirements []domain.Requirement `json:"requirements,omitempty"`
}

// SyncResult contains the result of syncing the catalog to the database
type SyncResult struct {
	ItemsInserted int
	ItemsUpdated  int
	ItemsSkipped  int
}

// Loader handles loading, validating, and syncing the item catalog config
type Loader interface {
	Load(path string) (*Config, error)
	Validate(config *Config) error
	SyncToDatabase(ctx context.Context, config *Config, repo repository.Item) (*SyncResult, error)
}

type catalogLoader struct{}

// NewLoader creates a new Loader instance
func NewLoader() Loader {
	return &catalogLoader{}
}

// Load reads and parses an item catalog JSON file. Unknown fields are
// rejected so authoring typos fail loudly at boot instead of silently
// dropping attributes.
func (l *catalogLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog config: %w", err)
	}

	var config Config
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&config); err != nil {
		return nil, fmt.Errorf("failed to parse catalog config: %w", err)
	}

	return &config, nil
}

// Validate checks the catalog configuration for errors
func (l *catalogLoader) Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}
	if len(config.Items) == 0 {
		return fmt.Errorf("%w: no items defined", ErrInvalidConfig)
	}

	seen := make(map[string]bool, len(config.Items))
	for i := range config.Items {
		if err := l.validateItemDef(i, &config.Items[i], seen); err != nil {
			return err
		}
	}
	return nil
}

func (l *catalogLoader) validateItemDef(index int, def *Def, seen map[string]bool) error {
	if def.ID == "" {
		return fmt.Errorf("%w: item %d has empty item_id", ErrInvalidConfig, index)
	}
	if seen[def.ID] {
		return fmt.Errorf("%w: %q", ErrDuplicateItemID, def.ID)
	}
	seen[def.ID] = true

	if def.DisplayName == "" {
		return fmt.Errorf("%w: item %q has empty display_name", ErrInvalidConfig, def.ID)
	}
	if !domain.ValidCategories[domain.ItemCategory(def.Category)] {
		return fmt.Errorf("%w: item %q has unknown category %q", ErrInvalidConfig, def.ID, def.Category)
	}
	if def.Weight < 0 {
		return fmt.Errorf("%w: item %q has negative weight", ErrInvalidConfig, def.ID)
	}
	canonical, ok := domain.SizeClass(def.Size).CanonicalWeight()
	if !ok {
		return fmt.Errorf("%w: item %q has unknown size class %q", ErrInvalidConfig, def.ID, def.Size)
	}
	if !domain.ValidRarities[domain.Rarity(def.Rarity)] {
		return fmt.Errorf("%w: item %q has unknown rarity %q", ErrInvalidConfig, def.ID, def.Rarity)
	}
	if def.Stackable && def.MaxStack < 1 {
		return fmt.Errorf("%w: stackable item %q needs max_stack >= 1", ErrInvalidConfig, def.ID)
	}
	if !def.Stackable && def.MaxStack > 1 {
		return fmt.Errorf("%w: non-stackable item %q declares max_stack %d", ErrInvalidConfig, def.ID, def.MaxStack)
	}

	for ri, req := range def.Requirements {
		switch req.Kind {
		case domain.RequirementProfession:
			if req.Profession == "" {
				return fmt.Errorf("%w: item %q requirement %d has empty profession", ErrInvalidConfig, def.ID, ri)
			}
		case domain.RequirementMinAttribute:
			if req.Attribute == "" || req.Minimum < 1 {
				return fmt.Errorf("%w: item %q requirement %d needs attribute and minimum", ErrInvalidConfig, def.ID, ri)
			}
		case domain.RequirementMinLevel:
			if req.Minimum < 1 {
				return fmt.Errorf("%w: item %q requirement %d needs minimum >= 1", ErrInvalidConfig, def.ID, ri)
			}
		default:
			return fmt.Errorf("%w: item %q requirement %d has unknown kind %q", ErrInvalidConfig, def.ID, ri, req.Kind)
		}
	}

	// The source data carries both a declared weight and a size-class sizing
	// guide and never reconciles them. Declared weight wins; flag authored
	// entries that stray far from the guide instead of silently picking one.
	if def.Weight > canonical*4 {
		slog.Warn("Item weight far exceeds size-class guide",
			"itemID", def.ID, "weight", def.Weight, "size", def.Size, "canonical", canonical)
	}
	if def.Weight == 0 {
		slog.Warn("Item has no declared weight, size-class fallback applies",
			"itemID", def.ID, "size", def.Size, "fallback", canonical)
	}

	return nil
}

// SyncToDatabase upserts the authored catalog into the item repository,
// skipping entries that already match.
func (l *catalogLoader) SyncToDatabase(ctx context.Context, config *Config, repo repository.Item) (*SyncResult, error) {
	log := logger.FromContext(ctx)

	existing, err := repo.GetAllItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch existing items: %w", err)
	}
	byID := make(map[string]domain.ItemDefinition, len(existing))
	for _, item := range existing {
		byID[item.ID] = item
	}

	result := &SyncResult{}
	for i := range config.Items {
		def := toDefinition(&config.Items[i])

		current, found := byID[def.ID]
		if found && reflect.DeepEqual(current, def) {
			result.ItemsSkipped++
			continue
		}

		if err := repo.UpsertItem(ctx, def); err != nil {
			return nil, fmt.Errorf("failed to upsert item %q: %w", def.ID, err)
		}
		if found {
			result.ItemsUpdated++
		} else {
			result.ItemsInserted++
		}
	}

	log.Info("Catalog sync complete",
		"inserted", result.ItemsInserted,
		"updated", result.ItemsUpdated,
		"skipped", result.ItemsSkipped)
	return result, nil
}

func toDefinition(def *Def) domain.ItemDefinition {
	maxStack := def.MaxStack
	if !def.Stackable {
		maxStack = 1
	}
	return domain.ItemDefinition{
		ID:           def.ID,
		DisplayName:  def.DisplayName,
		Category:     domain.ItemCategory(def.Category),
		Weight:       def.Weight,
		Size:         domain.SizeClass(def.Size),
		Rarity:       domain.Rarity(def.Rarity),
		Stackable:    def.Stackable,
		MaxStack:     maxStack,
		Requirements: def.Requirements,
	}
}
