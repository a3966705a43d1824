package inventory

import (
	"context"

	"github.com/hearthbound/armory/internal/domain"
)

// SlotView is a carried slot joined with its catalog display data
type SlotView struct {
	Position      int                  `json:"position"`
	ItemID        string               `json:"item_id"`
	DisplayName   string               `json:"display_name"`
	Quantity      int                  `json:"quantity"`
	UnitWeight    float64              `json:"unit_weight"`
	Rarity        domain.Rarity        `json:"rarity"`
	Equipped      bool                 `json:"equipped,omitempty"`
	EquipmentSlot domain.EquipmentSlot `json:"equipment_slot,omitempty"`
}

// View is the JSON-shaped inventory snapshot returned by every operation
type View struct {
	InventoryID   string     `json:"inventory_id"`
	CharacterID   string     `json:"character_id"`
	MaxWeight     float64    `json:"max_weight"`
	CurrentWeight float64    `json:"current_weight"`
	MaxSlots      int        `json:"max_slots"`
	UsedSlots     int        `json:"used_slots"`
	Slots         []SlotView `json:"slots"`
}

// Service is the inventory coordinator: the only component that persists
// state, and the unit the HTTP layer talks to. Every mutating call runs under
// the target inventory's exclusion; operations on different inventories never
// block each other.
type Service interface {
	// GetInventory returns the character's inventory, creating an empty one
	// sized by the capacity policy on first access.
	GetInventory(ctx context.Context, ch domain.Character) (*View, error)

	AddItem(ctx context.Context, ch domain.Character, itemID string, quantity int) (*View, error)
	RemoveItem(ctx context.Context, ch domain.Character, slotPosition, quantity int) (*View, error)
	MoveItem(ctx context.Context, ch domain.Character, fromPosition, toPosition int) (*View, error)
	Equip(ctx context.Context, ch domain.Character, slotPosition int, slotType domain.EquipmentSlot) (*View, error)
	Unequip(ctx context.Context, ch domain.Character, slotType domain.EquipmentSlot) (*View, error)
}
