package domain

import "time"

// EquipmentSlot is a fixed body/loadout location, distinct from a numbered
// slot position. Not a stored entity - a classification attached to an
// InventorySlot while it is equipped.
type EquipmentSlot string

const (
	EquipPrimaryHand   EquipmentSlot = "primary_hand"
	EquipSecondaryHand EquipmentSlot = "secondary_hand"
	EquipHead          EquipmentSlot = "head"
	EquipChest         EquipmentSlot = "chest"
	EquipHands         EquipmentSlot = "hands"
	EquipFeet          EquipmentSlot = "feet"
	EquipAccessory1    EquipmentSlot = "accessory_1"
	EquipAccessory2    EquipmentSlot = "accessory_2"
)

// EquipmentSlots lists every equipment-slot type in display order
var EquipmentSlots = []EquipmentSlot{
	EquipPrimaryHand,
	EquipSecondaryHand,
	EquipHead,
	EquipChest,
	EquipHands,
	EquipFeet,
	EquipAccessory1,
	EquipAccessory2,
}

// ValidEquipmentSlots is the closed set of equipment-slot types
var ValidEquipmentSlots = func() map[EquipmentSlot]bool {
	m := make(map[EquipmentSlot]bool, len(EquipmentSlots))
	for _, s := range EquipmentSlots {
		m[s] = true
	}
	return m
}()

// slotCategories maps each equipment-slot type to the item categories it accepts
var slotCategories = map[EquipmentSlot]map[ItemCategory]bool{
	EquipPrimaryHand:   {CategoryWeapon: true, CategoryTool: true},
	EquipSecondaryHand: {CategoryWeapon: true, CategoryTool: true},
	EquipHead:          {CategoryArmor: true},
	EquipChest:         {CategoryArmor: true},
	EquipHands:         {CategoryArmor: true},
	EquipFeet:          {CategoryArmor: true},
	EquipAccessory1:    {CategoryTreasure: true, CategorySpecial: true},
	EquipAccessory2:    {CategoryTreasure: true, CategorySpecial: true},
}

// Accepts reports whether the equipment-slot type can hold an item of the
// given category.
func (e EquipmentSlot) Accepts(category ItemCategory) bool {
	allowed, ok := slotCategories[e]
	return ok && allowed[category]
}

// InventorySlot is a numbered carrying location within an inventory.
// Position is unique within its inventory and lies in [1, MaxSlots].
// An equipped slot keeps its position and weight; it is only reclassified.
type InventorySlot struct {
	Position      int           `json:"position"`
	ItemID        string        `json:"item_id"`
	Quantity      int           `json:"quantity"`
	Equipped      bool          `json:"equipped,omitempty"`
	EquipmentSlot EquipmentSlot `json:"equipment_slot,omitempty"` // set only while Equipped
}

// Inventory is the per-character carrying state. MaxWeight and MaxSlots are
// frozen at creation by the capacity policy and never resized afterward.
// CurrentWeight and UsedSlots are derived from the slots and maintained by
// every committed mutation.
type Inventory struct {
	ID            string          `json:"inventory_id"`
	CharacterID   string          `json:"character_id"`
	MaxWeight     float64         `json:"max_weight"`
	MaxSlots      int             `json:"max_slots"`
	CurrentWeight float64         `json:"current_weight"`
	UsedSlots     int             `json:"used_slots"`
	Slots         []InventorySlot `json:"slots"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// SlotAt returns the index into Slots for the given position, or -1 when the
// position is vacant.
func (inv *Inventory) SlotAt(position int) int {
	for i := range inv.Slots {
		if inv.Slots[i].Position == position {
			return i
		}
	}
	return -1
}

// EquippedAt returns the index of the slot currently equipped under the given
// equipment-slot type, or -1 when that type is empty.
func (inv *Inventory) EquippedAt(slot EquipmentSlot) int {
	for i := range inv.Slots {
		if inv.Slots[i].Equipped && inv.Slots[i].EquipmentSlot == slot {
			return i
		}
	}
	return -1
}

// FreePositions returns vacant positions in ascending order, at most limit of
// them. Positions are numbered 1..MaxSlots.
func (inv *Inventory) FreePositions(limit int) []int {
	if limit <= 0 {
		return nil
	}
	occupied := make(map[int]bool, len(inv.Slots))
	for i := range inv.Slots {
		occupied[inv.Slots[i].Position] = true
	}
	free := make([]int, 0, limit)
	for pos := 1; pos <= inv.MaxSlots && len(free) < limit; pos++ {
		if !occupied[pos] {
			free = append(free, pos)
		}
	}
	return free
}

// Clone returns a deep copy of the inventory. Mutations are staged on a clone
// so a failed operation leaves the original untouched.
func (inv *Inventory) Clone() *Inventory {
	cloned := *inv
	cloned.Slots = make([]InventorySlot, len(inv.Slots))
	copy(cloned.Slots, inv.Slots)
	return &cloned
}
