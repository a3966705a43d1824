package inventory

import (
	"fmt"

	"github.com/hearthbound/armory/internal/character"
	"github.com/hearthbound/armory/internal/domain"
)

// Equipment state machine over a staged inventory snapshot. Each
// equipment-slot type is either empty or occupied by exactly one inventory
// slot. Equipping reclassifies the carried slot in place - the item keeps its
// position and keeps counting against weight and slot budgets.

// equipInSlot marks the item at sourcePosition as worn under slotType.
// def is the definition of the item at sourcePosition.
func equipInSlot(inv *domain.Inventory, def *domain.ItemDefinition, ch domain.Character,
	checker character.RequirementsChecker, sourcePosition int, slotType domain.EquipmentSlot) error {

	if sourcePosition < 1 || sourcePosition > inv.MaxSlots {
		return fmt.Errorf("%w: %d not in [1, %d]", domain.ErrInvalidPosition, sourcePosition, inv.MaxSlots)
	}
	if !domain.ValidEquipmentSlots[slotType] {
		return fmt.Errorf("%w: unknown equipment slot %q", domain.ErrInvalidInput, slotType)
	}

	idx := inv.SlotAt(sourcePosition)
	if idx == -1 {
		return fmt.Errorf("%w: position %d", domain.ErrSlotEmpty, sourcePosition)
	}
	slot := &inv.Slots[idx]
	if slot.Equipped {
		return fmt.Errorf("%w: position %d worn at %s", domain.ErrAlreadyEquipped, sourcePosition, slot.EquipmentSlot)
	}
	if !slotType.Accepts(def.Category) {
		return fmt.Errorf("%w: %s cannot go in %s", domain.ErrIncompatibleSlot, def.Category, slotType)
	}
	if !checker.Check(def, ch) {
		return fmt.Errorf("%w: item %q", domain.ErrRequirementsNotMet, def.ID)
	}

	// No implicit swap: callers must unequip first
	if inv.EquippedAt(slotType) != -1 {
		return fmt.Errorf("%w: %s", domain.ErrEquipmentSlotOccupied, slotType)
	}

	slot.Equipped = true
	slot.EquipmentSlot = slotType
	return nil
}

// unequipFromSlot clears the equipment-slot type, returning its slot to plain
// carried state.
func unequipFromSlot(inv *domain.Inventory, slotType domain.EquipmentSlot) error {
	if !domain.ValidEquipmentSlots[slotType] {
		return fmt.Errorf("%w: unknown equipment slot %q", domain.ErrInvalidInput, slotType)
	}

	idx := inv.EquippedAt(slotType)
	if idx == -1 {
		return fmt.Errorf("%w: %s", domain.ErrEquipmentSlotEmpty, slotType)
	}

	inv.Slots[idx].Equipped = false
	inv.Slots[idx].EquipmentSlot = ""
	return nil
}
