package inventory

import (
	"fmt"
	"sort"

	"github.com/hearthbound/armory/internal/domain"
)

// Slot allocation over a staged inventory snapshot. Every function here
// validates the whole operation before touching the snapshot: either the full
// requested quantity is placed/removed/moved, or the snapshot is untouched.
// Callers stage on a clone and persist only on success.

// stackTopUp records a planned quantity increase on an existing slot
type stackTopUp struct {
	index int
	add   int
}

// addToInventory places quantity units of the item into the inventory.
// Stackable items top up existing non-equipped stacks in ascending
// slot-position order before new slots are allocated; non-stackable items take
// one slot per unit. Returns the slot positions touched.
func addToInventory(inv *domain.Inventory, def *domain.ItemDefinition, quantity int) ([]int, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", domain.ErrInvalidInput)
	}

	unitWeight := def.EffectiveWeight()
	deltaWeight := unitWeight * float64(quantity)
	if inv.CurrentWeight+deltaWeight > inv.MaxWeight {
		return nil, fmt.Errorf("%w: weight %.2f+%.2f exceeds max %.2f",
			domain.ErrInsufficientCapacity, inv.CurrentWeight, deltaWeight, inv.MaxWeight)
	}

	limit := def.StackLimit()
	remaining := quantity

	// Plan stack top-ups, lowest position first - deterministic placement
	var topUps []stackTopUp
	if def.Stackable {
		for _, i := range slotIndexesByPosition(inv) {
			if remaining == 0 {
				break
			}
			slot := &inv.Slots[i]
			if slot.ItemID != def.ID || slot.Equipped || slot.Quantity >= limit {
				continue
			}
			add := limit - slot.Quantity
			if add > remaining {
				add = remaining
			}
			topUps = append(topUps, stackTopUp{index: i, add: add})
			remaining -= add
		}
	}

	// Plan new slots for the spillover
	newSlots := (remaining + limit - 1) / limit
	if inv.UsedSlots+newSlots > inv.MaxSlots {
		return nil, fmt.Errorf("%w: %d slots used + %d needed exceeds max %d",
			domain.ErrInsufficientCapacity, inv.UsedSlots, newSlots, inv.MaxSlots)
	}
	free := inv.FreePositions(newSlots)
	if len(free) < newSlots {
		return nil, fmt.Errorf("%w: no free positions for %d new slots",
			domain.ErrInsufficientCapacity, newSlots)
	}

	// Commit the plan
	touched := make([]int, 0, len(topUps)+newSlots)
	for _, tu := range topUps {
		inv.Slots[tu.index].Quantity += tu.add
		touched = append(touched, inv.Slots[tu.index].Position)
	}
	for _, pos := range free {
		put := remaining
		if put > limit {
			put = limit
		}
		inv.Slots = append(inv.Slots, domain.InventorySlot{
			Position: pos,
			ItemID:   def.ID,
			Quantity: put,
		})
		touched = append(touched, pos)
		remaining -= put
	}

	sortSlots(inv)
	inv.CurrentWeight += deltaWeight
	inv.UsedSlots = len(inv.Slots)
	sort.Ints(touched)
	return touched, nil
}

// removeFromInventory drains quantity units from the slot at position,
// vacating the slot when it reaches zero. Equipped slots must be unequipped
// before they can be drained.
func removeFromInventory(inv *domain.Inventory, def *domain.ItemDefinition, position, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive", domain.ErrInvalidInput)
	}
	if position < 1 || position > inv.MaxSlots {
		return fmt.Errorf("%w: %d not in [1, %d]", domain.ErrInvalidPosition, position, inv.MaxSlots)
	}

	idx := inv.SlotAt(position)
	if idx == -1 {
		return fmt.Errorf("%w: position %d", domain.ErrSlotEmpty, position)
	}
	slot := &inv.Slots[idx]
	if slot.Equipped {
		return fmt.Errorf("%w: position %d, unequip first", domain.ErrSlotEquipped, position)
	}
	if quantity > slot.Quantity {
		return fmt.Errorf("%w: %d requested, %d present", domain.ErrInsufficientQuantity, quantity, slot.Quantity)
	}

	slot.Quantity -= quantity
	if slot.Quantity == 0 {
		inv.Slots = append(inv.Slots[:idx], inv.Slots[idx+1:]...)
	}

	inv.CurrentWeight -= def.EffectiveWeight() * float64(quantity)
	if inv.CurrentWeight < 0 {
		inv.CurrentWeight = 0
	}
	inv.UsedSlots = len(inv.Slots)
	return nil
}

// moveWithinInventory relocates the slot at from to position to, merging into
// the destination when it holds a stack-compatible partial stack of the same
// item. def is the definition of the item at from.
func moveWithinInventory(inv *domain.Inventory, def *domain.ItemDefinition, from, to int) error {
	if from < 1 || from > inv.MaxSlots || to < 1 || to > inv.MaxSlots {
		return fmt.Errorf("%w: positions must be in [1, %d]", domain.ErrInvalidPosition, inv.MaxSlots)
	}
	if from == to {
		return fmt.Errorf("%w: source and destination are the same", domain.ErrInvalidPosition)
	}

	fromIdx := inv.SlotAt(from)
	if fromIdx == -1 {
		return fmt.Errorf("%w: position %d", domain.ErrSlotEmpty, from)
	}
	if inv.Slots[fromIdx].Equipped {
		return fmt.Errorf("%w: position %d, unequip first", domain.ErrSlotEquipped, from)
	}

	toIdx := inv.SlotAt(to)
	if toIdx == -1 {
		inv.Slots[fromIdx].Position = to
		sortSlots(inv)
		return nil
	}

	dest := &inv.Slots[toIdx]
	src := inv.Slots[fromIdx]
	stackCompatible := !dest.Equipped &&
		dest.ItemID == src.ItemID &&
		def.Stackable &&
		dest.Quantity+src.Quantity <= def.StackLimit()
	if !stackCompatible {
		return fmt.Errorf("%w: position %d", domain.ErrSlotOccupied, to)
	}

	dest.Quantity += src.Quantity
	inv.Slots = append(inv.Slots[:fromIdx], inv.Slots[fromIdx+1:]...)
	inv.UsedSlots = len(inv.Slots)
	return nil
}

// slotIndexesByPosition returns slot indexes ordered by ascending position
func slotIndexesByPosition(inv *domain.Inventory) []int {
	idx := make([]int, len(inv.Slots))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool {
		return inv.Slots[idx[a]].Position < inv.Slots[idx[b]].Position
	})
	return idx
}

func sortSlots(inv *domain.Inventory) {
	sort.Slice(inv.Slots, func(a, b int) bool {
		return inv.Slots[a].Position < inv.Slots[b].Position
	})
}
