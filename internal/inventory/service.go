package inventory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hearthbound/armory/internal/capacity"
	"github.com/hearthbound/armory/internal/catalog"
	"github.com/hearthbound/armory/internal/character"
	"github.com/hearthbound/armory/internal/concurrency"
	"github.com/hearthbound/armory/internal/domain"
	"github.com/hearthbound/armory/internal/logger"
	"github.com/hearthbound/armory/internal/metrics"
	"github.com/hearthbound/armory/internal/repository"
)

type service struct {
	repo    repository.Inventory
	catalog catalog.Catalog
	checker character.RequirementsChecker
	locks   *concurrency.LockManager
}

// NewService creates the inventory coordinator
func NewService(repo repository.Inventory, cat catalog.Catalog, checker character.RequirementsChecker) Service {
	return &service{
		repo:    repo,
		catalog: cat,
		checker: checker,
		locks:   concurrency.NewLockManager(),
	}
}

// GetInventory returns the character's inventory, creating it on first access
func (s *service) GetInventory(ctx context.Context, ch domain.Character) (*View, error) {
	inv, err := s.repo.GetByCharacterID(ctx, ch.ID)
	if err != nil {
		logger.FromContext(ctx).Error("Failed to get inventory", "error", err, "characterID", ch.ID)
		return nil, fmt.Errorf("%w: %v", domain.ErrDatabaseError, err)
	}
	if inv == nil {
		// Creation mutates, so it serializes with in-flight mutations
		inv, err = s.createUnderLock(ctx, ch)
		if err != nil {
			return nil, err
		}
	}
	return s.buildView(ctx, inv)
}

// AddItem picks up quantity units of the item, stacking and spilling per the
// allocator. All-or-nothing: a capacity failure leaves the inventory untouched.
func (s *service) AddItem(ctx context.Context, ch domain.Character, itemID string, quantity int) (*View, error) {
	log := logger.FromContext(ctx)

	var positions []int
	view, err := s.mutate(ctx, ch, func(staged *domain.Inventory) error {
		def, err := s.catalog.Lookup(ctx, itemID)
		if err != nil {
			return err
		}
		positions, err = addToInventory(staged, def, quantity)
		return err
	})
	if err != nil {
		if isCapacityError(err) {
			metrics.CapacityRejections.Inc()
		}
		return nil, err
	}

	metrics.ItemsAdded.Add(float64(quantity))
	log.Info("Item added", "characterID", ch.ID, "itemID", itemID, "quantity", quantity, "positions", positions)
	return view, nil
}

// RemoveItem drops quantity units from the slot at slotPosition
func (s *service) RemoveItem(ctx context.Context, ch domain.Character, slotPosition, quantity int) (*View, error) {
	log := logger.FromContext(ctx)

	view, err := s.mutate(ctx, ch, func(staged *domain.Inventory) error {
		idx := staged.SlotAt(slotPosition)
		if idx == -1 {
			if slotPosition < 1 || slotPosition > staged.MaxSlots {
				return fmt.Errorf("%w: %d not in [1, %d]", domain.ErrInvalidPosition, slotPosition, staged.MaxSlots)
			}
			return fmt.Errorf("%w: position %d", domain.ErrSlotEmpty, slotPosition)
		}
		def, err := s.catalog.Lookup(ctx, staged.Slots[idx].ItemID)
		if err != nil {
			return err
		}
		return removeFromInventory(staged, def, slotPosition, quantity)
	})
	if err != nil {
		return nil, err
	}

	metrics.ItemsRemoved.Add(float64(quantity))
	log.Info("Item removed", "characterID", ch.ID, "position", slotPosition, "quantity", quantity)
	return view, nil
}

// MoveItem relocates or merges a slot's contents
func (s *service) MoveItem(ctx context.Context, ch domain.Character, fromPosition, toPosition int) (*View, error) {
	log := logger.FromContext(ctx)

	view, err := s.mutate(ctx, ch, func(staged *domain.Inventory) error {
		idx := staged.SlotAt(fromPosition)
		if idx == -1 {
			if fromPosition < 1 || fromPosition > staged.MaxSlots {
				return fmt.Errorf("%w: %d not in [1, %d]", domain.ErrInvalidPosition, fromPosition, staged.MaxSlots)
			}
			return fmt.Errorf("%w: position %d", domain.ErrSlotEmpty, fromPosition)
		}
		def, err := s.catalog.Lookup(ctx, staged.Slots[idx].ItemID)
		if err != nil {
			return err
		}
		return moveWithinInventory(staged, def, fromPosition, toPosition)
	})
	if err != nil {
		return nil, err
	}

	log.Info("Item moved", "characterID", ch.ID, "from", fromPosition, "to", toPosition)
	return view, nil
}

// Equip wears the item at slotPosition under the given equipment-slot type
func (s *service) Equip(ctx context.Context, ch domain.Character, slotPosition int, slotType domain.EquipmentSlot) (*View, error) {
	log := logger.FromContext(ctx)

	view, err := s.mutate(ctx, ch, func(staged *domain.Inventory) error {
		idx := staged.SlotAt(slotPosition)
		if idx == -1 {
			if slotPosition < 1 || slotPosition > staged.MaxSlots {
				return fmt.Errorf("%w: %d not in [1, %d]", domain.ErrInvalidPosition, slotPosition, staged.MaxSlots)
			}
			return fmt.Errorf("%w: position %d", domain.ErrSlotEmpty, slotPosition)
		}
		def, err := s.catalog.Lookup(ctx, staged.Slots[idx].ItemID)
		if err != nil {
			return err
		}
		return equipInSlot(staged, def, ch, s.checker, slotPosition, slotType)
	})
	if err != nil {
		metrics.EquipOperations.WithLabelValues("equip", "failure").Inc()
		return nil, err
	}

	metrics.EquipOperations.WithLabelValues("equip", "success").Inc()
	log.Info("Item equipped", "characterID", ch.ID, "position", slotPosition, "equipmentSlot", slotType)
	return view, nil
}

// Unequip clears the given equipment-slot type
func (s *service) Unequip(ctx context.Context, ch domain.Character, slotType domain.EquipmentSlot) (*View, error) {
	log := logger.FromContext(ctx)

	view, err := s.mutate(ctx, ch, func(staged *domain.Inventory) error {
		return unequipFromSlot(staged, slotType)
	})
	if err != nil {
		metrics.EquipOperations.WithLabelValues("unequip", "failure").Inc()
		return nil, err
	}

	metrics.EquipOperations.WithLabelValues("unequip", "success").Inc()
	log.Info("Item unequipped", "characterID", ch.ID, "equipmentSlot", slotType)
	return view, nil
}

// mutate runs op on a staged clone of the character's inventory under its
// per-inventory lock and persists the snapshot atomically on success.
// Cancellation is honored up to the point the mutation begins; past that the
// operation runs to completion so capacity counters are never left torn.
func (s *service) mutate(ctx context.Context, ch domain.Character, op func(staged *domain.Inventory) error) (*View, error) {
	log := logger.FromContext(ctx)

	mu := s.locks.GetLock(ch.ID)
	mu.Lock()
	defer mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	inv, err := s.loadOrCreateLocked(ctx, ch)
	if err != nil {
		return nil, err
	}

	staged := inv.Clone()
	if err := op(staged); err != nil {
		return nil, err
	}
	staged.UpdatedAt = time.Now().UTC()

	err = s.withTx(ctx, func(tx repository.InventoryTx) error {
		return tx.Save(ctx, *staged)
	})
	if err != nil {
		log.Error("Failed to persist inventory", "error", err, "characterID", ch.ID)
		return nil, fmt.Errorf("%w: %v", domain.ErrDatabaseError, err)
	}

	return s.buildView(ctx, staged)
}

// createUnderLock creates the inventory on first access, serialized against
// concurrent mutations on the same character.
func (s *service) createUnderLock(ctx context.Context, ch domain.Character) (*domain.Inventory, error) {
	mu := s.locks.GetLock(ch.ID)
	mu.Lock()
	defer mu.Unlock()

	return s.loadOrCreateLocked(ctx, ch)
}

// loadOrCreateLocked must be called with the character's lock held
func (s *service) loadOrCreateLocked(ctx context.Context, ch domain.Character) (*domain.Inventory, error) {
	log := logger.FromContext(ctx)

	inv, err := s.repo.GetByCharacterID(ctx, ch.ID)
	if err != nil {
		log.Error("Failed to get inventory", "error", err, "characterID", ch.ID)
		return nil, fmt.Errorf("%w: %v", domain.ErrDatabaseError, err)
	}
	if inv != nil {
		return inv, nil
	}

	budget, err := capacity.Resolve(ch.Profession)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	inv = &domain.Inventory{
		ID:          uuid.NewString(),
		CharacterID: ch.ID,
		MaxWeight:   budget.MaxWeight,
		MaxSlots:    budget.MaxSlots,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, inv); err != nil {
		log.Error("Failed to create inventory", "error", err, "characterID", ch.ID)
		return nil, fmt.Errorf("%w: %v", domain.ErrDatabaseError, err)
	}

	metrics.InventoriesCreated.Inc()
	log.Info("Inventory created", "characterID", ch.ID, "inventoryID", inv.ID,
		"maxWeight", budget.MaxWeight, "maxSlots", budget.MaxSlots)
	return inv, nil
}

// withTx executes a function within a transaction
func (s *service) withTx(ctx context.Context, operation func(tx repository.InventoryTx) error) error {
	log := logger.FromContext(ctx)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		log.Error("Failed to begin transaction", "error", err)
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	if err := operation(tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		log.Error("Failed to commit transaction", "error", err)
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// buildView joins the snapshot with catalog display data
func (s *service) buildView(ctx context.Context, inv *domain.Inventory) (*View, error) {
	view := &View{
		InventoryID:   inv.ID,
		CharacterID:   inv.CharacterID,
		MaxWeight:     inv.MaxWeight,
		CurrentWeight: inv.CurrentWeight,
		MaxSlots:      inv.MaxSlots,
		UsedSlots:     inv.UsedSlots,
		Slots:         make([]SlotView, 0, len(inv.Slots)),
	}

	for i := range inv.Slots {
		slot := &inv.Slots[i]
		def, err := s.catalog.Lookup(ctx, slot.ItemID)
		if err != nil {
			// A slot referencing a vanished catalog entry is a data defect;
			// surface it instead of rendering a partial view
			return nil, err
		}
		view.Slots = append(view.Slots, SlotView{
			Position:      slot.Position,
			ItemID:        slot.ItemID,
			DisplayName:   def.DisplayName,
			Quantity:      slot.Quantity,
			UnitWeight:    def.EffectiveWeight(),
			Rarity:        def.Rarity,
			Equipped:      slot.Equipped,
			EquipmentSlot: slot.EquipmentSlot,
		})
	}
	return view, nil
}

func isCapacityError(err error) bool {
	return errors.Is(err, domain.ErrInsufficientCapacity)
}
