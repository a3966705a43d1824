package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hearthbound/armory/internal/character"
	"github.com/hearthbound/armory/internal/domain"
)

func testWarrior() domain.Character {
	return domain.Character{
		ID:         "char-1",
		Name:       "Brunhild",
		Profession: domain.ProfessionWarrior,
		Level:      12,
		Attributes: domain.Attributes{"strength": 16, "agility": 9},
	}
}

func inventoryWithSword(t *testing.T) *domain.Inventory {
	t.Helper()
	inv := newInventory(80, 30)
	_, err := addToInventory(inv, defIronSword(), 1)
	require.NoError(t, err)
	return inv
}

func TestEquipInSlot_Success(t *testing.T) {
	inv := inventoryWithSword(t)
	checker := character.NewGateChecker()

	err := equipInSlot(inv, defIronSword(), testWarrior(), checker, 1, domain.EquipPrimaryHand)
	require.NoError(t, err)

	slot := inv.Slots[inv.SlotAt(1)]
	assert.True(t, slot.Equipped)
	assert.Equal(t, domain.EquipPrimaryHand, slot.EquipmentSlot)
}

func TestEquipInSlot_WeightAndSlotsUnchanged(t *testing.T) {
	inv := inventoryWithSword(t)
	checker := character.NewGateChecker()
	weightBefore := inv.CurrentWeight
	usedBefore := inv.UsedSlots

	err := equipInSlot(inv, defIronSword(), testWarrior(), checker, 1, domain.EquipPrimaryHand)
	require.NoError(t, err)

	// Equipping reclassifies in place: the item still occupies its slot and
	// still counts against the weight budget
	assert.Equal(t, weightBefore, inv.CurrentWeight)
	assert.Equal(t, usedBefore, inv.UsedSlots)
	assert.Equal(t, 1, inv.Slots[0].Position)
}

func TestEquipInSlot_OccupiedSlotRejected(t *testing.T) {
	inv := newInventory(80, 30)
	checker := character.NewGateChecker()
	_, err := addToInventory(inv, defIronSword(), 2)
	require.NoError(t, err)

	err = equipInSlot(inv, defIronSword(), testWarrior(), checker, 1, domain.EquipPrimaryHand)
	require.NoError(t, err)

	// No implicit swap: the second sword cannot displace the first
	err = equipInSlot(inv, defIronSword(), testWarrior(), checker, 2, domain.EquipPrimaryHand)
	require.ErrorIs(t, err, domain.ErrEquipmentSlotOccupied)

	assert.False(t, inv.Slots[inv.SlotAt(2)].Equipped)
}

func TestEquipInSlot_Errors(t *testing.T) {
	gated := defIronSword()
	gated.Requirements = []domain.Requirement{
		{Kind: domain.RequirementMinLevel, Minimum: 50},
	}

	tests := []struct {
		name     string
		def      *domain.ItemDefinition
		position int
		slotType domain.EquipmentSlot
		wantErr  error
	}{
		{name: "position out of range", def: defIronSword(), position: 0, slotType: domain.EquipPrimaryHand, wantErr: domain.ErrInvalidPosition},
		{name: "unknown slot type", def: defIronSword(), position: 1, slotType: "left_elbow", wantErr: domain.ErrInvalidInput},
		{name: "vacant position", def: defIronSword(), position: 5, slotType: domain.EquipPrimaryHand, wantErr: domain.ErrSlotEmpty},
		{name: "weapon in head slot", def: defIronSword(), position: 1, slotType: domain.EquipHead, wantErr: domain.ErrIncompatibleSlot},
		{name: "requirements not met", def: gated, position: 1, slotType: domain.EquipPrimaryHand, wantErr: domain.ErrRequirementsNotMet},
	}

	checker := character.NewGateChecker()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := inventoryWithSword(t)

			err := equipInSlot(inv, tt.def, testWarrior(), checker, tt.position, tt.slotType)
			require.ErrorIs(t, err, tt.wantErr)
			assert.False(t, inv.Slots[0].Equipped)
		})
	}
}

func TestEquipInSlot_AlreadyEquippedElsewhere(t *testing.T) {
	inv := inventoryWithSword(t)
	checker := character.NewGateChecker()

	err := equipInSlot(inv, defIronSword(), testWarrior(), checker, 1, domain.EquipPrimaryHand)
	require.NoError(t, err)

	err = equipInSlot(inv, defIronSword(), testWarrior(), checker, 1, domain.EquipSecondaryHand)
	require.ErrorIs(t, err, domain.ErrAlreadyEquipped)

	assert.Equal(t, domain.EquipPrimaryHand, inv.Slots[0].EquipmentSlot)
}

func TestEquipInSlot_ToolInHandSlot(t *testing.T) {
	pick := &domain.ItemDefinition{
		ID:       "miners_pick",
		Category: domain.CategoryTool,
		Weight:   4.0,
		Size:     domain.SizeMedium,
		Rarity:   domain.RarityCommon,
	}
	inv := newInventory(80, 30)
	_, err := addToInventory(inv, pick, 1)
	require.NoError(t, err)

	err = equipInSlot(inv, pick, testWarrior(), character.NewGateChecker(), 1, domain.EquipSecondaryHand)
	require.NoError(t, err)
}

func TestUnequipFromSlot_RoundTrip(t *testing.T) {
	inv := inventoryWithSword(t)
	checker := character.NewGateChecker()

	err := equipInSlot(inv, defIronSword(), testWarrior(), checker, 1, domain.EquipPrimaryHand)
	require.NoError(t, err)
	err = unequipFromSlot(inv, domain.EquipPrimaryHand)
	require.NoError(t, err)

	slot := inv.Slots[0]
	assert.False(t, slot.Equipped)
	assert.Empty(t, slot.EquipmentSlot)
	assert.Equal(t, 1, slot.Position)
	assert.Equal(t, 1, inv.UsedSlots)

	// The slot is an ordinary carried slot again: equip works a second time
	err = equipInSlot(inv, defIronSword(), testWarrior(), checker, 1, domain.EquipPrimaryHand)
	require.NoError(t, err)
}

func TestUnequipFromSlot_Errors(t *testing.T) {
	inv := inventoryWithSword(t)

	err := unequipFromSlot(inv, domain.EquipPrimaryHand)
	assert.ErrorIs(t, err, domain.ErrEquipmentSlotEmpty)

	err = unequipFromSlot(inv, "left_elbow")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
