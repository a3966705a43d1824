package domain

// ItemCategory classifies an item for equipment-slot compatibility
type ItemCategory string

const (
	CategoryWeapon     ItemCategory = "weapon"
	CategoryArmor      ItemCategory = "armor"
	CategoryTool       ItemCategory = "tool"
	CategoryConsumable ItemCategory = "consumable"
	CategoryMaterial   ItemCategory = "material"
	CategoryTreasure   ItemCategory = "treasure"
	CategorySpecial    ItemCategory = "special"
)

// ValidCategories is the closed set of item categories
var ValidCategories = map[ItemCategory]bool{
	CategoryWeapon:     true,
	CategoryArmor:      true,
	CategoryTool:       true,
	CategoryConsumable: true,
	CategoryMaterial:   true,
	CategoryTreasure:   true,
	CategorySpecial:    true,
}

// SizeClass is a coarse sizing guide carried alongside an item's declared weight.
// The declared weight is authoritative; the size-class canonical weight is used
// only as a fallback when an authored item omits its weight, and as a sanity
// bound during catalog validation.
type SizeClass string

const (
	SizeSmall  SizeClass = "small"
	SizeMedium SizeClass = "medium"
	SizeLarge  SizeClass = "large"
	SizeHuge   SizeClass = "huge"
)

var sizeClassWeights = map[SizeClass]float64{
	SizeSmall:  0.5,
	SizeMedium: 2.0,
	SizeLarge:  8.0,
	SizeHuge:   25.0,
}

// CanonicalWeight returns the fallback weight for the size class.
// The second return is false for an unknown size class.
func (s SizeClass) CanonicalWeight() (float64, bool) {
	w, ok := sizeClassWeights[s]
	return w, ok
}

// Rarity represents the visual rarity tier of an item
type Rarity string

const (
	RarityCommon    Rarity = "COMMON"
	RarityUncommon  Rarity = "UNCOMMON"
	RarityRare      Rarity = "RARE"
	RarityEpic      Rarity = "EPIC"
	RarityLegendary Rarity = "LEGENDARY"
)

// ValidRarities is the closed set of rarity tiers
var ValidRarities = map[Rarity]bool{
	RarityCommon:    true,
	RarityUncommon:  true,
	RarityRare:      true,
	RarityEpic:      true,
	RarityLegendary: true,
}

// RequirementKind discriminates usage requirement variants
type RequirementKind string

const (
	RequirementProfession   RequirementKind = "profession"
	RequirementMinAttribute RequirementKind = "min_attribute"
	RequirementMinLevel     RequirementKind = "min_level"
)

// Requirement is a closed tagged usage gate. Only the fields for its Kind are
// meaningful: Profession for "profession", Attribute+Minimum for
// "min_attribute", Minimum for "min_level".
type Requirement struct {
	Kind       RequirementKind `json:"kind"`
	Profession Profession      `json:"profession,omitempty"`
	Attribute  string          `json:"attribute,omitempty"`
	Minimum    int             `json:"minimum,omitempty"`
}

// ItemDefinition is an immutable catalog entry shared across all inventories.
// Authored out-of-band, never mutated by the engine.
type ItemDefinition struct {
	ID           string        `json:"item_id" db:"item_id"`
	DisplayName  string        `json:"display_name" db:"display_name"`
	Category     ItemCategory  `json:"category" db:"category"`
	Weight       float64       `json:"weight" db:"weight"` // kg, non-negative
	Size         SizeClass     `json:"size" db:"size_class"`
	Rarity       Rarity        `json:"rarity" db:"rarity"`
	Stackable    bool          `json:"stackable" db:"stackable"`
	MaxStack     int           `json:"max_stack" db:"max_stack"` // >= 1, meaningful only when stackable
	Requirements []Requirement `json:"requirements,omitempty"`
}

// StackLimit returns the per-slot quantity ceiling for the item.
// Non-stackable items are fixed at one unit per slot.
func (d ItemDefinition) StackLimit() int {
	if !d.Stackable {
		return 1
	}
	if d.MaxStack < 1 {
		return 1
	}
	return d.MaxStack
}

// EffectiveWeight returns the item's declared weight, falling back to the
// size-class canonical weight when no weight was authored.
func (d ItemDefinition) EffectiveWeight() float64 {
	if d.Weight > 0 {
		return d.Weight
	}
	if w, ok := d.Size.CanonicalWeight(); ok {
		return w
	}
	return 0
}
