package character

import "github.com/hearthbound/armory/internal/domain"

// RequirementsChecker gates item usage against a character's profession,
// level, and attributes. The engine calls the checker but does not own the
// policy; this default implementation matches the closed requirement variants
// exhaustively.
type RequirementsChecker interface {
	Check(def *domain.ItemDefinition, ch domain.Character) bool
}

// GateChecker is the default requirement gate
type GateChecker struct{}

// NewGateChecker creates a GateChecker
func NewGateChecker() *GateChecker {
	return &GateChecker{}
}

// Check reports whether the character satisfies every requirement on the item
func (g *GateChecker) Check(def *domain.ItemDefinition, ch domain.Character) bool {
	for _, req := range def.Requirements {
		switch req.Kind {
		case domain.RequirementProfession:
			if ch.Profession != req.Profession {
				return false
			}
		case domain.RequirementMinAttribute:
			if ch.Attributes[req.Attribute] < req.Minimum {
				return false
			}
		case domain.RequirementMinLevel:
			if ch.Level < req.Minimum {
				return false
			}
		default:
			// Unknown kinds are rejected outright: the variant set is closed
			// and the catalog loader should have caught this at boot.
			return false
		}
	}
	return true
}
