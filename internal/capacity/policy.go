package capacity

import (
	"fmt"

	"github.com/hearthbound/armory/internal/domain"
)

// Budget is the pair of carry limits fixed into an inventory at creation
type Budget struct {
	MaxWeight float64 // kg
	MaxSlots  int
}

// professionBudgets enumerates the closed profession set. A profession change
// after character creation does not retroactively resize the inventory.
var professionBudgets = map[domain.Profession]Budget{
	domain.ProfessionWarrior: {MaxWeight: 80, MaxSlots: 30},
	domain.ProfessionRanger:  {MaxWeight: 60, MaxSlots: 28},
	domain.ProfessionRogue:   {MaxWeight: 50, MaxSlots: 24},
	domain.ProfessionCleric:  {MaxWeight: 55, MaxSlots: 24},
	domain.ProfessionMage:    {MaxWeight: 40, MaxSlots: 20},
	domain.ProfessionArtisan: {MaxWeight: 70, MaxSlots: 32},
}

// Resolve derives the carry budget for a profession. Unknown professions fail
// rather than defaulting: the profession set is closed.
func Resolve(profession domain.Profession) (Budget, error) {
	budget, ok := professionBudgets[profession]
	if !ok {
		return Budget{}, fmt.Errorf("%w: %q", domain.ErrUnknownProfession, profession)
	}
	return budget, nil
}
