package capacity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hearthbound/armory/internal/domain"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name       string
		profession domain.Profession
		wantWeight float64
		wantSlots  int
		wantErr    error
	}{
		{
			name:       "Warrior",
			profession: domain.ProfessionWarrior,
			wantWeight: 80,
			wantSlots:  30,
		},
		{
			name:       "Mage",
			profession: domain.ProfessionMage,
			wantWeight: 40,
			wantSlots:  20,
		},
		{
			name:       "Unknown profession",
			profession: domain.Profession("necromancer"),
			wantErr:    domain.ErrUnknownProfession,
		},
		{
			name:       "Empty profession",
			profession: domain.Profession(""),
			wantErr:    domain.ErrUnknownProfession,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			budget, err := Resolve(tt.profession)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantWeight, budget.MaxWeight)
			assert.Equal(t, tt.wantSlots, budget.MaxSlots)
		})
	}
}

func TestResolveIsDeterministic(t *testing.T) {
	first, err := Resolve(domain.ProfessionRogue)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := Resolve(domain.ProfessionRogue)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestAllProfessionsHavePositiveBudgets(t *testing.T) {
	professions := []domain.Profession{
		domain.ProfessionWarrior,
		domain.ProfessionRanger,
		domain.ProfessionRogue,
		domain.ProfessionCleric,
		domain.ProfessionMage,
		domain.ProfessionArtisan,
	}

	for _, p := range professions {
		budget, err := Resolve(p)
		require.NoError(t, err, "profession %s", p)
		assert.Greater(t, budget.MaxWeight, 0.0, "profession %s", p)
		assert.Greater(t, budget.MaxSlots, 0, "profession %s", p)
	}
}
