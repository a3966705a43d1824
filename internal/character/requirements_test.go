package character

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hearthbound/armory/internal/domain"
)

func TestGateCheckerCheck(t *testing.T) {
	warrior := domain.Character{
		ID:         "ch-1",
		Profession: domain.ProfessionWarrior,
		Level:      7,
		Attributes: domain.Attributes{"strength": 14, "agility": 9},
	}

	tests := []struct {
		name         string
		requirements []domain.Requirement
		want         bool
	}{
		{
			name: "No requirements",
			want: true,
		},
		{
			name: "Profession match",
			requirements: []domain.Requirement{
				{Kind: domain.RequirementProfession, Profession: domain.ProfessionWarrior},
			},
			want: true,
		},
		{
			name: "Profession mismatch",
			requirements: []domain.Requirement{
				{Kind: domain.RequirementProfession, Profession: domain.ProfessionMage},
			},
			want: false,
		},
		{
			name: "Attribute met",
			requirements: []domain.Requirement{
				{Kind: domain.RequirementMinAttribute, Attribute: "strength", Minimum: 12},
			},
			want: true,
		},
		{
			name: "Attribute below minimum",
			requirements: []domain.Requirement{
				{Kind: domain.RequirementMinAttribute, Attribute: "agility", Minimum: 10},
			},
			want: false,
		},
		{
			name: "Missing attribute counts as zero",
			requirements: []domain.Requirement{
				{Kind: domain.RequirementMinAttribute, Attribute: "willpower", Minimum: 1},
			},
			want: false,
		},
		{
			name: "Level met",
			requirements: []domain.Requirement{
				{Kind: domain.RequirementMinLevel, Minimum: 5},
			},
			want: true,
		},
		{
			name: "Level below minimum",
			requirements: []domain.Requirement{
				{Kind: domain.RequirementMinLevel, Minimum: 10},
			},
			want: false,
		},
		{
			name: "All requirements must pass",
			requirements: []domain.Requirement{
				{Kind: domain.RequirementProfession, Profession: domain.ProfessionWarrior},
				{Kind: domain.RequirementMinLevel, Minimum: 20},
			},
			want: false,
		},
		{
			name: "Unknown kind rejected",
			requirements: []domain.Requirement{
				{Kind: domain.RequirementKind("alignment")},
			},
			want: false,
		},
	}

	checker := NewGateChecker()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := &domain.ItemDefinition{ID: "item", Requirements: tt.requirements}
			assert.Equal(t, tt.want, checker.Check(def, warrior))
		})
	}
}
