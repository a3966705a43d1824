package domain

// Profession is the closed set of character professions enumerated by the
// hub's character-creation surface.
type Profession string

const (
	ProfessionWarrior Profession = "warrior"
	ProfessionRanger  Profession = "ranger"
	ProfessionRogue   Profession = "rogue"
	ProfessionCleric  Profession = "cleric"
	ProfessionMage    Profession = "mage"
	ProfessionArtisan Profession = "artisan"
)

// Attributes holds a character's named attribute scores (strength, agility, ...)
type Attributes map[string]int

// Character is the authenticated identity the surrounding hub resolves from a
// session token and hands to the engine. The engine never loads characters
// itself.
type Character struct {
	ID         string     `json:"character_id"`
	Name       string     `json:"name,omitempty"`
	Profession Profession `json:"profession"`
	Level      int        `json:"level"`
	Attributes Attributes `json:"attributes,omitempty"`
}
