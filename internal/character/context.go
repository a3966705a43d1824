package character

import (
	"context"

	"github.com/hearthbound/armory/internal/domain"
)

type contextKey string

const characterKey contextKey = "character"

// WithCharacter stores the authenticated character in the context
func WithCharacter(ctx context.Context, ch domain.Character) context.Context {
	return context.WithValue(ctx, characterKey, ch)
}

// FromContext retrieves the authenticated character from the context.
// The second return is false when no identity middleware ran.
func FromContext(ctx context.Context) (domain.Character, bool) {
	ch, ok := ctx.Value(characterKey).(domain.Character)
	return ch, ok
}
