package character

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/hearthbound/armory/internal/domain"
)

// Resolver maps a session token to an authenticated character identity.
// Identity and session management belong to the surrounding hub; the engine
// only consumes the resolved identity.
type Resolver interface {
	Resolve(ctx context.Context, sessionToken string) (*domain.Character, error)
}

// StaticResolver resolves sessions from a fixed token table loaded at boot.
// It stands in for the hub's identity service in development and tests.
type StaticResolver struct {
	mu       sync.RWMutex
	sessions map[string]domain.Character
}

// NewStaticResolver creates an empty resolver
func NewStaticResolver() *StaticResolver {
	return &StaticResolver{sessions: make(map[string]domain.Character)}
}

// NewStaticResolverFromFile loads a token table from a JSON file mapping
// session tokens to characters.
func NewStaticResolverFromFile(path string) (*StaticResolver, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read session table: %w", err)
	}

	var sessions map[string]domain.Character
	if err := json.Unmarshal(data, &sessions); err != nil {
		return nil, fmt.Errorf("failed to parse session table: %w", err)
	}

	return &StaticResolver{sessions: sessions}, nil
}

// Register associates a session token with a character
func (r *StaticResolver) Register(token string, ch domain.Character) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[token] = ch
}

// Resolve looks up the character for a session token
func (r *StaticResolver) Resolve(ctx context.Context, sessionToken string) (*domain.Character, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ch, ok := r.sessions[sessionToken]
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return &ch, nil
}
