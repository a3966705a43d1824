package inventory

import (
	"context"
	"fmt"
	"sync"

	"github.com/hearthbound/armory/internal/domain"
	"github.com/hearthbound/armory/internal/repository"
)

// FakeRepository is a stateful in-memory implementation of
// repository.Inventory for integration-style unit tests. It lives in the
// package (not a _test file) so other packages' tests can reuse it.
type FakeRepository struct {
	mu          sync.Mutex
	inventories map[string]domain.Inventory // keyed by character ID

	FailReads  bool
	FailWrites bool
}

// NewFakeRepository creates an empty FakeRepository
func NewFakeRepository() *FakeRepository {
	return &FakeRepository{inventories: make(map[string]domain.Inventory)}
}

func (f *FakeRepository) GetByCharacterID(ctx context.Context, characterID string) (*domain.Inventory, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.FailReads {
		return nil, fmt.Errorf("connection refused")
	}
	inv, ok := f.inventories[characterID]
	if !ok {
		return nil, nil
	}
	cloned := inv.Clone()
	return cloned, nil
}

func (f *FakeRepository) Create(ctx context.Context, inv *domain.Inventory) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.FailWrites {
		return fmt.Errorf("connection refused")
	}
	if _, exists := f.inventories[inv.CharacterID]; exists {
		return fmt.Errorf("inventory already exists for character %s", inv.CharacterID)
	}
	f.inventories[inv.CharacterID] = *inv.Clone()
	return nil
}

func (f *FakeRepository) BeginTx(ctx context.Context) (repository.InventoryTx, error) {
	if f.FailWrites {
		return nil, fmt.Errorf("connection refused")
	}
	return &fakeTx{repo: f}, nil
}

// Snapshot returns the stored inventory for assertions, or nil
func (f *FakeRepository) Snapshot(characterID string) *domain.Inventory {
	f.mu.Lock()
	defer f.mu.Unlock()

	inv, ok := f.inventories[characterID]
	if !ok {
		return nil
	}
	return inv.Clone()
}

type fakeTx struct {
	repo    *fakeRepoRef
	pending []domain.Inventory
	done    bool
}

// fakeRepoRef keeps fakeTx's field type readable in test failure output
type fakeRepoRef = FakeRepository

func (t *fakeTx) GetByCharacterID(ctx context.Context, characterID string) (*domain.Inventory, error) {
	return t.repo.GetByCharacterID(ctx, characterID)
}

func (t *fakeTx) Save(ctx context.Context, inv domain.Inventory) error {
	if t.done {
		return fmt.Errorf("tx is closed")
	}
	if t.repo.FailWrites {
		return fmt.Errorf("connection refused")
	}
	t.pending = append(t.pending, *inv.Clone())
	return nil
}

func (t *fakeTx) Commit(ctx context.Context) error {
	if t.done {
		return fmt.Errorf("tx is closed")
	}
	t.done = true

	t.repo.mu.Lock()
	defer t.repo.mu.Unlock()
	for _, inv := range t.pending {
		t.repo.inventories[inv.CharacterID] = inv
	}
	return nil
}

func (t *fakeTx) Rollback(ctx context.Context) error {
	if t.done {
		return fmt.Errorf("tx is closed")
	}
	t.done = true
	t.pending = nil
	return nil
}

// FakeCatalog is a map-backed catalog.Catalog for tests
type FakeCatalog struct {
	Items map[string]domain.ItemDefinition
}

// NewFakeCatalog creates a catalog from the given definitions
func NewFakeCatalog(defs ...domain.ItemDefinition) *FakeCatalog {
	f := &FakeCatalog{Items: make(map[string]domain.ItemDefinition)}
	for _, def := range defs {
		f.Items[def.ID] = def
	}
	return f
}

func (f *FakeCatalog) Lookup(ctx context.Context, itemID string) (*domain.ItemDefinition, error) {
	def, ok := f.Items[itemID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrItemNotFound, itemID)
	}
	return &def, nil
}
