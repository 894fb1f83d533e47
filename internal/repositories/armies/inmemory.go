package armies

import (
	"context"
	"sync"

	"github.com/KirkDiggler/army-rater/internal/entities/army"
	"github.com/KirkDiggler/army-rater/internal/errors"
)

// InMemoryRepository keeps armies in a map. Stored values are cloned on the
// way in and out so callers never share state with the store.
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string]*army.Army
}

var _ Repository = (*InMemoryRepository)(nil)

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		store: make(map[string]*army.Army),
	}
}

// Create stores a new army
func (r *InMemoryRepository) Create(_ context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateArmy(input.Army); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.Army.ID]; exists {
		return nil, errors.AlreadyExistsf("army with ID %s already exists", input.Army.ID).
			WithMeta("army_id", input.Army.ID)
	}
	r.store[input.Army.ID] = input.Army.Clone()

	return &CreateOutput{Army: input.Army.Clone()}, nil
}

// Get loads an army by ID
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errArmyIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	a, exists := r.store[input.ID]
	if !exists {
		return nil, errors.NotFoundf("army with ID %s not found", input.ID).
			WithMeta("army_id", input.ID)
	}

	return &GetOutput{Army: a.Clone()}, nil
}

// Update replaces a stored army
func (r *InMemoryRepository) Update(_ context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateArmy(input.Army); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.Army.ID]; !exists {
		return nil, errors.NotFoundf("army with ID %s not found", input.Army.ID).
			WithMeta("army_id", input.Army.ID)
	}
	r.store[input.Army.ID] = input.Army.Clone()

	return &UpdateOutput{Army: input.Army.Clone()}, nil
}

// Delete removes an army
func (r *InMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errArmyIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.ID]; !exists {
		return nil, errors.NotFoundf("army with ID %s not found", input.ID).
			WithMeta("army_id", input.ID)
	}
	delete(r.store, input.ID)

	return &DeleteOutput{}, nil
}

// List returns every army, oldest first
func (r *InMemoryRepository) List(_ context.Context, _ ListInput) (*ListOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	armies := make([]*army.Army, 0, len(r.store))
	for _, a := range r.store {
		armies = append(armies, a.Clone())
	}
	sortArmies(armies)

	return &ListOutput{Armies: armies}, nil
}
