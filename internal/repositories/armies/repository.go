// Package armies persists army lists
package armies

//go:generate mockgen -destination=mock/mock_repository.go -package=armiesmock github.com/KirkDiggler/army-rater/internal/repositories/armies Repository

import (
	"context"
	"sort"

	"github.com/KirkDiggler/army-rater/internal/entities/army"
)

// Repository stores armies by ID
type Repository interface {
	// Create stores a new army
	// Returns errors.InvalidArgument for a nil army or empty ID
	// Returns errors.AlreadyExists if the ID is taken
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get loads an army by ID
	// Returns errors.NotFound if the army doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces a stored army
	// Returns errors.NotFound if the army doesn't exist
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes an army
	// Returns errors.NotFound if the army doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// List returns every army, oldest first
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// CreateInput defines the input for creating an army
type CreateInput struct {
	Army *army.Army
}

// CreateOutput defines the output for creating an army
type CreateOutput struct {
	Army *army.Army
}

// GetInput defines the input for getting an army
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting an army
type GetOutput struct {
	Army *army.Army
}

// UpdateInput defines the input for updating an army
type UpdateInput struct {
	Army *army.Army
}

// UpdateOutput defines the output for updating an army
type UpdateOutput struct {
	Army *army.Army
}

// DeleteInput defines the input for deleting an army
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting an army
type DeleteOutput struct{}

// ListInput defines the input for listing armies
type ListInput struct{}

// ListOutput defines the output for listing armies
type ListOutput struct {
	Armies []*army.Army
}

const (
	errArmyNil     = "army cannot be nil"
	errArmyIDEmpty = "army ID cannot be empty"
)

// sortArmies orders by creation time, then ID, so listings are stable
// regardless of storage iteration order.
func sortArmies(armies []*army.Army) {
	sort.SliceStable(armies, func(i, j int) bool {
		if armies[i].CreatedAt.Equal(armies[j].CreatedAt) {
			return armies[i].ID < armies[j].ID
		}
		return armies[i].CreatedAt.Before(armies[j].CreatedAt)
	})
}
