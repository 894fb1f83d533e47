package army

import (
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

const (
	// EntityType identifies armies on the event bus.
	EntityType = "army"

	// DefaultGameSize is the points limit a new army is rated against.
	DefaultGameSize = 2000
)

// Army is a caller-owned, ordered army list. Units are addressed by index.
type Army struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	GameSize  int       `json:"game_size"`
	Units     []Unit    `json:"units"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

var _ core.Entity = (*Army)(nil)

// GetID returns the army's ID
func (a *Army) GetID() string {
	return a.ID
}

// GetType returns the entity type for rpg-toolkit
func (a *Army) GetType() string {
	return EntityType
}

// Clone returns a deep copy so callers can mutate without touching stored state.
func (a *Army) Clone() *Army {
	if a == nil {
		return nil
	}
	c := *a
	c.Units = make([]Unit, len(a.Units))
	for i, u := range a.Units {
		c.Units[i] = u.Clone()
	}
	return &c
}

// HasIndex reports whether i addresses an existing unit.
func (a *Army) HasIndex(i int) bool {
	return i >= 0 && i < len(a.Units)
}
