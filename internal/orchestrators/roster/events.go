package roster

import (
	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/army-rater/internal/engine"
	"github.com/KirkDiggler/army-rater/internal/entities/army"
)

// Event types published on the bus
const (
	EventArmyScored  = "army.scored"
	EventArmyDeleted = "army.deleted"
)

// Scored is the source entity of army.scored and army.deleted events. It
// carries the army as stored after the change and, for army.scored, the
// recomputed report.
type Scored struct {
	Army   *army.Army
	Report *engine.Report
}

var _ core.Entity = (*Scored)(nil)

// GetID returns the army ID
func (s *Scored) GetID() string {
	return s.Army.ID
}

// GetType returns the army entity type
func (s *Scored) GetType() string {
	return army.EntityType
}

// ScoredFromEvent extracts the payload of an army event
func ScoredFromEvent(e events.Event) (*Scored, bool) {
	if e == nil {
		return nil, false
	}
	scored, ok := e.Source().(*Scored)
	return scored, ok && scored.Army != nil
}
