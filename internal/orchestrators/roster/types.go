package roster

import (
	"github.com/KirkDiggler/army-rater/internal/engine"
	"github.com/KirkDiggler/army-rater/internal/entities/army"
	"github.com/KirkDiggler/army-rater/internal/services/interchange"
)

// AppendIndex passed as PutUnitInput.Index adds the unit to the end
const AppendIndex = -1

// CreateArmyInput defines the request for creating an army
type CreateArmyInput struct {
	Name string
	// GameSize of zero uses the configured default
	GameSize int
	Units    []army.Unit
}

// CreateArmyOutput defines the response for creating an army
type CreateArmyOutput struct {
	Army   *army.Army
	Report *engine.Report
}

// GetArmyInput defines the request for loading an army
type GetArmyInput struct {
	ArmyID string
}

// GetArmyOutput defines the response for loading an army
type GetArmyOutput struct {
	Army   *army.Army
	Report *engine.Report
}

// ListArmiesInput defines the request for listing armies
type ListArmiesInput struct{}

// ArmySummary is one row of an army listing
type ArmySummary struct {
	Army       *army.Army
	Score      *engine.ArmyScore
	Assessment *engine.Assessment
}

// ListArmiesOutput defines the response for listing armies
type ListArmiesOutput struct {
	Armies []*ArmySummary
}

// DeleteArmyInput defines the request for deleting an army
type DeleteArmyInput struct {
	ArmyID string
}

// DeleteArmyOutput defines the response for deleting an army
type DeleteArmyOutput struct{}

// PutUnitInput adds or replaces a unit. Index AppendIndex appends;
// an existing index replaces that entry in place.
type PutUnitInput struct {
	ArmyID string
	Index  int
	Unit   army.Unit
}

// PutUnitOutput defines the response for putting a unit
type PutUnitOutput struct {
	Army   *army.Army
	Report *engine.Report
	// Index is where the unit now sits
	Index int
}

// RemoveUnitInput defines the request for removing a unit
type RemoveUnitInput struct {
	ArmyID string
	Index  int
}

// RemoveUnitOutput defines the response for removing a unit
type RemoveUnitOutput struct {
	Army   *army.Army
	Report *engine.Report
}

// SetUnitQuantityInput changes how many copies of a unit are fielded.
// Negative quantities clamp to zero.
type SetUnitQuantityInput struct {
	ArmyID   string
	Index    int
	Quantity int
}

// SetUnitQuantityOutput defines the response for setting a quantity
type SetUnitQuantityOutput struct {
	Army   *army.Army
	Report *engine.Report
}

// ClearUnitsInput defines the request for emptying an army
type ClearUnitsInput struct {
	ArmyID string
}

// ClearUnitsOutput defines the response for emptying an army
type ClearUnitsOutput struct {
	Army   *army.Army
	Report *engine.Report
}

// SetGameSizeInput defines the request for changing the points limit
type SetGameSizeInput struct {
	ArmyID   string
	GameSize int
}

// SetGameSizeOutput defines the response for changing the points limit
type SetGameSizeOutput struct {
	Army   *army.Army
	Report *engine.Report
}

// ImportArmyInput replaces an army's units with a decoded payload
type ImportArmyInput struct {
	ArmyID string
	Data   []byte
	Format interchange.Format
}

// ImportArmyOutput defines the response for an import
type ImportArmyOutput struct {
	Army   *army.Army
	Report *engine.Report
}

// ExportArmyInput defines the request for an export
type ExportArmyInput struct {
	ArmyID string
	Format interchange.Format
}

// ExportArmyOutput defines the response for an export
type ExportArmyOutput struct {
	Data   []byte
	Format interchange.Format
}

// ScoreArmyInput scores a stored army. GameSize of zero uses the army's own.
type ScoreArmyInput struct {
	ArmyID   string
	GameSize int
}

// ScoreArmyOutput defines the response for scoring a stored army
type ScoreArmyOutput struct {
	Army   *army.Army
	Report *engine.Report
}

// ScoreUnitsInput scores units that are not stored
type ScoreUnitsInput struct {
	Units    []army.Unit
	GameSize int
}

// ScoreUnitsOutput defines the response for scoring loose units
type ScoreUnitsOutput struct {
	Report *engine.Report
}

// GetThresholdsInput defines the request for the scaled bands
type GetThresholdsInput struct {
	GameSize int
}

// GetThresholdsOutput defines the response for the scaled bands
type GetThresholdsOutput struct {
	Thresholds *engine.Thresholds
}
