package v1alpha1

import (
	"context"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/army-rater/internal/engine"
	"github.com/KirkDiggler/army-rater/internal/entities/army"
	"github.com/KirkDiggler/army-rater/internal/errors"
	"github.com/KirkDiggler/army-rater/internal/orchestrators/roster"
	"github.com/KirkDiggler/army-rater/internal/services/interchange"
)

// HandlerConfig holds dependencies for the army handler
type HandlerConfig struct {
	RosterService roster.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil || c.RosterService == nil {
		return errors.InvalidArgument("roster service is required")
	}
	return nil
}

// Handler implements ArmyServiceServer on top of the roster orchestrator
type Handler struct {
	roster roster.Service
}

var _ ArmyServiceServer = (*Handler)(nil)

// NewHandler creates a new army handler
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Handler{roster: cfg.RosterService}, nil
}

type armyResponse struct {
	Army   *army.Army     `json:"army"`
	Report *engine.Report `json:"report"`
	Index  *int           `json:"index,omitempty"`
}

func respond(v any, err error) (*structpb.Struct, error) {
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	s, err := ToStruct(v)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return s, nil
}

// CreateArmy starts a new army, optionally seeded with units
func (h *Handler) CreateArmy(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	r := newRequest(req)
	gameSize, err := r.integer(KeyGameSize)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	units, err := r.units(KeyUnits)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.roster.CreateArmy(ctx, &roster.CreateArmyInput{
		Name:     r.str(KeyName),
		GameSize: gameSize,
		Units:    units,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return respond(armyResponse{Army: out.Army, Report: out.Report}, nil)
}

// GetArmy loads an army with its current report
func (h *Handler) GetArmy(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	out, err := h.roster.GetArmy(ctx, &roster.GetArmyInput{ArmyID: newRequest(req).str(KeyArmyID)})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return respond(armyResponse{Army: out.Army, Report: out.Report}, nil)
}

// ListArmies returns every stored army with its totals and ratings
func (h *Handler) ListArmies(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	out, err := h.roster.ListArmies(ctx, &roster.ListArmiesInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	type summary struct {
		Army       *army.Army         `json:"army"`
		Score      *engine.ArmyScore  `json:"score"`
		Assessment *engine.Assessment `json:"assessment"`
	}
	summaries := make([]summary, 0, len(out.Armies))
	for _, a := range out.Armies {
		summaries = append(summaries, summary{Army: a.Army, Score: a.Score, Assessment: a.Assessment})
	}
	return respond(map[string]any{KeyArmies: summaries}, nil)
}

// DeleteArmy removes an army
func (h *Handler) DeleteArmy(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	_, err := h.roster.DeleteArmy(ctx, &roster.DeleteArmyInput{ArmyID: newRequest(req).str(KeyArmyID)})
	return respond(map[string]any{}, err)
}

// PutUnit appends a unit, or replaces the one at index when given
func (h *Handler) PutUnit(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	r := newRequest(req)
	unit, err := r.unit(KeyUnit)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	index := roster.AppendIndex
	if r.has(KeyIndex) {
		if index, err = r.integer(KeyIndex); err != nil {
			return nil, errors.ToGRPCError(err)
		}
	}

	out, err := h.roster.PutUnit(ctx, &roster.PutUnitInput{
		ArmyID: r.str(KeyArmyID),
		Index:  index,
		Unit:   unit,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return respond(armyResponse{Army: out.Army, Report: out.Report, Index: &out.Index}, nil)
}

// RemoveUnit deletes the unit at index
func (h *Handler) RemoveUnit(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	r := newRequest(req)
	index, err := r.integer(KeyIndex)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.roster.RemoveUnit(ctx, &roster.RemoveUnitInput{ArmyID: r.str(KeyArmyID), Index: index})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return respond(armyResponse{Army: out.Army, Report: out.Report}, nil)
}

// SetUnitQuantity changes how many copies of a unit are fielded
func (h *Handler) SetUnitQuantity(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	r := newRequest(req)
	index, err := r.integer(KeyIndex)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	quantity, err := r.integer(KeyQuantity)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.roster.SetUnitQuantity(ctx, &roster.SetUnitQuantityInput{
		ArmyID:   r.str(KeyArmyID),
		Index:    index,
		Quantity: quantity,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return respond(armyResponse{Army: out.Army, Report: out.Report}, nil)
}

// ClearUnits empties an army
func (h *Handler) ClearUnits(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	out, err := h.roster.ClearUnits(ctx, &roster.ClearUnitsInput{ArmyID: newRequest(req).str(KeyArmyID)})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return respond(armyResponse{Army: out.Army, Report: out.Report}, nil)
}

// SetGameSize changes the points limit an army is rated against
func (h *Handler) SetGameSize(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	r := newRequest(req)
	gameSize, err := r.integer(KeyGameSize)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.roster.SetGameSize(ctx, &roster.SetGameSizeInput{ArmyID: r.str(KeyArmyID), GameSize: gameSize})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return respond(armyResponse{Army: out.Army, Report: out.Report}, nil)
}

// ImportArmy replaces an army's units with an exported payload
func (h *Handler) ImportArmy(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	r := newRequest(req)
	format, err := requestFormat(r)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	data := []byte(r.str(KeyData))
	if format == "" {
		format = interchange.DetectFormat("", data)
	}

	out, err := h.roster.ImportArmy(ctx, &roster.ImportArmyInput{
		ArmyID: r.str(KeyArmyID),
		Data:   data,
		Format: format,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return respond(armyResponse{Army: out.Army, Report: out.Report}, nil)
}

// ExportArmy renders an army's units in the requested format
func (h *Handler) ExportArmy(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	r := newRequest(req)
	format, err := requestFormat(r)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.roster.ExportArmy(ctx, &roster.ExportArmyInput{ArmyID: r.str(KeyArmyID), Format: format})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return respond(map[string]any{
		KeyData:   string(out.Data),
		KeyFormat: string(out.Format),
	}, nil)
}

// ScoreArmy rates a stored army, optionally at another game size
func (h *Handler) ScoreArmy(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	r := newRequest(req)
	gameSize, err := r.integer(KeyGameSize)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.roster.ScoreArmy(ctx, &roster.ScoreArmyInput{ArmyID: r.str(KeyArmyID), GameSize: gameSize})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return respond(armyResponse{Army: out.Army, Report: out.Report}, nil)
}

// ScoreUnits rates units that are not stored
func (h *Handler) ScoreUnits(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	r := newRequest(req)
	gameSize, err := r.integer(KeyGameSize)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	units, err := r.units(KeyUnits)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.roster.ScoreUnits(ctx, &roster.ScoreUnitsInput{Units: units, GameSize: gameSize})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return respond(map[string]any{KeyReport: out.Report}, nil)
}

// GetThresholds returns the rating bands scaled to a game size
func (h *Handler) GetThresholds(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	gameSize, err := newRequest(req).integer(KeyGameSize)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.roster.GetThresholds(ctx, &roster.GetThresholdsInput{GameSize: gameSize})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return respond(map[string]any{KeyThresholds: out.Thresholds}, nil)
}

func requestFormat(r request) (interchange.Format, error) {
	if !r.has(KeyFormat) {
		return "", nil
	}
	return interchange.ParseFormat(r.str(KeyFormat))
}
