// Package roster owns army lists: it edits them, stores them and re-scores
// them after every change.
package roster

//go:generate mockgen -destination=mock/mock_service.go -package=rostermock github.com/KirkDiggler/army-rater/internal/orchestrators/roster Service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/army-rater/internal/engine"
	"github.com/KirkDiggler/army-rater/internal/entities/army"
	"github.com/KirkDiggler/army-rater/internal/errors"
	"github.com/KirkDiggler/army-rater/internal/pkg/clock"
	"github.com/KirkDiggler/army-rater/internal/pkg/idgen"
	"github.com/KirkDiggler/army-rater/internal/repositories/armies"
	"github.com/KirkDiggler/army-rater/internal/services/interchange"
)

// Service manages army lists
type Service interface {
	CreateArmy(ctx context.Context, input *CreateArmyInput) (*CreateArmyOutput, error)
	GetArmy(ctx context.Context, input *GetArmyInput) (*GetArmyOutput, error)
	ListArmies(ctx context.Context, input *ListArmiesInput) (*ListArmiesOutput, error)
	DeleteArmy(ctx context.Context, input *DeleteArmyInput) (*DeleteArmyOutput, error)

	PutUnit(ctx context.Context, input *PutUnitInput) (*PutUnitOutput, error)
	RemoveUnit(ctx context.Context, input *RemoveUnitInput) (*RemoveUnitOutput, error)
	SetUnitQuantity(ctx context.Context, input *SetUnitQuantityInput) (*SetUnitQuantityOutput, error)
	ClearUnits(ctx context.Context, input *ClearUnitsInput) (*ClearUnitsOutput, error)
	SetGameSize(ctx context.Context, input *SetGameSizeInput) (*SetGameSizeOutput, error)

	ImportArmy(ctx context.Context, input *ImportArmyInput) (*ImportArmyOutput, error)
	ExportArmy(ctx context.Context, input *ExportArmyInput) (*ExportArmyOutput, error)

	ScoreArmy(ctx context.Context, input *ScoreArmyInput) (*ScoreArmyOutput, error)
	ScoreUnits(ctx context.Context, input *ScoreUnitsInput) (*ScoreUnitsOutput, error)
	GetThresholds(ctx context.Context, input *GetThresholdsInput) (*GetThresholdsOutput, error)
}

// Config holds the dependencies for the roster orchestrator
type Config struct {
	Repository armies.Repository
	Engine     engine.Engine
	Codec      interchange.Codec
	EventBus   events.EventBus
	// IDGenerator and Clock default to UUIDs and the system clock
	IDGenerator idgen.Generator
	Clock       clock.Clock
	// DefaultGameSize applies to new armies created without one
	DefaultGameSize int
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.Codec == nil {
		vb.RequiredField("Codec")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	errors.ValidateMin("DefaultGameSize", c.DefaultGameSize, 0, vb)

	return vb.Build()
}

type orchestrator struct {
	repo            armies.Repository
	engine          engine.Engine
	codec           interchange.Codec
	bus             events.EventBus
	idGen           idgen.Generator
	clock           clock.Clock
	defaultGameSize int

	// locks serialises read-modify-write cycles per army
	locks sync.Map
}

// NewOrchestrator creates a new roster orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := &orchestrator{
		repo:            cfg.Repository,
		engine:          cfg.Engine,
		codec:           cfg.Codec,
		bus:             cfg.EventBus,
		idGen:           cfg.IDGenerator,
		clock:           cfg.Clock,
		defaultGameSize: cfg.DefaultGameSize,
	}
	if o.idGen == nil {
		o.idGen = idgen.NewUUID("army")
	}
	if o.clock == nil {
		o.clock = clock.New()
	}
	if o.defaultGameSize == 0 {
		o.defaultGameSize = army.DefaultGameSize
	}

	return o, nil
}

func (o *orchestrator) lock(armyID string) func() {
	m, _ := o.locks.LoadOrStore(armyID, &sync.Mutex{})
	mu := m.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

func (o *orchestrator) CreateArmy(ctx context.Context, input *CreateArmyInput) (*CreateArmyOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateMin("game_size", input.GameSize, 0, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	gameSize := input.GameSize
	if gameSize == 0 {
		gameSize = o.defaultGameSize
	}
	name := input.Name
	if name == "" {
		name = "Army"
	}

	now := o.clock.Now()
	a := &army.Army{
		ID:        o.idGen.Generate(),
		Name:      name,
		GameSize:  gameSize,
		Units:     normalizeUnits(input.Units),
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := o.repo.Create(ctx, armies.CreateInput{Army: a})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create army")
	}

	slog.InfoContext(ctx, "army created",
		"army_id", a.ID,
		"game_size", a.GameSize,
		"units", len(a.Units))

	report := o.publishScored(ctx, created.Army)
	return &CreateArmyOutput{Army: created.Army, Report: report}, nil
}

func (o *orchestrator) GetArmy(ctx context.Context, input *GetArmyInput) (*GetArmyOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	a, err := o.load(ctx, input.ArmyID)
	if err != nil {
		return nil, err
	}

	return &GetArmyOutput{
		Army:   a,
		Report: o.engine.Evaluate(a.Units, a.GameSize),
	}, nil
}

func (o *orchestrator) ListArmies(ctx context.Context, _ *ListArmiesInput) (*ListArmiesOutput, error) {
	out, err := o.repo.List(ctx, armies.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list armies")
	}

	summaries := make([]*ArmySummary, 0, len(out.Armies))
	for _, a := range out.Armies {
		report := o.engine.Evaluate(a.Units, a.GameSize)
		summaries = append(summaries, &ArmySummary{
			Army:       a,
			Score:      report.Score,
			Assessment: report.Assessment,
		})
	}

	return &ListArmiesOutput{Armies: summaries}, nil
}

func (o *orchestrator) DeleteArmy(ctx context.Context, input *DeleteArmyInput) (*DeleteArmyOutput, error) {
	if input == nil || input.ArmyID == "" {
		return nil, errors.InvalidArgument("army ID is required")
	}

	unlock := o.lock(input.ArmyID)
	defer unlock()

	existing, err := o.load(ctx, input.ArmyID)
	if err != nil {
		return nil, err
	}

	if _, err := o.repo.Delete(ctx, armies.DeleteInput{ID: input.ArmyID}); err != nil {
		return nil, errors.Wrapf(err, "failed to delete army %s", input.ArmyID)
	}
	o.locks.Delete(input.ArmyID)

	o.publish(ctx, EventArmyDeleted, &Scored{Army: existing})
	slog.InfoContext(ctx, "army deleted", "army_id", input.ArmyID)

	return &DeleteArmyOutput{}, nil
}

func (o *orchestrator) PutUnit(ctx context.Context, input *PutUnitInput) (*PutUnitOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	index := input.Index
	a, report, err := o.mutate(ctx, input.ArmyID, func(a *army.Army) error {
		unit := normalizeUnit(input.Unit)
		switch {
		case index == AppendIndex:
			a.Units = append(a.Units, unit)
			index = len(a.Units) - 1
		case a.HasIndex(index):
			a.Units[index] = unit
		default:
			return indexError(a, index)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &PutUnitOutput{Army: a, Report: report, Index: index}, nil
}

func (o *orchestrator) RemoveUnit(ctx context.Context, input *RemoveUnitInput) (*RemoveUnitOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	a, report, err := o.mutate(ctx, input.ArmyID, func(a *army.Army) error {
		if !a.HasIndex(input.Index) {
			return indexError(a, input.Index)
		}
		a.Units = append(a.Units[:input.Index], a.Units[input.Index+1:]...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &RemoveUnitOutput{Army: a, Report: report}, nil
}

func (o *orchestrator) SetUnitQuantity(ctx context.Context, input *SetUnitQuantityInput) (*SetUnitQuantityOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	quantity := input.Quantity
	if quantity < 0 {
		quantity = 0
	}

	a, report, err := o.mutate(ctx, input.ArmyID, func(a *army.Army) error {
		if !a.HasIndex(input.Index) {
			return indexError(a, input.Index)
		}
		a.Units[input.Index].Count = quantity
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &SetUnitQuantityOutput{Army: a, Report: report}, nil
}

func (o *orchestrator) ClearUnits(ctx context.Context, input *ClearUnitsInput) (*ClearUnitsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	a, report, err := o.mutate(ctx, input.ArmyID, func(a *army.Army) error {
		a.Units = []army.Unit{}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &ClearUnitsOutput{Army: a, Report: report}, nil
}

func (o *orchestrator) SetGameSize(ctx context.Context, input *SetGameSizeInput) (*SetGameSizeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateMin("game_size", input.GameSize, 1, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	a, report, err := o.mutate(ctx, input.ArmyID, func(a *army.Army) error {
		a.GameSize = input.GameSize
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &SetGameSizeOutput{Army: a, Report: report}, nil
}

func (o *orchestrator) ImportArmy(ctx context.Context, input *ImportArmyInput) (*ImportArmyOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	// Decode before taking the lock so a bad payload never touches storage.
	units, err := o.codec.Decode(input.Data, input.Format)
	if err != nil {
		slog.WarnContext(ctx, "rejected army import",
			"army_id", input.ArmyID,
			"format", input.Format,
			"error", err.Error())
		return nil, errors.Wrap(err, "failed to import army")
	}

	a, report, err := o.mutate(ctx, input.ArmyID, func(a *army.Army) error {
		a.Units = normalizeUnits(units)
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "army imported",
		"army_id", a.ID,
		"format", input.Format,
		"units", len(a.Units))

	return &ImportArmyOutput{Army: a, Report: report}, nil
}

func (o *orchestrator) ExportArmy(ctx context.Context, input *ExportArmyInput) (*ExportArmyOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	a, err := o.load(ctx, input.ArmyID)
	if err != nil {
		return nil, err
	}

	format := input.Format
	if format == "" {
		format = interchange.FormatJSON
	}

	data, err := o.codec.Encode(a.Units, format)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to export army %s", a.ID)
	}

	return &ExportArmyOutput{Data: data, Format: format}, nil
}

func (o *orchestrator) ScoreArmy(ctx context.Context, input *ScoreArmyInput) (*ScoreArmyOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateMin("game_size", input.GameSize, 0, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	a, err := o.load(ctx, input.ArmyID)
	if err != nil {
		return nil, err
	}

	gameSize := input.GameSize
	if gameSize == 0 {
		gameSize = a.GameSize
	}

	return &ScoreArmyOutput{
		Army:   a,
		Report: o.engine.Evaluate(a.Units, gameSize),
	}, nil
}

func (o *orchestrator) ScoreUnits(_ context.Context, input *ScoreUnitsInput) (*ScoreUnitsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateMin("game_size", input.GameSize, 0, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	gameSize := input.GameSize
	if gameSize == 0 {
		gameSize = o.defaultGameSize
	}

	return &ScoreUnitsOutput{
		Report: o.engine.Evaluate(normalizeUnits(input.Units), gameSize),
	}, nil
}

func (o *orchestrator) GetThresholds(_ context.Context, input *GetThresholdsInput) (*GetThresholdsOutput, error) {
	gameSize := o.defaultGameSize
	if input != nil && input.GameSize != 0 {
		gameSize = input.GameSize
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateMin("game_size", gameSize, 1, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	return &GetThresholdsOutput{Thresholds: o.engine.Thresholds(gameSize)}, nil
}

// mutate loads an army under its lock, applies fn, stores the result and
// publishes the new score. The stored army is untouched when fn fails.
func (o *orchestrator) mutate(
	ctx context.Context,
	armyID string,
	fn func(a *army.Army) error,
) (*army.Army, *engine.Report, error) {
	if armyID == "" {
		return nil, nil, errors.InvalidArgument("army ID is required")
	}

	unlock := o.lock(armyID)
	defer unlock()

	a, err := o.load(ctx, armyID)
	if err != nil {
		return nil, nil, err
	}

	if err := fn(a); err != nil {
		return nil, nil, err
	}
	a.UpdatedAt = o.clock.Now()

	updated, err := o.repo.Update(ctx, armies.UpdateInput{Army: a})
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to save army %s", armyID)
	}

	report := o.publishScored(ctx, updated.Army)
	return updated.Army, report, nil
}

func (o *orchestrator) load(ctx context.Context, armyID string) (*army.Army, error) {
	if armyID == "" {
		return nil, errors.InvalidArgument("army ID is required")
	}

	out, err := o.repo.Get(ctx, armies.GetInput{ID: armyID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load army %s", armyID)
	}
	return out.Army, nil
}

// publishScored evaluates a and announces the result. Delivery failures are
// logged; the change itself has already been stored.
func (o *orchestrator) publishScored(ctx context.Context, a *army.Army) *engine.Report {
	report := o.engine.Evaluate(a.Units, a.GameSize)
	o.publish(ctx, EventArmyScored, &Scored{Army: a.Clone(), Report: report})
	return report
}

func (o *orchestrator) publish(ctx context.Context, eventType string, payload *Scored) {
	if err := o.bus.Publish(ctx, events.NewGameEvent(eventType, payload, nil)); err != nil {
		slog.WarnContext(ctx, "failed to publish army event",
			"event", eventType,
			"army_id", payload.Army.ID,
			"error", err.Error())
	}
}

func indexError(a *army.Army, index int) error {
	return errors.OutOfRangef("unit index %d out of range for %d units", index, len(a.Units)).
		WithMeta("army_id", a.ID).
		WithMeta("index", index)
}

func normalizeUnit(u army.Unit) army.Unit {
	n := u.Normalized()
	if n.Name == "" {
		n.Name = army.NewUnit().Name
	}
	for i := range n.Weapons {
		if n.Weapons[i].Name == "" {
			n.Weapons[i].Name = army.NewWeapon().Name
		}
	}
	return n
}

func normalizeUnits(units []army.Unit) []army.Unit {
	out := make([]army.Unit, 0, len(units))
	for _, u := range units {
		out = append(out, normalizeUnit(u))
	}
	return out
}
