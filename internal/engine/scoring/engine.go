// Package scoring implements the closed-form army rating formulas.
package scoring

import (
	"github.com/KirkDiggler/army-rater/internal/engine"
	"github.com/KirkDiggler/army-rater/internal/entities/army"
)

// Options switch between the observed formulas and their corrected variants.
// The zero value keeps the observed behaviour.
type Options struct {
	// ApplyHitModifier lowers the weapon's hit target by the unit's hit bonus
	// before computing hit probability. Off: the bonus is ignored.
	ApplyHitModifier bool

	// EffectiveSaveTier keys the save tier on the save after the unit's save
	// bonus. Off: the tier uses the unmodified save.
	EffectiveSaveTier bool
}

// Config holds the engine configuration
type Config struct {
	Options Options
}

// Validate validates the config
func (cfg *Config) Validate() error {
	return nil
}

type scorer struct {
	opts Options
}

var _ engine.Engine = (*scorer)(nil)

// New creates a scoring engine. A nil config yields the default options.
func New(cfg *Config) (engine.Engine, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &scorer{opts: cfg.Options}, nil
}

func (s *scorer) DefenseScore(unit army.Unit) float64 {
	return DefenseScore(unit, s.opts)
}

func (s *scorer) TacticalScore(unit army.Unit) float64 {
	return TacticalScore(unit)
}

func (s *scorer) WeaponPower(weapon army.Weapon, unit *army.Unit) float64 {
	return WeaponPower(weapon, unit, s.opts)
}

func (s *scorer) AggregateArmy(units []army.Unit) *engine.ArmyScore {
	return AggregateArmy(units, s.opts)
}

func (s *scorer) Thresholds(gameSize int) *engine.Thresholds {
	return Thresholds(gameSize)
}

func (s *scorer) Normalize(score *engine.ArmyScore, gameSize int) *engine.Assessment {
	return Normalize(score, gameSize)
}

func (s *scorer) Evaluate(units []army.Unit, gameSize int) *engine.Report {
	score := s.AggregateArmy(units)
	return &engine.Report{
		Score:      score,
		Assessment: s.Normalize(score, gameSize),
	}
}
