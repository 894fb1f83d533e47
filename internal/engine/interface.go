// Package engine defines the army scoring engine and the numbers it produces.
//
// Every method is a pure function of its arguments: no I/O, no shared state,
// no errors. Malformed records are normalized before scoring rather than
// rejected.
package engine

import (
	"github.com/KirkDiggler/army-rater/internal/entities/army"
)

// Engine rates units, weapons and whole army lists
type Engine interface {
	// Per-entity scorers
	DefenseScore(unit army.Unit) float64
	TacticalScore(unit army.Unit) float64
	WeaponPower(weapon army.Weapon, unit *army.Unit) float64

	// AggregateArmy rolls per-unit scores into army totals.
	// Units with a zero count are listed but excluded from the totals.
	AggregateArmy(units []army.Unit) *ArmyScore

	// Size-relative normalization
	Thresholds(gameSize int) *Thresholds
	Normalize(score *ArmyScore, gameSize int) *Assessment

	// Evaluate runs AggregateArmy followed by Normalize
	Evaluate(units []army.Unit, gameSize int) *Report
}
