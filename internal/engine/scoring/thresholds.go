package scoring

import (
	"math"

	"github.com/KirkDiggler/army-rater/internal/engine"
)

const (
	// BaselineGameSize is the points level the reference bands are set at.
	BaselineGameSize = 2000

	// fairShareUnits approximates the number of units in a typical list;
	// a unit filling its share of the high band shows a full bar.
	fairShareUnits = 8.0
)

// Reference bands for a competitive 2000 point list.
var baselineBands = map[engine.Axis]engine.Band{
	engine.AxisOffense:  {Low: 300, High: 600},
	engine.AxisDefense:  {Low: 400, High: 800},
	engine.AxisTactical: {Low: 250, High: 500},
}

// BaselineBand returns the unscaled band for an axis
func BaselineBand(axis engine.Axis) engine.Band {
	return baselineBands[axis]
}

// SizeRatio is gameSize relative to the baseline. Non-positive sizes read as
// the baseline.
func SizeRatio(gameSize int) float64 {
	if gameSize <= 0 {
		gameSize = BaselineGameSize
	}
	return float64(gameSize) / BaselineGameSize
}

// Thresholds scales every reference band to gameSize.
func Thresholds(gameSize int) *engine.Thresholds {
	if gameSize <= 0 {
		gameSize = BaselineGameSize
	}
	ratio := SizeRatio(gameSize)
	return &engine.Thresholds{
		GameSize: gameSize,
		Ratio:    ratio,
		Offense:  baselineBands[engine.AxisOffense].Scale(ratio),
		Defense:  baselineBands[engine.AxisDefense].Scale(ratio),
		Tactical: baselineBands[engine.AxisTactical].Scale(ratio),
	}
}

// Percent is the display bar for a single-unit score against a scaled band:
// score over the unit's fair share of the band's high mark, capped at 100.
func Percent(score float64, band engine.Band) float64 {
	share := band.High / fairShareUnits
	if share <= 0 {
		return 0
	}
	return math.Min(nonNegative(score)/share*100, 100)
}
