package scoring

import "math"

// tier maps every value up to and including max onto factor.
type tier struct {
	max    int
	factor float64
}

// tierTable is ordered by ascending max; the last tier catches everything.
type tierTable []tier

func (t tierTable) lookup(v int) float64 {
	for _, tr := range t {
		if v <= tr.max {
			return tr.factor
		}
	}
	return t[len(t)-1].factor
}

// Armour save weighting. 4+ is the 1.0 baseline.
var saveTiers = tierTable{
	{max: 2, factor: 1.8},
	{max: 3, factor: 1.3},
	{max: 4, factor: 1.0},
	{max: 5, factor: 0.7},
	{max: math.MaxInt, factor: 0.5},
}

// Invulnerable save multiplier applied on top of the save tier.
var invulnerableTiers = tierTable{
	{max: 4, factor: 1.4},
	{max: 5, factor: 1.2},
	{max: 6, factor: 1.1},
	{max: math.MaxInt, factor: 1.0},
}

// Feel-no-pain is a discrete bonus, not an expected-value reduction.
// Only 4+, 5+ and 6+ are weighted.
var feelNoPainFactors = map[int]float64{
	4: 1.8,
	5: 1.4,
	6: 1.15,
}

func feelNoPainFactor(fnp int) float64 {
	if f, ok := feelNoPainFactors[fnp]; ok {
		return f
	}
	return 1.0
}

const (
	minusOneToWoundFactor = 1.2

	lethalHitsFactor        = 1.25
	devastatingWoundsFactor = 1.4
	twinLinkedFactor        = 1.25

	toughnessExponent = 1.2
	strengthExponent  = 0.9
	statBaseline      = 4.0

	apBase     = 0.8
	apPerPoint = 0.3
	ocWeight   = 3.0
	ldWeight   = 4.0
	ldCeiling  = 11
	dieFaces   = 6.0
	dieCeiling = 7
)
