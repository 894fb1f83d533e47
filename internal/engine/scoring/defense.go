package scoring

import (
	"math"
	"math/big"

	"github.com/KirkDiggler/army-rater/internal/entities/army"
)

// DefenseScore rates how hard one model of the unit is to remove.
// The result is rounded to one decimal.
func DefenseScore(u army.Unit, opts Options) float64 {
	u = u.Normalized()
	mods := u.Modifiers

	toughness := math.Pow(nonNegative(float64(u.Toughness))/statBaseline, toughnessExponent)

	effectiveSave := u.Save - mods.SaveBonus
	if effectiveSave < army.BestRoll {
		effectiveSave = army.BestRoll
	}

	tierSave := u.Save
	if opts.EffectiveSaveTier {
		tierSave = effectiveSave
	}
	saveFactor := saveTiers.lookup(tierSave)
	saveFactor *= invulnerableTiers.lookup(effectiveInvulnerable(u))

	if mods.MinusOneToWound {
		saveFactor *= minusOneToWoundFactor
	}

	fnp := u.FeelNoPain
	if mods.FeelNoPain < fnp {
		fnp = mods.FeelNoPain
	}

	score := nonNegative(float64(u.Wounds)) * toughness * saveFactor * feelNoPainFactor(fnp)
	return round1(score)
}

// effectiveInvulnerable lets a granted invulnerable save replace the native
// one only when it is better and the native save is worse than 5++.
func effectiveInvulnerable(u army.Unit) int {
	inv := u.Invulnerable
	granted := u.Modifiers.Invulnerable
	if inv > 5 && granted < inv {
		return granted
	}
	return inv
}

// round1 rounds the exact binary value to one decimal, ties away from zero.
// Scaling by 10 in float64 first would turn 1.1499999999999999 into 11.5.
func round1(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}

	scaled := new(big.Float).SetPrec(256).SetMode(big.ToZero).SetFloat64(math.Abs(v))
	scaled.Mul(scaled, big.NewFloat(10))
	scaled.Add(scaled, big.NewFloat(0.5))
	tenths, _ := scaled.Int(nil)

	r, _ := new(big.Float).SetInt(tenths).Float64()
	return math.Copysign(r/10, v)
}

func nonNegative(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	return v
}
