package scoring

import (
	"math"

	"github.com/KirkDiggler/army-rater/internal/entities/army"
)

// WeaponPower is the expected output of a single copy of the weapon.
// unit may be nil for a weapon rated on its own. The result is unrounded.
func WeaponPower(w army.Weapon, unit *army.Unit, opts Options) float64 {
	w = w.Normalized()
	mods := army.NewModifiers()
	if unit != nil {
		mods = unit.Modifiers
	}

	hit := w.Hit
	if opts.ApplyHitModifier {
		hit -= mods.HitBonus
		if hit < army.BestRoll {
			hit = army.BestRoll
		}
	}

	hitProb := rollProbability(hit)
	if w.Torrent {
		hitProb = 1.0
	}

	sustained := w.Sustained
	if mods.SustainedBonus > sustained {
		sustained = mods.SustainedBonus
	}
	var sustainedBonus float64
	if sustained > 0 {
		sustainedBonus = rollProbability(w.CritThreshold) * float64(sustained)
	}

	expectedHits := nonNegative(w.Attacks) * (hitProb + sustainedBonus)
	strength := math.Pow(nonNegative(float64(w.Strength))/statBaseline, strengthExponent)
	ap := apBase + apPerPoint*math.Abs(float64(w.AP))

	return expectedHits * strength * ap * nonNegative(w.Damage) * keywordMultiplier(w)
}

// keywordMultiplier stacks the weapon's own keywords multiplicatively.
func keywordMultiplier(w army.Weapon) float64 {
	m := 1.0
	if w.LethalHits {
		m *= lethalHitsFactor
	}
	if w.DevastatingWounds {
		m *= devastatingWoundsFactor
	}
	if w.TwinLinked {
		m *= twinLinkedFactor
	}
	return m
}

// rollProbability is the chance of rolling target or better on a D6.
func rollProbability(target int) float64 {
	p := float64(dieCeiling-target) / dieFaces
	return math.Max(0, math.Min(1, p))
}
