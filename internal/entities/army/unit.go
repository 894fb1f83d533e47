// Package army holds the army-list records the scoring engine reads.
//
// JSON and YAML keys are the short keys the list builder has always exported
// (pts, sv, inv, buffs, grp, ...). They are the interchange schema, so renaming
// a tag breaks every saved list.
package army

const (
	// BestRoll is the best possible target on a six-sided die (2+).
	BestRoll = 2
	// NoRoll marks a save or feel-no-pain that does not apply.
	NoRoll = 7
	// DefaultCritThreshold is the unmodified critical hit roll.
	DefaultCritThreshold = 6
)

// Unit is one entry in an army list.
type Unit struct {
	Name             string    `json:"name" yaml:"name"`
	Points           int       `json:"pts" yaml:"pts"`
	Models           int       `json:"models" yaml:"models"`
	Toughness        int       `json:"t" yaml:"t"`
	Save             int       `json:"sv" yaml:"sv"`
	Invulnerable     int       `json:"inv" yaml:"inv"`
	FeelNoPain       int       `json:"fnp" yaml:"fnp"`
	Wounds           int       `json:"w" yaml:"w"`
	Leadership       int       `json:"ld" yaml:"ld"`
	ObjectiveControl int       `json:"oc" yaml:"oc"`
	Count            int       `json:"count" yaml:"count"`
	Modifiers        Modifiers `json:"buffs" yaml:"buffs"`
	Weapons          []Weapon  `json:"weapons" yaml:"weapons"`
}

// Modifiers are unit-level buffs, usually granted by an attached leader.
type Modifiers struct {
	HitBonus          int  `json:"hit" yaml:"hit"`
	SustainedBonus    int  `json:"sus" yaml:"sus"`
	SaveBonus         int  `json:"sv" yaml:"sv"`
	Invulnerable      int  `json:"inv" yaml:"inv"`
	FeelNoPain        int  `json:"fnp" yaml:"fnp"`
	LethalHits        bool `json:"lethal" yaml:"lethal"`
	DevastatingWounds bool `json:"dev" yaml:"dev"`
	MinusOneToWound   bool `json:"minusWound" yaml:"minusWound"`
}

// NewUnit returns a unit carrying the documented defaults for every field.
func NewUnit() Unit {
	return Unit{
		Name:         "Unit",
		Models:       1,
		Toughness:    4,
		Save:         NoRoll,
		Invulnerable: NoRoll,
		FeelNoPain:   NoRoll,
		Wounds:       1,
		Leadership:   7,
		Count:        1,
		Modifiers:    NewModifiers(),
		Weapons:      []Weapon{},
	}
}

// NewModifiers returns a modifier set that changes nothing.
func NewModifiers() Modifiers {
	return Modifiers{
		Invulnerable: NoRoll,
		FeelNoPain:   NoRoll,
	}
}

// Active reports whether the unit is fielded and counts toward army totals.
func (u Unit) Active() bool {
	return u.Count > 0
}

// Normalized returns a copy with the stat clamps re-applied: rolls clamped
// into [2,7], zero inv/fnp read as "none", at least one model and a
// non-negative count. The receiver is never modified.
func (u Unit) Normalized() Unit {
	n := u
	if n.Models < 1 {
		n.Models = 1
	}
	if n.Count < 0 {
		n.Count = 0
	}
	n.Save = ClampRoll(n.Save)
	n.Invulnerable = clampOptionalRoll(n.Invulnerable)
	n.FeelNoPain = clampOptionalRoll(n.FeelNoPain)
	n.Modifiers.Invulnerable = clampOptionalRoll(n.Modifiers.Invulnerable)
	n.Modifiers.FeelNoPain = clampOptionalRoll(n.Modifiers.FeelNoPain)

	n.Weapons = make([]Weapon, len(u.Weapons))
	for i, w := range u.Weapons {
		n.Weapons[i] = w.Normalized()
	}
	return n
}

// Clone returns a deep copy of the unit.
func (u Unit) Clone() Unit {
	c := u
	c.Weapons = make([]Weapon, len(u.Weapons))
	copy(c.Weapons, u.Weapons)
	return c
}

// ClampRoll bounds a die target into [BestRoll, NoRoll].
func ClampRoll(v int) int {
	if v < BestRoll {
		return BestRoll
	}
	if v > NoRoll {
		return NoRoll
	}
	return v
}

func clampOptionalRoll(v int) int {
	if v == 0 {
		return NoRoll
	}
	return ClampRoll(v)
}
