package army

// Weapon is one firing profile carried by a unit.
type Weapon struct {
	Name              string  `json:"name" yaml:"name"`
	Quantity          int     `json:"qty" yaml:"qty"`
	Group             string  `json:"grp" yaml:"grp"`
	Attacks           float64 `json:"a" yaml:"a"`
	Hit               int     `json:"hit" yaml:"hit"`
	Strength          int     `json:"s" yaml:"s"`
	AP                int     `json:"ap" yaml:"ap"`
	Damage            float64 `json:"d" yaml:"d"`
	Sustained         int     `json:"sus" yaml:"sus"`
	CritThreshold     int     `json:"crit" yaml:"crit"`
	LethalHits        bool    `json:"lethal" yaml:"lethal"`
	DevastatingWounds bool    `json:"dev" yaml:"dev"`
	TwinLinked        bool    `json:"twin" yaml:"twin"`
	Torrent           bool    `json:"torrent" yaml:"torrent"`
	Tags              string  `json:"tags" yaml:"tags"`
}

// NewWeapon returns a weapon carrying the documented defaults.
func NewWeapon() Weapon {
	return Weapon{
		Name:          "Weapon",
		Quantity:      1,
		Attacks:       1,
		Hit:           3,
		Strength:      4,
		Damage:        1,
		CritThreshold: DefaultCritThreshold,
	}
}

// Grouped reports whether the weapon is one of several exclusive loadout options.
func (w Weapon) Grouped() bool {
	return w.Group != ""
}

// Normalized returns a copy with the hit and critical thresholds bounded.
func (w Weapon) Normalized() Weapon {
	n := w
	if n.CritThreshold == 0 {
		n.CritThreshold = DefaultCritThreshold
	}
	n.CritThreshold = ClampRoll(n.CritThreshold)
	n.Hit = ClampRoll(n.Hit)
	if n.Quantity < 0 {
		n.Quantity = 0
	}
	return n
}
