package engine

import "fmt"

// Axis names one of the three rating axes
type Axis string

// Rating axes
const (
	AxisOffense  Axis = "offense"
	AxisDefense  Axis = "defense"
	AxisTactical Axis = "tactical"
)

// Rating is where an army total falls against a threshold band
type Rating string

// Ratings
const (
	RatingLow    Rating = "low"
	RatingMedium Rating = "medium"
	RatingHigh   Rating = "high"
)

// WeaponScore is the scored output of one weapon line on a unit
type WeaponScore struct {
	Name     string  `json:"name"`
	Group    string  `json:"group,omitempty"`
	Quantity int     `json:"quantity"`
	Power    float64 `json:"power"`
	Total    float64 `json:"total"`
	// Counted is false for group alternatives that lost to a stronger option
	Counted bool `json:"counted"`
}

// UnitScore holds the single-unit scores. Defense and tactical are per model
// and rounded to one decimal; offense is for the whole unit.
type UnitScore struct {
	Index    int           `json:"index"`
	Name     string        `json:"name"`
	Points   int           `json:"points"`
	Models   int           `json:"models"`
	Quantity int           `json:"quantity"`
	Active   bool          `json:"active"`
	Offense  float64       `json:"offense"`
	Defense  float64       `json:"defense"`
	Tactical float64       `json:"tactical"`
	Weapons  []WeaponScore `json:"weapons"`
}

// ArmyScore is the aggregated result for a whole list
type ArmyScore struct {
	TotalPoints   int         `json:"total_points"`
	TotalOffense  float64     `json:"total_offense"`
	TotalDefense  float64     `json:"total_defense"`
	TotalTactical float64     `json:"total_tactical"`
	Units         []UnitScore `json:"units"`
}

// Band is a low/high reference range for one axis
type Band struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// Scale returns the band multiplied by ratio
func (b Band) Scale(ratio float64) Band {
	return Band{Low: b.Low * ratio, High: b.High * ratio}
}

// Classify places v in the band. Both bounds belong to medium.
func (b Band) Classify(v float64) Rating {
	switch {
	case v < b.Low:
		return RatingLow
	case v > b.High:
		return RatingHigh
	default:
		return RatingMedium
	}
}

// Describe renders the band the way the roster summary shows it
func (b Band) Describe() string {
	return fmt.Sprintf("Low: < %.0f / Medium: %.0f - %.0f / High: > %.0f", b.Low, b.Low, b.High, b.High)
}

// Thresholds are the reference bands scaled to a game size
type Thresholds struct {
	GameSize int     `json:"game_size"`
	Ratio    float64 `json:"ratio"`
	Offense  Band    `json:"offense"`
	Defense  Band    `json:"defense"`
	Tactical Band    `json:"tactical"`
}

// Band returns the band for an axis
func (t *Thresholds) Band(axis Axis) Band {
	switch axis {
	case AxisOffense:
		return t.Offense
	case AxisDefense:
		return t.Defense
	default:
		return t.Tactical
	}
}

// UnitBars are display percentages in [0,100] for one unit
type UnitBars struct {
	Index    int     `json:"index"`
	Offense  float64 `json:"offense"`
	Defense  float64 `json:"defense"`
	Tactical float64 `json:"tactical"`
}

// Assessment is an ArmyScore read against a game size
type Assessment struct {
	Thresholds *Thresholds `json:"thresholds"`
	Offense    Rating      `json:"offense"`
	Defense    Rating      `json:"defense"`
	Tactical   Rating      `json:"tactical"`
	Bars       []UnitBars  `json:"bars"`
}

// Report bundles the raw score with its normalized reading
type Report struct {
	Score      *ArmyScore  `json:"score"`
	Assessment *Assessment `json:"assessment"`
}
