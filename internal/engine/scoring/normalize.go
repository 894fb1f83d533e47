package scoring

import (
	"github.com/KirkDiggler/army-rater/internal/engine"
)

// Normalize reads an army score against the bands for gameSize.
func Normalize(score *engine.ArmyScore, gameSize int) *engine.Assessment {
	th := Thresholds(gameSize)
	assessment := &engine.Assessment{
		Thresholds: th,
		Bars:       []engine.UnitBars{},
	}
	if score == nil {
		assessment.Offense = th.Offense.Classify(0)
		assessment.Defense = th.Defense.Classify(0)
		assessment.Tactical = th.Tactical.Classify(0)
		return assessment
	}

	assessment.Offense = th.Offense.Classify(score.TotalOffense)
	assessment.Defense = th.Defense.Classify(score.TotalDefense)
	assessment.Tactical = th.Tactical.Classify(score.TotalTactical)

	assessment.Bars = make([]engine.UnitBars, 0, len(score.Units))
	for _, u := range score.Units {
		assessment.Bars = append(assessment.Bars, engine.UnitBars{
			Index:    u.Index,
			Offense:  Percent(u.Offense, th.Offense),
			Defense:  Percent(u.Defense, th.Defense),
			Tactical: Percent(u.Tactical, th.Tactical),
		})
	}

	return assessment
}
