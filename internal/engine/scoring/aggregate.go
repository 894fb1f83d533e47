package scoring

import (
	"github.com/KirkDiggler/army-rater/internal/engine"
	"github.com/KirkDiggler/army-rater/internal/entities/army"
)

// OffenseScore sums a unit's weapon output. Ungrouped weapons always count;
// weapons sharing a group tag are alternatives for one slot, so only the
// strongest of each group counts. On a tie the earlier weapon is kept.
func OffenseScore(u army.Unit, opts Options) (float64, []engine.WeaponScore) {
	u = u.Normalized()

	scores := make([]engine.WeaponScore, len(u.Weapons))
	best := make(map[string]int)
	var groups []string
	var total float64

	for i, w := range u.Weapons {
		power := WeaponPower(w, &u, opts)
		scores[i] = engine.WeaponScore{
			Name:     w.Name,
			Group:    w.Group,
			Quantity: w.Quantity,
			Power:    power,
			Total:    power * float64(w.Quantity),
		}

		if !w.Grouped() {
			scores[i].Counted = true
			total += scores[i].Total
			continue
		}

		j, seen := best[w.Group]
		if !seen {
			groups = append(groups, w.Group)
			best[w.Group] = i
			continue
		}
		if scores[i].Total > scores[j].Total {
			best[w.Group] = i
		}
	}

	// Groups are added in order of first appearance so the sum is stable.
	for _, g := range groups {
		i := best[g]
		scores[i].Counted = true
		total += scores[i].Total
	}

	return total, scores
}

// ScoreUnit produces the single-unit scores without quantity weighting.
func ScoreUnit(index int, u army.Unit, opts Options) engine.UnitScore {
	u = u.Normalized()
	offense, weapons := OffenseScore(u, opts)
	return engine.UnitScore{
		Index:    index,
		Name:     u.Name,
		Points:   u.Points,
		Models:   u.Models,
		Quantity: u.Count,
		Active:   u.Active(),
		Offense:  offense,
		Defense:  DefenseScore(u, opts),
		Tactical: TacticalScore(u),
		Weapons:  weapons,
	}
}

// AggregateArmy scores every unit and accumulates the army totals.
// Offense is weighted by unit count; defense and tactical, being per model,
// by model count times unit count. Inactive units are reported but skipped.
func AggregateArmy(units []army.Unit, opts Options) *engine.ArmyScore {
	result := &engine.ArmyScore{
		Units: make([]engine.UnitScore, 0, len(units)),
	}

	for i, u := range units {
		us := ScoreUnit(i, u, opts)
		result.Units = append(result.Units, us)
		if !us.Active {
			continue
		}

		qty := float64(us.Quantity)
		models := float64(us.Models)
		result.TotalPoints += us.Points * us.Quantity
		result.TotalOffense += us.Offense * qty
		result.TotalDefense += us.Defense * models * qty
		result.TotalTactical += us.Tactical * models * qty
	}

	return result
}
