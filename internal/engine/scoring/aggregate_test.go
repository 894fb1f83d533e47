package scoring_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/army-rater/internal/engine/scoring"
	"github.com/KirkDiggler/army-rater/internal/entities/army"
)

type AggregateTestSuite struct {
	suite.Suite
}

func TestAggregateSuite(t *testing.T) {
	suite.Run(t, new(AggregateTestSuite))
}

// flatWeapon rates at exactly power: torrent, S4, AP0 gives 0.8 per attack.
func flatWeapon(name, group string, power float64) army.Weapon {
	w := army.NewWeapon()
	w.Name = name
	w.Group = group
	w.Torrent = true
	w.Attacks = power / 0.8
	return w
}

func intercessors() army.Unit {
	u := army.NewUnit()
	u.Name = "Intercessors"
	u.Points = 100
	u.Models = 5
	u.Count = 2
	u.Toughness = 4
	u.Save = 3
	u.Wounds = 2
	u.Leadership = 6
	u.ObjectiveControl = 2
	u.Weapons = []army.Weapon{flatWeapon("bolt rifle", "", 10)}
	return u
}

func (s *AggregateTestSuite) TestGroupTakesBestOption() {
	u := army.NewUnit()
	u.Weapons = []army.Weapon{
		flatWeapon("plasma", "main", 10),
		flatWeapon("melta", "main", 15),
	}

	offense, weapons := scoring.OffenseScore(u, scoring.Options{})

	s.InDelta(15.0, offense, 1e-9)
	s.Require().Len(weapons, 2)
	s.False(weapons[0].Counted)
	s.True(weapons[1].Counted)
}

func (s *AggregateTestSuite) TestUngroupedAndGroupsSum() {
	u := army.NewUnit()
	u.Weapons = []army.Weapon{
		flatWeapon("pistol", "", 2),
		flatWeapon("plasma", "main", 10),
		flatWeapon("sword", "melee", 4),
		flatWeapon("melta", "main", 15),
		flatWeapon("fist", "melee", 6),
	}

	offense, _ := scoring.OffenseScore(u, scoring.Options{})
	s.InDelta(2.0+15+6, offense, 1e-9)
}

func (s *AggregateTestSuite) TestGroupTieKeepsFirst() {
	u := army.NewUnit()
	u.Weapons = []army.Weapon{
		flatWeapon("first", "main", 10),
		flatWeapon("second", "main", 10),
	}

	offense, weapons := scoring.OffenseScore(u, scoring.Options{})
	s.InDelta(10.0, offense, 1e-9)
	s.True(weapons[0].Counted)
	s.False(weapons[1].Counted)
}

func (s *AggregateTestSuite) TestWeaponQuantityMultiplies() {
	u := army.NewUnit()
	w := flatWeapon("bolter", "", 2)
	w.Quantity = 3
	u.Weapons = []army.Weapon{w}

	offense, weapons := scoring.OffenseScore(u, scoring.Options{})
	s.InDelta(6.0, offense, 1e-9)
	s.InDelta(2.0, weapons[0].Power, 1e-9)
}

func (s *AggregateTestSuite) TestArmyTotals() {
	score := scoring.AggregateArmy([]army.Unit{intercessors()}, scoring.Options{})

	s.Equal(200, score.TotalPoints)
	s.InDelta(20.0, score.TotalOffense, 1e-9)
	// 2.6 per model x 5 models x 2 units
	s.InDelta(26.0, score.TotalDefense, 1e-9)
	s.InDelta(260.0, score.TotalTactical, 1e-9)

	s.Require().Len(score.Units, 1)
	unit := score.Units[0]
	s.Equal(0, unit.Index)
	s.Equal("Intercessors", unit.Name)
	s.True(unit.Active)
	s.InDelta(10.0, unit.Offense, 1e-9)
	s.InDelta(2.6, unit.Defense, 1e-9)
	s.InDelta(26.0, unit.Tactical, 1e-9)
}

func (s *AggregateTestSuite) TestZeroCountEqualsOmission() {
	benched := intercessors()
	benched.Name = "Bench"
	benched.Count = 0

	with := scoring.AggregateArmy([]army.Unit{intercessors(), benched}, scoring.Options{})
	without := scoring.AggregateArmy([]army.Unit{intercessors()}, scoring.Options{})

	s.Equal(without.TotalPoints, with.TotalPoints)
	s.Equal(without.TotalOffense, with.TotalOffense)
	s.Equal(without.TotalDefense, with.TotalDefense)
	s.Equal(without.TotalTactical, with.TotalTactical)

	s.Require().Len(with.Units, 2)
	s.False(with.Units[1].Active)
	s.Equal(1, with.Units[1].Index)
}

func (s *AggregateTestSuite) TestEmptyArmy() {
	score := scoring.AggregateArmy(nil, scoring.Options{})
	s.Zero(score.TotalPoints)
	s.Zero(score.TotalOffense)
	s.Zero(score.TotalDefense)
	s.Zero(score.TotalTactical)
	s.Empty(score.Units)
}

func (s *AggregateTestSuite) TestDeterministic() {
	units := []army.Unit{intercessors(), intercessors()}
	units[1].Weapons = []army.Weapon{
		flatWeapon("a", "x", 3),
		flatWeapon("b", "y", 4),
		flatWeapon("c", "x", 5),
		flatWeapon("d", "y", 1),
	}

	first := scoring.AggregateArmy(units, scoring.Options{})
	for i := 0; i < 20; i++ {
		s.Equal(first, scoring.AggregateArmy(units, scoring.Options{}))
	}
}
