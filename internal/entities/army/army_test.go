package army_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/army-rater/internal/entities/army"
)

type ArmyTestSuite struct {
	suite.Suite
}

func TestArmySuite(t *testing.T) {
	suite.Run(t, new(ArmyTestSuite))
}

func (s *ArmyTestSuite) TestNormalizedUnit() {
	u := army.Unit{
		Models:       0,
		Count:        -2,
		Save:         1,
		Invulnerable: 0,
		FeelNoPain:   9,
		Weapons: []army.Weapon{
			{Hit: 0, CritThreshold: 0, Quantity: -1},
		},
	}

	n := u.Normalized()

	s.Equal(1, n.Models)
	s.Equal(0, n.Count)
	s.Equal(army.BestRoll, n.Save)
	s.Equal(army.NoRoll, n.Invulnerable)
	s.Equal(army.NoRoll, n.FeelNoPain)
	s.Equal(army.NoRoll, n.Modifiers.Invulnerable)
	s.Equal(army.NoRoll, n.Modifiers.FeelNoPain)
	s.Require().Len(n.Weapons, 1)
	s.Equal(army.BestRoll, n.Weapons[0].Hit)
	s.Equal(army.DefaultCritThreshold, n.Weapons[0].CritThreshold)
	s.Equal(0, n.Weapons[0].Quantity)

	s.Run("leaves the receiver untouched", func() {
		s.Equal(1, u.Save)
		s.Equal(0, u.Weapons[0].CritThreshold)
	})
}

func (s *ArmyTestSuite) TestActive() {
	u := army.NewUnit()
	s.True(u.Active())

	u.Count = 0
	s.False(u.Active())
}

func (s *ArmyTestSuite) TestClampRoll() {
	s.Equal(2, army.ClampRoll(-1))
	s.Equal(4, army.ClampRoll(4))
	s.Equal(7, army.ClampRoll(12))
}

func (s *ArmyTestSuite) TestWeaponGrouped() {
	w := army.NewWeapon()
	s.False(w.Grouped())
	w.Group = "main"
	s.True(w.Grouped())
}

func (s *ArmyTestSuite) TestCloneIsDeep() {
	a := &army.Army{
		ID:    "army-1",
		Units: []army.Unit{army.NewUnit()},
	}
	a.Units[0].Weapons = []army.Weapon{army.NewWeapon()}

	c := a.Clone()
	c.Units[0].Name = "changed"
	c.Units[0].Weapons[0].Name = "changed"

	s.Equal("Unit", a.Units[0].Name)
	s.Equal("Weapon", a.Units[0].Weapons[0].Name)
	s.Equal("army-1", c.GetID())
	s.Equal(army.EntityType, c.GetType())
	s.Nil((*army.Army)(nil).Clone())
}

func (s *ArmyTestSuite) TestHasIndex() {
	a := &army.Army{Units: make([]army.Unit, 2)}
	s.True(a.HasIndex(0))
	s.True(a.HasIndex(1))
	s.False(a.HasIndex(2))
	s.False(a.HasIndex(-1))
}
