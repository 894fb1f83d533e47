package scoring_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/army-rater/internal/engine/scoring"
	"github.com/KirkDiggler/army-rater/internal/entities/army"
)

type WeaponPowerTestSuite struct {
	suite.Suite
}

func TestWeaponPowerSuite(t *testing.T) {
	suite.Run(t, new(WeaponPowerTestSuite))
}

func (s *WeaponPowerTestSuite) weapon(a float64, hit, str, ap int, d float64) army.Weapon {
	w := army.NewWeapon()
	w.Attacks = a
	w.Hit = hit
	w.Strength = str
	w.AP = ap
	w.Damage = d
	return w
}

func (s *WeaponPowerTestSuite) TestWorkedExample() {
	// 2 attacks at 3+ => 4/3 hits, S4 => 1.0, AP-1 => 1.1, D1
	w := s.weapon(2, 3, 4, 1, 1)
	s.InDelta(1.4667, scoring.WeaponPower(w, nil, scoring.Options{}), 1e-4)
}

func (s *WeaponPowerTestSuite) TestHitProbability() {
	testCases := []struct {
		name     string
		hit      int
		torrent  bool
		expected float64
	}{
		{name: "2+", hit: 2, expected: 6 * 5.0 / 6 * 0.8},
		{name: "4+", hit: 4, expected: 6 * 0.5 * 0.8},
		{name: "6+", hit: 6, expected: 6 * 1.0 / 6 * 0.8},
		{name: "cannot hit", hit: 7, expected: 0},
		{name: "torrent always hits", hit: 6, torrent: true, expected: 6 * 0.8},
		{name: "below 2+ clamps", hit: 1, expected: 6 * 5.0 / 6 * 0.8},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			w := s.weapon(6, tc.hit, 4, 0, 1)
			w.Torrent = tc.torrent
			s.InDelta(tc.expected, scoring.WeaponPower(w, nil, scoring.Options{}), 1e-9)
		})
	}
}

func (s *WeaponPowerTestSuite) TestSustainedHits() {
	s.Run("weapon sustained 1 on a 6", func() {
		w := s.weapon(6, 3, 4, 0, 1)
		w.Sustained = 1
		// 6 x (4/6 + 1/6) x 0.8
		s.InDelta(4.0, scoring.WeaponPower(w, nil, scoring.Options{}), 1e-9)
	})

	s.Run("crit threshold widens the bonus", func() {
		w := s.weapon(6, 3, 4, 0, 1)
		w.Sustained = 2
		w.CritThreshold = 5
		// 6 x (4/6 + 2/6 x 2) x 0.8
		s.InDelta(6.4, scoring.WeaponPower(w, nil, scoring.Options{}), 1e-9)
	})

	s.Run("unit buff is used when better than the weapon", func() {
		w := s.weapon(6, 3, 4, 0, 1)
		u := army.NewUnit()
		u.Modifiers.SustainedBonus = 1
		s.InDelta(4.0, scoring.WeaponPower(w, &u, scoring.Options{}), 1e-9)
	})

	s.Run("buffs do not stack with the weapon", func() {
		w := s.weapon(6, 3, 4, 0, 1)
		w.Sustained = 1
		u := army.NewUnit()
		u.Modifiers.SustainedBonus = 1
		s.InDelta(4.0, scoring.WeaponPower(w, &u, scoring.Options{}), 1e-9)
	})

	s.Run("torrent still gains sustained hits", func() {
		w := s.weapon(6, 3, 4, 0, 1)
		w.Torrent = true
		w.Sustained = 1
		s.InDelta(6*(1+1.0/6)*0.8, scoring.WeaponPower(w, nil, scoring.Options{}), 1e-9)
	})
}

func (s *WeaponPowerTestSuite) TestStrengthAndAP() {
	// 1 attack at 2+, S8, AP-2, D2: 5/6 x 2^0.9 x 1.4 x 2
	w := s.weapon(1, 2, 8, 2, 2)
	s.InDelta(4.354154, scoring.WeaponPower(w, nil, scoring.Options{}), 1e-5)

	s.Run("AP sign does not matter", func() {
		positive := s.weapon(1, 3, 4, 2, 1)
		negative := s.weapon(1, 3, 4, -2, 1)
		s.Equal(
			scoring.WeaponPower(positive, nil, scoring.Options{}),
			scoring.WeaponPower(negative, nil, scoring.Options{}),
		)
	})
}

func (s *WeaponPowerTestSuite) TestKeywordsStack() {
	w := s.weapon(1, 3, 4, 0, 1)
	base := scoring.WeaponPower(w, nil, scoring.Options{})

	w.LethalHits = true
	s.InDelta(base*1.25, scoring.WeaponPower(w, nil, scoring.Options{}), 1e-9)

	w.DevastatingWounds = true
	s.InDelta(base*1.25*1.4, scoring.WeaponPower(w, nil, scoring.Options{}), 1e-9)

	w.TwinLinked = true
	s.InDelta(base*1.25*1.4*1.25, scoring.WeaponPower(w, nil, scoring.Options{}), 1e-9)
}

func (s *WeaponPowerTestSuite) TestGrantedKeywordsAreNotApplied() {
	w := s.weapon(1, 3, 4, 0, 1)
	u := army.NewUnit()
	base := scoring.WeaponPower(w, &u, scoring.Options{})

	u.Modifiers.LethalHits = true
	u.Modifiers.DevastatingWounds = true
	s.Equal(base, scoring.WeaponPower(w, &u, scoring.Options{}))
}

func (s *WeaponPowerTestSuite) TestHitModifier() {
	w := s.weapon(1, 4, 4, 0, 1)
	u := army.NewUnit()
	u.Modifiers.HitBonus = 1

	s.Run("observed behaviour ignores the unit hit bonus", func() {
		s.InDelta(0.5*0.8, scoring.WeaponPower(w, &u, scoring.Options{}), 1e-9)
	})

	s.Run("apply hit modifier improves the hit roll", func() {
		s.InDelta(4.0/6*0.8, scoring.WeaponPower(w, &u, scoring.Options{ApplyHitModifier: true}), 1e-9)
	})

	s.Run("apply hit modifier floors at 2+", func() {
		u.Modifiers.HitBonus = 5
		s.InDelta(5.0/6*0.8, scoring.WeaponPower(w, &u, scoring.Options{ApplyHitModifier: true}), 1e-9)
	})
}

func (s *WeaponPowerTestSuite) TestNonNegative() {
	hostile := []army.Weapon{
		s.weapon(-3, 3, 4, 0, 1),
		s.weapon(1, 3, -4, 0, 1),
		s.weapon(1, 3, 4, 0, -2),
		{},
	}
	for _, w := range hostile {
		s.GreaterOrEqual(scoring.WeaponPower(w, nil, scoring.Options{}), 0.0)
	}
}
