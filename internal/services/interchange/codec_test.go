package interchange_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/army-rater/internal/engine/scoring"
	"github.com/KirkDiggler/army-rater/internal/entities/army"
	"github.com/KirkDiggler/army-rater/internal/errors"
	"github.com/KirkDiggler/army-rater/internal/services/interchange"
	"github.com/KirkDiggler/army-rater/internal/testutils/builders"
)

type CodecTestSuite struct {
	suite.Suite
	codec interchange.Codec
}

func TestCodecSuite(t *testing.T) {
	suite.Run(t, new(CodecTestSuite))
}

func (s *CodecTestSuite) SetupTest() {
	s.codec = interchange.New()
}

func (s *CodecTestSuite) sampleArmy() []army.Unit {
	meltagun := builders.NewWeaponBuilder().WithName("Meltagun").WithProfile(1, 3, 9, 4, 3.5).WithGroup("special").Build()
	meltagun.Tags = "melta 2"
	plasma := builders.NewWeaponBuilder().WithName("Plasma gun").WithProfile(1, 3, 8, 3, 2).WithGroup("special").Build()
	flamer := builders.NewWeaponBuilder().WithName("Flamer").WithProfile(3.5, 7, 4, 0, 1).Build()
	flamer.Torrent = true
	flamer.Sustained = 1
	flamer.TwinLinked = true

	captain := builders.NewUnitBuilder().
		WithName("Captain").
		WithPoints(80).
		WithDefense(4, 3, 5).
		WithTactical(6, 1).
		WithModifiers(army.Modifiers{
			HitBonus:        1,
			SaveBonus:       1,
			Invulnerable:    4,
			FeelNoPain:      army.NoRoll,
			LethalHits:      true,
			MinusOneToWound: true,
		}).
		Build()
	captain.Invulnerable = 4

	return []army.Unit{
		builders.Intercessors().WithCount(2).Build(),
		builders.NewUnitBuilder().WithName("Command Squad").WithModels(4).WithWeapons(meltagun, plasma, flamer).Build(),
		captain,
		builders.Intercessors().WithName("Benched").WithCount(0).Build(),
	}
}

func (s *CodecTestSuite) TestRoundTrip() {
	units := s.sampleArmy()

	for _, format := range []interchange.Format{interchange.FormatJSON, interchange.FormatYAML} {
		s.Run(string(format), func() {
			data, err := s.codec.Encode(units, format)
			s.Require().NoError(err)

			decoded, err := s.codec.Decode(data, format)
			s.Require().NoError(err)
			s.Equal(units, decoded)

			s.Run("recomputed scores match", func() {
				s.Equal(
					scoring.AggregateArmy(units, scoring.Options{}),
					scoring.AggregateArmy(decoded, scoring.Options{}),
				)
			})
		})
	}
}

func (s *CodecTestSuite) TestJSONLayout() {
	data, err := s.codec.Encode([]army.Unit{army.NewUnit()}, interchange.FormatJSON)
	s.Require().NoError(err)

	s.True(strings.HasPrefix(string(data), "[\n    {\n        \"name\": \"Unit\",\n        \"pts\": 0,"))
	s.Contains(string(data), "\"buffs\": {\n            \"hit\": 0,")
	s.Contains(string(data), "\"weapons\": []")
}

func (s *CodecTestSuite) TestEncodeEmpty() {
	data, err := s.codec.Encode(nil, interchange.FormatJSON)
	s.Require().NoError(err)
	s.Equal("[]", string(data))

	decoded, err := s.codec.Decode(data, interchange.FormatJSON)
	s.Require().NoError(err)
	s.Empty(decoded)
}

func (s *CodecTestSuite) TestDecodeAppliesDefaults() {
	units, err := s.codec.Decode([]byte(`[{}]`), interchange.FormatJSON)
	s.Require().NoError(err)
	s.Require().Len(units, 1)
	s.Equal(army.NewUnit(), units[0])

	units, err = s.codec.Decode([]byte(`[{"weapons":[{}]}]`), interchange.FormatJSON)
	s.Require().NoError(err)
	s.Equal([]army.Weapon{army.NewWeapon()}, units[0].Weapons)
}

func (s *CodecTestSuite) TestDecodeIsLenient() {
	payload := `[{
		"name": "",
		"pts": "120",
		"models": 0,
		"count": -3,
		"t": "not a number",
		"sv": 1,
		"inv": 0,
		"fnp": null,
		"w": 2.9,
		"buffs": {"hit": "1", "inv": 0, "lethal": "on", "minusWound": 1},
		"weapons": [{"name": 42, "a": "2.5", "d": "D3", "torrent": "on", "dev": "true", "twin": "false", "crit": 0, "hit": 9}]
	}]`

	units, err := s.codec.Decode([]byte(payload), interchange.FormatJSON)
	s.Require().NoError(err)
	s.Require().Len(units, 1)
	u := units[0]

	s.Equal("Unit", u.Name)
	s.Equal(120, u.Points)
	s.Equal(1, u.Models)
	s.Equal(0, u.Count)
	s.Equal(4, u.Toughness)
	s.Equal(army.BestRoll, u.Save)
	s.Equal(army.NoRoll, u.Invulnerable)
	s.Equal(army.NoRoll, u.FeelNoPain)
	s.Equal(2, u.Wounds)
	s.Equal(1, u.Modifiers.HitBonus)
	s.Equal(army.NoRoll, u.Modifiers.Invulnerable)
	s.True(u.Modifiers.LethalHits)
	s.True(u.Modifiers.MinusOneToWound)

	s.Require().Len(u.Weapons, 1)
	w := u.Weapons[0]
	s.Equal("42", w.Name)
	s.Equal(2.5, w.Attacks)
	s.Equal(1.0, w.Damage)
	s.True(w.Torrent)
	s.True(w.DevastatingWounds)
	s.False(w.TwinLinked)
	s.Equal(army.DefaultCritThreshold, w.CritThreshold)
	s.Equal(army.NoRoll, w.Hit)
}

func (s *CodecTestSuite) TestDecodeYAML() {
	payload := `
- name: Hellblasters
  pts: 115
  models: 5
  sv: 3
  w: 2
  ld: 6
  oc: 1
  weapons:
    - name: Plasma incinerator
      a: 2
      s: 8
      ap: -3
      d: 2
      grp: main
`
	units, err := s.codec.Decode([]byte(payload), interchange.FormatYAML)
	s.Require().NoError(err)
	s.Require().Len(units, 1)
	s.Equal("Hellblasters", units[0].Name)
	s.Equal(1, units[0].Count)
	s.Require().Len(units[0].Weapons, 1)
	s.Equal(-3, units[0].Weapons[0].AP)
	s.Equal("main", units[0].Weapons[0].Group)
}

func (s *CodecTestSuite) TestDecodeOutOfRangeIntegers() {
	units, err := s.codec.Decode([]byte(`[{"pts": 1e20, "count": 1e20, "models": -1e20, "t": "9e99"}]`), interchange.FormatJSON)
	s.Require().NoError(err)
	s.Require().Len(units, 1)

	s.Equal(0, units[0].Points)
	s.Equal(1, units[0].Count)
	s.Equal(1, units[0].Models)
	s.Equal(4, units[0].Toughness)
}

func (s *FormatTestSuite) TestWholeNumber() {
	n, ok := interchange.WholeNumber(2000)
	s.True(ok)
	s.Equal(2000, n)

	for _, f := range []float64{1.5, 1e20, -1e20, math.NaN(), math.Inf(1)} {
		_, ok := interchange.WholeNumber(f)
		s.False(ok, "%v", f)
	}
}

func (s *CodecTestSuite) TestStructuralErrors() {
	testCases := []struct {
		name    string
		payload string
		format  interchange.Format
	}{
		{name: "undecodable json", payload: `[{`, format: interchange.FormatJSON},
		{name: "undecodable yaml", payload: "- a: [", format: interchange.FormatYAML},
		{name: "object instead of list", payload: `{"name":"x"}`, format: interchange.FormatJSON},
		{name: "null document", payload: `null`, format: interchange.FormatJSON},
		{name: "unit is not an object", payload: `[1]`, format: interchange.FormatJSON},
		{name: "weapons is not a list", payload: `[{"weapons":{}}]`, format: interchange.FormatJSON},
		{name: "weapon is not an object", payload: `[{"weapons":["bolter"]}]`, format: interchange.FormatJSON},
		{name: "buffs is not an object", payload: `[{"buffs":[]}]`, format: interchange.FormatJSON},
		{name: "unknown format", payload: `[]`, format: interchange.Format("toml")},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.codec.Decode([]byte(tc.payload), tc.format)
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err), err.Error())
		})
	}
}

func (s *CodecTestSuite) TestErrorNamesTheUnit() {
	_, err := s.codec.Decode([]byte(`[{}, {"weapons": 5}]`), interchange.FormatJSON)
	s.Require().Error(err)
	s.Equal(1, errors.GetMeta(err)["index"])
}

func (s *CodecTestSuite) TestUnitToMapRoundTrip() {
	u := builders.Intercessors().Build()

	m, err := interchange.UnitToMap(u)
	s.Require().NoError(err)
	s.Equal("Intercessors", m["name"])

	back, err := interchange.DecodeUnit(m)
	s.Require().NoError(err)
	s.Equal(u, back)

	_, err = interchange.DecodeUnit(nil)
	s.True(errors.IsInvalidArgument(err))
}

type FormatTestSuite struct {
	suite.Suite
}

func TestFormatSuite(t *testing.T) {
	suite.Run(t, new(FormatTestSuite))
}

func (s *FormatTestSuite) TestDetectFormat() {
	s.Equal(interchange.FormatJSON, interchange.DetectFormat("army.JSON", nil))
	s.Equal(interchange.FormatYAML, interchange.DetectFormat("army.yml", nil))
	s.Equal(interchange.FormatYAML, interchange.DetectFormat("army.yaml", []byte("[]")))
	s.Equal(interchange.FormatJSON, interchange.DetectFormat("-", []byte("  \n[ {} ]")))
	s.Equal(interchange.FormatYAML, interchange.DetectFormat("", []byte("- name: x")))
}

func (s *FormatTestSuite) TestParseFormat() {
	f, err := interchange.ParseFormat("YML")
	s.Require().NoError(err)
	s.Equal(interchange.FormatYAML, f)

	f, err = interchange.ParseFormat(" json ")
	s.Require().NoError(err)
	s.Equal(interchange.FormatJSON, f)

	_, err = interchange.ParseFormat("csv")
	s.True(errors.IsInvalidArgument(err))
}
