package interchange

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/KirkDiggler/army-rater/internal/entities/army"
	"github.com/KirkDiggler/army-rater/internal/errors"
)

// record is one decoded JSON/YAML/structpb object
type record map[string]any

// DecodeUnits converts a generic decoded payload into units. raw must be a
// list whose entries are objects; scalar fields are read leniently.
func DecodeUnits(raw any) ([]army.Unit, error) {
	list, ok := raw.([]any)
	if !ok {
		return nil, errors.InvalidArgumentf("army must be a list of units, got %s", kindOf(raw))
	}

	units := make([]army.Unit, 0, len(list))
	for i, item := range list {
		obj, ok := asRecord(item)
		if !ok {
			return nil, errors.InvalidArgumentf("unit %d must be an object, got %s", i, kindOf(item)).
				WithMeta("index", i)
		}
		u, err := decodeUnit(obj)
		if err != nil {
			return nil, errors.Wrapf(err, "unit %d", i).WithMeta("index", i)
		}
		units = append(units, u)
	}
	return units, nil
}

// DecodeUnit converts a single generic object into a unit
func DecodeUnit(raw map[string]any) (army.Unit, error) {
	if raw == nil {
		return army.Unit{}, errors.InvalidArgument("unit must be an object")
	}
	return decodeUnit(record(raw))
}

// UnitToMap renders a unit as a generic object using the export keys
func UnitToMap(u army.Unit) (map[string]any, error) {
	data, err := json.Marshal(u)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode unit")
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, errors.Wrap(err, "failed to encode unit")
	}
	return out, nil
}

// UnitsToList renders units as a generic list using the export keys
func UnitsToList(units []army.Unit) ([]any, error) {
	list := make([]any, 0, len(units))
	for _, u := range units {
		m, err := UnitToMap(u)
		if err != nil {
			return nil, err
		}
		list = append(list, m)
	}
	return list, nil
}

func decodeUnit(r record) (army.Unit, error) {
	d := army.NewUnit()
	u := army.Unit{
		Name:             r.stringField("name", d.Name),
		Points:           r.intField("pts", d.Points),
		Models:           r.intField("models", d.Models),
		Toughness:        r.intField("t", d.Toughness),
		Save:             r.intField("sv", d.Save),
		Invulnerable:     r.intField("inv", d.Invulnerable),
		FeelNoPain:       r.intField("fnp", d.FeelNoPain),
		Wounds:           r.intField("w", d.Wounds),
		Leadership:       r.intField("ld", d.Leadership),
		ObjectiveControl: r.intField("oc", d.ObjectiveControl),
		Count:            r.intField("count", d.Count),
		Modifiers:        army.NewModifiers(),
		Weapons:          []army.Weapon{},
	}

	if buffs, present := r["buffs"]; present && buffs != nil {
		obj, ok := asRecord(buffs)
		if !ok {
			return army.Unit{}, errors.InvalidArgumentf("buffs must be an object, got %s", kindOf(buffs))
		}
		u.Modifiers = decodeModifiers(obj)
	}

	if weapons, present := r["weapons"]; present && weapons != nil {
		list, ok := weapons.([]any)
		if !ok {
			return army.Unit{}, errors.InvalidArgumentf("weapons must be a list, got %s", kindOf(weapons))
		}
		for i, item := range list {
			obj, ok := asRecord(item)
			if !ok {
				return army.Unit{}, errors.InvalidArgumentf("weapon %d must be an object, got %s", i, kindOf(item))
			}
			u.Weapons = append(u.Weapons, decodeWeapon(obj))
		}
	}

	return u.Normalized(), nil
}

func decodeModifiers(r record) army.Modifiers {
	d := army.NewModifiers()
	return army.Modifiers{
		HitBonus:          r.intField("hit", d.HitBonus),
		SustainedBonus:    r.intField("sus", d.SustainedBonus),
		SaveBonus:         r.intField("sv", d.SaveBonus),
		Invulnerable:      r.intField("inv", d.Invulnerable),
		FeelNoPain:        r.intField("fnp", d.FeelNoPain),
		LethalHits:        r.boolField("lethal"),
		DevastatingWounds: r.boolField("dev"),
		MinusOneToWound:   r.boolField("minusWound"),
	}
}

func decodeWeapon(r record) army.Weapon {
	d := army.NewWeapon()
	return army.Weapon{
		Name:              r.stringField("name", d.Name),
		Quantity:          r.intField("qty", d.Quantity),
		Group:             r.stringField("grp", ""),
		Attacks:           r.floatField("a", d.Attacks),
		Hit:               r.intField("hit", d.Hit),
		Strength:          r.intField("s", d.Strength),
		AP:                r.intField("ap", d.AP),
		Damage:            r.floatField("d", d.Damage),
		Sustained:         r.intField("sus", d.Sustained),
		CritThreshold:     r.intField("crit", d.CritThreshold),
		LethalHits:        r.boolField("lethal"),
		DevastatingWounds: r.boolField("dev"),
		TwinLinked:        r.boolField("twin"),
		Torrent:           r.boolField("torrent"),
		Tags:              r.stringField("tags", ""),
	}
}

func asRecord(v any) (record, bool) {
	switch m := v.(type) {
	case map[string]any:
		return record(m), true
	case map[any]any:
		out := make(record, len(m))
		for k, val := range m {
			out[fmt.Sprint(k)] = val
		}
		return out, true
	}
	return nil, false
}

func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case []any:
		return "list"
	case map[string]any, map[any]any:
		return "object"
	case string:
		return "string"
	case bool:
		return "boolean"
	default:
		return "number"
	}
}

// number reads a numeric field. Strings are parsed; anything missing or
// unreadable reports false.
func (r record) number(key string) (float64, bool) {
	var f float64
	switch v := r[key].(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		f = float64(v)
	case int64:
		f = float64(v)
	case uint64:
		f = float64(v)
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func (r record) intField(key string, def int) int {
	f, ok := r.number(key)
	if !ok {
		return def
	}
	n, ok := WholeNumber(math.Trunc(f))
	if !ok {
		return def
	}
	return n
}

// WholeNumber converts f to an int when it is integral and within the int32
// range, which keeps points x count and the other products from overflowing.
func WholeNumber(f float64) (int, bool) {
	if f != math.Trunc(f) || f < math.MinInt32 || f > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}

func (r record) floatField(key string, def float64) float64 {
	f, ok := r.number(key)
	if !ok {
		return def
	}
	return f
}

func (r record) stringField(key, def string) string {
	switch v := r[key].(type) {
	case string:
		if v == "" {
			return def
		}
		return v
	case nil:
		return def
	case bool, map[string]any, []any:
		return def
	default:
		return fmt.Sprint(v)
	}
}

func (r record) boolField(key string) bool {
	switch v := r[key].(type) {
	case bool:
		return v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "on", "1", "yes":
			return true
		}
		return false
	default:
		f, ok := r.number(key)
		return ok && f != 0
	}
}
