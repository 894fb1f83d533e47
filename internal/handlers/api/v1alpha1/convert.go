package v1alpha1

import (
	"encoding/json"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/army-rater/internal/entities/army"
	"github.com/KirkDiggler/army-rater/internal/errors"
	"github.com/KirkDiggler/army-rater/internal/services/interchange"
)

// Request and response keys
const (
	KeyArmyID     = "army_id"
	KeyName       = "name"
	KeyGameSize   = "game_size"
	KeyUnits      = "units"
	KeyUnit       = "unit"
	KeyIndex      = "index"
	KeyQuantity   = "quantity"
	KeyData       = "data"
	KeyFormat     = "format"
	KeyArmy       = "army"
	KeyArmies     = "armies"
	KeyReport     = "report"
	KeyThresholds = "thresholds"
)

// ToStruct renders v as a Struct through its JSON encoding
func ToStruct(v any) (*structpb.Struct, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode response")
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(err, "failed to encode response")
	}
	s, err := structpb.NewStruct(m)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode response")
	}
	return s, nil
}

// FromStruct decodes a Struct into out through its JSON encoding
func FromStruct(s *structpb.Struct, out any) error {
	data, err := json.Marshal(s.AsMap())
	if err != nil {
		return errors.Wrap(err, "failed to decode response")
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errors.Wrap(err, "failed to decode response")
	}
	return nil
}

// UnitsToValue renders units for the units key of a request
func UnitsToValue(units []army.Unit) (*structpb.Value, error) {
	list, err := interchange.UnitsToList(units)
	if err != nil {
		return nil, err
	}
	v, err := structpb.NewValue(list)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode units")
	}
	return v, nil
}

// request reads typed fields from an incoming Struct
type request struct {
	fields map[string]*structpb.Value
}

func newRequest(s *structpb.Struct) request {
	return request{fields: s.GetFields()}
}

func (r request) has(key string) bool {
	v, ok := r.fields[key]
	if !ok {
		return false
	}
	_, isNull := v.GetKind().(*structpb.Value_NullValue)
	return !isNull
}

func (r request) str(key string) string {
	return r.fields[key].GetStringValue()
}

// integer returns 0 for a missing key and InvalidArgument for anything
// that is not a whole number.
func (r request) integer(key string) (int, error) {
	if !r.has(key) {
		return 0, nil
	}
	v, ok := r.fields[key].GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return 0, errors.InvalidArgumentf("%s must be a whole number", key).WithMeta("field", key)
	}
	n, ok := interchange.WholeNumber(v.NumberValue)
	if !ok {
		return 0, errors.InvalidArgumentf("%s must be a whole number in range", key).WithMeta("field", key)
	}
	return n, nil
}

func (r request) units(key string) ([]army.Unit, error) {
	if !r.has(key) {
		return []army.Unit{}, nil
	}
	return interchange.DecodeUnits(r.fields[key].AsInterface())
}

func (r request) unit(key string) (army.Unit, error) {
	if !r.has(key) {
		return army.Unit{}, errors.InvalidArgumentf("%s is required", key).WithMeta("field", key)
	}
	obj := r.fields[key].GetStructValue()
	if obj == nil {
		return army.Unit{}, errors.InvalidArgumentf("%s must be an object", key).WithMeta("field", key)
	}
	return interchange.DecodeUnit(obj.AsMap())
}
