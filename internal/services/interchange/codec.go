package interchange

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/army-rater/internal/entities/army"
	"github.com/KirkDiggler/army-rater/internal/errors"
)

const jsonIndent = "    "

type codec struct{}

// New returns the default codec
func New() Codec {
	return &codec{}
}

func (c *codec) Encode(units []army.Unit, format Format) ([]byte, error) {
	if units == nil {
		units = []army.Unit{}
	}

	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(units, "", jsonIndent)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode json")
		}
		return data, nil
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(units); err != nil {
			return nil, errors.Wrap(err, "failed to encode yaml")
		}
		if err := enc.Close(); err != nil {
			return nil, errors.Wrap(err, "failed to encode yaml")
		}
		return buf.Bytes(), nil
	default:
		return nil, errors.InvalidArgumentf("unsupported format %q", format)
	}
}

func (c *codec) Decode(data []byte, format Format) ([]army.Unit, error) {
	var raw any

	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid json")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid yaml")
		}
	default:
		return nil, errors.InvalidArgumentf("unsupported format %q", format)
	}

	return DecodeUnits(raw)
}
