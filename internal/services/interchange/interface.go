// Package interchange reads and writes army lists in the portable export
// layout: a bare array of unit records keyed by the short field names.
package interchange

//go:generate mockgen -destination=mock/mock_codec.go -package=interchangemock github.com/KirkDiggler/army-rater/internal/services/interchange Codec

import (
	"path/filepath"
	"strings"

	"github.com/KirkDiggler/army-rater/internal/entities/army"
	"github.com/KirkDiggler/army-rater/internal/errors"
)

// Format is a serialization of the export layout
type Format string

// Supported formats
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists every supported format name
var Formats = []string{string(FormatJSON), string(FormatYAML)}

// Codec converts unit lists to and from bytes
type Codec interface {
	// Encode writes units in the given format. JSON uses a four space indent.
	Encode(units []army.Unit, format Format) ([]byte, error)

	// Decode reads a unit list, filling absent or unreadable fields with
	// their defaults.
	// Returns errors.InvalidArgument for undecodable input or a payload that
	// is not a list of unit objects.
	Decode(data []byte, format Format) ([]army.Unit, error)
}

// ParseFormat accepts a format name, case-insensitively. "yml" reads as yaml.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("format", name, Formats, vb)
	return "", vb.Build()
}

// DetectFormat picks a format from a file name, falling back to the content:
// a payload opening with '[' or '{' is JSON, anything else YAML.
func DetectFormat(name string, data []byte) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	}

	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "[") || strings.HasPrefix(trimmed, "{") {
		return FormatJSON
	}
	return FormatYAML
}
