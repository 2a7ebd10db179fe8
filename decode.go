package dataclass

import (
	"fmt"

	"github.com/TerehinAV/DataclassHelpers/internal/codec"
)

// DecodeJSON decodes a JSON object into the raw-mapping form Import
// consumes. The engine itself never parses text; this is a convenience for
// callers holding an undecoded payload. Numbers arrive as json.Number,
// which every numeric descriptor accepts.
//
// Example:
//
//	raw, err := dataclass.DecodeJSON(payload)
//	if err != nil {
//	    // handle error
//	}
//	user, err := dataclass.Import(userType, raw)
func DecodeJSON(data []byte) (map[string]any, error) {
	raw, err := codec.DecodeJSON(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return raw, nil
}

// DecodeYAML decodes a YAML document into the raw-mapping form Import
// consumes, normalizing YAML's container types to string-keyed mappings.
func DecodeYAML(data []byte) (map[string]any, error) {
	raw, err := codec.DecodeYAML(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return raw, nil
}
