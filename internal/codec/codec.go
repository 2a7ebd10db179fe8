// Package codec decodes JSON and YAML documents into the raw-mapping form
// the import engine consumes: string-keyed map[string]any values built from
// strings, numbers, booleans, nil, []any and nested map[string]any.
package codec

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// DecodeJSON decodes a JSON object into a raw mapping. Numbers are kept as
// json.Number so integer values survive without a float64 detour.
func DecodeJSON(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var out map[string]any
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("decode json document: %w", err)
	}
	return out, nil
}

// DecodeYAML decodes a YAML document into a raw mapping. yaml.v3 already
// decodes string-keyed mappings as map[string]any; normalization exists to
// reject the map[any]any values it produces for mappings with non-string
// keys, wherever they nest.
func DecodeYAML(data []byte) (map[string]any, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode yaml document: %w", err)
	}
	normalized, err := normalizeMapping(raw)
	if err != nil {
		return nil, err
	}
	return normalized, nil
}

func normalizeMapping(m map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(m))
	for k, v := range m {
		nv, err := normalizeValue(v)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", k, err)
		}
		out[k] = nv
	}
	return out, nil
}

func normalizeValue(v any) (any, error) {
	switch val := v.(type) {
	case map[string]any:
		return normalizeMapping(val)
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, elem := range val {
			key, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("mapping key %v (%T) is not a string", k, k)
			}
			nv, err := normalizeValue(elem)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", key, err)
			}
			out[key] = nv
		}
		return out, nil
	case []any:
		out := make([]any, len(val))
		for i, elem := range val {
			nv, err := normalizeValue(elem)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			out[i] = nv
		}
		return out, nil
	default:
		return v, nil
	}
}
