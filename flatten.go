package dataclass

import (
	"sort"
	"strconv"
)

// DefaultSeparator joins path segments in flattened keys.
const DefaultSeparator = "."

// Flatten collapses a nested mapping into a single-level mapping. Each leaf
// scalar at path [k1, k2, ..., kn] lands under the key "k1.k2.....kn";
// sequence elements contribute their zero-based index as a path segment.
// Empty mappings and sequences contribute nothing.
//
// Mapping keys are walked in lexicographic order, so when two distinct
// nested paths join to the same flat key the later-visited value wins,
// deterministically on every run.
func Flatten(nested map[string]any) map[string]any {
	return FlattenSep(nested, DefaultSeparator)
}

// FlattenSep is Flatten with a caller-chosen path separator.
func FlattenSep(nested map[string]any, sep string) map[string]any {
	flat := make(map[string]any)
	flattenValue(flat, "", nested, sep)
	return flat
}

func flattenValue(flat map[string]any, prefix string, v any, sep string) {
	switch val := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			flattenValue(flat, joinPath(prefix, k, sep), val[k], sep)
		}
	case []any:
		for i, elem := range val {
			flattenValue(flat, joinPath(prefix, strconv.Itoa(i), sep), elem, sep)
		}
	default:
		flat[prefix] = v
	}
}

func joinPath(prefix, segment, sep string) string {
	if prefix == "" {
		return segment
	}
	return prefix + sep + segment
}
