package fixtures

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Normalize recursively orders a decoded JSON value for deterministic
// serialization.
//
// Object keys are handled by encoding/json (maps marshal key-sorted);
// list elements are sorted by type name and canonical string form so
// collections with no inherent order (serialized sets, unordered API
// listings) snapshot identically between runs.
func Normalize(data any) any {
	switch v := data.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, item := range v {
			out[k] = Normalize(item)
		}
		return out
	case []any:
		items := make([]any, len(v))
		for i, item := range v {
			items[i] = Normalize(item)
		}
		sort.SliceStable(items, func(i, j int) bool {
			return elementKey(items[i]) < elementKey(items[j])
		})
		return items
	default:
		return data
	}
}

// elementKey builds the sort key for a list element: the dynamic type
// name followed by a canonical string form. Marshaling a normalized
// element is deterministic because map keys serialize sorted; values
// that cannot marshal fall back to their fmt representation.
func elementKey(v any) string {
	typeName := fmt.Sprintf("%T", v)

	encoded, err := json.Marshal(v)
	if err != nil {
		return typeName + "\x00" + fmt.Sprintf("%v", v)
	}
	return typeName + "\x00" + string(encoded)
}

// Decode round-trips a typed API response through JSON into the generic
// form the pipeline operates on.
func Decode(response any) (any, error) {
	encoded, err := json.Marshal(response)
	if err != nil {
		return nil, fmt.Errorf("failed to encode response: %w", err)
	}

	var decoded any
	if err := json.Unmarshal(encoded, &decoded); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return decoded, nil
}
