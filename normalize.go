package vahan

// Normalize recursively removes keys whose value is nil, an empty
// string, or an empty collection. Groups that become empty after
// pruning are removed as well, so no empty value survives at any
// depth. The operation is idempotent and returns a new map; the
// input is not mutated.
func Normalize(record map[string]any) map[string]any {
	out := make(map[string]any, len(record))
	for k, v := range record {
		if nv, keep := normalizeValue(v); keep {
			out[k] = nv
		}
	}
	return out
}

func normalizeValue(v any) (any, bool) {
	switch val := v.(type) {
	case nil:
		return nil, false
	case string:
		return val, val != ""
	case map[string]any:
		m := Normalize(val)
		return m, len(m) > 0
	case []any:
		s := make([]any, 0, len(val))
		for _, item := range val {
			if nv, keep := normalizeValue(item); keep {
				s = append(s, nv)
			}
		}
		return s, len(s) > 0
	default:
		return val, true
	}
}
