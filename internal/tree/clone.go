package tree

// deepCopy returns a copy of v that shares no mapping or sequence with it.
func deepCopy(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, child := range val {
			out[k] = deepCopy(child)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, child := range val {
			out[i] = deepCopy(child)
		}
		return out
	default:
		return v
	}
}

// Clone returns a deep copy of a tree value.
func Clone(v any) any {
	return deepCopy(v)
}
