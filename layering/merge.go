package plotspec

// Merge combines base and override into a new mapping that keeps every key of
// base not overridden and recursively merges keys whose values are both
// mappings; any other collision is won by the override value. Neither input is
// mutated and the result shares no mutable state with them.
func Merge(base, override map[string]any) map[string]any {
	if base == nil && override == nil {
		return nil
	}

	merged := make(map[string]any, len(base)+len(override))
	for key, value := range base {
		merged[key] = Clone(value)
	}
	for key, value := range override {
		existing, ok := merged[key]
		if ok {
			if baseMap, baseOK := asMap(existing); baseOK {
				if overrideMap, overrideOK := asMap(value); overrideOK {
					merged[key] = Merge(baseMap, overrideMap)
					continue
				}
			}
		}
		merged[key] = Clone(value)
	}
	return merged
}

// MergeAll folds overrides into base left to right, later overrides winning.
func MergeAll(base map[string]any, overrides ...map[string]any) map[string]any {
	merged := base
	for _, override := range overrides {
		merged = Merge(merged, override)
	}
	return merged
}

// CloneMap deep copies a JSON-like mapping. Nil maps stay nil.
func CloneMap(value map[string]any) map[string]any {
	if value == nil {
		return nil
	}
	clone := make(map[string]any, len(value))
	for key, entry := range value {
		clone[key] = Clone(entry)
	}
	return clone
}

// CloneSlice deep copies a JSON-like sequence. Nil slices stay nil.
func CloneSlice(value []any) []any {
	if value == nil {
		return nil
	}
	clone := make([]any, len(value))
	for i, entry := range value {
		clone[i] = Clone(entry)
	}
	return clone
}

// CloneMaps deep copies a sequence of mappings, preserving order.
func CloneMaps(value []map[string]any) []map[string]any {
	if value == nil {
		return nil
	}
	clone := make([]map[string]any, len(value))
	for i, entry := range value {
		clone[i] = CloneMap(entry)
	}
	return clone
}

// Clone deep copies a JSON-like value: mappings and sequences are copied
// recursively, scalars are returned as-is.
func Clone(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		return CloneMap(typed)
	case []any:
		return CloneSlice(typed)
	case []map[string]any:
		return CloneMaps(typed)
	default:
		return typed
	}
}

func asMap(value any) (map[string]any, bool) {
	typed, ok := value.(map[string]any)
	return typed, ok
}
