package config

// Merge deep-merges override into base and returns a new tree. Neither
// argument is modified.
//
// For every key of override: when both sides hold mappings the merge
// recurses, otherwise the override value replaces the base value wholesale
// (a mapping over a scalar, or a scalar over a mapping, is never blended).
// Keys present only in base are kept.
func Merge(base, override Tree) Tree {
	result := base.Clone()

	for key, ov := range override {
		if bv, ok := result[key]; ok && bv.IsMapping() && ov.IsMapping() {
			result[key] = Mapping(Merge(bv.mapping, ov.mapping))
			continue
		}
		result[key] = ov.clone()
	}

	return result
}
