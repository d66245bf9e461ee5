package shape

// Merge deep-merges each source into target, in order, and returns target.
//
// For every key of a source: a map value is merged into the target's map at
// that key (a fresh map when the target has none), a slice value is merged
// index by index into the target's slice, and any other value, nil
// included, overwrites the target's value. Maps and slices taken from a
// source are always copied, never shared with the result.
//
// A nil target is replaced by a new map.
func Merge(target map[string]any, sources ...map[string]any) map[string]any {
	if target == nil {
		target = make(map[string]any)
	}
	for _, source := range sources {
		for key, value := range source {
			target[key] = MergeValue(target[key], value)
		}
	}
	return target
}

// MergeValue merges src into dst using the rules of Merge and returns the
// result. dst may be modified in place.
func MergeValue(dst, src any) any {
	if m, ok := ToMap(src); ok {
		base, ok := ToMap(dst)
		if !ok {
			base = make(map[string]any, len(m))
		}
		return Merge(base, m)
	}
	if s, ok := ToSlice(src); ok {
		base, _ := ToSlice(dst)
		return mergeSlice(base, s)
	}
	return src
}

func mergeSlice(dst, src []any) []any {
	if len(dst) < len(src) {
		grown := make([]any, len(src))
		copy(grown, dst)
		dst = grown
	}
	for i, v := range src {
		dst[i] = MergeValue(dst[i], v)
	}
	return dst
}
