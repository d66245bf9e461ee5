package shape

import (
	"encoding/json"
	"reflect"
)

var mapType = reflect.TypeOf(map[string]any(nil))

// IsString reports whether v is a string or a named string type.
func IsString(v any) bool {
	if v == nil {
		return false
	}
	if _, ok := v.(string); ok {
		return true
	}
	return reflect.TypeOf(v).Kind() == reflect.String
}

// IsNumber reports whether v is an integer, float, or json.Number.
// Booleans are not numbers.
func IsNumber(v any) bool {
	switch v.(type) {
	case nil:
		return false
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64, json.Number:
		return true
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// IsScalar reports whether v is a string or a number.
func IsScalar(v any) bool {
	return IsString(v) || IsNumber(v)
}

// IsPlainObject reports whether v is a map keyed by strings.
func IsPlainObject(v any) bool {
	_, ok := ToMap(v)
	return ok
}

// IsArray reports whether v is a slice or array.
func IsArray(v any) bool {
	if v == nil {
		return false
	}
	if _, ok := v.([]any); ok {
		return true
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return true
	}
	return false
}

// ToMap returns v as a map[string]any.
//
// Maps whose type converts to map[string]any (such as a named Props type)
// are returned without copying, so writes are visible to the caller. Maps
// with a different value type are copied. A nil map yields an empty map.
func ToMap(v any) (map[string]any, bool) {
	if v == nil {
		return nil, false
	}
	if m, ok := v.(map[string]any); ok {
		if m == nil {
			return map[string]any{}, true
		}
		return m, true
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	if rv.IsNil() {
		return map[string]any{}, true
	}
	if rv.Type().ConvertibleTo(mapType) {
		return rv.Convert(mapType).Interface().(map[string]any), true
	}

	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out, true
}

// ToSlice returns v as a []any. A []any is returned as is; other slice and
// array kinds are copied element by element.
func ToSlice(v any) ([]any, bool) {
	if v == nil {
		return nil, false
	}
	if s, ok := v.([]any); ok {
		return s, true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
	default:
		return nil, false
	}

	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}
