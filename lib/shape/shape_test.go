package shape

import (
	"encoding/json"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type props map[string]any

type label string

func TestIsPlainObject(t *testing.T) {
	tests := []struct {
		name   string
		value  any
		expect bool
	}{
		{"string", "string", false},
		{"empty string", "", false},
		{"zero", 0, false},
		{"float", 1.2, false},
		{"nil", nil, false},
		{"empty slice", []any{}, false},
		{"int slice", []int{1, 2, 3}, false},
		{"bool", true, false},
		{"regexp", regexp.MustCompile(""), false},
		{"func", func() {}, false},
		{"struct", struct{ Length int }{1}, false},
		{"int keyed map", map[int]any{1: "a"}, false},
		{"empty map", map[string]any{}, true},
		{"nested map", map[string]any{"nested": map[string]any{"object": map[string]any{}}}, true},
		{"named map", props{"a": 1}, true},
		{"string values", map[string]string{"a": "b"}, true},
		{"nil map", map[string]any(nil), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, IsPlainObject(tt.value))
		})
	}
}

func TestScalarClassifiers(t *testing.T) {
	assert.True(t, IsString("x"))
	assert.True(t, IsString(label("x")))
	assert.False(t, IsString(1))
	assert.False(t, IsString(nil))

	assert.True(t, IsNumber(1))
	assert.True(t, IsNumber(uint8(1)))
	assert.True(t, IsNumber(1.5))
	assert.True(t, IsNumber(json.Number("12")))
	assert.False(t, IsNumber(true))
	assert.False(t, IsNumber("1"))
	assert.False(t, IsNumber(nil))

	assert.True(t, IsScalar("x"))
	assert.True(t, IsScalar(3))
	assert.False(t, IsScalar([]any{}))

	assert.True(t, IsArray([]any{}))
	assert.True(t, IsArray([]string{"a"}))
	assert.True(t, IsArray([2]int{1, 2}))
	assert.False(t, IsArray("abc"))
	assert.False(t, IsArray(nil))
}

func TestToMapSharesConvertibleMaps(t *testing.T) {
	p := props{"a": 1}
	m, ok := ToMap(p)
	require.True(t, ok)

	m["b"] = 2
	assert.Equal(t, 2, p["b"])
}

func TestToMapCopiesTypedValues(t *testing.T) {
	m, ok := ToMap(map[string]string{"a": "b"})
	require.True(t, ok)
	assert.Equal(t, map[string]any{"a": "b"}, m)
}

func TestToSlice(t *testing.T) {
	s, ok := ToSlice([]string{"a", "b"})
	require.True(t, ok)
	assert.Equal(t, []any{"a", "b"}, s)

	_, ok = ToSlice("ab")
	assert.False(t, ok)
}

func TestMergeNested(t *testing.T) {
	first := map[string]any{"prop": "content", "empty": nil}
	second := map[string]any{"nested": map[string]any{"key": "value"}}

	result := Merge(first, second)

	assert.Equal(t, map[string]any{
		"prop":   "content",
		"empty":  nil,
		"nested": map[string]any{"key": "value"},
	}, result)
}

func TestMergeArray(t *testing.T) {
	first := []any{1, 2, 3, 4, 5}
	second := []any{nil, "value", nil}

	result := MergeValue(MergeValue(nil, first), second)

	assert.Equal(t, []any{nil, "value", nil, 4, 5}, result)
}

func TestMergeNestedArray(t *testing.T) {
	first := []any{1, []any{1, 2, 3}, 3, 4, 5}
	second := []any{nil, "value", nil}

	result := MergeValue(MergeValue(nil, first), second)

	assert.Equal(t, []any{nil, "value", nil, 4, 5}, result)
}

func TestMergeCallSiteWins(t *testing.T) {
	defaults := map[string]any{
		"tag":   "div",
		"attrs": map[string]any{"class": "a", "id": "x"},
	}
	overrides := props{"attrs": props{"class": "b"}}

	result := Merge(map[string]any{}, defaults, overrides)

	assert.Equal(t, "div", result["tag"])
	assert.Equal(t, map[string]any{"class": "b", "id": "x"}, result["attrs"])
}

func TestMergeDoesNotAliasSources(t *testing.T) {
	defaults := map[string]any{
		"attrs": map[string]any{"class": "a"},
		"items": []any{"x"},
	}

	result := Merge(map[string]any{}, defaults)
	result["attrs"].(map[string]any)["class"] = "changed"
	result["items"].([]any)[0] = "changed"

	assert.Equal(t, "a", defaults["attrs"].(map[string]any)["class"])
	assert.Equal(t, "x", defaults["items"].([]any)[0])
}

func TestMergeNilTarget(t *testing.T) {
	result := Merge(nil, map[string]any{"a": 1})
	assert.Equal(t, map[string]any{"a": 1}, result)
}

func TestAttrName(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"id", "id", true},
		{"type", "type", true},
		{"dataFooBar", "data-foo-bar", true},
		{"ariaTestAttr", "aria-test-attr", true},
		{"data-id", "data-id", true},
		{"dataid", "dataid", true},
		{"tabIndex", "tabIndex", true},
		{"Data", "Data", true},
		{"hx-get", "hx-get", true},
		{"", "", false},
		{"two words", "", false},
		{"on:click", "", false},
		{`"quoted"`, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := AttrName(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
