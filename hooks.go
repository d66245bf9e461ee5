package vnode

import (
	"encoding/json"
	"reflect"

	"github.com/spf13/cast"
)

// Hooks are the replaceable functions the node tree calls out to.
//
// Every field is optional. Configure and WithHooks only replace the hooks
// that are non-nil, leaving the others in place.
type Hooks struct {
	// LogErrors receives errors returned (or panics raised) by render
	// callbacks. The default logs through the registry's slog.Logger,
	// which discards unless WithLogger was given.
	LogErrors func(err error)

	// ComponentCreated is called once per CreateComponent call.
	ComponentCreated func(name string, fn RenderFunc)

	// EscapeValue converts a scalar to text when a TextNode is built.
	// The default converts without escaping.
	EscapeValue func(v any) string

	// IsSafeString reports whether a value is trusted markup that should
	// become a SafeNode. The default trusts nothing.
	IsSafeString func(v any) bool

	// TagNodeToString serializes a TagNode. The default emits JSON.
	TagNodeToString func(data TagJSON) string
}

// DefaultHooks returns the hooks a registry starts with, minus the logger
// binding of LogErrors.
func DefaultHooks() Hooks {
	return Hooks{
		LogErrors:        func(error) {},
		ComponentCreated: func(string, RenderFunc) {},
		EscapeValue:      Stringify,
		IsSafeString:     func(any) bool { return false },
		TagNodeToString:  TagNodeToJSON,
	}
}

// Stringify converts v to a string without escaping. Named string types
// convert to their underlying value; other values go through cast.
func Stringify(v any) string {
	if v != nil {
		if rv := reflect.ValueOf(v); rv.Kind() == reflect.String {
			return rv.String()
		}
	}
	return cast.ToString(v)
}

// TagNodeToJSON is the default TagNodeToString hook.
func TagNodeToJSON(data TagJSON) string {
	b, err := json.Marshal(data)
	if err != nil {
		return ""
	}
	return string(b)
}

// merge returns h with every non-nil hook of o applied.
func (h Hooks) merge(o Hooks) Hooks {
	if o.LogErrors != nil {
		h.LogErrors = o.LogErrors
	}
	if o.ComponentCreated != nil {
		h.ComponentCreated = o.ComponentCreated
	}
	if o.EscapeValue != nil {
		h.EscapeValue = o.EscapeValue
	}
	if o.IsSafeString != nil {
		h.IsSafeString = o.IsSafeString
	}
	if o.TagNodeToString != nil {
		h.TagNodeToString = o.TagNodeToString
	}
	return h
}

var defaultHooks = DefaultHooks()
