package vnode

import (
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"

	"github.com/pthm/vnode/lib/shape"
)

// Context is the helper set passed to render callbacks.
//
// Contexts are cheap and built per render. Values added with
// Registry.Extend are looked up on the registry at call time, so every
// context sees extensions registered after it was created.
type Context struct {
	reg *Registry
}

func (r *Registry) newContext() *Context {
	return &Context{reg: r}
}

// Registry returns the registry the context belongs to.
func (c *Context) Registry() *Registry { return c.reg }

// Create builds a TagNode.
func (c *Context) Create(tag string, attrs map[string]any, content ...any) *TagNode {
	return c.reg.Tag(tag, attrs, content...)
}

// List builds a ListNode.
func (c *Context) List(content ...any) *ListNode {
	return c.reg.List(content...)
}

// Safe builds a SafeNode.
func (c *Context) Safe(v any) *SafeNode {
	return c.reg.Safe(v)
}

// Tree resolves a declarative structure.
func (c *Context) Tree(content any) *TreeNode {
	return c.reg.Tree(content)
}

// Call invokes the component registered under name. It returns nil when
// the name is not registered or the component failed.
func (c *Context) Call(name string, props Props, content ...any) Node {
	fn := c.reg.GetComponent(name)
	if fn == nil {
		return nil
	}
	if props == nil {
		props = Props{}
	}
	return fn(props, content...)
}

// Clean returns a shallow copy of params without nil values.
func (c *Context) Clean(params map[string]any) Props {
	out := make(Props, len(params))
	for k, v := range params {
		if v != nil {
			out[k] = v
		}
	}
	return out
}

// Pick returns the non-nil entries of params named in keys, overlaid with
// each of extra in order.
func (c *Context) Pick(params map[string]any, keys []string, extra ...map[string]any) Props {
	out := Props{}
	for _, k := range keys {
		if v, ok := params[k]; ok && v != nil {
			out[k] = v
		}
	}
	return overlay(out, extra)
}

// Omit returns the non-nil entries of params not named in keys, overlaid
// with each of extra in order.
func (c *Context) Omit(params map[string]any, keys []string, extra ...map[string]any) Props {
	out := c.Clean(params)
	for _, k := range keys {
		delete(out, k)
	}
	return overlay(out, extra)
}

func overlay(out Props, extra []map[string]any) Props {
	for _, m := range extra {
		for k, v := range m {
			if v != nil {
				out[k] = v
			}
		}
	}
	return out
}

// Join converts each element of seq to a string, joins them with delim
// and trims the result. It returns false when seq is nil or not a
// sequence.
func (c *Context) Join(seq any, delim string) (string, bool) {
	if seq == nil {
		return "", false
	}
	items, ok := shape.ToSlice(seq)
	if !ok {
		return "", false
	}
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = Stringify(item)
	}
	return strings.TrimSpace(strings.Join(parts, delim)), true
}

// HasProp reports whether obj is a map holding key. A key present with a
// nil value counts.
func (c *Context) HasProp(obj any, key string) bool {
	m, ok := shape.ToMap(obj)
	if !ok {
		return false
	}
	_, exists := m[key]
	return exists
}

// GetNodeItem resolves item into a node. A node is returned as is; a
// []any{name, props[, content]} call goes through Call. Anything else
// yields nil.
func (c *Context) GetNodeItem(item any) Node {
	if n, ok := item.(Node); ok {
		if isNilNode(n) {
			return nil
		}
		return n
	}

	items, ok := shape.ToSlice(item)
	if !ok || len(items) < 2 || len(items) > 3 {
		return nil
	}
	name, ok := items[0].(string)
	if !ok {
		return nil
	}
	var props Props
	if items[1] != nil {
		m, ok := shape.ToMap(items[1])
		if !ok {
			return nil
		}
		props = m
	}
	if len(items) == 3 && items[2] != nil {
		return c.Call(name, props, items[2])
	}
	return c.Call(name, props)
}

// AppendList resolves each item of list with GetNodeItem and appends the
// results to target in order. Items that resolve to nil are skipped.
func (c *Context) AppendList(list any, target Container) {
	items, ok := shape.ToSlice(list)
	if !ok || target == nil {
		return
	}
	for _, item := range items {
		if n := c.GetNodeItem(item); n != nil {
			target.insert(n, false)
		}
	}
}

// PrependList is AppendList for the front of target. The declared order is
// kept: the first item ends up as the first child.
func (c *Context) PrependList(list any, target Container) {
	items, ok := shape.ToSlice(list)
	if !ok || target == nil {
		return
	}
	for i := len(items) - 1; i >= 0; i-- {
		if n := c.GetNodeItem(items[i]); n != nil {
			target.insert(n, true)
		}
	}
}

// Decode copies props into the struct pointed to by out. Fields match on
// their json tag, and values are converted where it is lossless to do so
// ("3" into an int field, for example).
func (c *Context) Decode(props map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return fmt.Errorf("vnode: decode props: %w", err)
	}
	if err := dec.Decode(props); err != nil {
		return fmt.Errorf("vnode: decode props: %w", err)
	}
	return nil
}

// Extension returns the value registered with Registry.Extend under name.
func (c *Context) Extension(name string) (any, bool) {
	return c.reg.extension(name)
}

// ExtensionOf returns the extension registered under name when it has
// type T.
//
//	reg.Extend("icon", func(name string) vnode.Node { ... })
//	icon, ok := vnode.ExtensionOf[func(string) vnode.Node](c, "icon")
func ExtensionOf[T any](c *Context, name string) (T, bool) {
	var zero T
	v, ok := c.Extension(name)
	if !ok {
		return zero, false
	}
	t, ok := v.(T)
	if !ok {
		return zero, false
	}
	return t, true
}
