package vnode

import (
	"context"
	"encoding/json"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/spf13/cast"

	"github.com/pthm/vnode/lib/shape"
)

// TagJSON is the serializable shape of a TagNode. It is what the
// TagNodeToString hook receives; children stay nodes so a serializer can
// call String on each of them.
type TagJSON struct {
	Tag     string         `json:"tag"`
	Attrs   map[string]any `json:"attrs"`
	Content []Node         `json:"content"`
}

// TagNode is an element with a tag name, attributes and children.
//
// Attribute names pass through shape.AttrName on every read and write, so
// SetAttribute("dataFooBar", v) and GetAttribute("data-foo-bar") address the
// same attribute. Invalid names are ignored.
type TagNode struct {
	nodeBase
	children

	// Tag is the element name. It is emitted as is.
	Tag string

	attrs map[string]any
}

// NewTag builds a TagNode using the default hooks.
func NewTag(tag string, attrs map[string]any, content ...any) *TagNode {
	return (*Registry)(nil).Tag(tag, attrs, content...)
}

// Append coerces v and adds it as the last child.
func (t *TagNode) Append(v any) *TagNode {
	t.add(t, v, false)
	return t
}

// Prepend coerces v and adds it as the first child.
func (t *TagNode) Prepend(v any) *TagNode {
	t.add(t, v, true)
	return t
}

// Empty detaches and removes every child.
func (t *TagNode) Empty() *TagNode {
	t.clear()
	return t
}

// Text replaces all children with a single text node built from v.
func (t *TagNode) Text(v any) *TagNode {
	t.clear()
	t.add(t, t.reg.Text(v), false)
	return t
}

// Children implements Container.
func (t *TagNode) Children() []Node { return t.snapshot() }

// Len implements Container.
func (t *TagNode) Len() int { return len(t.content) }

func (t *TagNode) insert(v any, front bool) { t.add(t, v, front) }

func (t *TagNode) removeChild(n Node) bool { return t.drop(n) }

// SetAttribute sets the attribute name to value. A nil value removes the
// attribute; an invalid name is ignored.
func (t *TagNode) SetAttribute(name string, value any) {
	name, ok := shape.AttrName(name)
	if !ok {
		return
	}
	if value == nil {
		delete(t.attrs, name)
		return
	}
	t.attrs[name] = value
}

// GetAttribute returns the attribute value, or nil when it is absent or the
// name is invalid.
func (t *TagNode) GetAttribute(name string) any {
	name, ok := shape.AttrName(name)
	if !ok {
		return nil
	}
	return t.attrs[name]
}

// HasAttribute reports whether the attribute is set.
func (t *TagNode) HasAttribute(name string) bool {
	name, ok := shape.AttrName(name)
	if !ok {
		return false
	}
	_, exists := t.attrs[name]
	return exists
}

// RemoveAttribute deletes the attribute.
func (t *TagNode) RemoveAttribute(name string) {
	if name, ok := shape.AttrName(name); ok {
		delete(t.attrs, name)
	}
}

// Attr sets a single attribute and returns the node.
func (t *TagNode) Attr(name string, value any) *TagNode {
	t.SetAttribute(name, value)
	return t
}

// SetAttrs sets every entry of attrs through SetAttribute.
func (t *TagNode) SetAttrs(attrs map[string]any) *TagNode {
	for name, value := range attrs {
		t.SetAttribute(name, value)
	}
	return t
}

// Attrs returns a copy of the attribute map.
func (t *TagNode) Attrs() map[string]any {
	return maps.Clone(t.attrs)
}

// ClassList splits the class attribute on whitespace. An empty or missing
// class attribute yields a single empty token.
func (t *TagNode) ClassList() []string {
	var class string
	switch v := t.attrs["class"].(type) {
	case []string, []any:
		class = strings.Join(cast.ToStringSlice(v), " ")
	default:
		class = cast.ToString(v)
	}
	class = strings.TrimSpace(class)
	if class == "" {
		return []string{""}
	}
	return strings.Fields(class)
}

// AddClass appends each non-empty token not already present.
func (t *TagNode) AddClass(tokens ...string) *TagNode {
	list := t.ClassList()
	for _, token := range tokens {
		if token != "" && !slices.Contains(list, token) {
			list = append(list, token)
		}
	}
	t.attrs["class"] = strings.TrimSpace(strings.Join(list, " "))
	return t
}

// RemoveClass removes the first occurrence of each non-empty token.
func (t *TagNode) RemoveClass(tokens ...string) *TagNode {
	list := t.ClassList()
	for _, token := range tokens {
		if token == "" {
			continue
		}
		if i := slices.Index(list, token); i >= 0 {
			list = slices.Delete(list, i, i+1)
		}
	}
	t.attrs["class"] = strings.TrimSpace(strings.Join(list, " "))
	return t
}

// HasClass reports whether token is in the class list.
func (t *TagNode) HasClass(token string) bool {
	return token != "" && slices.Contains(t.ClassList(), token)
}

// JSON returns the serializable shape of the node.
func (t *TagNode) JSON() TagJSON {
	return TagJSON{Tag: t.Tag, Attrs: t.attrs, Content: t.content}
}

// Kind implements Node.
func (t *TagNode) Kind() Kind { return KindTag }

// String serializes the node with the TagNodeToString hook.
func (t *TagNode) String() string {
	return t.reg.hookSet().TagNodeToString(t.JSON())
}

// Data returns {"tag": tag, "attrs": {...}, "content": [...]}.
func (t *TagNode) Data() any {
	return map[string]any{
		"tag":     t.Tag,
		"attrs":   maps.Clone(t.attrs),
		"content": t.data(),
	}
}

// MarshalJSON implements json.Marshaler.
func (t *TagNode) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.JSON())
}

// Render implements templ.Component.
func (t *TagNode) Render(ctx context.Context, w io.Writer) error {
	return writeString(w, t)
}

// AppendTo implements Node.
func (t *TagNode) AppendTo(parent Container) Node { return appendTo(t, parent) }

// PrependTo implements Node.
func (t *TagNode) PrependTo(parent Container) Node { return prependTo(t, parent) }

// Remove implements Node.
func (t *TagNode) Remove() { remove(t) }
