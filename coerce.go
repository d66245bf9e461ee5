package vnode

import "github.com/pthm/vnode/lib/shape"

// Literal is the declarative form of a TagNode accepted wherever content is
// inserted. A map with a string "tag" and a map "attrs" (and an optional
// "content") is read the same way.
type Literal struct {
	Tag     string         `json:"tag" yaml:"tag" msgpack:"tag"`
	Attrs   map[string]any `json:"attrs" yaml:"attrs" msgpack:"attrs"`
	Content any            `json:"content,omitempty" yaml:"content,omitempty" msgpack:"content,omitempty"`
}

// Coerce turns v into a node, or returns nil when v is not insertable.
//
// The rules, in order:
//   - a Node is returned as is;
//   - a value accepted by the IsSafeString hook becomes a SafeNode;
//   - a string or number becomes a TextNode (escaped now, not later);
//   - a Literal, or a map with a string "tag" and map "attrs", becomes a
//     TagNode whose children are built from "content";
//   - anything else, slices included, yields nil.
//
// Append, Prepend and initial content all go through Coerce.
func (r *Registry) Coerce(v any) Node {
	switch x := v.(type) {
	case nil:
		return nil
	case Node:
		if isNilNode(x) {
			return nil
		}
		return x
	case Literal:
		return r.Tag(x.Tag, x.Attrs, x.Content)
	case *Literal:
		if x == nil {
			return nil
		}
		return r.Tag(x.Tag, x.Attrs, x.Content)
	}

	if r.hookSet().IsSafeString(v) {
		return NewSafe(v)
	}
	if shape.IsScalar(v) {
		return r.Text(v)
	}
	if m, ok := shape.ToMap(v); ok {
		tag, isTag := m["tag"].(string)
		attrs, hasAttrs := shape.ToMap(m["attrs"])
		if isTag && hasAttrs {
			return r.Tag(tag, attrs, m["content"])
		}
	}
	return nil
}
