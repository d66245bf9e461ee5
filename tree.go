package vnode

import (
	"context"
	"encoding/json"
	"io"
	"maps"

	"github.com/pthm/vnode/lib/shape"
)

// KeyProp is the reserved prop naming a component result inside a tree.
// It is stripped before the component is called.
const KeyProp = "$key"

// TreeNode resolves a declarative structure into a single node.
//
// The structure is built from component calls written as
// []any{name, props, children}, plain slices of children, and scalars:
//
//	tree := reg.Tree([]any{"layout", vnode.Props{},
//	    []any{
//	        []any{"header", vnode.Props{"$key": "header"}, "Title"},
//	        []any{"body", vnode.Props{}, "Hello"},
//	    },
//	})
//	tree.Key("header") // the header component's node
//
// Unregistered component names resolve to nothing and are left out of the
// surrounding list.
type TreeNode struct {
	nodeBase
	reg  *Registry
	root Node
	keys map[string]Node
}

// Root returns the resolved node, or nil.
func (t *TreeNode) Root() Node {
	return t.root
}

// Key returns the node recorded under the given $key, or nil.
func (t *TreeNode) Key(name string) Node {
	return t.keys[name]
}

// Keys returns a copy of every keyed node.
func (t *TreeNode) Keys() map[string]Node {
	return maps.Clone(t.keys)
}

func (t *TreeNode) resolve(item any) Node {
	if item == nil {
		return nil
	}
	if n, ok := item.(Node); ok {
		return n
	}

	items, ok := shape.ToSlice(item)
	if !ok {
		return t.reg.Coerce(item)
	}

	if len(items) > 1 {
		name, isName := items[0].(string)
		if props, ok := shape.ToMap(items[1]); ok && isName {
			return t.call(name, props, items[2:])
		}
	}

	list := t.reg.List()
	for _, child := range items {
		if n := t.resolve(child); n != nil {
			list.Append(n)
		}
	}
	return list
}

func (t *TreeNode) call(name string, props map[string]any, rest []any) Node {
	fn := t.reg.GetComponent(name)
	if fn == nil {
		return nil
	}

	callProps := make(Props, len(props))
	for k, v := range props {
		if k != KeyProp {
			callProps[k] = v
		}
	}

	var result Node
	var content Node
	if len(rest) > 0 {
		content = t.resolve(rest[0])
	}
	if content != nil {
		result = fn(callProps, content)
	} else {
		result = fn(callProps)
	}

	if key, ok := props[KeyProp].(string); ok && result != nil {
		t.keys[key] = result
	}
	return result
}

// Kind implements Node.
func (t *TreeNode) Kind() Kind { return KindTree }

// String serializes the root, or returns "" when nothing resolved.
func (t *TreeNode) String() string {
	if t.root == nil {
		return ""
	}
	return t.root.String()
}

// Data returns the root's plain data, or nil.
func (t *TreeNode) Data() any {
	if t.root == nil {
		return nil
	}
	return t.root.Data()
}

// MarshalJSON implements json.Marshaler.
func (t *TreeNode) MarshalJSON() ([]byte, error) {
	if t.root == nil {
		return []byte("null"), nil
	}
	return json.Marshal(t.root)
}

// Render implements templ.Component.
func (t *TreeNode) Render(ctx context.Context, w io.Writer) error {
	return writeString(w, t)
}

// AppendTo implements Node.
func (t *TreeNode) AppendTo(parent Container) Node { return appendTo(t, parent) }

// PrependTo implements Node.
func (t *TreeNode) PrependTo(parent Container) Node { return prependTo(t, parent) }

// Remove implements Node.
func (t *TreeNode) Remove() { remove(t) }
