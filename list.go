package vnode

import (
	"context"
	"encoding/json"
	"io"
	"slices"
	"strings"

	"github.com/pthm/vnode/lib/shape"
)

// children is the ordered child list shared by ListNode and TagNode.
//
// Every node in content has its parent set to the owning container.
type children struct {
	reg     *Registry
	content []Node
}

// seed inserts initial content. A slice argument contributes each of its
// elements; any other argument is inserted as one value.
func (c *children) seed(self Container, content []any) {
	for _, v := range content {
		if items, ok := shape.ToSlice(v); ok {
			for _, item := range items {
				c.add(self, item, false)
			}
			continue
		}
		c.add(self, v, false)
	}
}

// add coerces v and inserts the result. Values that coerce to nothing are
// dropped. A node that already has a parent is detached from it first.
func (c *children) add(self Container, v any, front bool) {
	n := c.reg.Coerce(v)
	if n == nil || n == Node(self) {
		return
	}
	if parent := n.Parent(); parent != nil {
		parent.removeChild(n)
	}
	n.setParent(self)
	if front {
		c.content = slices.Insert(c.content, 0, n)
	} else {
		c.content = append(c.content, n)
	}
}

// drop removes n by identity and clears its parent.
func (c *children) drop(n Node) bool {
	i := slices.IndexFunc(c.content, func(child Node) bool { return child == n })
	if i < 0 {
		return false
	}
	n.setParent(nil)
	c.content = slices.Delete(c.content, i, i+1)
	return true
}

func (c *children) clear() {
	for _, n := range c.content {
		n.setParent(nil)
	}
	c.content = []Node{}
}

func (c *children) snapshot() []Node {
	return slices.Clone(c.content)
}

func (c *children) join() string {
	var sb strings.Builder
	for _, n := range c.content {
		sb.WriteString(n.String())
	}
	return sb.String()
}

func (c *children) data() []any {
	out := make([]any, len(c.content))
	for i, n := range c.content {
		out[i] = n.Data()
	}
	return out
}

// ListNode is an ordered list of children rendered without a wrapper.
type ListNode struct {
	nodeBase
	children
}

// NewList builds a ListNode using the default hooks.
func NewList(content ...any) *ListNode {
	return (*Registry)(nil).List(content...)
}

// Append coerces v and adds it as the last child. Values that coerce to
// nothing (nil, booleans, maps without tag and attrs, slices) are ignored.
func (l *ListNode) Append(v any) *ListNode {
	l.add(l, v, false)
	return l
}

// Prepend coerces v and adds it as the first child.
func (l *ListNode) Prepend(v any) *ListNode {
	l.add(l, v, true)
	return l
}

// Empty detaches and removes every child.
func (l *ListNode) Empty() *ListNode {
	l.clear()
	return l
}

// Children implements Container.
func (l *ListNode) Children() []Node { return l.snapshot() }

// Len implements Container.
func (l *ListNode) Len() int { return len(l.content) }

func (l *ListNode) insert(v any, front bool) { l.add(l, v, front) }

func (l *ListNode) removeChild(n Node) bool { return l.drop(n) }

// Kind implements Node.
func (l *ListNode) Kind() Kind { return KindList }

// String concatenates the children's strings.
func (l *ListNode) String() string {
	return l.join()
}

// Data returns {"content": [...]}.
func (l *ListNode) Data() any {
	return map[string]any{"content": l.data()}
}

// MarshalJSON implements json.Marshaler.
func (l *ListNode) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Content []Node `json:"content"`
	}{l.content})
}

// Render implements templ.Component.
func (l *ListNode) Render(ctx context.Context, w io.Writer) error {
	return writeString(w, l)
}

// AppendTo implements Node.
func (l *ListNode) AppendTo(parent Container) Node { return appendTo(l, parent) }

// PrependTo implements Node.
func (l *ListNode) PrependTo(parent Container) Node { return prependTo(l, parent) }

// Remove implements Node.
func (l *ListNode) Remove() { remove(l) }
