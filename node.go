package vnode

import (
	"encoding/json"
	"io"

	"github.com/a-h/templ"
)

// Kind is the node type discriminator.
type Kind uint8

const (
	KindTag  Kind = iota // <div>, <button>, etc.
	KindText             // Escaped text
	KindSafe             // Trusted markup, emitted verbatim
	KindList             // Children without a wrapper
	KindTree             // Resolved declarative tree
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindTag:
		return "Tag"
	case KindText:
		return "Text"
	case KindSafe:
		return "Safe"
	case KindList:
		return "List"
	case KindTree:
		return "Tree"
	default:
		return "Unknown"
	}
}

// Node is an element of the output tree.
//
// The set of implementations is closed: *TagNode, *TextNode, *SafeNode,
// *ListNode and *TreeNode. Every node renders to a string (String), to plain
// data (Data, MarshalJSON) and to a writer, which makes any node usable as a
// templ.Component inside templ templates.
//
// A node has at most one parent. The parent owns the node through its child
// list; Parent is only a back-reference and is cleared when the node is
// removed.
type Node interface {
	templ.Component
	json.Marshaler

	// Kind reports the concrete node type.
	Kind() Kind

	// String serializes the node using the owning registry's hooks.
	String() string

	// Data returns the plain-data form of the node: maps, slices and
	// strings only.
	Data() any

	// Parent returns the container holding this node, or nil.
	Parent() Container

	// AppendTo inserts the node as the last child of parent and returns
	// the node. A nil parent is a no-op.
	AppendTo(parent Container) Node

	// PrependTo inserts the node as the first child of parent and returns
	// the node. A nil parent is a no-op.
	PrependTo(parent Container) Node

	// Remove detaches the node from its parent. Without a parent it is a
	// no-op.
	Remove()

	setParent(parent Container)
}

// Container is a node that owns an ordered list of children:
// *ListNode and *TagNode.
type Container interface {
	Node

	// Children returns a copy of the child list.
	Children() []Node

	// Len returns the number of children.
	Len() int

	insert(v any, front bool)
	removeChild(n Node) bool
}

// nodeBase carries the parent back-reference shared by all node kinds.
type nodeBase struct {
	parent Container
}

func (b *nodeBase) Parent() Container {
	return b.parent
}

func (b *nodeBase) setParent(parent Container) {
	b.parent = parent
}

func appendTo(n Node, parent Container) Node {
	if parent != nil {
		parent.insert(n, false)
	}
	return n
}

func prependTo(n Node, parent Container) Node {
	if parent != nil {
		parent.insert(n, true)
	}
	return n
}

// remove detaches n from its parent by identity. The back-reference is
// cleared even if the parent no longer lists n.
func remove(n Node) {
	parent := n.Parent()
	if parent == nil {
		return
	}
	if !parent.removeChild(n) {
		n.setParent(nil)
	}
}

// writeString implements templ.Component for every node kind.
func writeString(w io.Writer, n Node) error {
	_, err := io.WriteString(w, n.String())
	return err
}

// isNilNode reports whether n is nil or a typed nil pointer.
func isNilNode(n Node) bool {
	switch v := n.(type) {
	case nil:
		return true
	case *TagNode:
		return v == nil
	case *ListNode:
		return v == nil
	case *TextNode:
		return v == nil
	case *SafeNode:
		return v == nil
	case *TreeNode:
		return v == nil
	}
	return false
}
