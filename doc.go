// Package vnode builds HTML output as a tree of lightweight nodes.
//
// A tree is made of five node kinds:
//   - TagNode: an element with a tag name, attributes and children
//   - TextNode: a scalar, escaped once when the node is built
//   - SafeNode: trusted markup emitted verbatim
//   - ListNode: children without a wrapper element
//   - TreeNode: a declarative structure resolved through the registry
//
// Every node renders to a string, to plain data and to an io.Writer, so a
// node can be dropped into any templ template as a templ.Component.
//
// # Registry and components
//
// A Registry maps component names to render functions and carries the
// hooks nodes consult when they are built and serialized:
//
//	reg := vnode.New(vnode.WithLogger(logger))
//	reg.Configure(htmlrender.Hooks())
//
//	button := reg.CreateComponent("button", vnode.Component{
//	    Props: vnode.Props{"tag": "button", "attrs": map[string]any{"type": "button"}},
//	    Render: func(node vnode.Container, props vnode.Props, c *vnode.Context) (vnode.Node, error) {
//	        node.(*vnode.TagNode).AddClass("btn")
//	        return nil, nil
//	    },
//	})
//
//	out := button(vnode.Props{"attrs": map[string]any{"type": "submit"}}, "Save")
//
// Default props are deep-merged with call-site props, and call-site values
// win. A render callback may mutate the node it receives or return a
// replacement. Callback errors and panics go to the LogErrors hook and the
// call returns nil, so a broken component never takes the page down.
//
// # Tolerant inserts
//
// Append, Prepend and constructor content accept nodes, strings, numbers,
// Literal values and {tag, attrs, content} maps. Anything else, nil
// included, is silently dropped, which keeps optional children cheap:
//
//	list.Append(maybeNil) // no-op when maybeNil is nil
//
// # Hooks
//
// The default hooks serialize TagNodes as JSON and do not escape text.
// Package lib/htmlrender provides HTML hooks; lib/promhooks counts
// component activity.
//
// # Fragments
//
// Registry.Handler serves registered components over HTTP, with props
// carried in a signed (or encrypted) msgpack token built by Registry.URL.
package vnode
