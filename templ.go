package vnode

import (
	"bytes"
	"context"
	"io"

	"github.com/a-h/templ"
)

// Attributes returns the tag's attributes for spreading in a templ
// template:
//
//	<a { vnode.Attributes(link)... }>{ label }</a>
func Attributes(t *TagNode) templ.Attributes {
	attrs := templ.Attributes{}
	for k, v := range t.attrs {
		attrs[k] = v
	}
	return attrs
}

// Templ renders a templ component and wraps the markup in a SafeNode, so
// templates can be mixed into a node tree.
func (r *Registry) Templ(ctx context.Context, component templ.Component) (*SafeNode, error) {
	var buf bytes.Buffer
	if err := component.Render(ctx, &buf); err != nil {
		return nil, err
	}
	return r.Safe(buf.String()), nil
}

// Fragment is a templ.Component that calls the component registered under
// name when rendered. Missing components and failed calls render nothing.
func (r *Registry) Fragment(name string, props Props, content ...any) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		fn := r.GetComponent(name)
		if fn == nil {
			return nil
		}
		node := fn(props, content...)
		if node == nil {
			return nil
		}
		return node.Render(ctx, w)
	})
}
