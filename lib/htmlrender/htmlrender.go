// Package htmlrender provides hooks that serialize node trees as HTML.
//
//	reg := vnode.New(vnode.WithHooks(htmlrender.Hooks()))
//	reg.Tag("a", map[string]any{"href": "/"}, "<home>").String()
//	// <a href="/">&lt;home&gt;</a>
package htmlrender

import (
	"html/template"
	"slices"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/spf13/cast"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/pthm/vnode"
)

// HTML marks a string as trusted markup. IsSafeString accepts it, so it
// becomes a SafeNode when inserted.
type HTML string

func (h HTML) String() string { return string(h) }

var voidElements = map[atom.Atom]bool{
	atom.Area:   true,
	atom.Base:   true,
	atom.Br:     true,
	atom.Col:    true,
	atom.Embed:  true,
	atom.Hr:     true,
	atom.Img:    true,
	atom.Input:  true,
	atom.Keygen: true,
	atom.Link:   true,
	atom.Meta:   true,
	atom.Param:  true,
	atom.Source: true,
	atom.Track:  true,
	atom.Wbr:    true,
}

var strict = bluemonday.StrictPolicy()

// Hooks returns the HTML hook set: escaped text, trusted HTML values and
// HTML tag serialization.
func Hooks() vnode.Hooks {
	return vnode.Hooks{
		EscapeValue:     EscapeValue,
		IsSafeString:    IsSafeString,
		TagNodeToString: TagNodeToString,
	}
}

// StrictHooks is Hooks with text passed through a strict bluemonday
// policy, which drops markup instead of escaping it.
func StrictHooks() vnode.Hooks {
	h := Hooks()
	h.EscapeValue = StrictValue
	return h
}

// EscapeValue converts v to a string and escapes it for HTML text.
func EscapeValue(v any) string {
	return html.EscapeString(vnode.Stringify(v))
}

// StrictValue strips every tag from v's string form and escapes the rest.
func StrictValue(v any) string {
	return strict.Sanitize(vnode.Stringify(v))
}

// IsSafeString reports whether v is an HTML or template.HTML value.
func IsSafeString(v any) bool {
	switch v.(type) {
	case HTML, template.HTML:
		return true
	}
	return false
}

// TagNodeToString renders a tag as an HTML element.
//
// Attributes are written in name order. A true value writes the
// attribute with an empty value (checked=""); false and nil values are
// left out. Children of void elements
// are dropped. Returns "" if the element cannot be rendered.
func TagNodeToString(data vnode.TagJSON) string {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     data.Tag,
		DataAtom: atom.Lookup([]byte(data.Tag)),
		Attr:     attributes(data.Attrs),
	}

	if !voidElements[n.DataAtom] {
		for _, child := range data.Content {
			n.AppendChild(&html.Node{Type: html.RawNode, Data: child.String()})
		}
	}

	var sb strings.Builder
	if err := html.Render(&sb, n); err != nil {
		return ""
	}
	return sb.String()
}

func attributes(attrs map[string]any) []html.Attribute {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	out := make([]html.Attribute, 0, len(keys))
	for _, k := range keys {
		val, ok := attrValue(attrs[k])
		if !ok {
			continue
		}
		out = append(out, html.Attribute{Key: k, Val: val})
	}
	return out
}

func attrValue(v any) (string, bool) {
	switch x := v.(type) {
	case nil:
		return "", false
	case bool:
		return "", x
	case []string:
		return strings.Join(x, " "), true
	case []any:
		return strings.Join(cast.ToStringSlice(x), " "), true
	}
	return vnode.Stringify(v), true
}
