package vnode

import (
	"context"
	"encoding/json"
	"io"
)

// TextNode holds a scalar converted to text by the EscapeValue hook.
//
// Escaping happens once, when the node is built; the stored text is
// emitted as is afterwards.
type TextNode struct {
	nodeBase
	text string
}

// NewText builds a TextNode using the default hooks.
func NewText(v any) *TextNode {
	return (*Registry)(nil).Text(v)
}

// Text returns the escaped text.
func (t *TextNode) Text() string {
	return t.text
}

// Kind implements Node.
func (t *TextNode) Kind() Kind { return KindText }

// String returns the escaped text.
func (t *TextNode) String() string {
	return t.text
}

// Data returns {"text": text}.
func (t *TextNode) Data() any {
	return map[string]any{"text": t.text}
}

// MarshalJSON implements json.Marshaler.
func (t *TextNode) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Text string `json:"text"`
	}{t.text})
}

// Render implements templ.Component.
func (t *TextNode) Render(ctx context.Context, w io.Writer) error {
	return writeString(w, t)
}

// AppendTo implements Node.
func (t *TextNode) AppendTo(parent Container) Node { return appendTo(t, parent) }

// PrependTo implements Node.
func (t *TextNode) PrependTo(parent Container) Node { return prependTo(t, parent) }

// Remove implements Node.
func (t *TextNode) Remove() { remove(t) }

// SafeNode holds trusted markup that bypasses escaping.
type SafeNode struct {
	nodeBase
	content string
}

// NewSafe builds a SafeNode from v's string form.
func NewSafe(v any) *SafeNode {
	return &SafeNode{content: Stringify(v)}
}

// Content returns the trusted markup.
func (s *SafeNode) Content() string {
	return s.content
}

// Kind implements Node.
func (s *SafeNode) Kind() Kind { return KindSafe }

// String returns the markup verbatim.
func (s *SafeNode) String() string {
	return s.content
}

// Data returns {"html": content}.
func (s *SafeNode) Data() any {
	return map[string]any{"html": s.content}
}

// MarshalJSON implements json.Marshaler.
func (s *SafeNode) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		HTML string `json:"html"`
	}{s.content})
}

// Render implements templ.Component.
func (s *SafeNode) Render(ctx context.Context, w io.Writer) error {
	return writeString(w, s)
}

// AppendTo implements Node.
func (s *SafeNode) AppendTo(parent Container) Node { return appendTo(s, parent) }

// PrependTo implements Node.
func (s *SafeNode) PrependTo(parent Container) Node { return prependTo(s, parent) }

// Remove implements Node.
func (s *SafeNode) Remove() { remove(s) }
