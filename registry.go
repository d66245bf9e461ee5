package vnode

import (
	"crypto/rand"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"slices"
	"sync"

	"github.com/pthm/vnode/lib/shape"
)

// Props are the properties passed to a component.
type Props map[string]any

// RenderFunc renders a registered component. Content, when given, replaces
// the "content" prop. A nil result means the component failed; the error
// has already been passed to the LogErrors hook.
type RenderFunc func(props Props, content ...any) Node

// RenderCallback post-processes the node built from a component's props.
//
// node is a *TagNode when props carry a string "tag", otherwise a
// *ListNode. The callback may mutate node in place and return nil, or
// return a different node to use instead. A returned error makes the
// component yield nil.
type RenderCallback func(node Container, props Props, c *Context) (Node, error)

// Component describes a component: default props and an optional render
// callback.
type Component struct {
	Props  Props
	Render RenderCallback
}

// Registry stores components by name and holds the hooks the nodes it
// builds consult.
//
// A Registry is safe for concurrent use. Nodes are not: a node tree should
// be built and serialized by one goroutine at a time.
type Registry struct {
	mu         sync.RWMutex
	components map[string]RenderFunc
	extensions map[string]any
	hooks      Hooks
	logger     *slog.Logger
	encoder    *Encoder

	// OnError is called when the fragment handler fails.
	// Customize this to handle errors appropriately for your application.
	OnError func(http.ResponseWriter, *http.Request, error)
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the structured logger used by the default LogErrors hook.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// WithHooks applies hooks as Configure would.
func WithHooks(hooks Hooks) Option {
	return func(r *Registry) {
		r.hooks = r.hooks.merge(hooks)
	}
}

// WithKey sets the key used to sign and encrypt props in fragment URLs.
// Without it a random key is generated, which is only suitable when URLs
// do not need to outlive the process.
func WithKey(key []byte) Option {
	return func(r *Registry) {
		enc, err := NewEncoder(key)
		if err != nil {
			panic(fmt.Sprintf("vnode: failed to create encoder: %v", err))
		}
		r.encoder = enc
	}
}

// New creates an empty registry with the default hooks.
func New(opts ...Option) *Registry {
	r := &Registry{
		components: make(map[string]RenderFunc),
		extensions: make(map[string]any),
		hooks:      DefaultHooks(),
		logger:     slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	r.hooks.LogErrors = func(err error) {
		r.logger.Error("component render failed", "err", err)
	}

	// Default error handler
	r.OnError = func(w http.ResponseWriter, req *http.Request, err error) {
		if IsNotFound(err) {
			http.Error(w, "Not found", http.StatusNotFound)
			return
		}
		if IsDecryptionError(err) || isFormatError(err) {
			http.Error(w, "Bad request", http.StatusBadRequest)
			return
		}
		http.Error(w, "Internal error", http.StatusInternalServerError)
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.encoder == nil {
		key := make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			panic(fmt.Sprintf("vnode: failed to generate random key: %v", err))
		}
		WithKey(key)(r)
	}
	return r
}

// Configure replaces the non-nil hooks of h.
func (r *Registry) Configure(h Hooks) {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hooks = r.hooks.merge(h)
}

// Hooks returns the current hook set.
func (r *Registry) Hooks() Hooks {
	return r.hookSet()
}

// Logger returns the registry's logger.
func (r *Registry) Logger() *slog.Logger {
	if r == nil {
		return slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return r.logger
}

// Encoder returns the registry's props encoder.
func (r *Registry) Encoder() *Encoder {
	if r == nil {
		return nil
	}
	return r.encoder
}

// hookSet returns the hooks in effect. A nil registry uses the defaults.
func (r *Registry) hookSet() Hooks {
	if r == nil {
		return defaultHooks
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.hooks
}

// CreateComponent builds a render function from c, registers it under
// name (replacing any previous entry) and returns it.
//
// Calling the function deep-merges c.Props with the call-site props
// (call-site values win, maps and slices merge recursively), replaces the
// "content" prop with the content argument when one is given, and passes
// the result to Render. Errors and panics from the render callback are
// sent to the LogErrors hook and the call returns nil.
//
// The ComponentCreated hook fires once, here, not on each call. A nil
// registry returns the function without storing it.
func (r *Registry) CreateComponent(name string, c Component) RenderFunc {
	var fn RenderFunc
	fn = func(props Props, content ...any) (result Node) {
		defer func() {
			if rec := recover(); rec != nil {
				r.hookSet().LogErrors(fmt.Errorf("%w: %s: %v", ErrComponentPanic, name, rec))
				result = nil
			}
		}()

		config := Props(shape.Merge(map[string]any{}, c.Props, props))
		if v, ok := contentArg(content); ok {
			config["content"] = v
		}

		node, err := r.Render(config, c.Render)
		if err != nil {
			r.hookSet().LogErrors(err)
			return nil
		}
		return node
	}

	if r != nil {
		r.mu.Lock()
		r.components[name] = fn
		r.mu.Unlock()
	}

	r.hookSet().ComponentCreated(name, fn)
	return fn
}

// contentArg reads the optional content argument of a RenderFunc.
func contentArg(content []any) (any, bool) {
	switch len(content) {
	case 0:
		return nil, false
	case 1:
		return content[0], content[0] != nil
	default:
		return content, true
	}
}

// GetComponent returns the component registered under name, or nil.
func (r *Registry) GetComponent(name string) RenderFunc {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.components[name]
}

// RemoveComponent deletes the component registered under name, if any.
func (r *Registry) RemoveComponent(name string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.components, name)
}

// Components returns the registered names in sorted order.
func (r *Registry) Components() []string {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.components))
	for name := range r.components {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Render builds the base node for props and runs cb on it.
//
// The base node is a TagNode when props["tag"] is a string (with
// props["attrs"] as attributes and props["content"] as children), and a
// ListNode of props["content"] otherwise. A non-nil node returned by cb
// replaces the base node.
func (r *Registry) Render(props Props, cb RenderCallback) (Node, error) {
	var node Container
	if tag, ok := props["tag"].(string); ok {
		var attrs map[string]any
		if v := props["attrs"]; v != nil {
			m, ok := shape.ToMap(v)
			if !ok {
				return nil, fmt.Errorf("%w: got %T", ErrInvalidAttrs, v)
			}
			attrs = m
		}
		node = r.Tag(tag, attrs, props["content"])
	} else {
		node = r.List(props["content"])
	}

	if cb == nil {
		return node, nil
	}
	replace, err := cb(node, props, r.newContext())
	if err != nil {
		return nil, err
	}
	if !isNilNode(replace) {
		return replace, nil
	}
	return node, nil
}

// Extend registers value under name for every helper context of this
// registry. Later registrations under the same name win.
func (r *Registry) Extend(name string, value any) {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.extensions[name] = value
}

func (r *Registry) extension(name string) (any, bool) {
	if r == nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.extensions[name]
	return v, ok
}

// Text builds a TextNode, escaping v with the EscapeValue hook.
func (r *Registry) Text(v any) *TextNode {
	return &TextNode{text: r.hookSet().EscapeValue(v)}
}

// Safe builds a SafeNode from v's string form.
func (r *Registry) Safe(v any) *SafeNode {
	return NewSafe(v)
}

// List builds a ListNode. Slice arguments contribute each element.
func (r *Registry) List(content ...any) *ListNode {
	l := &ListNode{children: children{reg: r, content: []Node{}}}
	l.seed(l, content)
	return l
}

// Tag builds a TagNode. Slice arguments in content contribute each element.
func (r *Registry) Tag(tag string, attrs map[string]any, content ...any) *TagNode {
	t := &TagNode{
		children: children{reg: r, content: []Node{}},
		Tag:      tag,
		attrs:    make(map[string]any, len(attrs)),
	}
	t.SetAttrs(attrs)
	t.seed(t, content)
	return t
}

// Tree resolves a declarative structure. See TreeNode.
func (r *Registry) Tree(content any) *TreeNode {
	t := &TreeNode{reg: r, keys: make(map[string]Node)}
	t.root = t.resolve(content)
	return t
}
