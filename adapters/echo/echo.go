// Package vnodeecho provides Echo framework integration for vnode.
//
// Mount serves registered components as fragments on an Echo instance or
// group:
//
//	e := echo.New()
//	reg := vnodeecho.Mount(e)
//	reg.CreateComponent("card", vnode.Component{...})
//
// Or mount on a group with middleware:
//
//	g := e.Group("/app", authMiddleware)
//	reg := vnodeecho.MountGroup(g)
package vnodeecho

import (
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/pthm/vnode"
)

// Option configures the Mount and MountGroup functions.
type Option func(*options)

type options struct {
	path     string
	registry *vnode.Registry
	regOpts  []vnode.Option
}

// WithKey sets the key used to sign and encrypt props.
// If not provided, a random key is generated (suitable for development only).
func WithKey(key []byte) Option {
	return func(o *options) {
		o.regOpts = append(o.regOpts, vnode.WithKey(key))
	}
}

// WithPath sets the URL path prefix for component routes.
// Defaults to "/_c/".
func WithPath(path string) Option {
	return func(o *options) {
		o.path = path
	}
}

// WithRegistry mounts an existing registry instead of creating one.
// Registry options given with WithKey or WithRegistryOptions are ignored.
func WithRegistry(reg *vnode.Registry) Option {
	return func(o *options) {
		o.registry = reg
	}
}

// WithRegistryOptions passes options to vnode.New.
func WithRegistryOptions(opts ...vnode.Option) Option {
	return func(o *options) {
		o.regOpts = append(o.regOpts, opts...)
	}
}

// Mount mounts the fragment handler on an Echo instance and returns the
// registry serving it.
//
//	e := echo.New()
//	reg := vnodeecho.Mount(e)
//
//	// With options:
//	reg := vnodeecho.Mount(e, vnodeecho.WithKey(key))
func Mount(e *echo.Echo, opts ...Option) *vnode.Registry {
	reg, path := newRegistry(opts)
	e.Any(path+"*", handler(reg))
	return reg
}

// MountGroup mounts the fragment handler on an Echo group.
// This allows components to share middleware with the group (auth, logging, etc.).
//
//	g := e.Group("/app", authMiddleware)
//	reg := vnodeecho.MountGroup(g)
func MountGroup(g *echo.Group, opts ...Option) *vnode.Registry {
	reg, path := newRegistry(opts)
	g.Any(path+"*", handler(reg))
	return reg
}

func newRegistry(opts []Option) (*vnode.Registry, string) {
	o := &options{path: "/_c/"}
	for _, opt := range opts {
		opt(o)
	}
	if !strings.HasSuffix(o.path, "/") {
		o.path += "/"
	}

	reg := o.registry
	if reg == nil {
		reg = vnode.New(o.regOpts...)
	}
	return reg, o.path
}

// handler hands the wildcard part of the route to the registry handler as
// the component name.
func handler(reg *vnode.Registry) echo.HandlerFunc {
	h := reg.Handler()
	return func(c echo.Context) error {
		req := c.Request()
		u := *req.URL
		u.Path = "/" + c.Param("*")
		u.RawPath = ""

		r := req.Clone(req.Context())
		r.URL = &u
		h.ServeHTTP(c.Response(), r)
		return nil
	}
}

// Render writes a node (or any templ component) to the Echo response.
//
//	func handler(c echo.Context) error {
//	    return vnodeecho.Render(c, page)
//	}
func Render(c echo.Context, component templ.Component) error {
	c.Response().Header().Set("Content-Type", "text/html; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	return component.Render(c.Request().Context(), c.Response())
}
