package vnode

import (
	"net/http"
	"net/url"
	"strings"
)

// PropsParam is the query parameter carrying encoded props.
const PropsParam = "p"

// URL builds a fragment URL for the named component.
//
// props are msgpack-encoded and signed, or encrypted when sensitive is
// true. The result has the form {prefix}/{name}?p={token}. A Handler
// mounted at prefix serves it.
func (r *Registry) URL(prefix, name string, props Props, sensitive bool) (string, error) {
	path := strings.TrimSuffix(prefix, "/") + "/" + url.PathEscape(name)
	if len(props) == 0 {
		return path, nil
	}
	token, err := r.encoder.Encode(map[string]any(props), sensitive)
	if err != nil {
		return "", err
	}
	q := url.Values{}
	q.Set(PropsParam, token)
	if sensitive {
		q.Set("s", "1")
	}
	return path + "?" + q.Encode(), nil
}

// DecodeProps reads the props carried by a fragment request.
func (r *Registry) DecodeProps(req *http.Request) (Props, error) {
	token := req.URL.Query().Get(PropsParam)
	if token == "" {
		return Props{}, nil
	}
	var props map[string]any
	sensitive := req.URL.Query().Get("s") == "1"
	if err := r.encoder.Decode(token, sensitive, &props); err != nil {
		return nil, wrapEncodingError(err)
	}
	if props == nil {
		props = map[string]any{}
	}
	return props, nil
}

// Handler returns the HTTP handler rendering registered components as
// fragments. Mount it with http.StripPrefix so the remaining path is the
// component name:
//
//	mux.Handle("/_c/", http.StripPrefix("/_c", reg.Handler()))
//
// Failures go through OnError.
func (r *Registry) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet && req.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		name := strings.Trim(req.URL.Path, "/")
		fn := r.GetComponent(name)
		if fn == nil {
			r.OnError(w, req, ErrNotFound)
			return
		}

		props, err := r.DecodeProps(req)
		if err != nil {
			r.logger.Warn("fragment props rejected", "component", name, "err", err)
			r.OnError(w, req, err)
			return
		}

		node := fn(props)
		if node == nil {
			r.OnError(w, req, ErrEmptyResult)
			return
		}

		if err := Write(w, req, node); err != nil {
			r.logger.Error("fragment write failed", "component", name, "err", err)
		}
	})
}
