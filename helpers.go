package vnode

import (
	"net/http"

	"github.com/a-h/templ"
)

// Write writes a node (or any templ component) to the HTTP response.
//
// Sets Content-Type to text/html and renders using the request's context:
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    vnode.Write(w, r, page)
//	}
func Write(w http.ResponseWriter, r *http.Request, component templ.Component) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return component.Render(r.Context(), w)
}
