package vnode

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
)

// TestResult holds the result of rendering a component for testing.
//
// Provides convenience methods for asserting on output, status codes and
// headers.
type TestResult struct {
	HTML       string
	StatusCode int
	Headers    http.Header
	Node       Node
	Errors     []error
}

// TestComponent calls the component registered under name and returns
// testable output.
//
// Errors sent to the LogErrors hook during the call are collected in
// Errors instead of being logged. The hook is restored afterwards, so
// TestComponent must not run concurrently with other renders on reg.
//
//	result, err := vnode.TestComponent(reg, "button", vnode.Props{"label": "Save"})
//	if !result.HTMLContains("Save") {
//	    t.Fatal("missing label")
//	}
func TestComponent(reg *Registry, name string, props Props, content ...any) (*TestResult, error) {
	fn := reg.GetComponent(name)
	if fn == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	var mu sync.Mutex
	result := &TestResult{StatusCode: http.StatusOK, Headers: make(http.Header)}

	prev := reg.Hooks().LogErrors
	reg.Configure(Hooks{LogErrors: func(err error) {
		mu.Lock()
		result.Errors = append(result.Errors, err)
		mu.Unlock()
	}})
	defer reg.Configure(Hooks{LogErrors: prev})

	node := fn(props, content...)
	if node == nil {
		return result, ErrEmptyResult
	}
	result.Node = node
	result.HTML = node.String()
	return result, nil
}

// TestRenderNode renders a node through its templ.Component interface.
func TestRenderNode(node Node) (*TestResult, error) {
	var buf bytes.Buffer
	if err := node.Render(context.Background(), &buf); err != nil {
		return nil, err
	}
	return &TestResult{
		HTML:       buf.String(),
		StatusCode: http.StatusOK,
		Headers:    make(http.Header),
		Node:       node,
	}, nil
}

// TestFetch simulates a fragment request against a handler returned by
// Registry.Handler.
//
//	url, _ := reg.URL("", "card", vnode.Props{"title": "Hi"}, false)
//	result := vnode.TestFetch(reg.Handler(), url)
func TestFetch(handler http.Handler, url string) *TestResult {
	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	return &TestResult{
		HTML:       rec.Body.String(),
		StatusCode: rec.Code,
		Headers:    rec.Header(),
	}
}

// HTMLContains checks if the HTML contains a substring.
func (r *TestResult) HTMLContains(substr string) bool {
	return strings.Contains(r.HTML, substr)
}

// HTMLContainsAll checks if the HTML contains all the given substrings.
func (r *TestResult) HTMLContainsAll(substrs ...string) bool {
	for _, s := range substrs {
		if !strings.Contains(r.HTML, s) {
			return false
		}
	}
	return true
}

// HTMLContainsAny checks if the HTML contains any of the given substrings.
func (r *TestResult) HTMLContainsAny(substrs ...string) bool {
	for _, s := range substrs {
		if strings.Contains(r.HTML, s) {
			return true
		}
	}
	return false
}

// Failed reports whether any error reached the LogErrors hook.
func (r *TestResult) Failed() bool {
	return len(r.Errors) > 0
}

// IsOK checks if the status code is 200.
func (r *TestResult) IsOK() bool {
	return r.StatusCode == http.StatusOK
}

// HasStatus checks if the status code matches.
func (r *TestResult) HasStatus(code int) bool {
	return r.StatusCode == code
}

// HasHeader checks if a header is set with the given value.
func (r *TestResult) HasHeader(key, value string) bool {
	return r.Headers.Get(key) == value
}

// GetHeader returns the value of a header.
func (r *TestResult) GetHeader(key string) string {
	return r.Headers.Get(key)
}
