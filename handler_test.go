package vnode

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFragmentRegistry() *Registry {
	reg := New(WithKey([]byte("handler-test-key")))
	reg.CreateComponent("card", Component{
		Props: Props{"tag": "div", "attrs": map[string]any{"class": "card"}},
		Render: func(node Container, props Props, c *Context) (Node, error) {
			node.(*TagNode).Append(props["title"])
			return nil, nil
		},
	})
	reg.CreateComponent("broken", Component{
		Render: func(Container, Props, *Context) (Node, error) {
			return nil, errors.New("broken")
		},
	})
	return reg
}

func TestURL(t *testing.T) {
	reg := newFragmentRegistry()

	u, err := reg.URL("/_c/", "card", nil, false)
	require.NoError(t, err)
	assert.Equal(t, "/_c/card", u)

	u, err = reg.URL("/_c", "card", Props{"title": "Hi"}, false)
	require.NoError(t, err)
	parsed, err := url.Parse(u)
	require.NoError(t, err)
	assert.Equal(t, "/_c/card", parsed.Path)
	assert.NotEmpty(t, parsed.Query().Get(PropsParam))
	assert.Empty(t, parsed.Query().Get("s"))

	u, err = reg.URL("/_c", "card", Props{"title": "Hi"}, true)
	require.NoError(t, err)
	assert.Contains(t, u, "s=1")
}

func TestHandlerRendersFragment(t *testing.T) {
	for _, sensitive := range []bool{false, true} {
		reg := newFragmentRegistry()
		u, err := reg.URL("", "card", Props{"title": "Hello"}, sensitive)
		require.NoError(t, err)

		result := TestFetch(reg.Handler(), u)
		assert.True(t, result.IsOK(), result.HTML)
		assert.True(t, result.HasHeader("Content-Type", "text/html; charset=utf-8"))
		assert.True(t, result.HTMLContainsAll(`"tag":"div"`, `"class":"card"`, `"Hello"`))
	}
}

func TestHandlerErrors(t *testing.T) {
	reg := newFragmentRegistry()
	other := New(WithKey([]byte("another-key")))
	foreign, err := other.URL("", "card", Props{"title": "x"}, false)
	require.NoError(t, err)

	tests := []struct {
		name   string
		method string
		target string
		status int
	}{
		{"unknown component", http.MethodGet, "/nope", http.StatusNotFound},
		{"bad token", http.MethodGet, "/card?p=garbage", http.StatusBadRequest},
		{"foreign signature", http.MethodGet, foreign, http.StatusBadRequest},
		{"failed component", http.MethodGet, "/broken", http.StatusInternalServerError},
		{"post", http.MethodPost, "/card", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, nil)
			rec := httptest.NewRecorder()
			reg.Handler().ServeHTTP(rec, req)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestHandlerCustomOnError(t *testing.T) {
	reg := newFragmentRegistry()
	var got error
	reg.OnError = func(w http.ResponseWriter, r *http.Request, err error) {
		got = err
		w.WriteHeader(http.StatusTeapot)
	}

	result := TestFetch(reg.Handler(), "/nope")
	assert.True(t, result.HasStatus(http.StatusTeapot))
	assert.True(t, IsNotFound(got))
}

func TestHandlerWithStripPrefix(t *testing.T) {
	reg := newFragmentRegistry()
	mux := http.NewServeMux()
	mux.Handle("/_c/", http.StripPrefix("/_c", reg.Handler()))

	u, err := reg.URL("/_c", "card", Props{"title": "Mounted"}, false)
	require.NoError(t, err)

	result := TestFetch(mux, u)
	assert.True(t, result.IsOK())
	assert.True(t, strings.Contains(result.HTML, "Mounted"))
}

func TestDecodePropsWithoutToken(t *testing.T) {
	reg := newFragmentRegistry()
	props, err := reg.DecodeProps(httptest.NewRequest(http.MethodGet, "/card", nil))
	require.NoError(t, err)
	assert.Empty(t, props)
}

func TestWrite(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, Write(rec, req, NewSafe("<p>x</p>")))
	assert.Equal(t, "<p>x</p>", rec.Body.String())
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
}
