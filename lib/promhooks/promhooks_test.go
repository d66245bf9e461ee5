package promhooks

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/pthm/vnode"
)

func TestWrapCounts(t *testing.T) {
	promReg := prometheus.NewRegistry()
	m := New(WithRegistry(promReg), WithNamespace("test"))

	var logged []error
	reg := vnode.New(vnode.WithHooks(vnode.Hooks{LogErrors: func(err error) { logged = append(logged, err) }}))
	reg.Configure(m.Wrap(reg.Hooks()))

	reg.CreateComponent("ok", vnode.Component{Props: vnode.Props{"tag": "p", "content": "hi"}})
	bad := reg.CreateComponent("bad", vnode.Component{
		Render: func(vnode.Container, vnode.Props, *vnode.Context) (vnode.Node, error) {
			return nil, errors.New("bad")
		},
	})

	out := reg.GetComponent("ok")(nil)
	assert.Equal(t, `{"tag":"p","attrs":{},"content":[{"text":"hi"}]}`, out.String())
	assert.Nil(t, bad(nil))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.componentsCreated.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.componentsCreated.WithLabelValues("bad")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.renderErrors))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.tagsSerialized.WithLabelValues("p")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.textEscaped))

	// the wrapped hook still runs
	assert.Len(t, logged, 1)
}

func TestWrapNilBase(t *testing.T) {
	m := New(WithRegistry(prometheus.NewRegistry()))
	h := m.Wrap(vnode.Hooks{})

	assert.Equal(t, "x", h.EscapeValue("x"))
	assert.False(t, h.IsSafeString("x"))
	assert.NotPanics(t, func() { h.LogErrors(errors.New("x")) })
	assert.Equal(t, 1.0, testutil.ToFloat64(m.renderErrors))
}

func TestMetricNames(t *testing.T) {
	promReg := prometheus.NewRegistry()
	m := New(WithRegistry(promReg), WithConstLabels(prometheus.Labels{"app": "demo"}))
	m.Wrap(vnode.Hooks{}).EscapeValue("x")

	n, err := testutil.GatherAndCount(promReg, "vnode_text_nodes_total")
	assert.NoError(t, err)
	assert.Equal(t, 1, n)
}
