package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pageDoc = `
components:
  card:
    props:
      tag: div
      attrs: {class: card}
    class: [shadow]
  title:
    props:
      tag: h1
tree:
  - card
  - {attrs: {id: intro}}
  - - [title, {}, "Hi <there>"]
    - body text
`

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "vnode version "+version+"\n", out)
}

func TestRenderHTML(t *testing.T) {
	out, err := run(t, pageDoc, "render")
	require.NoError(t, err)
	assert.Equal(t, `<div class="card shadow" id="intro"><h1>Hi &lt;there&gt;</h1>body text</div>`+"\n", out)
}

func TestRenderEscapeModes(t *testing.T) {
	out, err := run(t, pageDoc, "render", "--escape", "strict")
	require.NoError(t, err)
	assert.Contains(t, out, "<h1>Hi </h1>")

	out, err = run(t, pageDoc, "render", "--escape", "none")
	require.NoError(t, err)
	assert.Contains(t, out, "<h1>Hi <there></h1>")

	_, err = run(t, pageDoc, "render", "--escape", "bogus")
	assert.Error(t, err)
}

func TestRenderJSON(t *testing.T) {
	out, err := run(t, pageDoc, "render", "-f", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"tag": "div"`)
	assert.Contains(t, out, `"text": "Hi <there>"`)
}

func TestRenderFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "page.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"tree": ["a", "b"]}`), 0o644))

	out, err := run(t, "", "render", path)
	require.NoError(t, err)
	assert.Equal(t, "ab\n", out)
}

func TestRenderErrors(t *testing.T) {
	_, err := run(t, "", "render")
	assert.Error(t, err)

	_, err = run(t, "tree: [", "render")
	assert.Error(t, err)

	_, err = run(t, pageDoc, "render", "-f", "xml")
	assert.Error(t, err)

	_, err = run(t, pageDoc, "render", "--log-level", "loud")
	assert.Error(t, err)
}

func TestTokenRoundTrip(t *testing.T) {
	for _, sensitive := range []bool{false, true} {
		args := []string{"encode", "--key", "cli-test"}
		if sensitive {
			args = append(args, "-s")
		}
		token, err := run(t, "title: Hi\ncount: 2\n", args...)
		require.NoError(t, err)

		args = []string{"decode", "--key", "cli-test", strings.TrimSpace(token)}
		if sensitive {
			args = append(args, "-s")
		}
		out, err := run(t, "", args...)
		require.NoError(t, err)
		assert.Contains(t, out, "title: Hi")
		assert.Contains(t, out, "count: 2")
	}
}

func TestTokenKeyFromEnv(t *testing.T) {
	t.Setenv("VNODE_KEY", "env-key")
	token, err := run(t, "a: 1\n", "encode")
	require.NoError(t, err)

	_, err = run(t, "", "decode", "--key", "other-key", strings.TrimSpace(token))
	assert.Error(t, err)

	out, err := run(t, "", "decode", strings.TrimSpace(token))
	require.NoError(t, err)
	assert.Contains(t, out, "a: 1")
}

func TestTokenKeyFromConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "vnode.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("key: file-key\n"), 0o644))

	_, err := run(t, "a: 1\n", "encode", "--config", cfg)
	require.NoError(t, err)
}

func TestTokenRequiresKey(t *testing.T) {
	_, err := run(t, "a: 1\n", "encode")
	assert.ErrorIs(t, err, errNoKey)
}
