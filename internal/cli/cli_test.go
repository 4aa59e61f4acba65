package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	sampleRegistry = "../../config/incubator.yaml"
	samplePages    = "../../config/pages.txt"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--registry", sampleRegistry, "--pages", samplePages}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestParseCommand(t *testing.T) {
	out, err := run(t, "parse", "Wp/nl/Hoofdpagina")
	require.NoError(t, err)
	assert.Contains(t, out, "prefix:  Wp/nl")
	assert.Contains(t, out, "page:    Hoofdpagina")

	out, err = run(t, "--json", "parse", "Hoofdpagina")
	require.NoError(t, err)
	var parsed parseOutput
	require.NoError(t, json.Unmarshal([]byte(out), &parsed))
	assert.False(t, parsed.Valid)
	assert.Equal(t, "noslash", parsed.Error)

	out, err = run(t, "parse", "--info", "Wp/nl/Hoofdpagina")
	require.NoError(t, err)
	assert.Contains(t, out, "invalid: invalidprefix")

	out, err = run(t, "parse", "--namespace", "4", "Wp/nl")
	require.NoError(t, err)
	assert.Contains(t, out, "invalid: notestwikinamespace")
}

func TestCodeCommand(t *testing.T) {
	out, err := run(t, "code", "be-x-old")
	require.NoError(t, err)
	assert.Equal(t, "be-x-old: valid=true\n", out)

	out, err = run(t, "code", "x")
	require.NoError(t, err)
	assert.Equal(t, "x: valid=false\n", out)
}

func TestStateCommand(t *testing.T) {
	tests := []struct {
		prefix string
		want   string
	}{
		{"Wp/nl", "state:     existing"},
		{"Wp/aa", "state:     closed"},
		{"Wp/nds-nl", "state:     incubating"},
		{"Wt/xyz", "state:     missing"},
	}
	for _, tt := range tests {
		t.Run(tt.prefix, func(t *testing.T) {
			out, err := run(t, "state", tt.prefix)
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
		})
	}

	t.Run("invalid prefix", func(t *testing.T) {
		_, err := run(t, "state", "Wx/nl")
		assert.Error(t, err)
	})
}

func TestURLCommand(t *testing.T) {
	out, err := run(t, "url", "nl", "p", "Hoofdpagina")
	require.NoError(t, err)
	assert.Equal(t, "//nl.wikipedia.org/wiki/Hoofdpagina\n", out)

	out, err = run(t, "url", "nl", "Wiktionary")
	require.NoError(t, err)
	assert.Equal(t, "//nl.wiktionary.org\n", out)

	out, err = run(t, "url", "--logo", "nl", "p")
	require.NoError(t, err)
	assert.Equal(t, "//upload.wikimedia.org/wikipedia/nl/b/bc/Wiki.png\n", out)
}

func TestMissingRegistry(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--registry", t.TempDir() + "/absent.yaml", "code", "nl"})
	assert.ErrorContains(t, cmd.Execute(), "load registry")
}
