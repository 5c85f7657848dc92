package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, "cslk.toml", `
[log]
verbosity = 6
file = "cslk.log"

[parser]
trace = true
typedefs = ["u8", "u16"]

[monitor]
identifiers = ["printf", "malloc"]
typenames = ["size_t"]
words = "words.yaml"
`)
	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 6, c.Log.Verbosity)
	assert.Equal(t, "cslk.log", c.Log.File)
	assert.True(t, c.Parser.Trace)
	assert.Equal(t, []string{"u8", "u16"}, c.Parser.Typedefs)
	assert.Equal(t, []string{"printf", "malloc"}, c.Monitor.Identifiers)
	assert.Equal(t, []string{"size_t"}, c.Monitor.Typenames)
	assert.Equal(t, filepath.Join(filepath.Dir(path), "words.yaml"), c.Monitor.Words)
}

func TestLoadKeepsDefaults(t *testing.T) {
	c, err := Load(writeFile(t, "cslk.toml", "[parser]\ntrace = true\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, c.Log.Verbosity)
	assert.Contains(t, c.Parser.Typedefs, "size_t")
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"unknown key", "[parser]\ntraced = true\n", "unknown keys"},
		{"bad syntax", "[parser\n", ""},
		{"wrong type", "[log]\nverbosity = \"loud\"\n", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, "cslk.toml", tt.content))
			require.Error(t, err)
			if tt.want != "" {
				assert.Contains(t, err.Error(), tt.want)
			}
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestNewConfigIsolated(t *testing.T) {
	a := NewConfig()
	a.Parser.Typedefs[0] = "changed"
	b := NewConfig()
	assert.Equal(t, "size_t", b.Parser.Typedefs[0])
}

func TestLoadOrDefault(t *testing.T) {
	t.Chdir(t.TempDir())

	c, err := LoadOrDefault("")
	require.NoError(t, err)
	assert.Equal(t, NewConfig(), c)

	require.NoError(t, os.WriteFile(DefaultFile, []byte("[log]\nverbosity = 3\n"), 0o644))
	c, err = LoadOrDefault("")
	require.NoError(t, err)
	assert.Equal(t, 3, c.Log.Verbosity)
}
