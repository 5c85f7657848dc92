package words

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	v, err := New("", []string{"int", "main", "("})
	require.NoError(t, err)

	assert.Equal(t, 4, v.Len())
	assert.Equal(t, 0, v.ID("int"))
	assert.Equal(t, 2, v.ID("("))
	assert.Equal(t, 3, v.Unknown())
	assert.Equal(t, 3, v.ID("never_seen"))
	assert.Equal(t, DefaultUnknown, v.Word(3))
	assert.Equal(t, "main", v.Word(1))
	assert.Equal(t, DefaultUnknown, v.Word(99))

	v, err = New("UNK", []string{"UNK", "x"})
	require.NoError(t, err)
	assert.Equal(t, 0, v.Unknown())
	assert.Equal(t, 2, v.Len())

	_, err = New("", []string{"x", "x"})
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.yaml")
	require.NoError(t, os.WriteFile(path, []byte("unknown: <unk>\nwords:\n  - int\n  - x\n  - \";\"\n"), 0o644))

	v, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, v.ID(";"))
	assert.Equal(t, 3, v.ID("y"))

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Decode(strings.NewReader("words: {not: a list}"))
	assert.Error(t, err)
}

func TestEncodeRoundTrip(t *testing.T) {
	v, err := Build([]string{"x", "int", "x", ";", "x", ";", "rare"}, 2)
	require.NoError(t, err)
	assert.Equal(t, 0, v.ID("x"))
	assert.Equal(t, 1, v.ID(";"))
	assert.Equal(t, v.Unknown(), v.ID("rare"))

	var buf bytes.Buffer
	require.NoError(t, v.Encode(&buf))
	back, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, v.Len(), back.Len())
	for id := 0; id < v.Len(); id++ {
		assert.Equal(t, v.Word(id), back.Word(id))
	}
}

func TestText(t *testing.T) {
	tests := []struct {
		label, value, want string
	}{
		{"INT_CONST_HEX", "0x10", "CONSTANT"},
		{"CHAR_CONST", "'a'", "CONSTANT"},
		{"STRING_LITERAL", `"hi"`, "STRING_LITERAL"},
		{"WSTRING_LITERAL", `L"hi"`, "STRING_LITERAL"},
		{"ID", "main", "main"},
		{"LPAREN", "(", "("},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.want, Text(tt.label, tt.value))
		})
	}
}
