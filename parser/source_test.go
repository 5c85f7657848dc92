package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/cslk/grammar"
)

func symbol(t *testing.T, v *grammar.Vocabulary, label string) grammar.Symbol {
	t.Helper()
	sym, ok := v.LabelID(label)
	require.True(t, ok, label)
	return sym
}

func TestBufferedSource(t *testing.T) {
	v := grammar.C99Vocabulary()
	tokens := []Token{
		{Label: "INT", Value: "int", Line: 1, Column: 1},
		{Label: "ID", Value: "x", Line: 1, Column: 5},
		{Label: "SEMI", Value: ";", Line: 1, Column: 6},
	}
	src, err := NewBuffered(v, tokens)
	require.NoError(t, err)

	peek, ok := src.Peek(2)
	require.True(t, ok)
	assert.Equal(t, symbol(t, v, "ID"), peek)

	sym, ok := src.Next()
	require.True(t, ok)
	assert.Equal(t, symbol(t, v, "INT"), sym)
	assert.Equal(t, "int", src.LastValue())

	peek, _ = src.Peek(1)
	assert.Equal(t, symbol(t, v, "ID"), peek)
	peek, _ = src.Peek(3)
	assert.Equal(t, v.Table().EndOfInput(), peek)
	assert.Equal(t, "int", src.LastValue(), "peek must not consume")

	src.Next()
	src.Next()
	assert.Equal(t, tokens[2], src.LastToken())

	for range 3 {
		sym, ok = src.Next()
		require.True(t, ok)
		assert.Equal(t, v.Table().EndOfInput(), sym)
	}
	assert.Equal(t, "END_OF_SLK_INPUT", src.LastToken().Label)

	assert.Panics(t, func() { src.Peek(0) })
}

func TestBufferedSourceFolds(t *testing.T) {
	v := grammar.C99Vocabulary()
	src, err := NewBuffered(v, []Token{{Label: "INT_CONST_HEX", Value: "0x1f"}, {Label: "CHAR_CONST", Value: "'a'"}})
	require.NoError(t, err)

	sym, _ := src.Next()
	assert.Equal(t, symbol(t, v, "CONSTANT"), sym)
	sym, _ = src.Next()
	assert.Equal(t, symbol(t, v, "CONSTANT"), sym)
}

func TestBufferedSourceUnknownLabel(t *testing.T) {
	_, err := NewBuffered(grammar.C99Vocabulary(), []Token{{Label: "BOGUS", Value: "@", Line: 3, Column: 7}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"BOGUS"`)
	assert.Contains(t, err.Error(), "3:7")
}

func TestClassifierAppliesAtRead(t *testing.T) {
	v := grammar.C99Vocabulary()
	src, err := NewBuffered(v, []Token{{Label: "ID", Value: "T"}, {Label: "ID", Value: "T"}})
	require.NoError(t, err)

	typedefs := map[string]bool{}
	src.SetClassifier(func(name string) bool { return typedefs[name] })

	peek, _ := src.Peek(2)
	assert.Equal(t, symbol(t, v, "ID"), peek)

	sym, _ := src.Next()
	assert.Equal(t, symbol(t, v, "ID"), sym)

	typedefs["T"] = true
	peek, _ = src.Peek(1)
	assert.Equal(t, symbol(t, v, "TYPEID"), peek)
	sym, _ = src.Next()
	assert.Equal(t, symbol(t, v, "TYPEID"), sym)
}

func TestDynamicSource(t *testing.T) {
	v := grammar.C99Vocabulary()
	src := NewDynamic(v)

	_, ok := src.Next()
	assert.False(t, ok)
	_, ok = src.Peek(1)
	assert.False(t, ok)

	require.NoError(t, src.Add(Token{Label: "INT", Value: "int"}))
	require.NoError(t, src.Add(Token{Label: "ID", Value: "x"}))
	assert.Equal(t, 2, src.Available())

	peek, ok := src.Peek(2)
	require.True(t, ok)
	assert.Equal(t, symbol(t, v, "ID"), peek)
	_, ok = src.Peek(3)
	assert.False(t, ok)

	sym, ok := src.Next()
	require.True(t, ok)
	assert.Equal(t, symbol(t, v, "INT"), sym)
	assert.Equal(t, 1, src.Available())

	src.AddEnd()
	assert.True(t, src.Ended())
	peek, ok = src.Peek(5)
	require.True(t, ok)
	assert.Equal(t, v.Table().EndOfInput(), peek)

	src.Next()
	sym, ok = src.Next()
	require.True(t, ok)
	assert.Equal(t, v.Table().EndOfInput(), sym)
	sym, ok = src.Next()
	require.True(t, ok)
	assert.Equal(t, v.Table().EndOfInput(), sym)

	assert.Error(t, src.Add(Token{Label: "SEMI", Value: ";"}))
}

func TestDynamicSourceEndLabel(t *testing.T) {
	v := grammar.C99Vocabulary()
	src := NewDynamic(v)

	assert.Error(t, src.Add(Token{Label: "BOGUS"}))
	assert.False(t, src.Ended())

	require.NoError(t, src.Add(Token{Label: "END_OF_SLK_INPUT"}))
	assert.True(t, src.Ended())
	sym, ok := src.Next()
	require.True(t, ok)
	assert.Equal(t, v.Table().EndOfInput(), sym)
}
