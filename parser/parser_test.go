package parser

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/dhamidi/cslk/grammar"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func lex(t *testing.T, src string) []Token {
	t.Helper()
	tokens, err := Lex([]byte(src), "test.c")
	require.NoError(t, err)
	return tokens
}

func parseWith(t *testing.T, src string, typedefs ...string) (*Builder, error) {
	t.Helper()
	p := New()
	b := NewBuilder(p.Vocabulary(), typedefs...)
	buf, err := NewBuffered(p.Vocabulary(), lex(t, src))
	require.NoError(t, err)
	return b, p.Run(buf, b)
}

// labelsOf returns the grammar label of every matched leaf.
func labelsOf(v *grammar.Vocabulary, n *Node) []string {
	var out []string
	for _, leaf := range n.Terminals() {
		out = append(out, v.Label(leaf.Symbol))
	}
	return out
}

func TestParseFunction(t *testing.T) {
	b, err := parseWith(t, "int max(){return;}")
	require.NoError(t, err)

	assert.Equal(t, []int{grammar.ActionNewScope, grammar.ActionReleaseScope, grammar.ActionFinish}, b.Actions())
	assert.True(t, b.Finished())
	assert.Equal(t, 1, b.Depth())

	tree := b.Tree()
	require.True(t, tree.Complete())
	assert.Equal(t, "int max ( ) { return ; }", tree.Text())
	assert.Equal(t, []string{"int", "max", "(", ")", "{", "return", ";", "}"}, b.Values())

	first := tree.Productions()[0]
	assert.Equal(t, 1, first)
	assert.Equal(t, tree, tree.Children[0].Parent)
}

func TestParseSourcePositions(t *testing.T) {
	tree, err := New().ParseSource([]byte("int x;\nint y;\n"), "pos.c")
	require.NoError(t, err)

	leaves := tree.Terminals()
	require.Len(t, leaves, 6)
	assert.Equal(t, "y", leaves[4].Value)
	assert.Equal(t, 2, leaves[4].Line)
	assert.Equal(t, 5, leaves[4].Column)
}

func TestParseCastAndParenthesis(t *testing.T) {
	v := grammar.C99Vocabulary()
	productions := func(src string) string {
		tree, err := New().ParseSource([]byte(src), "cast.c")
		require.NoError(t, err)
		var names []string
		for _, id := range tree.Productions() {
			names = append(names, v.ProductionString(id))
		}
		return strings.Join(names, "\n")
	}

	cast := productions("int f(){ int x; x = (int)x; }")
	assert.Contains(t, cast, "assignment_expression --> ( type_name ) cast_expression")

	paren := productions("int f(){ int x; x = (x); }")
	assert.Contains(t, paren, "primary_expression --> ( expression )")
	assert.NotContains(t, paren, "( type_name )")
}

func TestTypedefClassification(t *testing.T) {
	v := grammar.C99Vocabulary()

	b, err := parseWith(t, "typedef int my_t; int f(){ my_t x; }")
	require.NoError(t, err)
	labels := labelsOf(v, b.Tree())
	values := b.Values()
	for i, value := range values {
		if value == "my_t" && i > 2 {
			assert.Equal(t, "TYPEID", labels[i])
		}
	}
	assert.Equal(t, []string{"my_t"}, b.Typedefs())
}

func TestTypedefScopes(t *testing.T) {
	v := grammar.C99Vocabulary()

	b, err := parseWith(t, "int f(){ { typedef int my_t; my_t x; } { int my_t; } }")
	require.NoError(t, err)

	var got []string
	for _, leaf := range b.Tree().Terminals() {
		if leaf.Value == "my_t" {
			got = append(got, v.Label(leaf.Symbol))
		}
	}
	assert.Equal(t, []string{"ID", "TYPEID", "ID"}, got)
	assert.Empty(t, b.Typedefs())
}

func TestTypedefOutOfScope(t *testing.T) {
	_, err := parseWith(t, "int f(){ { typedef int my_t; } my_t x; }")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSyntax))

	var serr *SyntaxError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, "statement", serr.SymbolName)
	assert.Equal(t, "IDENTIFIER", serr.TokenName)
	assert.Equal(t, "my_t", serr.Value)
	assert.False(t, serr.Expected.Empty())
}

func TestPredefinedTypedef(t *testing.T) {
	_, err := New().ParseSource([]byte("int f(){ size_t n; }"), "size.c")
	require.Error(t, err)

	tree, err := New(WithTypedefs("size_t")).ParseSource([]byte("int f(){ size_t n; }"), "size.c")
	require.NoError(t, err)
	assert.True(t, tree.Complete())
}

func TestSyntaxErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		line int
	}{
		{"missing semicolon", "int f(){ int x\nreturn x; }", 2},
		{"top level block", "int x; { }", 1},
		{"stray paren", "int f( { }", 1},
		{"empty expression", "int f(){ x = ; }", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, err := New().ParseSource([]byte(tt.src), "bad.c")
			require.Error(t, err)
			assert.Nil(t, tree)
			var serr *SyntaxError
			require.True(t, errors.As(err, &serr), "got %T: %v", err, err)
			assert.Equal(t, tt.line, serr.Line)
			assert.Contains(t, serr.Error(), "syntax error: expecting")
		})
	}
}

func TestEmptyInput(t *testing.T) {
	_, err := New().Parse(nil)
	var serr *SyntaxError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, "END_OF_SLK_INPUT", serr.TokenName)
}

func TestUnknownLabel(t *testing.T) {
	_, err := New().Parse([]Token{{Label: "NOPE", Value: "?"}})
	var lerr *UnknownLabelError
	require.True(t, errors.As(err, &lerr))
	assert.Equal(t, "NOPE", lerr.Token.Label)
}

func TestParserShared(t *testing.T) {
	p := New()
	for _, src := range []string{"int a;", "char *s;", "void f(void){}"} {
		tree, err := p.ParseSource([]byte(src), "shared.c")
		require.NoError(t, err, src)
		assert.True(t, tree.Complete(), src)
	}
}

// tinyVocabulary is S -> a over terminals a, b. The S row sends b to a
// conflict marker whose row points back at itself on every lookahead.
func tinyVocabulary(t *testing.T) *grammar.Vocabulary {
	t.Helper()
	tab, err := grammar.New(grammar.Tables{
		Productions:   []int{0, 2, 4, 1},
		ProductionRow: []int{0, 1},
		Parse:         []int{0, 1, 10, 0},
		ParseRow:      []int{0, 0},
		Conflict:      []int{0, 10, 10, 10},
		ConflictRow:   []int{0, 0},
		EndOfInput:    3,
		StartSymbol:   4,
		StartAction:   5,
		EndAction:     6,
		StartConflict: 10,
		EndConflict:   11,
	})
	require.NoError(t, err)
	return grammar.NewVocabulary(tab, grammar.Names{
		Terminals:    []string{"", "a", "b", "END"},
		Labels:       []string{"", "A", "B", "END"},
		Nonterminals: []string{"", "s"},
		Actions:      []string{"", "__finish"},
	})
}

func tinyTokens(values ...string) []Token {
	var tokens []Token
	for i, v := range values {
		tokens = append(tokens, Token{Label: strings.ToUpper(v), Value: v, Line: 1, Column: 2*i + 1})
	}
	return tokens
}

func TestTrailingInput(t *testing.T) {
	p := New(WithVocabulary(tinyVocabulary(t)))

	tree, err := p.Parse(tinyTokens("a"))
	require.NoError(t, err)
	assert.Equal(t, "a", tree.Text())

	tree, err = p.Parse(tinyTokens("a", "a"))
	assert.Nil(t, tree)
	require.ErrorIs(t, err, ErrTrailingInput)
	var trailing *TrailingInputError
	require.True(t, errors.As(err, &trailing))
	assert.Equal(t, grammar.Symbol(1), trailing.Token)
	assert.Equal(t, "a", trailing.Value)
	assert.Equal(t, 1, trailing.Line)
	assert.Equal(t, 3, trailing.Column)
	assert.Contains(t, err.Error(), "after end of translation unit")

	sets, err := p.CompatibleSets(tinyTokens("a", "a"))
	require.ErrorIs(t, err, ErrTrailingInput)
	require.Len(t, sets, 2)
	assert.True(t, sets[1].Equal(grammar.NewTerminalSet(3)), "%s", sets[1])
}

func TestConflictChainTooDeep(t *testing.T) {
	p := New(WithVocabulary(tinyVocabulary(t)))
	defer func() {
		r := recover()
		require.NotNil(t, r, "a self-referencing conflict row must panic")
		assert.Contains(t, fmt.Sprint(r), "conflict chain for s exceeds 1 tokens of lookahead")
	}()
	p.Parse(tinyTokens("b"))
}
