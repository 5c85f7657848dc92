package parser

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/cslk/grammar"
)

func TestCompatibleSets(t *testing.T) {
	p := New()
	v := p.Vocabulary()

	for _, src := range []string{
		"int max(){return;}",
		"int f(){ int x; x = (int)x; }",
		"typedef int T; T v; int g(T a){ return a; }",
	} {
		t.Run(src, func(t *testing.T) {
			tokens := lex(t, src)
			sets, err := p.CompatibleSets(tokens)
			require.NoError(t, err)
			require.Len(t, sets, len(tokens)+1)

			b, err := parseWith(t, src)
			require.NoError(t, err)
			leaves := b.Tree().Terminals()
			for i, set := range sets[:len(tokens)] {
				assert.True(t, set.Contains(leaves[i].Symbol), "token %d %q not in %s", i, leaves[i].Value, set)
			}
			assert.True(t, sets[len(tokens)].Contains(v.Table().EndOfInput()))
		})
	}
}

func TestCompatibleSetsSyntaxError(t *testing.T) {
	sets, err := New().CompatibleSets(lex(t, "int x; { }"))
	require.True(t, errors.Is(err, ErrSyntax))
	assert.Len(t, sets, 4)
}

func TestIncrementalFailsWhereStaticFails(t *testing.T) {
	p := New()
	for _, src := range []string{
		"int x; { }",
		"int f( { }",
		"int f(){ x = ; }",
		"int f(){ int x\nreturn x; }",
	} {
		t.Run(src, func(t *testing.T) {
			tokens := lex(t, src)

			_, staticErr := p.Parse(tokens)
			var want *SyntaxError
			require.True(t, errors.As(staticErr, &want), "static: %v", staticErr)

			sets, incErr := p.CompatibleSets(tokens)
			var got *SyntaxError
			require.True(t, errors.As(incErr, &got), "incremental: %v", incErr)

			assert.Equal(t, want.Symbol, got.Symbol)
			assert.Equal(t, want.Token, got.Token)
			assert.Equal(t, want.Value, got.Value)
			assert.Equal(t, want.Line, got.Line)
			assert.Equal(t, want.Column, got.Column)
			assert.True(t, want.Expected.Equal(got.Expected))
			assert.LessOrEqual(t, len(sets), len(tokens))
		})
	}
}

func TestIncrementalNext(t *testing.T) {
	p := New()
	v := p.Vocabulary()
	inc := p.Incremental()
	defer inc.Stop()

	tokens := lex(t, "int max(){return;}")
	for _, tok := range tokens {
		set, err := inc.Next()
		require.NoError(t, err)
		sym := symbol(t, v, tok.Label)
		assert.True(t, set.Contains(sym), "%s not in %s", tok, set)
		for s := range inc.Viable().All() {
			assert.True(t, set.Contains(s), "viable %d outside %s", s, set)
		}
		require.NoError(t, inc.Add(tok))
	}

	set, err := inc.Next()
	require.NoError(t, err)
	assert.True(t, set.Contains(v.Table().EndOfInput()))
	inc.AddEnd()

	_, err = inc.Next()
	assert.ErrorIs(t, err, io.EOF)
	assert.True(t, inc.Done())
	assert.NoError(t, inc.Err())
	assert.True(t, inc.Tree().Complete())
	assert.Equal(t, "int max ( ) { return ; }", inc.Tree().Text())

	_, err = inc.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestIncrementalInitialSet(t *testing.T) {
	p := New()
	v := p.Vocabulary()
	inc := p.Incremental()
	defer inc.Stop()

	set, err := inc.Next()
	require.NoError(t, err)
	start := v.Table().StartSymbol()
	assert.True(t, set.Equal(v.FirstSet(start)))
	assert.Equal(t, 87, set.Len())
	assert.True(t, inc.Viable().Equal(v.Viable(start)))
	assert.False(t, inc.Tree().Complete())
}

func TestIncrementalConflictSuspension(t *testing.T) {
	p := New()
	inc := p.Incremental()
	defer inc.Stop()

	// after "int max (" the driver needs a second token of lookahead
	for _, tok := range lex(t, "int max(") {
		_, err := inc.Next()
		require.NoError(t, err)
		require.NoError(t, inc.Add(tok))
	}
	set, err := inc.Next()
	require.NoError(t, err)
	assert.True(t, inc.Viable().Equal(set))
	assert.Equal(t, 0, inc.Pending())
}

func TestIncrementalRejectsToken(t *testing.T) {
	inc := New().Incremental()
	defer inc.Stop()

	set, err := inc.Next()
	require.NoError(t, err)
	require.False(t, set.Contains(symbol(t, inc.p.vocab, "TIMESEQUAL")))

	require.NoError(t, inc.Add(Token{Label: "TIMESEQUAL", Value: "*=", Line: 1, Column: 1}))
	_, err = inc.Next()
	var serr *SyntaxError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, "*=", serr.Value)
	assert.True(t, inc.Done())

	_, err = inc.Next()
	assert.ErrorIs(t, err, ErrSyntax)
	assert.ErrorIs(t, inc.Err(), ErrSyntax)
}

func TestIncrementalRejectsAfterLookahead(t *testing.T) {
	inc := New().Incremental()
	defer inc.Stop()

	// "}" shares a compressed cell with a conflict, so it is only
	// rejected once the next token is known
	_, err := inc.Next()
	require.NoError(t, err)
	require.NoError(t, inc.Add(Token{Label: "RBRACE", Value: "}", Line: 1, Column: 1}))
	_, err = inc.Next()
	require.NoError(t, err)
	inc.AddEnd()
	_, err = inc.Next()
	assert.ErrorIs(t, err, ErrSyntax)
}

func TestIncrementalResumeWithoutToken(t *testing.T) {
	inc := New().Incremental()
	defer inc.Stop()

	_, err := inc.Next()
	require.NoError(t, err)
	assert.Panics(t, func() { inc.Next() })
}

func TestIncrementalSingleUse(t *testing.T) {
	inc := New().Incremental()
	seq := inc.Sets()
	for range seq {
		break
	}
	assert.False(t, inc.Done())
	assert.NoError(t, inc.Err())
	assert.Panics(t, func() {
		for range seq {
		}
	})
}

func TestIncrementalTypedefs(t *testing.T) {
	p := New(WithTypedefs("size_t"))
	inc := p.Incremental()

	tokens := lex(t, "typedef int T; T v;")
	i := 0
	var sawT bool
	for _, err := range inc.Sets() {
		require.NoError(t, err)
		if i == len(tokens) {
			assert.Equal(t, []string{"T", "size_t"}, inc.Typedefs())
			inc.AddEnd()
			continue
		}
		if i == 4 {
			// the typedef is visible before its first use is read
			sawT = true
			assert.Contains(t, inc.Typedefs(), "T")
		}
		require.NoError(t, inc.Add(tokens[i]))
		i++
	}
	assert.True(t, sawT)
	require.True(t, inc.Done())
	assert.Equal(t, "TYPEID", p.Vocabulary().Label(inc.Tree().Terminals()[4].Symbol))
}

func TestIncrementalViableWaitingOnTerminal(t *testing.T) {
	p := New()
	v := p.Vocabulary()
	inc := p.Incremental()
	defer inc.Stop()

	inc.m.waitingSym = symbol(t, v, "SEMI")
	assert.Equal(t, []grammar.Symbol{symbol(t, v, "SEMI")}, inc.Viable().Symbols())
	inc.m.waitingSym = 0
	assert.True(t, inc.Viable().Contains(v.Table().EndOfInput()))
}
