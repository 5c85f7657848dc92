package parser

import (
	"fmt"

	"github.com/dhamidi/cslk/clex"
)

// Token is a raw lexer token: a lexer category label (such as "ID",
// "INT_CONST_HEX" or "LPAREN"), its source text and its position.
type Token struct {
	Label  string
	Value  string
	Line   int
	Column int
}

func (t Token) String() string {
	if t.Line == 0 {
		return fmt.Sprintf("%s %q", t.Label, t.Value)
	}
	return fmt.Sprintf("%d:%d %s %q", t.Line, t.Column, t.Label, t.Value)
}

// FromLexer converts clex tokens, dropping trivia.
func FromLexer(tokens []clex.Token) []Token {
	out := make([]Token, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Kind.IsTrivia() || tok.Kind == clex.TokenEOF {
			continue
		}
		out = append(out, Token{
			Label:  tok.Kind.Label(),
			Value:  tok.Literal,
			Line:   tok.Span.Start.Line,
			Column: tok.Span.Start.Column,
		})
	}
	return out
}

// Lex tokenizes C source with clex.
func Lex(src []byte, file string) ([]Token, error) {
	tokens, err := clex.Tokenize(src, file)
	if err != nil {
		return nil, err
	}
	return FromLexer(tokens), nil
}
