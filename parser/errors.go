package parser

import (
	"errors"
	"fmt"

	"github.com/dhamidi/cslk/grammar"
)

var (
	ErrSyntax        = errors.New("syntax error")
	ErrTrailingInput = errors.New("trailing input")
)

// SyntaxError reports a lookahead token the grammar does not admit where
// Symbol is expected.
type SyntaxError struct {
	Symbol     grammar.Symbol
	Token      grammar.Symbol
	SymbolName string
	TokenName  string
	Value      string
	Line       int
	Column     int
	// Expected is the compatible set at the failure point.
	Expected grammar.TerminalSet
}

func (e *SyntaxError) Error() string {
	where := ""
	if e.Line > 0 {
		where = fmt.Sprintf("%d:%d: ", e.Line, e.Column)
	}
	got := e.TokenName
	if e.Value != "" && e.Value != e.TokenName {
		got = fmt.Sprintf("%s %q", e.TokenName, e.Value)
	}
	return fmt.Sprintf("%ssyntax error: expecting %s, got %s", where, e.SymbolName, got)
}

func (e *SyntaxError) Unwrap() error { return ErrSyntax }

// TrailingInputError reports tokens left over after the start symbol was
// fully derived.
type TrailingInputError struct {
	Token     grammar.Symbol
	TokenName string
	Value     string
	Line      int
	Column    int
}

func (e *TrailingInputError) Error() string {
	where := ""
	if e.Line > 0 {
		where = fmt.Sprintf("%d:%d: ", e.Line, e.Column)
	}
	return fmt.Sprintf("%sunexpected %s %q after end of translation unit", where, e.TokenName, e.Value)
}

func (e *TrailingInputError) Unwrap() error { return ErrTrailingInput }
