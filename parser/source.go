package parser

import (
	"fmt"

	"github.com/dhamidi/cslk/grammar"
)

// Classifier reports whether an identifier currently names a typedef.
type Classifier func(text string) bool

// TokenSource feeds terminals to the driver.
//
// Next consumes one token and Peek looks level tokens past the last consumed
// one (level starts at 1) without consuming. Both report ok=false only when
// the source has no token yet but may receive more; a source that has ended
// keeps returning the end-of-input terminal. An identifier is reclassified
// as a type name when the installed Classifier accepts it at the moment it
// is read.
type TokenSource interface {
	Next() (grammar.Symbol, bool)
	Peek(level int) (grammar.Symbol, bool)
	LastValue() string
	LastToken() Token
	SetClassifier(Classifier)
}

// UnknownLabelError reports a token whose category the grammar lacks.
type UnknownLabelError struct {
	Token Token
}

func (e *UnknownLabelError) Error() string {
	return fmt.Sprintf("unknown token category %q for %q at %d:%d", e.Token.Label, e.Token.Value, e.Token.Line, e.Token.Column)
}

// converter maps raw tokens to terminals.
type converter struct {
	vocab    *grammar.Vocabulary
	ident    grammar.Symbol
	typeName grammar.Symbol
	end      grammar.Symbol
	classify Classifier
}

func newConverter(v *grammar.Vocabulary) converter {
	c := converter{vocab: v, end: v.Table().EndOfInput()}
	c.ident, _ = v.LabelID("ID")
	c.typeName, _ = v.LabelID("TYPEID")
	return c
}

func (c *converter) base(tok Token) (grammar.Symbol, error) {
	sym, ok := c.vocab.LabelID(tok.Label)
	if !ok {
		return 0, &UnknownLabelError{Token: tok}
	}
	return sym, nil
}

func (c *converter) classified(base grammar.Symbol, value string) grammar.Symbol {
	if base == c.ident && c.typeName != 0 && c.classify != nil && c.classify(value) {
		return c.typeName
	}
	return base
}

func (c *converter) endToken() Token {
	return Token{Label: c.vocab.Label(c.end)}
}

// Buffered is a TokenSource over a complete token list. Reading past the
// end yields the end-of-input terminal.
type Buffered struct {
	conv   converter
	tokens []Token
	syms   []grammar.Symbol
	index  int
	last   Token
}

func NewBuffered(v *grammar.Vocabulary, tokens []Token) (*Buffered, error) {
	b := &Buffered{
		conv:   newConverter(v),
		tokens: tokens,
		syms:   make([]grammar.Symbol, len(tokens)),
	}
	for i, tok := range tokens {
		sym, err := b.conv.base(tok)
		if err != nil {
			return nil, err
		}
		b.syms[i] = sym
	}
	return b, nil
}

func (b *Buffered) Next() (grammar.Symbol, bool) {
	if b.index >= len(b.tokens) {
		b.last = b.conv.endToken()
		return b.conv.end, true
	}
	i := b.index
	b.index++
	b.last = b.tokens[i]
	return b.conv.classified(b.syms[i], b.tokens[i].Value), true
}

func (b *Buffered) Peek(level int) (grammar.Symbol, bool) {
	if level < 1 {
		panic(fmt.Sprintf("parser: peek level %d", level))
	}
	i := b.index + level - 1
	if i >= len(b.tokens) {
		return b.conv.end, true
	}
	return b.conv.classified(b.syms[i], b.tokens[i].Value), true
}

func (b *Buffered) LastValue() string          { return b.last.Value }
func (b *Buffered) LastToken() Token           { return b.last }
func (b *Buffered) SetClassifier(c Classifier) { b.conv.classify = c }

// Dynamic is a TokenSource over a growing token list. Reading past the
// available tokens reports ok=false until more are added or AddEnd marks
// the end of input.
type Dynamic struct {
	conv   converter
	tokens []Token
	syms   []grammar.Symbol
	index  int
	last   Token
	ended  bool
}

func NewDynamic(v *grammar.Vocabulary) *Dynamic {
	return &Dynamic{conv: newConverter(v)}
}

// Add appends tok. A token labelled as end of input ends the source.
func (d *Dynamic) Add(tok Token) error {
	if d.ended {
		return fmt.Errorf("parser: token %s after end of input", tok)
	}
	sym, err := d.conv.base(tok)
	if err != nil {
		return err
	}
	d.tokens = append(d.tokens, tok)
	d.syms = append(d.syms, sym)
	if sym == d.conv.end {
		d.ended = true
	}
	return nil
}

// AddEnd appends the end-of-input token.
func (d *Dynamic) AddEnd() {
	if d.ended {
		return
	}
	d.tokens = append(d.tokens, d.conv.endToken())
	d.syms = append(d.syms, d.conv.end)
	d.ended = true
}

// Available counts tokens added but not yet consumed.
func (d *Dynamic) Available() int { return len(d.tokens) - d.index }

func (d *Dynamic) Ended() bool { return d.ended }

func (d *Dynamic) Next() (grammar.Symbol, bool) {
	if d.index >= len(d.tokens) {
		if d.ended {
			d.last = d.conv.endToken()
			return d.conv.end, true
		}
		return 0, false
	}
	i := d.index
	d.index++
	d.last = d.tokens[i]
	return d.conv.classified(d.syms[i], d.tokens[i].Value), true
}

func (d *Dynamic) Peek(level int) (grammar.Symbol, bool) {
	if level < 1 {
		panic(fmt.Sprintf("parser: peek level %d", level))
	}
	i := d.index + level - 1
	if i >= len(d.tokens) {
		if d.ended {
			return d.conv.end, true
		}
		return 0, false
	}
	return d.conv.classified(d.syms[i], d.tokens[i].Value), true
}

func (d *Dynamic) LastValue() string          { return d.last.Value }
func (d *Dynamic) LastToken() Token           { return d.last }
func (d *Dynamic) SetClassifier(c Classifier) { d.conv.classify = c }
