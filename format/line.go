package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/cslk/grammar"
	"github.com/dhamidi/cslk/parser"
)

// TokenLineEncoder writes one token per line: position, label, value.
type TokenLineEncoder struct {
	w io.Writer
}

func NewTokenLineEncoder(w io.Writer) *TokenLineEncoder {
	return &TokenLineEncoder{w: w}
}

func (e *TokenLineEncoder) Encode(tokens []parser.Token) error {
	text, err := e.MarshalText(tokens)
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TokenLineEncoder) MarshalText(tokens []parser.Token) ([]byte, error) {
	var sb strings.Builder
	for _, tok := range tokens {
		fmt.Fprintf(&sb, "%d:%d\t%s\t%s\n", tok.Line, tok.Column, tok.Label, tok.Value)
	}
	return []byte(sb.String()), nil
}

// ProductionEncoder writes the productions of a tree in the order they
// were applied, one per line with the production id first.
type ProductionEncoder struct {
	w     io.Writer
	vocab *grammar.Vocabulary
}

func NewProductionEncoder(w io.Writer, v *grammar.Vocabulary) *ProductionEncoder {
	return &ProductionEncoder{w: w, vocab: v}
}

func (e *ProductionEncoder) Encode(tree *parser.Node) error {
	text, err := e.MarshalText(tree)
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *ProductionEncoder) MarshalText(tree *parser.Node) ([]byte, error) {
	var sb strings.Builder
	for _, id := range tree.Productions() {
		fmt.Fprintf(&sb, "%d\t%s\n", id, e.vocab.ProductionString(id))
	}
	return []byte(sb.String()), nil
}

// SetLineEncoder writes each compatible set next to the token that
// followed it. The set offered before end of input is shown against END.
type SetLineEncoder struct {
	w     io.Writer
	vocab *grammar.Vocabulary
	names bool
}

func NewSetLineEncoder(w io.Writer, v *grammar.Vocabulary) *SetLineEncoder {
	return &SetLineEncoder{w: w, vocab: v}
}

// WithNames lists members by label instead of by id.
func (e *SetLineEncoder) WithNames() *SetLineEncoder {
	e.names = true
	return e
}

func (e *SetLineEncoder) Encode(tokens []parser.Token, sets []grammar.TerminalSet) error {
	text, err := e.MarshalText(tokens, sets)
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *SetLineEncoder) MarshalText(tokens []parser.Token, sets []grammar.TerminalSet) ([]byte, error) {
	var sb strings.Builder
	for i, set := range sets {
		value := "END"
		if i < len(tokens) {
			value = tokens[i].Value
		}
		fmt.Fprintf(&sb, "%d\t%s\t%d\t%s\n", i, value, set.Len(), e.setString(set))
	}
	return []byte(sb.String()), nil
}

func (e *SetLineEncoder) setString(set grammar.TerminalSet) string {
	if !e.names {
		return set.String()
	}
	var parts []string
	for sym := range set.All() {
		parts = append(parts, e.vocab.Label(sym))
	}
	return "{" + strings.Join(parts, " ") + "}"
}
