package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/cslk/grammar"
	"github.com/dhamidi/cslk/parser"
)

// TreeEncoder prints one node per line, indented by depth:
//
//	translation_unit
//	  external_declaration
//	    ...
//	      INT "int" 1:1
type TreeEncoder struct {
	w       io.Writer
	vocab   *grammar.Vocabulary
	actions bool
}

func NewTreeEncoder(w io.Writer, v *grammar.Vocabulary) *TreeEncoder {
	return &TreeEncoder{w: w, vocab: v}
}

// WithActions includes action leaves.
func (e *TreeEncoder) WithActions() *TreeEncoder {
	e.actions = true
	return e
}

func (e *TreeEncoder) Encode(tree *parser.Node) error {
	text, err := e.MarshalText(tree)
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TreeEncoder) MarshalText(tree *parser.Node) ([]byte, error) {
	var sb strings.Builder
	e.write(&sb, tree, 0)
	return []byte(sb.String()), nil
}

func (e *TreeEncoder) write(sb *strings.Builder, n *parser.Node, depth int) {
	if n.Kind == parser.NodeAction && !e.actions {
		return
	}
	sb.WriteString(strings.Repeat("  ", depth))
	switch n.Kind {
	case parser.NodeTerminal:
		fmt.Fprintf(sb, "%s %q", e.vocab.Label(n.Symbol), n.Value)
		if n.Line != 0 {
			fmt.Fprintf(sb, " %d:%d", n.Line, n.Column)
		}
	case parser.NodeAction:
		sb.WriteString(e.vocab.Describe(n.Symbol))
	default:
		sb.WriteString(e.vocab.Describe(n.Symbol))
		if n.Production == nil {
			sb.WriteString(" ?")
		}
	}
	sb.WriteByte('\n')
	for _, c := range n.Children {
		e.write(sb, c, depth+1)
	}
}
