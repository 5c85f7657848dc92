package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/cslk/grammar"
	"github.com/dhamidi/cslk/parser"
)

type TreeJSONEncoder struct {
	w     io.Writer
	vocab *grammar.Vocabulary
}

func NewTreeJSONEncoder(w io.Writer, v *grammar.Vocabulary) *TreeJSONEncoder {
	return &TreeJSONEncoder{w: w, vocab: v}
}

func (e *TreeJSONEncoder) Encode(tree *parser.Node) error {
	text, err := e.MarshalText(tree)
	if err != nil {
		return err
	}
	_, err = e.w.Write(append(text, '\n'))
	return err
}

func (e *TreeJSONEncoder) MarshalText(tree *parser.Node) ([]byte, error) {
	return json.MarshalIndent(e.nodeToJSON(tree), "", "  ")
}

type treeJSONNode struct {
	Kind       string          `json:"kind"`
	Symbol     string          `json:"symbol"`
	Production int             `json:"production,omitempty"`
	Value      string          `json:"value,omitempty"`
	Position   *treeJSONPos    `json:"position,omitempty"`
	Children   []*treeJSONNode `json:"children,omitempty"`
}

type treeJSONPos struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

func (e *TreeJSONEncoder) nodeToJSON(n *parser.Node) *treeJSONNode {
	jn := &treeJSONNode{
		Kind:   n.Kind.String(),
		Symbol: e.vocab.Describe(n.Symbol),
		Value:  n.Value,
	}
	if n.Production != nil {
		jn.Production = n.Production.ID
	}
	if n.Line != 0 {
		jn.Position = &treeJSONPos{Line: n.Line, Column: n.Column}
	}

	if len(n.Children) > 0 {
		jn.Children = make([]*treeJSONNode, len(n.Children))
		for i, child := range n.Children {
			jn.Children[i] = e.nodeToJSON(child)
		}
	}
	return jn
}
