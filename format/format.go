// Package format renders parse trees, token streams, compatible sets and
// monitored records.
package format

import (
	"github.com/dhamidi/cslk/parser"
)

// Encoder writes a parse tree.
type Encoder interface {
	Encode(tree *parser.Node) error
	MarshalText(tree *parser.Node) ([]byte, error)
}

var (
	_ Encoder = (*TreeJSONEncoder)(nil)
	_ Encoder = (*TreeEncoder)(nil)
	_ Encoder = (*ProductionEncoder)(nil)
)
