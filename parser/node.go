package parser

import (
	"strings"

	"github.com/dhamidi/cslk/grammar"
)

type NodeKind int

const (
	NodeProduction NodeKind = iota
	NodeTerminal
	NodeAction
)

func (k NodeKind) String() string {
	switch k {
	case NodeProduction:
		return "Production"
	case NodeTerminal:
		return "Terminal"
	case NodeAction:
		return "Action"
	}
	return "NodeKind(?)"
}

// Node is a parse tree node. A production node is unlabeled (Production is
// nil) until its production is predicted, and then owns one child slot per
// right-hand symbol. Terminal leaves receive Value and position when matched.
type Node struct {
	Kind       NodeKind
	Symbol     grammar.Symbol
	Production *grammar.Production
	Children   []*Node
	Parent     *Node
	Value      string
	Line       int
	Column     int

	matched bool
}

// Walk visits n and its descendants depth-first, left to right. Returning
// false from fn skips the children of that node.
func (n *Node) Walk(fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// Terminals flattens the terminal leaves left to right.
func (n *Node) Terminals() []*Node {
	var out []*Node
	n.Walk(func(c *Node) bool {
		if c.Kind == NodeTerminal {
			out = append(out, c)
		}
		return true
	})
	return out
}

// Productions lists the production ids applied to build the tree, in
// top-down (preorder) order.
func (n *Node) Productions() []int {
	var out []int
	n.Walk(func(c *Node) bool {
		if c.Kind == NodeProduction && c.Production != nil {
			out = append(out, c.Production.ID)
		}
		return true
	})
	return out
}

// Text joins the terminal values with single spaces.
func (n *Node) Text() string {
	var parts []string
	for _, t := range n.Terminals() {
		parts = append(parts, t.Value)
	}
	return strings.Join(parts, " ")
}

// Complete reports whether every production node under n has been
// predicted and every terminal leaf matched. Trees from a failed or
// suspended parse are incomplete.
func (n *Node) Complete() bool {
	ok := true
	n.Walk(func(c *Node) bool {
		switch c.Kind {
		case NodeProduction:
			if c.Production == nil {
				ok = false
			}
		case NodeTerminal:
			if !c.matched {
				ok = false
			}
		}
		return ok
	})
	return ok
}
