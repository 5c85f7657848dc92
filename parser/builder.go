package parser

import (
	"fmt"

	"github.com/dhamidi/cslk/grammar"
)

// Handler receives the driver's semantic callbacks.
type Handler interface {
	// Predict is called when production p is applied to the pending
	// nonterminal on top of the parse stack.
	Predict(p grammar.Production)
	// Match is called when terminal t is matched by tok.
	Match(t grammar.Symbol, tok Token)
	// Execute runs action routine id (grammar.ActionFinish, ...).
	Execute(id int)
	// IsTypedef classifies identifiers for the token source.
	IsTypedef(name string) bool
}

type pending struct {
	sym  grammar.Symbol
	node *Node
}

// Builder builds the parse tree and tracks typedef names per scope.
type Builder struct {
	vocab *grammar.Vocabulary
	table *grammar.Table

	root      *Node
	stack     []pending
	terminals []*Node
	values    []string
	actions   []int
	finished  bool

	scopes     scopeStack
	predefined map[string]struct{}

	ident      grammar.Symbol
	declarator grammar.Symbol
	lastIdent  int
	lastDecl   int
}

// NewBuilder returns a builder with one open scope. typedefs are treated as
// typedef names in every scope.
func NewBuilder(v *grammar.Vocabulary, typedefs ...string) *Builder {
	t := v.Table()
	b := &Builder{
		vocab:      v,
		table:      t,
		root:       &Node{Kind: NodeProduction, Symbol: t.StartSymbol()},
		predefined: make(map[string]struct{}, len(typedefs)),
		lastIdent:  -1,
		lastDecl:   -1,
	}
	b.stack = []pending{{sym: t.StartSymbol(), node: b.root}}
	b.ident, _ = v.LabelID("ID")
	b.declarator, _ = v.Lookup("direct_declarator")
	for _, name := range typedefs {
		b.predefined[name] = struct{}{}
	}
	b.scopes.push()
	return b
}

// Tree returns the root node. Before the parse succeeds the tree is partial.
func (b *Builder) Tree() *Node { return b.root }

// Values lists matched token values in order.
func (b *Builder) Values() []string { return b.values }

// Actions lists executed action routine ids in order.
func (b *Builder) Actions() []int { return b.actions }

// Finished reports whether the finish action ran.
func (b *Builder) Finished() bool { return b.finished }

// Depth is the number of active scopes.
func (b *Builder) Depth() int { return len(b.scopes) }

func (b *Builder) Predict(p grammar.Production) {
	if len(b.stack) == 0 {
		panic(fmt.Sprintf("parser: predict %s with empty tree stack", b.vocab.ProductionString(p.ID)))
	}
	top := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	if top.sym != p.LHS {
		panic(fmt.Sprintf("parser: predict %s on pending %s", b.vocab.ProductionString(p.ID), b.vocab.Describe(top.sym)))
	}

	node := top.node
	node.Production = &p
	node.Children = make([]*Node, len(p.RHS))
	for i := len(p.RHS) - 1; i >= 0; i-- {
		sym := p.RHS[i]
		child := &Node{Symbol: sym, Parent: node}
		switch b.table.Kind(sym) {
		case grammar.Nonterminal:
			child.Kind = NodeProduction
			b.stack = append(b.stack, pending{sym: sym, node: child})
		case grammar.Terminal:
			child.Kind = NodeTerminal
			b.terminals = append(b.terminals, child)
		case grammar.Action:
			child.Kind = NodeAction
		default:
			panic(fmt.Sprintf("parser: production %d has non-symbol %d", p.ID, sym))
		}
		node.Children[i] = child
	}
}

func (b *Builder) Match(t grammar.Symbol, tok Token) {
	if len(b.terminals) == 0 {
		panic(fmt.Sprintf("parser: match %s with no pending terminal", b.vocab.Describe(t)))
	}
	leaf := b.terminals[len(b.terminals)-1]
	b.terminals = b.terminals[:len(b.terminals)-1]
	if leaf.Symbol != t {
		panic(fmt.Sprintf("parser: match %s against pending %s", b.vocab.Describe(t), b.vocab.Describe(leaf.Symbol)))
	}
	leaf.Value = tok.Value
	leaf.Line = tok.Line
	leaf.Column = tok.Column
	leaf.matched = true
	b.values = append(b.values, tok.Value)

	if t == b.ident {
		b.lastIdent = len(b.values) - 1
		if leaf.Parent != nil && leaf.Parent.Symbol == b.declarator {
			b.lastDecl = len(b.values) - 1
		}
	}
}

func (b *Builder) Execute(id int) {
	switch id {
	case grammar.ActionFinish:
		b.finished = true
	case grammar.ActionSetTypedefName:
		if name, ok := b.declaredName(); ok {
			b.scopes.top().typedefs[name] = struct{}{}
		}
	case grammar.ActionNewScope:
		b.scopes.push()
	case grammar.ActionReleaseScope:
		if len(b.scopes) == 1 {
			panic("parser: exit scope would close the file scope")
		}
		b.scopes.pop()
	default:
		panic(fmt.Sprintf("parser: unknown action %d", id))
	}
	b.actions = append(b.actions, id)
}

// declaredName is the name the last declarator introduced: its identifier
// when one was matched, else the last matched identifier.
func (b *Builder) declaredName() (string, bool) {
	i, _ := b.declaredIndex()
	if i < 0 {
		return "", false
	}
	return b.values[i], true
}

// declaredIndex returns the value index of the declared name and whether it
// came from a declarator.
func (b *Builder) declaredIndex() (int, bool) {
	if b.lastDecl >= 0 {
		return b.lastDecl, true
	}
	return b.lastIdent, false
}

// IsTypedef reports whether name is a typedef in an active scope, searching
// innermost first, or one of the predefined typedef names.
func (b *Builder) IsTypedef(name string) bool {
	if b.scopes.typedefIndex(name) >= 0 {
		return true
	}
	_, ok := b.predefined[name]
	return ok
}

// Typedefs lists the typedef names visible now, predefined ones included.
func (b *Builder) Typedefs() []string {
	set := make(map[string]struct{}, len(b.predefined))
	for name := range b.predefined {
		set[name] = struct{}{}
	}
	for _, name := range b.scopes.allTypedefs() {
		set[name] = struct{}{}
	}
	return sortedKeys(set)
}
