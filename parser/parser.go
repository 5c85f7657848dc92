package parser

import (
	"errors"
	"fmt"

	"github.com/tliron/commonlog"

	"github.com/dhamidi/cslk/grammar"
)

type Option func(*Parser)

// WithVocabulary selects the grammar. The default is the bundled C99 one.
func WithVocabulary(v *grammar.Vocabulary) Option {
	return func(p *Parser) {
		p.vocab = v
	}
}

func WithLogger(log commonlog.Logger) Option {
	return func(p *Parser) {
		p.log = log
	}
}

// WithTrace logs every applied production at debug level.
func WithTrace() Option {
	return func(p *Parser) {
		p.trace = true
	}
}

// WithTypedefs names typedefs declared outside the parsed input, such as
// size_t from a header that was not preprocessed in.
func WithTypedefs(names ...string) Option {
	return func(p *Parser) {
		p.typedefs = append(p.typedefs, names...)
	}
}

// Parser runs the Strong-LL(k) driver. A Parser holds no per-parse state and
// may be shared; every parse gets its own token source and handler.
type Parser struct {
	vocab    *grammar.Vocabulary
	log      commonlog.Logger
	trace    bool
	typedefs []string
}

func New(opts ...Option) *Parser {
	p := &Parser{}
	for _, opt := range opts {
		opt(p)
	}
	if p.vocab == nil {
		p.vocab = grammar.C99Vocabulary()
	}
	if p.log == nil {
		p.log = commonlog.GetLogger("cslk.parser")
	}
	return p
}

func (p *Parser) Vocabulary() *grammar.Vocabulary { return p.vocab }

// Run parses everything src yields, reporting to h. It installs
// h.IsTypedef as the classifier of src. src must never run dry; use
// Incremental for sources that do.
func (p *Parser) Run(src TokenSource, h Handler) error {
	m := &machine{p: p, table: p.vocab.Table(), src: src, h: h}
	src.SetClassifier(h.IsTypedef)
	return m.run()
}

// Parse parses a complete token list and returns the tree.
func (p *Parser) Parse(tokens []Token) (*Node, error) {
	src, err := NewBuffered(p.vocab, tokens)
	if err != nil {
		return nil, err
	}
	b := NewBuilder(p.vocab, p.typedefs...)
	if err := p.Run(src, b); err != nil {
		return nil, err
	}
	return b.Tree(), nil
}

// ParseSource lexes and parses C source.
func (p *Parser) ParseSource(src []byte, file string) (*Node, error) {
	tokens, err := Lex(src, file)
	if err != nil {
		return nil, err
	}
	return p.Parse(tokens)
}

// ParseMonitored parses tokens with a Monitor and returns the tree and the
// per-token record.
func (p *Parser) ParseMonitored(tokens []Token, cfg MonitorConfig) (*Node, *Record, error) {
	src, err := NewBuffered(p.vocab, tokens)
	if err != nil {
		return nil, nil, err
	}
	cfg.Typenames = append(cfg.Typenames[:len(cfg.Typenames):len(cfg.Typenames)], p.typedefs...)
	m := NewMonitor(p.vocab, cfg)
	if err := p.Run(src, m); err != nil {
		return nil, nil, err
	}
	return m.Tree(), m.Record(), nil
}

// errStopped ends a run whose consumer stopped asking for sets.
var errStopped = errors.New("parser: stopped")

// machine is the driver state for one parse.
type machine struct {
	p     *Parser
	table *grammar.Table
	src   TokenSource
	h     Handler
	stack []grammar.Symbol
	token grammar.Symbol

	// suspend hands the compatible set to the consumer when src has no
	// token yet, and reports whether to continue. nil means src cannot
	// run dry.
	suspend func(grammar.TerminalSet) bool
	// waiting is the pending symbol, or the conflict marker, at the last
	// suspension.
	waitingSym    grammar.Symbol
	waitingMarker grammar.Entry
}

func (m *machine) run() error {
	t := m.table
	m.stack = append(m.stack[:0], 0, t.StartSymbol())
	if err := m.next(); err != nil {
		return err
	}

	for m.stack[len(m.stack)-1] != 0 {
		sym := m.stack[len(m.stack)-1]
		m.stack = m.stack[:len(m.stack)-1]

		switch t.Kind(sym) {
		case grammar.Action:
			m.h.Execute(t.ActionID(sym))

		case grammar.Nonterminal:
			id, err := m.resolve(sym)
			if err != nil {
				return err
			}
			prod := t.Production(id)
			if prod.LHS != sym {
				// compressed rows: the cell belongs to another nonterminal
				return m.syntaxError(sym)
			}
			if m.p.trace {
				m.p.log.Debugf("predict %s", m.p.vocab.ProductionString(id))
			}
			m.h.Predict(prod)
			for i := len(prod.RHS) - 1; i >= 0; i-- {
				m.stack = append(m.stack, prod.RHS[i])
			}

		case grammar.Terminal:
			if sym != m.token {
				return m.syntaxError(sym)
			}
			m.h.Match(sym, m.src.LastToken())
			if err := m.next(); err != nil {
				return err
			}

		default:
			panic(fmt.Sprintf("parser: symbol %d on the parse stack is not in the grammar", sym))
		}
	}

	if m.token != t.EndOfInput() {
		tok := m.src.LastToken()
		return &TrailingInputError{
			Token:     m.token,
			TokenName: m.p.vocab.Describe(m.token),
			Value:     tok.Value,
			Line:      tok.Line,
			Column:    tok.Column,
		}
	}
	return nil
}

// resolve finds the production for sym, following conflict markers with
// one more token of lookahead per step.
func (m *machine) resolve(sym grammar.Symbol) (int, error) {
	t := m.table
	entry := t.ParseEntry(sym, m.token)
	for level := 1; t.IsConflict(entry); level++ {
		if level > t.MaxConflictDepth() {
			panic(fmt.Sprintf("parser: conflict chain for %s exceeds %d tokens of lookahead", m.p.vocab.Describe(sym), t.MaxConflictDepth()))
		}
		la, err := m.peek(level, entry)
		if err != nil {
			return 0, err
		}
		entry = t.ConflictEntry(entry, la)
	}
	if entry == 0 {
		return 0, m.syntaxError(sym)
	}
	return int(entry), nil
}

// next advances to the following token, suspending while none is
// available.
func (m *machine) next() error {
	for {
		if sym, ok := m.src.Next(); ok {
			m.token = sym
			return nil
		}
		sym := m.pendingSymbol()
		m.waitingSym, m.waitingMarker = sym, 0
		if err := m.wait(m.expectedAt(sym)); err != nil {
			return err
		}
		if sym, ok := m.src.Next(); ok {
			m.token = sym
			return nil
		}
		panic("parser: resumed without a new token")
	}
}

func (m *machine) peek(level int, marker grammar.Entry) (grammar.Symbol, error) {
	if sym, ok := m.src.Peek(level); ok {
		return sym, nil
	}
	m.waitingSym, m.waitingMarker = 0, marker
	if err := m.wait(m.p.vocab.ConflictSet(marker)); err != nil {
		return 0, err
	}
	if sym, ok := m.src.Peek(level); ok {
		return sym, nil
	}
	panic("parser: resumed without a new token")
}

func (m *machine) wait(set grammar.TerminalSet) error {
	if m.suspend == nil {
		panic("parser: token source ran dry outside an incremental parse")
	}
	if !m.suspend(set) {
		return errStopped
	}
	return nil
}

// pendingSymbol is the next stack symbol that consumes input: actions are
// skipped, and 0 means only end of input may follow.
func (m *machine) pendingSymbol() grammar.Symbol {
	for i := len(m.stack) - 1; i > 0; i-- {
		if !m.table.IsAction(m.stack[i]) {
			return m.stack[i]
		}
	}
	return 0
}

// expectedAt is the compatible set for pending symbol sym.
func (m *machine) expectedAt(sym grammar.Symbol) grammar.TerminalSet {
	if sym == 0 {
		return grammar.NewTerminalSet(m.table.EndOfInput())
	}
	return m.p.vocab.CompatibleSet(sym)
}

func (m *machine) syntaxError(sym grammar.Symbol) *SyntaxError {
	tok := m.src.LastToken()
	expected := grammar.NewTerminalSet(sym)
	if m.table.IsNonterminal(sym) {
		expected = m.p.vocab.Viable(sym)
	}
	return &SyntaxError{
		Symbol:     sym,
		Token:      m.token,
		SymbolName: m.p.vocab.Describe(sym),
		TokenName:  m.p.vocab.Describe(m.token),
		Value:      tok.Value,
		Line:       tok.Line,
		Column:     tok.Column,
		Expected:   expected,
	}
}
