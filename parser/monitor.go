package parser

import (
	"sort"

	"github.com/dhamidi/cslk/grammar"
)

// WordIDs maps token text to vocabulary ids.
type WordIDs interface {
	ID(word string) int
}

// MonitorConfig holds the names a monitored parse treats as predefined.
type MonitorConfig struct {
	Identifiers []string
	Typenames   []string
	// Words maps names to snapshot ids. When nil, each name gets the next
	// free id, starting at 0, the first time a snapshot contains it.
	Words WordIDs
}

// firstSeen numbers words in order of first lookup.
type firstSeen map[string]int

func (f firstSeen) ID(word string) int {
	if id, ok := f[word]; ok {
		return id
	}
	id := len(f)
	f[word] = id
	return id
}

// Record holds the per-token sequences of a monitored parse. Entry i of
// every slice describes the same position: the first BootstrapEntries
// positions precede the first token, then one entry per matched terminal.
type Record struct {
	// ScopeIndex is the depth of the scope that defines the identifier or
	// type name at this position, 0 for predefined names and non-names,
	// -1 for type names with no definition.
	ScopeIndex []int
	// IsIdentifier marks identifier and type-name positions.
	IsIdentifier []bool
	// MaxScope is the deepest scope nesting reached so far.
	MaxScope []int
	// Identifiers and Typenames are the word ids of every defined
	// identifier and typedef name, sorted.
	Identifiers [][]int
	Typenames   [][]int
}

// BootstrapEntries is the number of record positions before the first token.
const BootstrapEntries = 2

func (r *Record) Len() int { return len(r.ScopeIndex) }

func (r *Record) append(scope int, ident bool, maxScope int, ids, types []int) {
	r.ScopeIndex = append(r.ScopeIndex, scope)
	r.IsIdentifier = append(r.IsIdentifier, ident)
	r.MaxScope = append(r.MaxScope, maxScope)
	r.Identifiers = append(r.Identifiers, ids)
	r.Typenames = append(r.Typenames, types)
}

// Monitor is a Handler that builds the tree like Builder and records, for
// every matched token, where names were defined. The predefined type names
// also classify as typedefs.
type Monitor struct {
	*Builder

	identifiers map[string]struct{}
	typenames   map[string]struct{}
	words       WordIDs
	typeName    grammar.Symbol
	maxDepth    int
	record      Record
}

func NewMonitor(v *grammar.Vocabulary, cfg MonitorConfig) *Monitor {
	m := &Monitor{
		Builder:     NewBuilder(v, cfg.Typenames...),
		identifiers: make(map[string]struct{}, len(cfg.Identifiers)),
		typenames:   make(map[string]struct{}, len(cfg.Typenames)),
		words:       cfg.Words,
	}
	if m.words == nil {
		m.words = firstSeen{}
	}
	m.typeName, _ = v.LabelID("TYPEID")
	for _, name := range cfg.Identifiers {
		m.identifiers[name] = struct{}{}
	}
	for _, name := range cfg.Typenames {
		m.typenames[name] = struct{}{}
	}
	m.scopes.push()
	m.maxDepth = len(m.scopes)
	for i := 0; i < BootstrapEntries; i++ {
		m.record.append(0, false, 1, m.wordIDs(m.scopes.allIdentifiers()), m.wordIDs(m.scopes.allTypedefs()))
	}
	return m
}

// Record returns the sequences gathered so far.
func (m *Monitor) Record() *Record { return &m.record }

func (m *Monitor) Match(t grammar.Symbol, tok Token) {
	m.Builder.Match(t, tok)

	scope, ident := 0, false
	switch t {
	case m.ident:
		scope, ident = m.registerIdentifier(tok.Value), true
	case m.typeName:
		scope, ident = m.typenameIndex(tok.Value), true
	}
	m.record.append(scope, ident, m.maxDepth, m.wordIDs(m.scopes.allIdentifiers()), m.wordIDs(m.scopes.allTypedefs()))
}

func (m *Monitor) Execute(id int) {
	m.Builder.Execute(id)

	switch id {
	case grammar.ActionSetTypedefName:
		i, _ := m.declaredIndex()
		if i < 0 {
			return
		}
		delete(m.scopes.top().identifiers, m.values[i])
		m.record.ScopeIndex[BootstrapEntries+i] = len(m.scopes) - 1
		m.refresh()
	case grammar.ActionNewScope:
		m.maxDepth = max(m.maxDepth, len(m.scopes))
		m.refresh()
	case grammar.ActionReleaseScope:
		m.refresh()
	}
}

// registerIdentifier returns the depth defining name, binding it in the
// innermost scope when nothing defines it yet.
func (m *Monitor) registerIdentifier(name string) int {
	if i := m.scopes.identifierIndex(name); i >= 0 {
		return i
	}
	if _, ok := m.identifiers[name]; ok {
		return 0
	}
	m.scopes.top().identifiers[name] = struct{}{}
	return len(m.scopes) - 1
}

func (m *Monitor) typenameIndex(name string) int {
	if i := m.scopes.typedefIndex(name); i >= 0 {
		return i
	}
	if _, ok := m.typenames[name]; ok {
		return 0
	}
	return -1
}

// refresh recomputes the snapshots of the last record position.
func (m *Monitor) refresh() {
	last := m.record.Len() - 1
	m.record.MaxScope[last] = m.maxDepth
	m.record.Identifiers[last] = m.wordIDs(m.scopes.allIdentifiers())
	m.record.Typenames[last] = m.wordIDs(m.scopes.allTypedefs())
}

func (m *Monitor) wordIDs(names []string) []int {
	ids := make([]int, 0, len(names))
	for _, name := range names {
		ids = append(ids, m.words.ID(name))
	}
	sort.Ints(ids)
	return ids
}
