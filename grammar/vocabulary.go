package grammar

import (
	"fmt"
	"strings"
	"sync"
)

// Names gives human-readable names to the symbols of a Table and the lexer
// category labels of its terminals.
type Names struct {
	// Terminals and Labels are indexed by terminal id.
	Terminals []string
	Labels    []string
	// Nonterminals is indexed by id-(StartSymbol-1), Actions by the action
	// routine id.
	Nonterminals []string
	Actions      []string
	// Folds maps extra lexer labels onto the label they are reported as.
	Folds map[string]string
}

// C99Names are the names for C99.
func C99Names() Names {
	return Names{
		Terminals:    c99TerminalNames,
		Labels:       c99Labels,
		Nonterminals: c99NonterminalNames,
		Actions:      c99ActionNames,
		Folds:        c99Folds,
	}
}

var c99Folds = map[string]string{
	"INT_CONST_DEC":   "CONSTANT",
	"INT_CONST_OCT":   "CONSTANT",
	"INT_CONST_HEX":   "CONSTANT",
	"INT_CONST_BIN":   "CONSTANT",
	"FLOAT_CONST":     "CONSTANT",
	"HEX_FLOAT_CONST": "CONSTANT",
	"CHAR_CONST":      "CONSTANT",
	"WCHAR_CONST":     "CONSTANT",
	"WSTRING_LITERAL": "STRING_LITERAL",
}

// Vocabulary names symbols and derives the compatible terminal sets of the
// parse and conflict tables. Sets are computed on first use and cached; a
// Vocabulary is safe for concurrent use.
type Vocabulary struct {
	table  *Table
	names  Names
	byName map[string]Symbol
	labels map[string]Symbol

	mu        sync.Mutex
	first     []*TerminalSet
	viable    []*TerminalSet
	conflicts []*TerminalSet
}

func NewVocabulary(t *Table, names Names) *Vocabulary {
	v := &Vocabulary{
		table:  t,
		names:  names,
		byName: make(map[string]Symbol),
		labels: make(map[string]Symbol),
	}
	ntFirst, ntEnd := t.Nonterminals()
	cFirst, cEnd := t.Conflicts()
	v.first = make([]*TerminalSet, ntEnd-ntFirst)
	v.viable = make([]*TerminalSet, ntEnd-ntFirst)
	v.conflicts = make([]*TerminalSet, cEnd-cFirst)

	for s := Symbol(1); ; s++ {
		if t.Kind(s) == NotASymbol {
			break
		}
		if name := v.Name(s); name != "" {
			v.byName[name] = s
		}
	}
	for id, label := range names.Labels {
		if label != "" {
			v.labels[label] = Symbol(id)
		}
	}
	for from, to := range names.Folds {
		if s, ok := v.labels[to]; ok {
			v.labels[from] = s
		}
	}
	return v
}

var (
	c99VocabOnce sync.Once
	c99Vocab     *Vocabulary
)

// C99Vocabulary is the shared vocabulary over C99().
func C99Vocabulary() *Vocabulary {
	c99VocabOnce.Do(func() {
		c99Vocab = NewVocabulary(C99(), C99Names())
	})
	return c99Vocab
}

func (v *Vocabulary) Table() *Table { return v.table }

// Name returns the grammar name of s, or "" if it has none.
func (v *Vocabulary) Name(s Symbol) string {
	t := v.table
	var names []string
	var i int
	switch t.Kind(s) {
	case Terminal:
		names, i = v.names.Terminals, int(s)
	case Nonterminal:
		names, i = v.names.Nonterminals, int(s-(t.t.StartSymbol-1))
	case Action:
		names, i = v.names.Actions, t.ActionID(s)
	default:
		return ""
	}
	if i < len(names) {
		return names[i]
	}
	return ""
}

// Describe is Name with a numeric fallback, for messages.
func (v *Vocabulary) Describe(s Symbol) string {
	if name := v.Name(s); name != "" {
		return name
	}
	return fmt.Sprintf("#%d", s)
}

// Lookup finds a symbol by its grammar name.
func (v *Vocabulary) Lookup(name string) (Symbol, bool) {
	s, ok := v.byName[name]
	return s, ok
}

// ProductionString renders production id as "lhs --> rhs ...".
func (v *Vocabulary) ProductionString(id int) string {
	p := v.table.Production(id)
	var sb strings.Builder
	sb.WriteString(v.Describe(p.LHS))
	sb.WriteString(" -->")
	for _, s := range p.RHS {
		sb.WriteByte(' ')
		sb.WriteString(v.Describe(s))
	}
	return sb.String()
}

// LabelID maps a lexer category onto a terminal, folding literal subkinds
// onto their family.
func (v *Vocabulary) LabelID(label string) (Symbol, bool) {
	s, ok := v.labels[label]
	return s, ok
}

// Label is the lexer category reported for terminal s.
func (v *Vocabulary) Label(s Symbol) string {
	if !v.table.IsTerminal(s) || int(s) >= len(v.names.Labels) {
		return ""
	}
	return v.names.Labels[s]
}

// FirstSet returns the terminals with a nonzero parse entry for nt.
func (v *Vocabulary) FirstSet(nt Symbol) TerminalSet {
	i := v.ntIndex(nt)
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.first[i] == nil {
		set := v.rowSet(func(t Symbol) bool { return v.table.ParseEntry(nt, t) != 0 })
		v.first[i] = &set
	}
	return *v.first[i]
}

// Viable narrows FirstSet(nt) to entries that are conflict markers or
// productions of nt itself. Compressed rows share cells, so FirstSet can
// hold terminals that only lead to a syntax error.
func (v *Vocabulary) Viable(nt Symbol) TerminalSet {
	i := v.ntIndex(nt)
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.viable[i] == nil {
		set := v.rowSet(func(t Symbol) bool {
			e := v.table.ParseEntry(nt, t)
			if e == 0 {
				return false
			}
			return v.table.IsConflict(e) || v.table.Production(int(e)).LHS == nt
		})
		v.viable[i] = &set
	}
	return *v.viable[i]
}

// ConflictSet returns the terminals with a nonzero conflict entry for marker.
func (v *Vocabulary) ConflictSet(marker Entry) TerminalSet {
	first, end := v.table.Conflicts()
	if marker < first || marker >= end {
		panic(fmt.Sprintf("grammar: conflict marker %d out of range %d..%d", marker, first, end-1))
	}
	i := int(marker - first)
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.conflicts[i] == nil {
		set := v.rowSet(func(t Symbol) bool { return v.table.ConflictEntry(marker, t) != 0 })
		v.conflicts[i] = &set
	}
	return *v.conflicts[i]
}

// CompatibleSet is {s} for a terminal and FirstSet(s) for a nonterminal.
func (v *Vocabulary) CompatibleSet(s Symbol) TerminalSet {
	switch v.table.Kind(s) {
	case Terminal:
		return NewTerminalSet(s)
	case Nonterminal:
		return v.FirstSet(s)
	}
	panic(fmt.Sprintf("grammar: no compatible set for %s symbol %d", v.table.Kind(s), s))
}

func (v *Vocabulary) ntIndex(nt Symbol) int {
	if !v.table.IsNonterminal(nt) {
		panic(fmt.Sprintf("grammar: symbol %d is not a nonterminal", nt))
	}
	first, _ := v.table.Nonterminals()
	return int(nt - first)
}

func (v *Vocabulary) rowSet(keep func(Symbol) bool) TerminalSet {
	var syms []Symbol
	for t := Symbol(1); t <= v.table.EndOfInput(); t++ {
		if keep(t) {
			syms = append(syms, t)
		}
	}
	return NewTerminalSet(syms...)
}
