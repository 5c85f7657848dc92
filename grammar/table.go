package grammar

import (
	"fmt"
	"sync"
)

// Tables is the flattened encoding emitted by the table generator.
//
// Productions holds, at ProductionRow[id], the length of the production
// (LHS plus RHS) followed by the LHS and the RHS symbols. Parse and Conflict
// are indexed through their row arrays: the cell for (nonterminal, t) lives
// at Parse[ParseRow[nt-(StartSymbol-1)]+t], and the cell for (marker, t) at
// Conflict[ConflictRow[marker-(StartConflict-1)]+t].
type Tables struct {
	Productions   []int
	ProductionRow []int
	Parse         []int
	ParseRow      []int
	Conflict      []int
	ConflictRow   []int

	EndOfInput    Symbol
	StartSymbol   Symbol
	StartAction   Symbol
	EndAction     Symbol
	StartConflict Entry
	EndConflict   Entry
}

// Table answers symbol, production and table-cell queries over Tables.
// It is immutable after New returns.
type Table struct {
	t           Tables
	productions []Production
}

// New validates t and decodes every production.
func New(t Tables) (*Table, error) {
	switch {
	case t.EndOfInput <= 0 || t.StartSymbol != t.EndOfInput+1:
		return nil, fmt.Errorf("grammar: end of input %d must directly precede start symbol %d", t.EndOfInput, t.StartSymbol)
	case t.StartAction <= t.StartSymbol || t.EndAction <= t.StartAction:
		return nil, fmt.Errorf("grammar: bad symbol ranges: nonterminals from %d, actions %d..%d", t.StartSymbol, t.StartAction, t.EndAction)
	case t.EndConflict <= t.StartConflict:
		return nil, fmt.Errorf("grammar: bad conflict range %d..%d", t.StartConflict, t.EndConflict)
	case len(t.ParseRow) < int(t.StartAction-t.StartSymbol)+1:
		return nil, fmt.Errorf("grammar: parse row index has %d entries, need %d", len(t.ParseRow), t.StartAction-t.StartSymbol+1)
	case len(t.ConflictRow) < int(t.EndConflict-t.StartConflict)+1:
		return nil, fmt.Errorf("grammar: conflict row index has %d entries, need %d", len(t.ConflictRow), t.EndConflict-t.StartConflict+1)
	case len(t.ProductionRow) < 2:
		return nil, fmt.Errorf("grammar: no productions")
	}

	tab := &Table{t: t}
	n := len(t.ProductionRow) - 1
	if t.ProductionRow[n] == 0 {
		// trailing sentinel row
		n--
	}
	tab.productions = make([]Production, n+1)
	for id := 1; id <= n; id++ {
		row := t.ProductionRow[id]
		if row < 0 || row >= len(t.Productions) {
			return nil, fmt.Errorf("grammar: production %d: row %d out of range", id, row)
		}
		size := t.Productions[row]
		if size < 1 || row+1+size > len(t.Productions) {
			return nil, fmt.Errorf("grammar: production %d: bad length %d", id, size)
		}
		lhs := Symbol(t.Productions[row+1])
		if tab.Kind(lhs) != Nonterminal {
			return nil, fmt.Errorf("grammar: production %d: left-hand side %d is not a nonterminal", id, lhs)
		}
		rhs := make([]Symbol, size-1)
		for i := range rhs {
			rhs[i] = Symbol(t.Productions[row+2+i])
			if tab.Kind(rhs[i]) == NotASymbol {
				return nil, fmt.Errorf("grammar: production %d: symbol %d out of range", id, rhs[i])
			}
		}
		tab.productions[id] = Production{ID: id, LHS: lhs, RHS: rhs}
	}
	return tab, nil
}

var (
	c99Once  sync.Once
	c99Table *Table
)

// C99 returns the bundled C99 table. It is built once and shared.
func C99() *Table {
	c99Once.Do(func() {
		t, err := New(Tables{
			Productions:   c99Production,
			ProductionRow: c99ProductionRow,
			Parse:         c99Parse,
			ParseRow:      c99ParseRow,
			Conflict:      c99Conflict,
			ConflictRow:   c99ConflictRow,
			EndOfInput:    c99EndOfInput,
			StartSymbol:   c99StartSymbol,
			StartAction:   c99StartAction,
			EndAction:     c99EndAction,
			StartConflict: c99StartConflict,
			EndConflict:   c99EndConflict,
		})
		if err != nil {
			panic(err)
		}
		c99Table = t
	})
	return c99Table
}

func (t *Table) Kind(s Symbol) Kind {
	switch {
	case s <= 0:
		return NotASymbol
	case s < t.t.StartSymbol:
		return Terminal
	case s < t.t.StartAction:
		return Nonterminal
	case s < t.t.EndAction:
		return Action
	}
	return NotASymbol
}

func (t *Table) IsTerminal(s Symbol) bool    { return t.Kind(s) == Terminal }
func (t *Table) IsNonterminal(s Symbol) bool { return t.Kind(s) == Nonterminal }
func (t *Table) IsAction(s Symbol) bool      { return t.Kind(s) == Action }

func (t *Table) StartSymbol() Symbol { return t.t.StartSymbol }
func (t *Table) EndOfInput() Symbol  { return t.t.EndOfInput }

// NumTerminals counts terminal ids, end of input included.
func (t *Table) NumTerminals() int { return int(t.t.EndOfInput) }

func (t *Table) Nonterminals() (first, end Symbol) { return t.t.StartSymbol, t.t.StartAction }
func (t *Table) Actions() (first, end Symbol)      { return t.t.StartAction, t.t.EndAction }
func (t *Table) Conflicts() (first, end Entry)     { return t.t.StartConflict, t.t.EndConflict }

func (t *Table) NumProductions() int { return len(t.productions) - 1 }

// MaxConflictDepth bounds the lookahead used while resolving one conflict.
// A chain longer than the number of markers must revisit a marker, which
// only a defective table can do.
func (t *Table) MaxConflictDepth() int { return int(t.t.EndConflict - t.t.StartConflict) }

// Production returns production id. It panics if id is out of range.
func (t *Table) Production(id int) Production {
	if id <= 0 || id >= len(t.productions) {
		panic(fmt.Sprintf("grammar: production %d out of range 1..%d", id, len(t.productions)-1))
	}
	return t.productions[id]
}

// ActionID maps an action symbol to its routine id (ActionFinish, ...).
func (t *Table) ActionID(s Symbol) int {
	if !t.IsAction(s) {
		panic(fmt.Sprintf("grammar: symbol %d is not an action", s))
	}
	return int(s - (t.t.StartAction - 1))
}

func (t *Table) IsConflict(e Entry) bool { return e >= t.t.StartConflict }

// ParseEntry returns the parse table cell for (nt, terminal).
func (t *Table) ParseEntry(nt, terminal Symbol) Entry {
	if !t.IsNonterminal(nt) {
		panic(fmt.Sprintf("grammar: parse entry for non-nonterminal %d", nt))
	}
	if !t.IsTerminal(terminal) {
		panic(fmt.Sprintf("grammar: parse entry for non-terminal lookahead %d", terminal))
	}
	return cell(t.t.Parse, t.t.ParseRow[nt-(t.t.StartSymbol-1)]+int(terminal))
}

// ConflictEntry returns the conflict table cell for (marker, terminal).
func (t *Table) ConflictEntry(marker Entry, terminal Symbol) Entry {
	if marker < t.t.StartConflict || marker >= t.t.EndConflict {
		panic(fmt.Sprintf("grammar: conflict marker %d out of range %d..%d", marker, t.t.StartConflict, t.t.EndConflict-1))
	}
	if !t.IsTerminal(terminal) {
		panic(fmt.Sprintf("grammar: conflict entry for non-terminal lookahead %d", terminal))
	}
	return cell(t.t.Conflict, t.t.ConflictRow[marker-(t.t.StartConflict-1)]+int(terminal))
}

// cell reads a compressed row; trailing empty cells of the last rows are
// not stored.
func cell(data []int, i int) Entry {
	if i >= len(data) {
		return 0
	}
	return Entry(data[i])
}
