package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableKind(t *testing.T) {
	tab := C99()
	tests := []struct {
		sym  Symbol
		kind Kind
	}{
		{0, NotASymbol},
		{-1, NotASymbol},
		{1, Terminal},
		{88, Terminal},
		{89, Nonterminal},
		{226, Nonterminal},
		{227, Action},
		{230, Action},
		{231, NotASymbol},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.kind, tab.Kind(tt.sym), "symbol %d", tt.sym)
		})
	}
}

func TestTableProductions(t *testing.T) {
	tab := C99()
	require.Equal(t, 319, tab.NumProductions())

	p := tab.Production(1)
	assert.Equal(t, Symbol(89), p.LHS)
	assert.Equal(t, []Symbol{211, 90, 227}, p.RHS)

	last := tab.Production(319)
	assert.True(t, last.Empty())
	assert.Equal(t, Symbol(226), last.LHS)

	for id := 1; id <= tab.NumProductions(); id++ {
		p := tab.Production(id)
		require.Equal(t, id, p.ID)
		require.True(t, tab.IsNonterminal(p.LHS), "production %d", id)
	}
}

func TestTableProductionOutOfRange(t *testing.T) {
	tab := C99()
	assert.Panics(t, func() { tab.Production(0) })
	assert.Panics(t, func() { tab.Production(320) })
	assert.Panics(t, func() { tab.ParseEntry(1, 1) })
	assert.Panics(t, func() { tab.ParseEntry(89, 89) })
	assert.Panics(t, func() { tab.ConflictEntry(319, 1) })
	assert.Panics(t, func() { tab.ActionID(89) })
}

func TestTableEntriesInRange(t *testing.T) {
	tab := C99()
	check := func(e Entry) {
		t.Helper()
		if e == 0 || tab.IsConflict(e) {
			first, end := tab.Conflicts()
			if e != 0 {
				require.True(t, e >= first && e < end, "marker %d", e)
			}
			return
		}
		require.LessOrEqual(t, int(e), tab.NumProductions())
	}
	first, end := tab.Nonterminals()
	for nt := first; nt < end; nt++ {
		for term := Symbol(1); term <= tab.EndOfInput(); term++ {
			check(tab.ParseEntry(nt, term))
		}
	}
	cFirst, cEnd := tab.Conflicts()
	for m := cFirst; m < cEnd; m++ {
		for term := Symbol(1); term <= tab.EndOfInput(); term++ {
			check(tab.ConflictEntry(m, term))
		}
	}
}

func TestTableActionIDs(t *testing.T) {
	tab := C99()
	assert.Equal(t, ActionFinish, tab.ActionID(227))
	assert.Equal(t, ActionSetTypedefName, tab.ActionID(228))
	assert.Equal(t, ActionNewScope, tab.ActionID(229))
	assert.Equal(t, ActionReleaseScope, tab.ActionID(230))
}

func TestNewRejectsBadBoundaries(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*Tables)
	}{
		{"start symbol gap", func(ts *Tables) { ts.StartSymbol = ts.EndOfInput + 2 }},
		{"empty actions", func(ts *Tables) { ts.EndAction = ts.StartAction }},
		{"empty conflicts", func(ts *Tables) { ts.EndConflict = ts.StartConflict }},
		{"short parse rows", func(ts *Tables) { ts.ParseRow = ts.ParseRow[:10] }},
		{"short conflict rows", func(ts *Tables) { ts.ConflictRow = ts.ConflictRow[:3] }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := Tables{
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
			}
			tt.mod(&ts)
			_, err := New(ts)
			assert.Error(t, err)
		})
	}
}
