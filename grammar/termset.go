package grammar

import (
	"iter"
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// TerminalSet is an immutable set of terminal ids. The zero value is empty.
type TerminalSet struct {
	bits *bitset.BitSet
}

// NewTerminalSet builds a set holding syms.
func NewTerminalSet(syms ...Symbol) TerminalSet {
	b := bitset.New(uint(len(syms)))
	for _, s := range syms {
		b.Set(uint(s))
	}
	return TerminalSet{bits: b}
}

func (s TerminalSet) Contains(sym Symbol) bool {
	if s.bits == nil || sym < 0 {
		return false
	}
	return s.bits.Test(uint(sym))
}

func (s TerminalSet) Len() int {
	if s.bits == nil {
		return 0
	}
	return int(s.bits.Count())
}

func (s TerminalSet) Empty() bool { return s.Len() == 0 }

// All yields the members in increasing order.
func (s TerminalSet) All() iter.Seq[Symbol] {
	return func(yield func(Symbol) bool) {
		if s.bits == nil {
			return
		}
		for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
			if !yield(Symbol(i)) {
				return
			}
		}
	}
}

func (s TerminalSet) Symbols() []Symbol {
	out := make([]Symbol, 0, s.Len())
	for sym := range s.All() {
		out = append(out, sym)
	}
	return out
}

func (s TerminalSet) Equal(o TerminalSet) bool {
	if s.Len() != o.Len() {
		return false
	}
	if s.bits == nil || o.bits == nil {
		return true
	}
	return s.bits.Intersection(o.bits).Count() == s.bits.Count()
}

// Union returns a new set holding the members of both.
func (s TerminalSet) Union(o TerminalSet) TerminalSet {
	switch {
	case s.bits == nil:
		return o
	case o.bits == nil:
		return s
	}
	return TerminalSet{bits: s.bits.Union(o.bits)}
}

func (s TerminalSet) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	for sym := range s.All() {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		sb.WriteString(strconv.Itoa(int(sym)))
	}
	sb.WriteByte('}')
	return sb.String()
}
