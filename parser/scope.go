package parser

import "sort"

// Scope is one lexical scope frame: the names declared as typedefs in it,
// and the plain identifiers it defines (tracked by Monitor only).
type Scope struct {
	typedefs    map[string]struct{}
	identifiers map[string]struct{}
}

func newScope() *Scope {
	return &Scope{
		typedefs:    make(map[string]struct{}),
		identifiers: make(map[string]struct{}),
	}
}

func (s *Scope) HasTypedef(name string) bool {
	_, ok := s.typedefs[name]
	return ok
}

func (s *Scope) HasIdentifier(name string) bool {
	_, ok := s.identifiers[name]
	return ok
}

func (s *Scope) Typedefs() []string    { return sortedKeys(s.typedefs) }
func (s *Scope) Identifiers() []string { return sortedKeys(s.identifiers) }

// scopeStack is innermost-last.
type scopeStack []*Scope

func (st *scopeStack) push() { *st = append(*st, newScope()) }

func (st *scopeStack) pop() {
	if len(*st) == 0 {
		panic("parser: exit scope with no active scope")
	}
	*st = (*st)[:len(*st)-1]
}

func (st scopeStack) top() *Scope { return st[len(st)-1] }

// typedefIndex is the depth of the innermost scope declaring name as a
// typedef, or -1.
func (st scopeStack) typedefIndex(name string) int {
	for i := len(st) - 1; i >= 0; i-- {
		if st[i].HasTypedef(name) {
			return i
		}
	}
	return -1
}

// identifierIndex is the depth of the innermost scope defining name as a
// plain identifier, or -1.
func (st scopeStack) identifierIndex(name string) int {
	for i := len(st) - 1; i >= 0; i-- {
		if st[i].HasIdentifier(name) {
			return i
		}
	}
	return -1
}

func (st scopeStack) allTypedefs() []string {
	set := make(map[string]struct{})
	for _, s := range st {
		for name := range s.typedefs {
			set[name] = struct{}{}
		}
	}
	return sortedKeys(set)
}

func (st scopeStack) allIdentifiers() []string {
	set := make(map[string]struct{})
	for _, s := range st {
		for name := range s.identifiers {
			set[name] = struct{}{}
		}
	}
	return sortedKeys(set)
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
