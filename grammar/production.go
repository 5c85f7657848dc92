package grammar

// Production is one grammar rule. RHS is shared by every caller of
// Table.Production and must not be modified.
type Production struct {
	ID  int
	LHS Symbol
	RHS []Symbol
}

// Empty reports whether the production derives the empty string.
func (p Production) Empty() bool { return len(p.RHS) == 0 }
