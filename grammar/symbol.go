package grammar

import "strconv"

// Symbol is a grammar symbol id. Its Kind is derived from the numeric range
// it falls in; 0 is not a symbol and marks the bottom of the parse stack.
type Symbol int

// Entry is a parse or conflict table cell: 0, a production id, or a conflict
// marker.
type Entry int

type Kind int

const (
	NotASymbol Kind = iota
	Terminal
	Nonterminal
	Action
)

var kindNames = map[Kind]string{
	NotASymbol:  "NotASymbol",
	Terminal:    "Terminal",
	Nonterminal: "Nonterminal",
	Action:      "Action",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Action routine ids, as dispatched by the driver.
const (
	ActionFinish = iota + 1
	ActionSetTypedefName
	ActionNewScope
	ActionReleaseScope
)
