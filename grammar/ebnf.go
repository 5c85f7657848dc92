package grammar

import (
	"strconv"
	"strings"
	"unicode"
)

// punctNames spell the grammar's non-identifier name characters.
var punctNames = map[rune]string{
	',': "Comma",
	'*': "List",
	'+': "Plus",
	'?': "Opt",
}

// EBNFName is the production name of s in EBNF output: CamelCase for
// nonterminals, the lower-cased name for terminals without a fixed
// spelling. Lower-case names are lexical productions in x/exp/ebnf.
// Characters outside letters and digits are spelled out or dropped, so
// ",_init_declarator_*" becomes CommaInitDeclaratorList.
func (v *Vocabulary) EBNFName(s Symbol) string {
	name := v.Name(s)
	if !v.table.IsNonterminal(s) {
		return strings.ToLower(name)
	}
	var sb strings.Builder
	for _, part := range strings.Split(name, "_") {
		upper := true
		for _, r := range part {
			switch {
			case unicode.IsLetter(r) || unicode.IsDigit(r):
				if upper {
					r = unicode.ToUpper(r)
					upper = false
				}
				sb.WriteRune(r)
			default:
				sb.WriteString(punctNames[r])
				upper = true
			}
		}
	}
	return sb.String()
}

// EBNF renders the grammar in the notation of golang.org/x/exp/ebnf, one
// production per nonterminal with its alternatives in production order.
// Actions are left out. Terminals with a fixed spelling become tokens; the
// others become lexical productions standing for their token category.
func (v *Vocabulary) EBNF() string {
	t := v.table
	alts := make(map[Symbol][]string)
	empty := make(map[Symbol]bool)
	var variable []Symbol
	seen := make(map[Symbol]bool)

	for id := 1; id <= t.NumProductions(); id++ {
		p := t.Production(id)
		var terms []string
		for _, s := range p.RHS {
			switch {
			case t.IsAction(s):
			case t.IsNonterminal(s):
				terms = append(terms, v.EBNFName(s))
			default:
				if text, ok := v.Spelling(s); ok {
					terms = append(terms, strconv.Quote(text))
					continue
				}
				if !seen[s] {
					seen[s] = true
					variable = append(variable, s)
				}
				terms = append(terms, v.EBNFName(s))
			}
		}
		if len(terms) == 0 {
			empty[p.LHS] = true
			continue
		}
		alts[p.LHS] = append(alts[p.LHS], strings.Join(terms, " "))
	}

	var sb strings.Builder
	first, end := t.Nonterminals()
	for nt := first; nt < end; nt++ {
		body := strings.Join(alts[nt], " | ")
		if empty[nt] && body != "" {
			body = "[ " + body + " ]"
		}
		sb.WriteString(v.EBNFName(nt))
		sb.WriteString(" =")
		if body != "" {
			sb.WriteString(" ")
			sb.WriteString(body)
		}
		sb.WriteString(" .\n")
	}

	for s := Symbol(1); s < t.EndOfInput(); s++ {
		if !seen[s] {
			continue
		}
		sb.WriteString("\n")
		sb.WriteString(v.EBNFName(s))
		sb.WriteString(" = ")
		sb.WriteString(strconv.Quote(v.Name(s)))
		sb.WriteString(" .")
	}
	sb.WriteString("\n")
	return sb.String()
}
