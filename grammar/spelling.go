package grammar

import "strings"

var c99Spellings = map[string]string{
	"SIZEOF": "sizeof", "PTR_OP": "->", "INC_OP": "++", "DEC_OP": "--",
	"LEFT_OP": "<<", "RIGHT_OP": ">>", "LE_OP": "<=", "GE_OP": ">=",
	"EQ_OP": "==", "NE_OP": "!=", "AND_OP": "&&", "OR_OP": "||",
	"MUL_ASSIGN": "*=", "DIV_ASSIGN": "/=", "MOD_ASSIGN": "%=",
	"ADD_ASSIGN": "+=", "SUB_ASSIGN": "-=", "LEFT_ASSIGN": "<<=",
	"RIGHT_ASSIGN": ">>=", "AND_ASSIGN": "&=", "XOR_ASSIGN": "^=",
	"OR_ASSIGN": "|=", "ELLIPSIS": "...",
	"BOOL": "_Bool", "COMPLEX": "_Complex", "IMAGINARY": "_Imaginary",
}

// variable spellings: the token text is not fixed by its category
var c99Variable = map[string]bool{
	"IDENTIFIER":       true,
	"CONSTANT":         true,
	"STRING_LITERAL":   true,
	"TYPE_NAME":        true,
	"END_OF_SLK_INPUT": true,
}

// Spelling returns the C source text of a terminal with a fixed spelling,
// such as "int", "->" or "{". It reports false for identifiers, literals,
// type names and end of input.
func (v *Vocabulary) Spelling(s Symbol) (string, bool) {
	if !v.table.IsTerminal(s) {
		return "", false
	}
	name := v.Name(s)
	if name == "" || c99Variable[name] {
		return "", false
	}
	if text, ok := c99Spellings[name]; ok {
		return text, true
	}
	if strings.ToUpper(name) == name && strings.ToLower(name) != name {
		return strings.ToLower(name), true
	}
	return name, true
}

// IsKeyword reports whether terminal s is spelled as a C keyword.
func (v *Vocabulary) IsKeyword(s Symbol) bool {
	text, ok := v.Spelling(s)
	if !ok || text == "" {
		return false
	}
	c := text[0]
	return c == '_' || (c >= 'a' && c <= 'z')
}
