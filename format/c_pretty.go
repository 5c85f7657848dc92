package format

import (
	"io"
	"strings"

	"github.com/dhamidi/cslk/grammar"
	"github.com/dhamidi/cslk/parser"
)

// CPrettyPrinter reprints a parse tree as C source with one statement per
// line and braces indented K&R style. Comments and preprocessor lines are
// not part of the tree and are dropped.
type CPrettyPrinter struct {
	w         io.Writer
	vocab     *grammar.Vocabulary
	indentStr string

	sb          strings.Builder
	indent      int
	parens      int
	atLineStart bool
	tight       bool // no space after the last token
}

func NewCPrettyPrinter(w io.Writer, v *grammar.Vocabulary) *CPrettyPrinter {
	return &CPrettyPrinter{
		w:           w,
		vocab:       v,
		indentStr:   "    ",
		atLineStart: true,
	}
}

func (p *CPrettyPrinter) Encode(tree *parser.Node) error {
	text, err := p.MarshalText(tree)
	if err != nil {
		return err
	}
	_, err = p.w.Write(text)
	return err
}

func (p *CPrettyPrinter) MarshalText(tree *parser.Node) ([]byte, error) {
	p.sb.Reset()
	p.indent, p.parens, p.atLineStart, p.tight = 0, 0, true, false

	leaves := tree.Terminals()
	for i, leaf := range leaves {
		var next *parser.Node
		if i+1 < len(leaves) {
			next = leaves[i+1]
		}
		p.printLeaf(leaf, next)
	}
	if !p.atLineStart {
		p.newline()
	}
	return []byte(p.sb.String()), nil
}

func (p *CPrettyPrinter) printLeaf(leaf, next *parser.Node) {
	v := leaf.Value
	switch v {
	case "{":
		p.space()
		p.write(v)
		p.indent++
		p.newline()
		return
	case "}":
		p.indent--
		if !p.atLineStart {
			p.newline()
		}
		p.write(v)
		switch {
		case next == nil:
			p.newline()
		case next.Value == ";" || next.Value == ",":
		case next.Value == "else" || p.isDoWhile(next):
			p.tight = false
		case p.parentName(leaf) == "struct_or_union_specifier" || p.parentName(leaf) == "enum_specifier":
			p.tight = false
		default:
			p.newline()
		}
		return
	case ";":
		p.write(v)
		if p.parens == 0 {
			p.newline()
		}
		return
	case "(", "[":
		if !p.callLike(leaf) {
			p.space()
		}
		p.write(v)
		p.parens++
		p.tight = true
		return
	case ")", "]":
		p.parens--
		p.write(v)
		return
	case ",":
		p.write(v)
		return
	case ".", "->":
		p.write(v)
		p.tight = true
		return
	case ":":
		if p.parentName(leaf) != "labeled_statement" {
			p.space()
		}
		p.write(v)
		return
	case "++", "--":
		if p.parentName(leaf) != "unary_expression" {
			p.write(v)
			return
		}
		p.space()
		p.write(v)
		p.tight = true
		return
	}

	p.space()
	p.write(v)
	switch p.parentName(leaf) {
	case "unary_operator", "pointer":
		p.tight = true
	}
}

func (p *CPrettyPrinter) parentName(n *parser.Node) string {
	if n.Parent == nil {
		return ""
	}
	return p.vocab.Name(n.Parent.Symbol)
}

// callLike reports whether an opening bracket follows its operand directly,
// as in calls, function declarators and subscripts.
func (p *CPrettyPrinter) callLike(leaf *parser.Node) bool {
	if p.atLineStart || p.tight {
		return true
	}
	prev := strings.TrimRight(p.sb.String(), " ")
	if prev == "" {
		return false
	}
	last := prev[len(prev)-1]
	if last == ')' || last == ']' {
		return leaf.Value == "(" || leaf.Value == "["
	}
	j := len(prev)
	for j > 0 && isIdentChar(prev[j-1]) {
		j--
	}
	word := prev[j:]
	if word == "" || !isIdentStart(word[0]) {
		return false
	}
	switch word {
	case "if", "while", "for", "switch", "return", "case":
		return false
	}
	return true
}

func (p *CPrettyPrinter) isDoWhile(n *parser.Node) bool {
	if n.Value != "while" || n.Parent == nil || len(n.Parent.Children) == 0 {
		return false
	}
	return n.Parent.Children[0].Value == "do"
}

func (p *CPrettyPrinter) space() {
	if p.atLineStart {
		p.sb.WriteString(strings.Repeat(p.indentStr, max(p.indent, 0)))
		p.atLineStart = false
		p.tight = true
	}
	if !p.tight {
		p.sb.WriteByte(' ')
	}
	p.tight = false
}

func (p *CPrettyPrinter) write(s string) {
	if p.atLineStart {
		p.sb.WriteString(strings.Repeat(p.indentStr, max(p.indent, 0)))
		p.atLineStart = false
	}
	p.sb.WriteString(s)
	p.tight = false
}

func (p *CPrettyPrinter) newline() {
	p.sb.WriteByte('\n')
	p.atLineStart = true
	p.tight = false
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentChar(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}
