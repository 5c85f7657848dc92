package lsp

import (
	"bytes"
	"sort"
	"strings"

	"github.com/dhamidi/cslk/grammar"
	"github.com/dhamidi/cslk/parser"
)

type CompletionKind int

const (
	CompletionKindTypedef CompletionKind = iota
	CompletionKindKeyword
	CompletionKindOperator
)

type CompletionItem struct {
	Label  string
	Kind   CompletionKind
	Detail string
}

// Complete lists what may follow the source before line:column. A word
// the cursor sits at the end of is treated as typed so far: it is left out
// of the parse and used to filter the candidates.
func Complete(v *grammar.Vocabulary, content []byte, line, column int, typedefs ...string) []CompletionItem {
	offset := offsetAt(content, line, column)
	if offset < 0 {
		return nil
	}
	tokens, err := parser.Lex(content[:offset], "")
	if err != nil {
		return nil
	}

	prefix := ""
	if n := len(tokens); n > 0 {
		last := tokens[n-1]
		if isWord(last.Value) && last.Line == line && last.Column-1+len(last.Value) == column {
			prefix = last.Value
			tokens = tokens[:n-1]
		}
	}

	viable, names, ok := nextTerminals(v, tokens, typedefs)
	if !ok {
		return nil
	}

	typeName, _ := v.LabelID("TYPEID")
	var items []CompletionItem
	for sym := range viable.All() {
		if sym == typeName {
			for _, name := range names {
				items = append(items, CompletionItem{Label: name, Kind: CompletionKindTypedef, Detail: "typedef"})
			}
			continue
		}
		text, ok := v.Spelling(sym)
		if !ok {
			continue
		}
		kind := CompletionKindOperator
		if v.IsKeyword(sym) {
			kind = CompletionKindKeyword
		}
		items = append(items, CompletionItem{Label: text, Kind: kind, Detail: v.Name(sym)})
	}

	filtered := items[:0]
	for _, it := range items {
		if strings.HasPrefix(it.Label, prefix) {
			filtered = append(filtered, it)
		}
	}
	sort.Slice(filtered, func(i, j int) bool {
		if filtered[i].Kind != filtered[j].Kind {
			return filtered[i].Kind < filtered[j].Kind
		}
		return filtered[i].Label < filtered[j].Label
	})
	return filtered
}

// nextTerminals feeds tokens to an incremental parse and returns the
// viable set and typedef names at the point it asks for the next token.
func nextTerminals(v *grammar.Vocabulary, tokens []parser.Token, typedefs []string) (grammar.TerminalSet, []string, bool) {
	inc := parser.New(parser.WithVocabulary(v), parser.WithTypedefs(typedefs...)).Incremental()
	i := 0
	for _, err := range inc.Sets() {
		if err != nil {
			return grammar.TerminalSet{}, nil, false
		}
		if i < len(tokens) {
			if inc.Add(tokens[i]) != nil {
				return grammar.TerminalSet{}, nil, false
			}
			i++
			continue
		}
		return inc.Viable(), inc.Typedefs(), true
	}
	return grammar.TerminalSet{}, nil, false
}

// offsetAt converts a 1-based line and 0-based byte column to an offset,
// or -1 when the position is outside content.
func offsetAt(content []byte, line, column int) int {
	if line < 1 || column < 0 {
		return -1
	}
	offset := 0
	for l := 1; l < line; l++ {
		i := bytes.IndexByte(content[offset:], '\n')
		if i < 0 {
			return -1
		}
		offset += i + 1
	}
	end := len(content)
	if i := bytes.IndexByte(content[offset:], '\n'); i >= 0 {
		end = offset + i
	}
	if offset+column > end {
		return -1
	}
	return offset + column
}

func isWord(s string) bool {
	if s == "" {
		return false
	}
	c := s[0]
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
